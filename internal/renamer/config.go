package renamer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SkyMack/picrename/internal/imagefile"
	"github.com/spf13/pflag"
)

const (
	flagNameDestDir    = "to-dir"
	flagNameNoPause    = "no-pause"
	flagNamePostfix    = "new-postfix"
	flagNameSrcDir     = "dir"
	flagNameStartIndex = "start-index"
)

// Config is the immutable configuration of one rename run. Postfix is not validated here, an
// unsupported one fails each conversion instead of the run.
type Config struct {
	SrcDir     string
	DestDir    string
	Postfix    string
	StartIndex uint32
	Pause      bool
}

// AddFlags adds the rename flags to flags
func AddFlags(flags *pflag.FlagSet) {
	renameFlags := &pflag.FlagSet{}

	renameFlags.StringP(flagNameSrcDir, "d", "test", "Source directory to walk for images")
	renameFlags.StringP(flagNameDestDir, "t", "temp", "Destination directory for converted images (created if missing)")
	renameFlags.StringP(flagNamePostfix, "n", "png", fmt.Sprintf("Target format and file extension (one of: %s)", strings.Join(imagefile.SupportedFormatNames(), ", ")))
	renameFlags.Uint32P(flagNameStartIndex, "s", 1, "First index used in generated file names")
	renameFlags.Bool(flagNameNoPause, false, "Exit without waiting for a key press")

	flags.AddFlagSet(renameFlags)
}

// ConfigFromFlags reads the rename flags
func ConfigFromFlags(flags *pflag.FlagSet) (Config, error) {
	var c Config

	srcDir, err := flags.GetString(flagNameSrcDir)
	if err != nil {
		return c, err
	}
	destDir, err := flags.GetString(flagNameDestDir)
	if err != nil {
		return c, err
	}
	postfix, err := flags.GetString(flagNamePostfix)
	if err != nil {
		return c, err
	}
	startIndex, err := flags.GetUint32(flagNameStartIndex)
	if err != nil {
		return c, err
	}
	noPause, err := flags.GetBool(flagNameNoPause)
	if err != nil {
		return c, err
	}

	c.SrcDir = srcDir
	c.DestDir = destDir
	c.Postfix = strings.ToLower(postfix)
	c.StartIndex = startIndex
	c.Pause = !noPause

	return c, nil
}

// PrepareDestDir resolves dir to an absolute path and creates it if it does not exist
func PrepareDestDir(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", err
	}
	return absDir, nil
}
