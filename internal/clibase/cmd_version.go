package clibase

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

// empty prefix lists every module the binary was built with
const defaultDepPrefix = ""

func version(out io.Writer, name, depPrefix string) error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	fmt.Fprintf(out, "%s (%s %s)\n", name, buildInfo.Main.Path, buildInfo.Main.Version)

	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "  Compiled with: %s\n", runtime.Compiler)
	fmt.Fprintf(out, "         GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(out, "           GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(out, "     Go Version: %s\n", runtime.Version())
	fmt.Fprintf(out, "\n")

	for _, pkg := range buildInfo.Deps {
		if !strings.HasPrefix(pkg.Path, depPrefix) {
			continue
		}
		output := fmt.Sprintf("%s %s", pkg.Path, pkg.Version)
		if pkg.Replace != nil {
			output = fmt.Sprintf("%s => %s", output, pkg.Replace.Path)
		}
		fmt.Fprintf(out, "  %s\n", output)
	}
	return nil
}

func addVersionCmd(rootCmd *cobra.Command) {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "output the binary version",
		RunE: func(cmd *cobra.Command, args []string) error {
			depPrefix, err := cmd.Flags().GetString("dep-prefix")
			if err != nil {
				return err
			}
			return version(cmd.OutOrStdout(), rootCmd.Name(), depPrefix)
		},
	}
	versionFlags := versionCmd.Flags()
	versionFlags.String("dep-prefix", defaultDepPrefix, "only list modules under this prefix")

	rootCmd.AddCommand(versionCmd)
}
