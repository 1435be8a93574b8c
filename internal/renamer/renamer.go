// Package renamer walks a source tree and converts every image it finds into the destination
// directory under a generated name.
package renamer

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/SkyMack/picrename/internal/imagefile"
	"github.com/SkyMack/picrename/internal/naming"
	"github.com/SkyMack/picrename/internal/status"
	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
)

// Summary describes a finished run. Errors collects every walk and conversion failure.
type Summary struct {
	Converted int
	Skipped   int
	Failed    int
	NextIndex uint32
	Elapsed   time.Duration
	Errors    *multierror.Error
}

// Renamer processes entries one at a time in walk order. Only a successful conversion
// advances the index.
type Renamer struct {
	conf    Config
	log     log.FieldLogger
	status  status.Reporter
	console io.Writer
	namer   *naming.Namer

	index   uint32
	started time.Time
	summary Summary
}

// New returns a Renamer for conf. Log records go to logger, the status line to reporter and
// plain progress lines to console.
func New(conf Config, logger log.FieldLogger, reporter status.Reporter, console io.Writer) *Renamer {
	return &Renamer{
		conf:    conf,
		log:     logger,
		status:  reporter,
		console: console,
		namer:   naming.New(),
		index:   conf.StartIndex,
		started: time.Now(),
	}
}

// SetNamer replaces the file name generator
func (r *Renamer) SetNamer(namer *naming.Namer) {
	r.namer = namer
}

// SetStarted sets the instant the elapsed time is measured from
func (r *Renamer) SetStarted(started time.Time) {
	r.started = started
}

// Run walks the source directory to completion. Per-entry failures are logged and skipped.
func (r *Renamer) Run() Summary {
	fmt.Fprintf(r.console, "processing directory: %s ...\n", r.conf.SrcDir)
	r.log.WithFields(log.Fields{
		"src.dir":     r.conf.SrcDir,
		"dst.dir":     r.conf.DestDir,
		"format":      r.conf.Postfix,
		"start.index": r.conf.StartIndex,
	}).Info("starting run")

	// the callback never returns an error, so neither does WalkDir
	_ = filepath.WalkDir(r.conf.SrcDir, r.visit)

	r.summary.NextIndex = r.index
	r.summary.Elapsed = time.Since(r.started)

	fmt.Fprintf(r.console, "converted %d, skipped %d, failed %d\n", r.summary.Converted, r.summary.Skipped, r.summary.Failed)
	fmt.Fprintf(r.console, "finished, total time: %s\n", r.summary.Elapsed.Round(time.Millisecond))
	r.status.Done("done")
	r.log.WithFields(log.Fields{
		"converted":  r.summary.Converted,
		"elapsed":    r.summary.Elapsed,
		"failed":     r.summary.Failed,
		"next.index": r.summary.NextIndex,
		"skipped":    r.summary.Skipped,
	}).Info("run finished")

	return r.summary
}

func (r *Renamer) visit(fpath string, d fs.DirEntry, err error) error {
	// WalkDir revisits a directory it could not read; the status line already showed it
	revisit := err != nil && d != nil && d.IsDir()
	if !revisit {
		r.status.Update(fpath)
	}

	if err != nil {
		fmt.Fprintf(r.console, "walk error: %v\n", err)
		r.log.WithFields(log.Fields{
			"error":    err,
			"src.path": fpath,
		}).Error("walk error")
		r.fail(err)
		return nil
	}

	if d.IsDir() {
		r.log.WithField("src.path", fpath).Warn("entry is a directory, skipping")
		return nil
	}

	if _, err := imagefile.Classify(fpath); err != nil {
		r.log.WithFields(log.Fields{
			"error":    err,
			"src.path": fpath,
		}).Warn("entry is not an image, skipping")
		r.summary.Skipped++
		return nil
	}

	dstPath := filepath.Join(r.conf.DestDir, fmt.Sprintf("%s.%s", r.namer.Generate(r.index), r.conf.Postfix))
	if err := imagefile.ConvertFile(fpath, dstPath, r.conf.Postfix); err != nil {
		fmt.Fprintf(r.console, "conversion failed: %v\n", err)
		r.log.WithFields(log.Fields{
			"dst.path": dstPath,
			"error":    err,
			"src.path": fpath,
		}).Error("conversion failed")
		r.fail(err)
		return nil
	}

	r.log.WithFields(log.Fields{
		"dst.path": dstPath,
		"index":    r.index,
		"src.path": fpath,
	}).Info("renamed and converted")
	r.index++
	r.summary.Converted++

	return nil
}

func (r *Renamer) fail(err error) {
	r.summary.Failed++
	r.summary.Errors = multierror.Append(r.summary.Errors, err)
}
