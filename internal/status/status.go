// Package status reports per-entry progress on the terminal, separate from the log file
package status

import (
	"fmt"
	"io"
	"sync"

	"github.com/pterm/pterm"
)

// clearLine returns the cursor to column 0 and erases the spinner frame
const clearLine = "\r\033[K"

// Reporter receives one Update per traversal entry and a final Done
type Reporter interface {
	Update(path string)
	Done(message string)
}

// Spinner is a single status line animated with a - \ | / spinner. Writes to a Spinner are
// printed as whole lines above the status line.
type Spinner struct {
	printer *pterm.SpinnerPrinter
	out     *lockedWriter
}

// StartSpinner starts a spinner writing to w
func StartSpinner(w io.Writer, text string) (*Spinner, error) {
	out := &lockedWriter{w: w}
	printer, err := pterm.DefaultSpinner.
		WithWriter(out).
		WithSequence(`-`, `\`, `|`, `/`).
		WithRemoveWhenDone(false).
		Start(text)
	if err != nil {
		return nil, err
	}
	return &Spinner{printer: printer, out: out}, nil
}

// Update shows the entry currently being processed
func (s *Spinner) Update(path string) {
	s.printer.UpdateText(fmt.Sprintf("processing: %s", path))
}

// Done stops the spinner, leaving message on the status line
func (s *Spinner) Done(message string) {
	s.printer.Success(message)
}

// Write clears the current frame and prints p; the next frame redraws below it
func (s *Spinner) Write(p []byte) (int, error) {
	s.out.mu.Lock()
	defer s.out.mu.Unlock()

	if _, err := io.WriteString(s.out.w, clearLine); err != nil {
		return 0, err
	}
	return s.out.w.Write(p)
}

// lockedWriter serializes the spinner goroutine's frames with console lines
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// Nop discards all status updates
type Nop struct{}

func (Nop) Update(string) {}

func (Nop) Done(string) {}

// WaitForKey prompts on out and blocks until one byte is read from in
func WaitForKey(in io.Reader, out io.Writer) error {
	if _, err := fmt.Fprint(out, "press any key to exit..."); err != nil {
		return err
	}
	_, err := in.Read(make([]byte, 1))
	if err == io.EOF {
		return nil
	}
	return err
}
