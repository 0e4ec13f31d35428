// Package ui writes command output, paging long text when stdout is a
// terminal.
//
// The pager command comes from --pager, the pager config key or $PAGER, and
// is executed as given. Users should only configure pagers they trust.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// Writer prints to an io.Writer and pages through an external command.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	pagerOverride string
	configGetter  func(string) (string, bool)
	envGetter     func(string) string
	isTerminal    func(io.Writer) bool
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithPagerOverride sets a pager command override.
func WithPagerOverride(cmd string) WriterOption {
	return func(w *Writer) {
		w.pagerOverride = cmd
	}
}

// WithConfig reads the pager key from cfg.
func WithConfig(cfg map[string]string) WriterOption {
	return func(w *Writer) {
		w.configGetter = func(key string) (string, bool) {
			v, ok := cfg[key]
			return v, ok
		}
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// NewWriter creates a new Writer that writes to stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a new Writer that writes to out.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:        out,
		envGetter:  os.Getenv,
		isTerminal: isTerminal,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager displays content through a pager if appropriate.
func (w *Writer) Pager(content string) {
	if cmd := w.pagerCommand(); cmd != "" {
		w.runPagerCmd(cmd, content)
		return
	}
	fmt.Fprint(w.out, content)
}

// pagerCommand returns the pager to run, or "" to print directly.
func (w *Writer) pagerCommand() string {
	if w.pagerDisabled || !w.isTerminal(w.out) {
		return ""
	}

	cmd := "less -FRSX"
	switch {
	case w.pagerOverride != "":
		cmd = w.pagerOverride
	case w.configValue("pager") != "":
		cmd = w.configValue("pager")
	case w.envGetter != nil && w.envGetter("PAGER") != "":
		cmd = w.envGetter("PAGER")
	}

	if cmd == "cat" {
		return ""
	}
	return cmd
}

func (w *Writer) configValue(key string) string {
	if w.configGetter == nil {
		return ""
	}
	v, _ := w.configGetter(key)
	return v
}

func (w *Writer) runPagerCmd(pagerCmd string, content string) {
	parts := strings.Fields(pagerCmd)
	if len(parts) == 0 {
		fmt.Fprint(w.out, content)
		return
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = w.out
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Fprint(w.out, content)
	}
}
