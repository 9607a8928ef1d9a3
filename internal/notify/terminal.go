// Package notify renders form notifications on a terminal.
package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"

	"resume-builder/internal/form"
)

// Terminal prints notifications as coloured status lines.
// Display options have no terminal equivalent and are ignored.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTerminal writes to out, or stdout when out is nil.
func NewTerminal(out io.Writer) *Terminal {
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{out: out}
}

func (t *Terminal) Success(message string, _ form.NotifyOptions) {
	t.print(color.GreenString("✓"), message)
}

func (t *Terminal) Error(message string) {
	t.print(color.RedString("✗"), message)
}

// Info prints a neutral progress line.
func (t *Terminal) Info(message string) {
	t.print(color.CyanString("→"), message)
}

func (t *Terminal) print(mark, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s %s\n", mark, message)
}

var _ form.Notifier = (*Terminal)(nil)
