package printers

import (
	"os"

	"github.com/fatih/color"
)

// PrettyPrint writes user-facing notices outside the alternate screen,
// before the interface starts or after it exits.
type PrettyPrint struct{}

func (pp *PrettyPrint) Notice(format string, args ...interface{}) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Printf(format+"\n", args...)
}

func (pp *PrettyPrint) Error(format string, args ...interface{}) {
	e := color.New(color.FgRed, color.Bold)
	_, _ = e.Fprintf(os.Stderr, format+"\n", args...)
}
