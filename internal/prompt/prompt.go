// Package prompt implements the interactive questions asked by create-tap-react:
// single-choice lists, validated text input, and yes/no confirmations.
//
// Two implementations exist. The terminal UI (bubbletea) is used when both
// stdin and stdout are terminals; the line prompter reads answers line by line
// and serves pipes, CI, and tests.
package prompt

import (
	"context"
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the user aborts a prompt (Ctrl+C or closed input).
var ErrInterrupted = errors.New("prompt interrupted")

// Option is one entry of a single-choice list.
type Option struct {
	// Label is the rendered line, which may contain ANSI styling.
	Label string
	// Value identifies the option and is returned on selection.
	Value string
	// Short is echoed back as the answer once the option is chosen.
	Short string
}

// ValidateFunc checks a raw answer. A non-nil error is shown to the user
// and the question is asked again.
type ValidateFunc func(input string) error

// Prompter asks the user questions.
type Prompter interface {
	// Select presents options and returns the Value of the chosen one.
	Select(ctx context.Context, message string, options []Option, pageSize int) (string, error)
	// Input asks for free text. An empty answer takes defaultValue. The answer
	// is re-asked until validate passes and is returned trimmed.
	Input(ctx context.Context, message, defaultValue string, validate ValidateFunc) (string, error)
	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, message string, defaultValue bool) (bool, error)
}

// Auto returns the terminal UI prompter when in and out are both terminals,
// and a line prompter otherwise.
func Auto(in io.Reader, out io.Writer) Prompter {
	inFile, inOK := in.(*os.File)
	outFile, outOK := out.(*os.File)
	if inOK && outOK && term.IsTerminal(int(inFile.Fd())) && term.IsTerminal(int(outFile.Fd())) {
		return NewTUI(in, out)
	}
	return NewLine(in, out)
}
