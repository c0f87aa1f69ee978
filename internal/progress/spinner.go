package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

const spinnerInterval = 100 * time.Millisecond

var (
	activeMu sync.Mutex
	active   *spinner.Spinner
)

// StopActive stops the spinner that is currently animating, if any, which
// restores the terminal cursor. It is safe to call from a signal handler.
func StopActive() {
	activeMu.Lock()
	defer activeMu.Unlock()
	if active != nil {
		active.Stop()
		active = nil
	}
}

func setActive(s *spinner.Spinner) {
	activeMu.Lock()
	active = s
	activeMu.Unlock()
}

func clearActive(s *spinner.Spinner) {
	activeMu.Lock()
	if active == s {
		active = nil
	}
	activeMu.Unlock()
}

// Spinner shows an animated indicator for a running step and replaces it with
// a result line when the step ends. Without a TTY it prints plain lines only.
type Spinner struct {
	out     io.Writer
	symbols ProgressSymbols
	colors  bool
	tty     bool
	spin    *spinner.Spinner
}

// NewSpinner creates a spinner writing to out using the given capabilities.
func NewSpinner(out io.Writer, caps TerminalCapabilities) *Spinner {
	return &Spinner{
		out:     out,
		symbols: SelectSymbols(caps),
		colors:  caps.SupportsColor,
		tty:     caps.IsTTY,
	}
}

// Start begins animating with message as the label.
func (s *Spinner) Start(message string) {
	s.stop()
	if !s.tty {
		fmt.Fprintf(s.out, "%s\n", message)
		return
	}

	s.spin = spinner.New(
		spinner.CharSets[s.symbols.SpinnerSet],
		spinnerInterval,
		spinner.WithWriter(s.out),
		spinner.WithHiddenCursor(true),
	)
	s.spin.Suffix = " " + message
	if s.colors {
		_ = s.spin.Color("cyan")
	}
	setActive(s.spin)
	s.spin.Start()
}

// Succeed stops the spinner and prints a success line.
func (s *Spinner) Succeed(message string) {
	s.finish(s.symbols.Checkmark, color.FgGreen, message)
}

// Fail stops the spinner and prints a failure line.
func (s *Spinner) Fail(message string) {
	s.finish(s.symbols.Failure, color.FgRed, message)
}

// Warn stops the spinner and prints a warning line.
func (s *Spinner) Warn(message string) {
	s.finish(s.symbols.Warning, color.FgYellow, message)
}

func (s *Spinner) finish(symbol string, attr color.Attribute, message string) {
	s.stop()
	if s.colors {
		symbol = color.New(attr).Sprint(symbol)
	}
	fmt.Fprintf(s.out, "%s %s\n", symbol, message)
}

func (s *Spinner) stop() {
	if s.spin != nil {
		clearActive(s.spin)
		s.spin.Stop()
		s.spin = nil
	}
}
