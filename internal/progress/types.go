// Package progress renders step progress for create-tap-react: a spinner while a
// step runs and a success, warning, or failure line when it ends. Output degrades
// to plain lines and ASCII symbols when stdout is not a capable terminal.
package progress

// TerminalCapabilities describes what the attached terminal can render.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
	Width           int
}

// ProgressSymbols is the symbol set used for step results.
type ProgressSymbols struct {
	Checkmark  string
	Failure    string
	Warning    string
	SpinnerSet int // index into spinner.CharSets
}
