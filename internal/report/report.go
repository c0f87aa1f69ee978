package report

import (
	"fmt"
	"io"

	"github.com/ariel-frischer/create-tap-react/internal/pkgmanager"
	"github.com/fatih/color"
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for the completion report.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Script names the reporter knows how to suggest.
const (
	ScriptDev   = "dev"
	ScriptStart = "start"
	ScriptBuild = "build"
)

// Hint is one suggested command, shown for npm and for an alternative manager.
type Hint struct {
	Script      string
	NPM         string
	Alternative string
}

func newHint(script string, alt pkgmanager.Manager) Hint {
	return Hint{
		Script:      script,
		NPM:         pkgmanager.NPM.RunScript(script),
		Alternative: alt.RunScript(script),
	}
}

func (h Hint) String() string {
	return h.NPM + " or " + h.Alternative
}

// alternativeFor picks the manager paired with npm in hints: the one used for
// install when that was not npm, yarn otherwise.
func alternativeFor(used pkgmanager.Manager) pkgmanager.Manager {
	if used == "" || used == pkgmanager.NPM {
		return pkgmanager.Yarn
	}
	return used
}

// NextSteps returns the script hints for manifest. dev is preferred over
// start and build is checked independently. A nil manifest yields the generic
// start hint; a manifest without scripts yields none.
func NextSteps(manifest *Manifest, used pkgmanager.Manager) []Hint {
	alt := alternativeFor(used)
	if manifest == nil {
		return []Hint{newHint(ScriptStart, alt)}
	}

	var hints []Hint
	switch {
	case manifest.HasScript(ScriptDev):
		hints = append(hints, newHint(ScriptDev, alt))
	case manifest.HasScript(ScriptStart):
		hints = append(hints, newHint(ScriptStart, alt))
	}
	if manifest.HasScript(ScriptBuild) {
		hints = append(hints, newHint(ScriptBuild, alt))
	}
	return hints
}

// Summary describes the project that was created.
type Summary struct {
	// Dir is the absolute project directory.
	Dir string
	// ProjectName is the name as entered; "." means the current directory.
	ProjectName string
	// Manager is the package manager detected for install.
	Manager pkgmanager.Manager
}

// Print writes the success banner and next steps for s to out.
// Manifest problems fall back to the generic hint.
func Print(out io.Writer, s Summary) {
	manifest, err := ReadManifest(s.Dir)
	if err != nil {
		logDebug("[report] %v; suggesting the generic start command", err)
	}

	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)

	fmt.Fprintf(out, "\n%s\n\n", color.New(color.FgGreen, color.Bold).Sprint("Project created successfully!"))
	fmt.Fprintln(out, bold.Sprint("Next steps:"))
	if s.ProjectName != "." {
		fmt.Fprintf(out, "   %s\n", cyan.Sprint("cd "+s.ProjectName))
	}
	for _, h := range NextSteps(manifest, s.Manager) {
		fmt.Fprintf(out, "   %s or %s\n", cyan.Sprint(h.NPM), cyan.Sprint(h.Alternative))
	}
	fmt.Fprintf(out, "\n%s\n\n", color.New(color.FgHiBlack).Sprint("Happy coding!"))
}
