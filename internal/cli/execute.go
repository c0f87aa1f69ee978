package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	clierrors "github.com/ariel-frischer/create-tap-react/internal/errors"
	"github.com/ariel-frischer/create-tap-react/internal/lifecycle"
	"github.com/ariel-frischer/create-tap-react/internal/prompt"
	"github.com/ariel-frischer/create-tap-react/internal/scaffold"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Execute runs the root command. A nil result means the process should exit
// with ExitSuccess; errors have already been printed.
func Execute() error {
	return execute(rootCmd, os.Stderr)
}

func execute(cmd *cobra.Command, errOut io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			printUnexpected(errOut, err)
		}
	}()

	return finish(cmd.Execute(), cmd.OutOrStdout(), errOut)
}

// finish prints the outcome of a run and returns the error that should fail
// the process, if any.
func finish(err error, out, errOut io.Writer) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, scaffold.ErrCancelled):
		fmt.Fprintf(out, "\n%s\n", color.YellowString("Operation cancelled"))
		return nil
	case errors.Is(err, prompt.ErrInterrupted):
		fmt.Fprintf(out, "\n\n%s\n", color.YellowString(lifecycle.Farewell(os.Interrupt)))
		return nil
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		fmt.Fprintln(errOut)
		clierrors.FprintError(errOut, cliErr)
		return err
	}

	printUnexpected(errOut, err)
	return err
}

func printUnexpected(w io.Writer, err error) {
	fmt.Fprintf(w, "\n%s\n%+v\n", color.RedString("An unexpected error occurred:"), err)
}

// debugPrinter returns a debug logger writing faint [debug] lines to w.
func debugPrinter(w io.Writer) func(format string, args ...any) {
	faint := color.New(color.Faint)
	return func(format string, args ...any) {
		faint.Fprintf(w, "[debug] "+format+"\n", args...)
	}
}
