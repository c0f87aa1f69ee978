// Package lifecycle owns process-boundary concerns for create-tap-react: it
// watches for SIGINT/SIGTERM, restores the terminal, prints a farewell line,
// and exits. The scaffold
// workflow never sees signals; it only sees its context.
package lifecycle

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
)

// ExitFunc terminates the process. It is os.Exit outside of tests.
type ExitFunc func(code int)

var farewell = color.New(color.FgYellow).SprintFunc()

// Farewell returns the message printed when sig ends the run.
func Farewell(sig os.Signal) string {
	if sig == syscall.SIGTERM {
		return "Process terminated!"
	}
	return "Goodbye!"
}

// WatchSignals registers for SIGINT and SIGTERM and handles the first one
// delivered with Handle. The returned stop function unregisters the handler.
func WatchSignals(out io.Writer, exit ExitFunc, cleanups ...func()) (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	go Handle(ctx, sigs, out, exit, cleanups...)

	return func() {
		signal.Stop(sigs)
		cancel()
	}
}

// Handle waits for a signal on sigs, runs cleanups in order, prints its
// farewell to out, and exits with code 0. Cleanups restore terminal state
// (cursor, raw mode) that deferred calls would otherwise never reach. Handle
// returns without exiting when ctx is done first.
func Handle(ctx context.Context, sigs <-chan os.Signal, out io.Writer, exit ExitFunc, cleanups ...func()) {
	select {
	case <-ctx.Done():
		return
	case sig := <-sigs:
		for _, cleanup := range cleanups {
			cleanup()
		}
		fmt.Fprintf(out, "\n\n%s\n", farewell(Farewell(sig)))
		exit(0)
	}
}
