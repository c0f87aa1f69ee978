package main

import (
	"os"

	"github.com/ariel-frischer/create-tap-react/internal/cli"
	"github.com/ariel-frischer/create-tap-react/internal/lifecycle"
	"github.com/ariel-frischer/create-tap-react/internal/progress"
	"github.com/ariel-frischer/create-tap-react/internal/prompt"
)

func main() {
	stop := lifecycle.WatchSignals(os.Stdout, os.Exit, progress.StopActive, prompt.StopActive)
	defer stop()

	if err := cli.Execute(); err != nil {
		stop()
		os.Exit(cli.ExitFailure)
	}
}
