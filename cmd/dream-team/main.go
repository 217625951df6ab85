// cmd/dream-team/main.go
//
// Operator CLI for the Dream Team hooks. The hook binaries talk JSON to the
// host; this one prints styled reports for a person at a terminal.
//
//	dream-team check [-d specs] [-e .md] [file]
//	dream-team guide
//	dream-team diagnose [--clean]

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/kingrea/dream-team/internal/config"
)

func main() {
	cfg, err := config.LoadWorkingDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(exitCode(err))
	}

	if err := newApp(cfg, os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func newApp(cfg *config.Config, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "dream-team",
		Usage:     "inspect Dream Team specs and hook behaviour",
		Writer:    out,
		ErrWriter: os.Stderr,
		Commands: []*cli.Command{
			checkCommand(cfg),
			guideCommand(cfg),
			diagnoseCommand(cfg),
		},
	}
}

// errBlocked signals a check that found problems. The report was already printed.
type errBlocked struct{}

func (errBlocked) Error() string { return "spec failed validation" }

func exitCode(err error) int {
	if _, ok := err.(errBlocked); ok {
		return 1
	}
	return 2
}
