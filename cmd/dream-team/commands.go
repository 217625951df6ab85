package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/kingrea/dream-team/internal/artifact"
	"github.com/kingrea/dream-team/internal/config"
	"github.com/kingrea/dream-team/internal/contracts"
	"github.com/kingrea/dream-team/internal/diagnostic"
	"github.com/kingrea/dream-team/internal/guide"
	"github.com/kingrea/dream-team/internal/logbook"
	"github.com/kingrea/dream-team/internal/options"
	"github.com/kingrea/dream-team/internal/report"
	"github.com/kingrea/dream-team/internal/specs"
)

const probeTail = 8

func checkCommand(cfg *config.Config) *cli.Command {
	target := cfg.Specs().WithDefaults()
	return &cli.Command{
		Name:      "check",
		Usage:     "check a spec file for the sections its mode requires",
		ArgsUsage: "[file]",
		Flags:     options.SpecFlags(&target),
		Action: func(_ context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				newest, ok, err := newestSpec(target)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.Root().Writer, report.Verdict(contracts.NoRecentSpec(target.Directory)))
					return errBlocked{}
				}
				path = newest
			}
			r, err := contracts.CheckSectionsFile(path)
			if err != nil {
				return err
			}
			meta, _, metaErr := artifact.ParseFrontMatter(r.Content)
			if errors.Is(metaErr, artifact.ErrMissingFrontMatter) {
				metaErr = nil
			}
			fmt.Fprintln(cmd.Root().Writer, report.Sections(r, meta, metaErr))
			if !r.IsValid() {
				return errBlocked{}
			}
			return nil
		},
	}
}

func newestSpec(target config.SpecsConfig) (string, bool, error) {
	target = target.WithDefaults()
	newest, ok, err := specs.Newest(target.Directory, target.Extension, time.Now())
	if err != nil || !ok {
		return "", ok, err
	}
	return newest.Path, true, nil
}

func guideCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "guide",
		Usage: "print the usage guide injected at session start",
		Action: func(_ context.Context, cmd *cli.Command) error {
			fmt.Fprintln(cmd.Root().Writer, guide.SystemMessage(guide.Version(cfg.PluginRoot)))
			fmt.Fprintln(cmd.Root().Writer)
			fmt.Fprintln(cmd.Root().Writer, guide.Context())
			return nil
		},
	}
}

func diagnoseCommand(cfg *config.Config) *cli.Command {
	var clean bool
	return &cli.Command{
		Name:  "diagnose",
		Usage: "check whether skill Stop hooks fire, using the stop-diagnostic probe log",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name: "clean", Usage: "delete the probe log and exit",
				Destination: &clean,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			book, err := logbook.New(cfg.ProbeLogPath())
			if err != nil {
				return err
			}
			out := cmd.Root().Writer
			if clean {
				removed, err := book.Clear()
				if err != nil {
					return err
				}
				if removed {
					fmt.Fprintf(out, "Cleared: %s\n", book.Path())
				} else {
					fmt.Fprintf(out, "Already clean: %s does not exist\n", book.Path())
				}
				return nil
			}
			r, err := diagnostic.Diagnose(book, probeTail)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, report.Probe(r))
			return nil
		},
	}
}
