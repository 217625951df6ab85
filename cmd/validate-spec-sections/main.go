// cmd/validate-spec-sections/main.go
//
// Stop hook for the spec-writing skills. Finds the newest spec written in
// the last five minutes and checks it has every section its mode requires.
//
// Usage: validate-spec-sections [--directory|-d specs] [--extension|-e .md]

package main

import (
	"os"
	"time"

	"github.com/kingrea/dream-team/internal/config"
	"github.com/kingrea/dream-team/internal/contracts"
	"github.com/kingrea/dream-team/internal/hook"
	"github.com/kingrea/dream-team/internal/logging"
	"github.com/kingrea/dream-team/internal/options"
)

func main() {
	runner := &hook.Runner{Name: "validate-spec-sections"}
	var logger *logging.Logger
	code := runner.Main(hook.Stdin(), os.Stdout, func(hook.Input) (hook.Verdict, error) {
		cfg, err := config.LoadWorkingDir()
		if err != nil {
			return hook.Verdict{}, err
		}
		logger, _ = logging.New(cfg)
		runner.Logger = logger
		target, err := options.ParseSpec(os.Args, cfg.Specs())
		if err != nil {
			return hook.Verdict{}, err
		}
		return contracts.ValidateSections(target.Directory, target.Extension, time.Now())
	})
	logger.Close()
	os.Exit(code)
}
