// cmd/validate-spec-exists/main.go
//
// Stop hook for the spec-writing skills. Blocks until a spec file was
// written to the target directory within the last five minutes.
//
// Usage: validate-spec-exists [--directory|-d specs] [--extension|-e .md]

package main

import (
	"os"
	"time"

	"github.com/kingrea/dream-team/internal/config"
	"github.com/kingrea/dream-team/internal/hook"
	"github.com/kingrea/dream-team/internal/logging"
	"github.com/kingrea/dream-team/internal/options"
	"github.com/kingrea/dream-team/internal/specs"
)

func main() {
	runner := &hook.Runner{Name: "validate-spec-exists"}
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
		return specs.ValidateExists(target.Directory, target.Extension, time.Now())
	})
	logger.Close()
	os.Exit(code)
}
