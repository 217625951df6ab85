// cmd/stop-diagnostic/main.go
//
// Stop hook probe. Appends one line to the probe log and lets the session
// stop. Pair it with `dream-team diagnose` to check that Stop hooks declared
// inside a skill actually fire.

package main

import (
	"os"

	"github.com/kingrea/dream-team/internal/config"
	"github.com/kingrea/dream-team/internal/diagnostic"
	"github.com/kingrea/dream-team/internal/hook"
	"github.com/kingrea/dream-team/internal/logbook"
	"github.com/kingrea/dream-team/internal/logging"
)

func main() {
	runner := &hook.Runner{Name: "stop-diagnostic"}
	var logger *logging.Logger
	code := runner.Main(hook.Stdin(), os.Stdout, func(in hook.Input) (hook.Verdict, error) {
		probePath := config.DefaultProbeLogPath()
		if cfg, err := config.LoadWorkingDir(); err == nil {
			probePath = cfg.ProbeLogPath()
			logger, _ = logging.New(cfg)
			runner.Logger = logger
		}
		book, err := logbook.New(probePath)
		if err != nil {
			return hook.Verdict{}, err
		}
		return diagnostic.Handler(book)(in)
	})
	logger.Close()
	os.Exit(code)
}
