// cmd/validate-build-complete/main.go
//
// Stop hook for the build skill. Blocks the session from ending while any
// task in the host's task list is not completed.

package main

import (
	"os"

	"github.com/kingrea/dream-team/internal/build"
	"github.com/kingrea/dream-team/internal/config"
	"github.com/kingrea/dream-team/internal/hook"
	"github.com/kingrea/dream-team/internal/logging"
)

func main() {
	runner := &hook.Runner{Name: "validate-build-complete"}
	var logger *logging.Logger
	code := runner.Main(hook.Stdin(), os.Stdout, func(in hook.Input) (hook.Verdict, error) {
		if cfg, err := config.LoadWorkingDir(); err == nil {
			logger, _ = logging.New(cfg)
			runner.Logger = logger
		}
		return build.Handle(in)
	})
	logger.Close()
	os.Exit(code)
}
