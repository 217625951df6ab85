// cmd/session-start/main.go
//
// SessionStart hook. Injects the Dream Team usage guide into the new
// session so the assistant knows which commands exist. Always exits 0.

package main

import (
	"os"

	"github.com/kingrea/dream-team/internal/config"
	"github.com/kingrea/dream-team/internal/guide"
	"github.com/kingrea/dream-team/internal/hook"
	"github.com/kingrea/dream-team/internal/logging"
)

func main() {
	pluginRoot := config.ResolvePluginRoot()
	var logger *logging.Logger
	// A broken project config must not cost the session its guide.
	if cfg, err := config.LoadWorkingDir(); err == nil {
		pluginRoot = cfg.PluginRoot
		logger, _ = logging.New(cfg)
	}
	code := guide.Main(hook.Stdin(), os.Stdout, pluginRoot, logger)
	logger.Close()
	os.Exit(code)
}
