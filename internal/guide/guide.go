// Package guide builds the context injected when a session starts.
package guide

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kingrea/dream-team/internal/config"
	"github.com/kingrea/dream-team/internal/hook"
)

// UnknownVersion is reported when the plugin manifest cannot be read.
const UnknownVersion = "unknown"

const fallbackContext = "Dream Team plugin loaded (context injection error)."

const usage = `You have dream-team installed.

Dream Team provides structured planning and execution for development projects across three tiers.

**Workflow**: brainstorm → spec → build

**Step 1 — Brainstorm**:
- /dream-team:plan <prompt> — Interactive brainstorming session. Explores the codebase, asks clarifying questions, proposes approaches, validates the task breakdown. Produces no files. Recommends an execution tier at the end.

**Step 2 — Write Spec** (run after brainstorming):
- /dream-team:spec-sequential — Write a sequential spec. Cheapest. Single-session, tasks run one at a time.
- /dream-team:spec-delegated — Write a delegated spec. Dispatches specialized sub-agents (builder, researcher, etc.).
- /dream-team:spec-team — Write a team spec. Spawns separate Claude instances that collaborate. Most powerful, highest cost.

**Step 3 — Build**:
- /dream-team:build <path-to-spec> — Reads a spec file, detects mode from frontmatter, executes using the appropriate strategy.

**Ad-hoc Commands** (standalone, not part of the workflow):
- /dream-team:debug <issue> — Systematic debugging session. Reproduces issue, investigates root cause, applies targeted fix, verifies resolution. Uses Playwright MCP for frontend debugging when available.

**Available Agents** (for delegated and team modes):
- builder: writes code, implements features with TDD (opus)
- researcher: read-only exploration and context gathering (sonnet)
- architect: design decisions and structural recommendations (opus)
- reviewer: qualitative code review with severity categories (sonnet)
- security-reviewer: proactive security audit with structured checklist (opus)
- tester: writes and runs tests, TDD workflow (sonnet)
- validator: final mechanical pass/fail verification (haiku)
- debugger: systematic debugging, reproduces and fixes issues (opus)`

// Context returns the usage guide.
func Context() string {
	return usage
}

type manifest struct {
	Version string `json:"version"`
}

// Version reads the plugin version from the manifest under pluginRoot.
func Version(pluginRoot string) string {
	data, err := os.ReadFile(config.ManifestPath(pluginRoot))
	if err != nil {
		return UnknownVersion
	}
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return UnknownVersion
	}
	if version := strings.TrimSpace(m.Version); version != "" {
		return version
	}
	return UnknownVersion
}

// SystemMessage is the one-line notice shown to the user.
func SystemMessage(version string) string {
	return fmt.Sprintf("Dream Team v%s loaded — use /dream-team:plan to start", version)
}

// Build assembles the SessionStart response.
func Build(pluginRoot string) hook.SessionStartOutput {
	return hook.NewSessionStartOutput(SystemMessage(Version(pluginRoot)), Context())
}

// Fallback is written when Build cannot run.
func Fallback() hook.SessionStartOutput {
	return hook.NewSessionStartOutput("", fallbackContext)
}

// Main drains stdin, writes the SessionStart response and returns the exit
// code. It always returns 0.
func Main(stdin io.Reader, stdout io.Writer, pluginRoot string, logger hook.Logger) int {
	if stdin != nil {
		_, _ = io.Copy(io.Discard, stdin)
	}
	output := safeBuild(pluginRoot)
	if logger != nil {
		logger.Printf("session-start: %s", output.SystemMessage)
	}
	if err := hook.Write(stdout, output); err != nil {
		if logger != nil {
			logger.Printf("session-start: %v", err)
		}
	}
	return 0
}

func safeBuild(pluginRoot string) (output hook.SessionStartOutput) {
	defer func() {
		if recovered := recover(); recovered != nil {
			output = Fallback()
		}
	}()
	return Build(pluginRoot)
}
