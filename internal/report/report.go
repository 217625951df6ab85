// Package report renders validation results for people at a terminal.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/dream-team/internal/artifact"
	"github.com/kingrea/dream-team/internal/contracts"
	"github.com/kingrea/dream-team/internal/diagnostic"
	"github.com/kingrea/dream-team/internal/hook"
)

var (
	headStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4CAF50"))
	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

// Sections renders a section report with its frontmatter metadata. metaErr,
// when set, explains why no metadata could be shown.
func Sections(r *contracts.SectionReport, meta artifact.Metadata, metaErr error) string {
	if r == nil {
		return ""
	}
	var lines []string
	lines = append(lines, headStyle.Render(fmt.Sprintf("SPEC · %s", filepath.Base(r.Path))))
	lines = append(lines, field("path", r.Path))
	mode := r.Mode
	if mode == "" {
		mode = "(none, expected " + modeChoices() + ")"
	} else if !contracts.Mode(mode).Known() {
		mode = fmt.Sprintf("%s (treated as %s)", mode, r.Contract.Mode)
	}
	lines = append(lines, field("mode", mode))
	if metaErr != nil {
		lines = append(lines, field("frontmatter", metaErr.Error()))
	}
	for _, key := range meta.Keys() {
		if key == "mode" {
			continue
		}
		lines = append(lines, field(key, meta.String(key)))
	}
	if r.HasMode() {
		lines = append(lines, "")
		for _, section := range r.Required() {
			if r.IsMissing(section) {
				lines = append(lines, failStyle.Render("✗ "+section))
			} else {
				lines = append(lines, passStyle.Render("✓ "+section))
			}
		}
	}
	lines = append(lines, "", Verdict(r.Verdict()))
	return boxStyle.Render(strings.Join(lines, "\n"))
}

// Verdict renders a hook verdict as a one-line status plus its text.
func Verdict(v hook.Verdict) string {
	if v.IsBlock() {
		return failStyle.Render("BLOCK") + "\n" + v.Reason
	}
	return passStyle.Render("CONTINUE") + " " + v.Message
}

// Probe renders a diagnose report.
func Probe(r diagnostic.Report) string {
	var lines []string
	lines = append(lines, headStyle.Render(fmt.Sprintf("PROBE · %s", filepath.Base(r.Path))))
	lines = append(lines, field("log", r.Path))
	lines = append(lines, field("entries", fmt.Sprintf("%d (%d from hooks)", r.Total, r.HookEntries)))
	switch r.Status {
	case diagnostic.StatusFiring:
		lines = append(lines, passStyle.Render("PASS")+" Stop hooks declared by skills are firing.")
	default:
		lines = append(lines, failStyle.Render("UNKNOWN")+" no hook entries yet.")
		lines = append(lines,
			"  1. dream-team diagnose --clean",
			"  2. in a new session, invoke the skill that declares the stop-diagnostic hook",
			"  3. let the session finish, then run dream-team diagnose again",
		)
	}
	if len(r.Tail) > 0 {
		lines = append(lines, "", labelStyle.Render(strings.Join(r.Tail, "\n")))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func modeChoices() string {
	modes := contracts.Modes()
	names := make([]string, 0, len(modes))
	for _, mode := range modes {
		names = append(names, string(mode))
	}
	return strings.Join(names, "|")
}

func field(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}
