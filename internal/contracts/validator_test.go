package contracts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var (
	sequentialBody = []string{
		"## Task Description", "A task",
		"## Objective", "An objective",
		"## Relevant Files", "Some files",
		"## Step by Step Tasks", "Some tasks",
		"## Documentation Requirements", "Some docs",
		"## Acceptance Criteria", "Some criteria",
		"## Validation Commands", "Some commands",
	}
	delegatedExtras = []string{"## Team Members", "builder, tester", "## Review Policy", "Policy"}
	teamExtras      = []string{"## Team Configuration", "Config", "## Review Policy", "Policy"}
)

func specText(mode string, sections ...[]string) string {
	lines := []string{"---", "mode: " + mode, "---"}
	for _, block := range sections {
		lines = append(lines, block...)
	}
	return strings.Join(lines, "\n")
}

func without(lines []string, header string) []string {
	var out []string
	for _, line := range lines {
		if line != header {
			out = append(out, line)
		}
	}
	return out
}

func writeSpec(t *testing.T, dir, name, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	return path
}

func TestRequiredSections(t *testing.T) {
	tests := []struct {
		mode string
		want int
		has  []string
		not  []string
	}{
		{mode: "sequential", want: 7, not: []string{"## Team Members", "## Review Policy"}},
		{mode: "delegated", want: 9, has: []string{"## Team Members", "## Review Policy"}, not: []string{"## Team Configuration"}},
		{mode: "team", want: 9, has: []string{"## Team Configuration", "## Review Policy"}, not: []string{"## Team Members"}},
		{mode: "parallel", want: 7},
	}
	for _, test := range tests {
		t.Run(test.mode, func(t *testing.T) {
			got := RequiredSections(test.mode)
			if len(got) != test.want {
				t.Fatalf("len = %d, want %d: %v", len(got), test.want, got)
			}
			joined := strings.Join(got, "|")
			for _, section := range test.has {
				if !strings.Contains(joined, section) {
					t.Fatalf("missing %s in %v", section, got)
				}
			}
			for _, section := range test.not {
				if strings.Contains(joined, section) {
					t.Fatalf("unexpected %s in %v", section, got)
				}
			}
		})
	}
}

func TestRequiredSectionsReturnsCopy(t *testing.T) {
	first := RequiredSections("team")
	first[0] = "mutated"
	if RequiredSections("team")[0] != "## Task Description" {
		t.Fatalf("contract table was mutated through a returned slice")
	}
}

func TestModeKnown(t *testing.T) {
	for _, mode := range Modes() {
		if !mode.Known() {
			t.Fatalf("%s should be known", mode)
		}
	}
	if Mode("parallel").Known() {
		t.Fatalf("parallel should not be known")
	}
	if got := ContractForMode("parallel").Mode; got != ModeSequential {
		t.Fatalf("fallback mode = %s", got)
	}
}

func TestCheckSections(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantValid   bool
		wantMissing []string
	}{
		{name: "valid-sequential", content: specText("sequential", sequentialBody), wantValid: true},
		{
			name:        "sequential-missing-acceptance",
			content:     specText("sequential", without(sequentialBody, "## Acceptance Criteria")),
			wantMissing: []string{"## Acceptance Criteria"},
		},
		{
			name:        "delegated-missing-team-members",
			content:     specText("delegated", sequentialBody, []string{"## Review Policy", "Policy"}),
			wantMissing: []string{"## Team Members"},
		},
		{name: "valid-delegated", content: specText("delegated", sequentialBody, delegatedExtras), wantValid: true},
		{name: "team-without-team-members", content: specText("team", sequentialBody, teamExtras), wantValid: true},
		{name: "team-with-team-members", content: specText("team", sequentialBody, []string{"## Team Members", "Optional"}, teamExtras), wantValid: true},
		{
			name:        "team-missing-configuration",
			content:     specText("team", sequentialBody, []string{"## Review Policy", "Policy"}),
			wantMissing: []string{"## Team Configuration"},
		},
		{name: "unknown-mode-uses-sequential", content: specText("parallel", sequentialBody), wantValid: true},
		{name: "header-in-prose-counts", content: specText("sequential", without(sequentialBody, "## Objective"), []string{"See ## Objective above."}), wantValid: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			report := CheckSections("specs/plan.md", test.content)
			if report.IsValid() != test.wantValid {
				t.Fatalf("valid=%v want=%v missing=%v", report.IsValid(), test.wantValid, report.Missing)
			}
			if strings.Join(report.Missing, ",") != strings.Join(test.wantMissing, ",") {
				t.Fatalf("missing = %v, want %v", report.Missing, test.wantMissing)
			}
		})
	}
}

func TestRemovingAnyBaseHeaderBlocksNamingIt(t *testing.T) {
	for _, header := range baseSections {
		t.Run(header, func(t *testing.T) {
			report := CheckSections("spec.md", specText("sequential", without(sequentialBody, header)))
			verdict := report.Verdict()
			if !verdict.IsBlock() {
				t.Fatalf("expected block without %s", header)
			}
			if len(report.Missing) != 1 || report.Missing[0] != header {
				t.Fatalf("missing = %v, want [%s]", report.Missing, header)
			}
			if !strings.Contains(verdict.Reason, "  - "+header) {
				t.Fatalf("reason does not list %s: %s", header, verdict.Reason)
			}
		})
	}
}

func TestValidateSections(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name      string
		setup     func(t *testing.T, dir string)
		wantBlock bool
		wantText  []string
	}{
		{
			name:      "missing-directory",
			setup:     func(t *testing.T, dir string) {},
			wantBlock: true,
			wantText:  []string{"No recent spec file found in", "ACTION REQUIRED: Create a spec file in"},
		},
		{
			name: "no-mode",
			setup: func(t *testing.T, dir string) {
				writeSpec(t, dir, "plan.md", strings.Join(sequentialBody, "\n"))
			},
			wantBlock: true,
			wantText:  []string{"has no mode: field in frontmatter", "mode: sequential|delegated|team"},
		},
		{
			name: "valid-sequential",
			setup: func(t *testing.T, dir string) {
				writeSpec(t, dir, "plan.md", specText("sequential", sequentialBody))
			},
			wantText: []string{"has all 7 required sections for mode \"sequential\""},
		},
		{
			name: "delegated-missing",
			setup: func(t *testing.T, dir string) {
				writeSpec(t, dir, "plan.md", specText("delegated", sequentialBody))
			},
			wantBlock: true,
			wantText: []string{
				"(mode: delegated) is missing 2 required section(s).",
				"MISSING SECTIONS:\n  - ## Team Members\n  - ## Review Policy",
				"Do not stop until all sections are present.",
			},
		},
		{
			name: "stale-spec-ignored",
			setup: func(t *testing.T, dir string) {
				path := writeSpec(t, dir, "plan.md", specText("sequential", sequentialBody))
				old := now.Add(-time.Hour)
				if err := os.Chtimes(path, old, old); err != nil {
					t.Fatal(err)
				}
			},
			wantBlock: true,
			wantText:  []string{"No recent spec file found in"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "specs")
			test.setup(t, dir)
			verdict, err := ValidateSections(dir, ".md", now)
			if err != nil {
				t.Fatalf("ValidateSections: %v", err)
			}
			if verdict.IsBlock() != test.wantBlock {
				t.Fatalf("block = %v, want %v (%s)", verdict.IsBlock(), test.wantBlock, verdict.Text())
			}
			for _, want := range test.wantText {
				if !strings.Contains(verdict.Text(), want) {
					t.Fatalf("text %q missing %q", verdict.Text(), want)
				}
			}
		})
	}
}

func TestValidateSectionsUsesNewestFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	older := writeSpec(t, dir, "a.md", specText("sequential", sequentialBody))
	past := now.Add(-2 * time.Minute)
	if err := os.Chtimes(older, past, past); err != nil {
		t.Fatal(err)
	}
	newer := writeSpec(t, dir, "b.md", specText("team", sequentialBody))
	if err := os.Chtimes(newer, now, now); err != nil {
		t.Fatal(err)
	}
	verdict, err := ValidateSections(dir, "md", now.Add(time.Second))
	if err != nil {
		t.Fatalf("ValidateSections: %v", err)
	}
	if !verdict.IsBlock() || !strings.Contains(verdict.Reason, newer) {
		t.Fatalf("expected block naming %s, got %+v", newer, verdict)
	}
}
