// Package diagnostic verifies that Stop hooks declared by skills actually
// fire. The probe hook appends one entry per run to a probe log; the
// operator command writes its own direct entry to prove the log works, then
// counts the entries the hook left behind.
package diagnostic

import (
	"fmt"
	"os"
	"strings"

	"github.com/kingrea/dream-team/internal/hook"
	"github.com/kingrea/dream-team/internal/logbook"
)

// ProbeMessage is the continue message of the probe hook.
const ProbeMessage = "Stop hook probe recorded."

// Entry sources.
const (
	SourceHook   = "hook"
	SourceDirect = "direct"
)

// Status summarises what the probe log shows.
type Status int

const (
	// StatusNotObserved means no hook entries: the skill was not invoked
	// yet, or its Stop hooks do not fire.
	StatusNotObserved Status = iota
	// StatusFiring means at least one hook entry exists.
	StatusFiring
)

func (s Status) String() string {
	if s == StatusFiring {
		return "firing"
	}
	return "not-observed"
}

// Record appends one probe entry describing the current process.
func Record(book *logbook.Logbook, source string) error {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "?"
	}
	return book.Info("stop hook fired (source %s, pid %d, cwd %s)", source, os.Getpid(), cwd)
}

// Handler returns the hook.Handler of the probe hook.
func Handler(book *logbook.Logbook) hook.Handler {
	return func(hook.Input) (hook.Verdict, error) {
		if book == nil {
			return hook.Verdict{}, fmt.Errorf("diagnostic: probe log unavailable")
		}
		if err := Record(book, SourceHook); err != nil {
			return hook.Verdict{}, err
		}
		return hook.Continue(ProbeMessage), nil
	}
}

// Report is the outcome of a diagnose run.
type Report struct {
	Path        string
	HookEntries int
	Total       int
	Status      Status
	Tail        []string
}

// Diagnose records a direct entry, fails if it did not land, and counts the
// entries written by the hook.
func Diagnose(book *logbook.Logbook, tail int) (Report, error) {
	if book == nil {
		return Report{}, fmt.Errorf("diagnostic: probe log unavailable")
	}
	before := book.Count()
	if err := Record(book, SourceDirect); err != nil {
		return Report{}, err
	}
	if book.Count() <= before {
		return Report{}, fmt.Errorf("diagnostic: probe entry was not written to %s", book.Path())
	}
	lines, total := book.Tail(tail)
	report := Report{Path: book.Path(), Total: total, Tail: lines}
	report.HookEntries = countSource(book, SourceHook)
	if report.HookEntries > 0 {
		report.Status = StatusFiring
	}
	return report, nil
}

func countSource(book *logbook.Logbook, source string) int {
	total := book.Count()
	lines, _ := book.Tail(total)
	marker := "(source " + source + ","
	count := 0
	for _, line := range lines {
		if strings.Contains(line, marker) {
			count++
		}
	}
	return count
}
