package contracts

import (
	"fmt"
	"os"
	"strings"

	"github.com/kingrea/dream-team/internal/artifact"
)

// SectionReport captures the section check of one spec file.
type SectionReport struct {
	Path     string
	Mode     string
	Contract Contract
	Missing  []string
	Content  string
}

// CheckSections resolves the mode declared in content and lists the
// required headers the text does not contain. Presence is plain substring
// containment, so a header quoted in prose also counts.
func CheckSections(path, content string) *SectionReport {
	report := &SectionReport{Path: path, Content: content}
	report.Mode = artifact.ExtractMode(content)
	if report.Mode == "" {
		return report
	}
	report.Contract = ContractForMode(report.Mode)
	for _, section := range report.Contract.RequiredSections {
		if !strings.Contains(content, section) {
			report.Missing = append(report.Missing, section)
		}
	}
	return report
}

// CheckSectionsFile reads path and runs CheckSections on it.
func CheckSectionsFile(path string) (*SectionReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec file: %w", err)
	}
	return CheckSections(path, string(data)), nil
}

// HasMode reports whether the spec declared a mode.
func (r *SectionReport) HasMode() bool {
	return r != nil && r.Mode != ""
}

// IsValid reports whether the spec declares a mode and has every required section.
func (r *SectionReport) IsValid() bool {
	return r.HasMode() && len(r.Missing) == 0
}

// Required returns the headers the spec's mode requires.
func (r *SectionReport) Required() []string {
	if r == nil {
		return nil
	}
	return r.Contract.RequiredSections
}

// IsMissing reports whether section was not found.
func (r *SectionReport) IsMissing(section string) bool {
	if r == nil {
		return false
	}
	for _, missing := range r.Missing {
		if missing == section {
			return true
		}
	}
	return false
}
