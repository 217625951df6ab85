package contracts

import (
	"fmt"
	"strings"
	"time"

	"github.com/kingrea/dream-team/internal/hook"
	"github.com/kingrea/dream-team/internal/specs"
)

// ValidateSections checks the newest fresh spec in dir against the contract
// for its declared mode.
func ValidateSections(dir, ext string, now time.Time) (hook.Verdict, error) {
	newest, ok, err := specs.Newest(dir, ext, now)
	if err != nil {
		return hook.Verdict{}, err
	}
	if !ok {
		return NoRecentSpec(dir), nil
	}
	report, err := CheckSectionsFile(newest.Path)
	if err != nil {
		return hook.Verdict{}, err
	}
	return report.Verdict(), nil
}

// NoRecentSpec is the verdict when dir holds no fresh spec.
func NoRecentSpec(dir string) hook.Verdict {
	return hook.Block(fmt.Sprintf("VALIDATION FAILED: No recent spec file found in %s/.\n\n", dir) +
		fmt.Sprintf("ACTION REQUIRED: Create a spec file in %s/ before completing.", dir))
}

// Verdict converts the report into the hook verdict.
func (r *SectionReport) Verdict() hook.Verdict {
	if !r.HasMode() {
		return hook.Block(fmt.Sprintf("VALIDATION FAILED: Spec file \"%s\" has no mode: field in frontmatter.\n\n", r.Path) +
			"ACTION REQUIRED: Add a frontmatter block with mode: sequential|delegated|team.")
	}
	if len(r.Missing) == 0 {
		return hook.Continue(fmt.Sprintf("Spec \"%s\" has all %d required sections for mode \"%s\"", r.Path, len(r.Required()), r.Mode))
	}
	listing := make([]string, 0, len(r.Missing))
	for _, section := range r.Missing {
		listing = append(listing, "  - "+section)
	}
	return hook.Block(fmt.Sprintf("VALIDATION FAILED: Spec \"%s\" (mode: %s) is missing %d required section(s).\n\n", r.Path, r.Mode, len(r.Missing)) +
		"MISSING SECTIONS:\n" + strings.Join(listing, "\n") + "\n\n" +
		fmt.Sprintf("ACTION REQUIRED: Add the missing sections to \"%s\". Do not stop until all sections are present.", r.Path))
}
