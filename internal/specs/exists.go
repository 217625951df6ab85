package specs

import (
	"fmt"
	"time"

	"github.com/kingrea/dream-team/internal/hook"
)

// ValidateExists blocks unless dir holds a fresh file with extension ext.
func ValidateExists(dir, ext string, now time.Time) (hook.Verdict, error) {
	newest, ok, err := Newest(dir, ext, now)
	if err != nil {
		return hook.Verdict{}, err
	}
	if ok {
		return hook.Continue(fmt.Sprintf("Spec file found: %s", newest.Path)), nil
	}
	reason := fmt.Sprintf("VALIDATION FAILED: No new spec file found in %s/ with extension %s.\n\n", dir, ext) +
		fmt.Sprintf("ACTION REQUIRED: Use the Write tool to create a spec file in the %s/ directory. ", dir) +
		"Do not stop until the spec file has been created."
	return hook.Block(reason), nil
}
