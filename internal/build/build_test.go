package build

import (
	"strings"
	"testing"

	"github.com/kingrea/dream-team/internal/hook"
)

func input(t *testing.T, raw string) hook.Input {
	t.Helper()
	return hook.ReadInput(strings.NewReader(raw))
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantResult string
		wantText   []string
	}{
		{
			name:       "empty-object",
			raw:        `{}`,
			wantResult: hook.ResultContinue,
			wantText:   []string{"No tasks to validate."},
		},
		{
			name:       "empty-list",
			raw:        `{"tasks":[]}`,
			wantResult: hook.ResultContinue,
			wantText:   []string{"No tasks to validate."},
		},
		{
			name:       "malformed-stdin",
			raw:        `{"tasks": [`,
			wantResult: hook.ResultContinue,
			wantText:   []string{"No tasks to validate."},
		},
		{
			name:       "all-completed",
			raw:        `{"tasks":[{"id":"1","subject":"Write tests","status":"completed"},{"id":"2","subject":"Ship","status":"completed"}]}`,
			wantResult: hook.ResultContinue,
			wantText:   []string{"All 2 tasks completed."},
		},
		{
			name:       "some-incomplete",
			raw:        `{"tasks":[{"id":"1","subject":"Write tests","status":"completed"},{"id":"2","subject":"Fix lint","status":"in_progress"},{"id":3,"subject":"Deploy","status":"pending"}]}`,
			wantResult: hook.ResultBlock,
			wantText: []string{
				"VALIDATION FAILED: 2 task(s) are not completed.",
				"  - [in_progress] Fix lint (id: 2)",
				"  - [pending] Deploy (id: 3)",
				"ACTION REQUIRED: Complete all remaining tasks before stopping.",
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			verdict, err := Handle(input(t, test.raw))
			if err != nil {
				t.Fatalf("Handle returned error: %v", err)
			}
			if verdict.Result != test.wantResult {
				t.Fatalf("result = %q, want %q (%s)", verdict.Result, test.wantResult, verdict.Text())
			}
			for _, want := range test.wantText {
				if !strings.Contains(verdict.Text(), want) {
					t.Fatalf("text %q missing %q", verdict.Text(), want)
				}
			}
		})
	}
}

func TestBlockReasonOmitsCompletedTasks(t *testing.T) {
	verdict := Validate([]Task{
		{ID: "1", Subject: "Done thing", Status: StatusCompleted},
		{ID: "2", Subject: "Open thing", Status: "pending"},
	})
	if strings.Contains(verdict.Reason, "Done thing") {
		t.Fatalf("reason lists a completed task: %s", verdict.Reason)
	}
	if !strings.Contains(verdict.Reason, "Open thing") {
		t.Fatalf("reason misses the incomplete task: %s", verdict.Reason)
	}
}

func TestHandleWrongShapeFailsOpenThroughRunner(t *testing.T) {
	if _, err := Handle(input(t, `{"tasks":5}`)); err == nil {
		t.Fatalf("expected a decode error for a non-array tasks field")
	}
	var out strings.Builder
	code := hook.Main(strings.NewReader(`{"tasks":{"id":1}}`), &out, Handle)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out.String(), `"result":"continue"`) || !strings.Contains(out.String(), "Validation error (allowing through)") {
		t.Fatalf("output = %s", out.String())
	}
}

func TestIncompleteTreatsMissingStatusAsOpen(t *testing.T) {
	verdict, err := Handle(input(t, `{"tasks":[{"id":"7","subject":"No status"}]}`))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if !verdict.IsBlock() {
		t.Fatalf("expected block, got %+v", verdict)
	}
	if verdict.ExitCode() != 1 {
		t.Fatalf("exit code = %d, want 1", verdict.ExitCode())
	}
}

func TestHandleNonObjectTasks(t *testing.T) {
	verdict, err := Handle(input(t, `{"tasks":[1]}`))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if !verdict.IsBlock() || !strings.Contains(verdict.Reason, "1 task(s) are not completed") {
		t.Fatalf("scalar task should block as incomplete, got %+v", verdict)
	}

	verdict, err = Handle(input(t, `{"tasks":["x",{"id":"2","subject":"Done","status":"completed"}]}`))
	if err != nil || !verdict.IsBlock() {
		t.Fatalf("string task should block, got (%+v, %v)", verdict, err)
	}
}

func TestHandleNullTaskFailsOpen(t *testing.T) {
	if _, err := Handle(input(t, `{"tasks":[{"id":"1","subject":"a","status":"pending"},null]}`)); err == nil {
		t.Fatalf("expected an error for a null task")
	}
	var out strings.Builder
	code := hook.Main(strings.NewReader(`{"tasks":[null]}`), &out, Handle)
	if code != 0 || !strings.Contains(out.String(), "Validation error (allowing through): build: task 0 is null") {
		t.Fatalf("code=%d output=%s", code, out.String())
	}
}
