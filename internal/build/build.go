// Package build decides whether a build session may stop, based on the
// host's task snapshot.
package build

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kingrea/dream-team/internal/hook"
)

// StatusCompleted is the only status that counts as done.
const StatusCompleted = "completed"

const remediation = "ACTION REQUIRED: Complete all remaining tasks before stopping. " +
	"Use TaskList to check current status and TaskUpdate to mark tasks as completed."

// Task is one entry of the host's task list. The host owns it; it is only read here.
type Task struct {
	ID      Field `json:"id"`
	Subject Field `json:"subject"`
	Status  Field `json:"status"`
}

// Field is a task attribute rendered as text. Hosts send ids as strings or
// numbers, so any JSON scalar is accepted.
type Field string

// UnmarshalJSON accepts strings, numbers, booleans and null.
func (f *Field) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	switch v := value.(type) {
	case nil:
		*f = ""
	case string:
		*f = Field(v)
	case float64, bool:
		*f = Field(strings.TrimSpace(string(data)))
	default:
		return fmt.Errorf("task field must be a scalar, got %s", string(data))
	}
	return nil
}

// Completed reports whether the task is done.
func (t Task) Completed() bool {
	return string(t.Status) == StatusCompleted
}

// Incomplete returns the tasks that are not completed, in order.
func Incomplete(tasks []Task) []Task {
	var incomplete []Task
	for _, task := range tasks {
		if !task.Completed() {
			incomplete = append(incomplete, task)
		}
	}
	return incomplete
}

// Validate applies the stop policy to a task list.
func Validate(tasks []Task) hook.Verdict {
	if len(tasks) == 0 {
		return hook.Continue("No tasks to validate.")
	}
	incomplete := Incomplete(tasks)
	if len(incomplete) == 0 {
		return hook.Continue(fmt.Sprintf("All %d tasks completed.", len(tasks)))
	}
	listing := make([]string, 0, len(incomplete))
	for _, task := range incomplete {
		listing = append(listing, fmt.Sprintf("  - [%s] %s (id: %s)", task.Status, task.Subject, task.ID))
	}
	reason := fmt.Sprintf("VALIDATION FAILED: %d task(s) are not completed.\n\n", len(incomplete)) +
		"INCOMPLETE TASKS:\n" + strings.Join(listing, "\n") + "\n\n" +
		remediation
	return hook.Block(reason)
}

// Handle is the hook.Handler for the build-completion validator.
func Handle(in hook.Input) (hook.Verdict, error) {
	var items []json.RawMessage
	if _, err := in.Decode("tasks", &items); err != nil {
		return hook.Verdict{}, err
	}
	tasks, err := decodeTasks(items)
	if err != nil {
		return hook.Verdict{}, err
	}
	return Validate(tasks), nil
}

// decodeTasks turns each list element into a Task. A null element has no
// status to read and is an error. Any other non-object element is a task with
// no attributes, which is never completed.
func decodeTasks(items []json.RawMessage) ([]Task, error) {
	tasks := make([]Task, 0, len(items))
	for i, item := range items {
		item = bytes.TrimSpace(item)
		switch {
		case len(item) == 0 || string(item) == "null":
			return nil, fmt.Errorf("build: task %d is null", i)
		case item[0] != '{':
			tasks = append(tasks, Task{})
		default:
			var task Task
			if err := json.Unmarshal(item, &task); err != nil {
				return nil, fmt.Errorf("build: task %d: %w", i, err)
			}
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}
