package hook

// EventSessionStart is the hookEventName of the session-start hook.
const EventSessionStart = "SessionStart"

// SessionStartOutput is the JSON the host expects from a SessionStart hook.
type SessionStartOutput struct {
	SystemMessage      string          `json:"systemMessage,omitempty"`
	HookSpecificOutput SessionSpecific `json:"hookSpecificOutput"`
}

// SessionSpecific carries the context injected into the new session.
type SessionSpecific struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext"`
}

// NewSessionStartOutput fills in the event name.
func NewSessionStartOutput(systemMessage, context string) SessionStartOutput {
	return SessionStartOutput{
		SystemMessage: systemMessage,
		HookSpecificOutput: SessionSpecific{
			HookEventName:     EventSessionStart,
			AdditionalContext: context,
		},
	}
}
