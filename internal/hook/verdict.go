package hook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const (
	// ResultContinue lets the host proceed.
	ResultContinue = "continue"
	// ResultBlock asks the host to keep the session going until the reason is addressed.
	ResultBlock = "block"

	allowThroughPrefix = "Validation error (allowing through): "
)

// Verdict is the outcome of a validator run.
type Verdict struct {
	Result  string
	Message string
	Reason  string
}

// Continue builds an allowing verdict.
func Continue(message string) Verdict {
	return Verdict{Result: ResultContinue, Message: message}
}

// Block builds a denying verdict.
func Block(reason string) Verdict {
	return Verdict{Result: ResultBlock, Reason: reason}
}

// AllowThrough converts an internal error into the fail-open verdict.
func AllowThrough(err error) Verdict {
	if err == nil {
		err = errors.New("unknown error")
	}
	return Continue(allowThroughPrefix + err.Error())
}

// IsBlock reports whether the verdict denies the host.
func (v Verdict) IsBlock() bool {
	return v.Result == ResultBlock
}

// Text returns the message or the reason, whichever the verdict carries.
func (v Verdict) Text() string {
	if v.IsBlock() {
		return v.Reason
	}
	return v.Message
}

// ExitCode maps the verdict onto the process exit status.
func (v Verdict) ExitCode() int {
	if v.IsBlock() {
		return 1
	}
	return 0
}

// Validate rejects verdicts that the host would not understand.
func (v Verdict) Validate() error {
	switch v.Result {
	case ResultContinue, ResultBlock:
		return nil
	case "":
		return errors.New("hook: verdict result is empty")
	default:
		return fmt.Errorf("hook: unknown verdict result %q", v.Result)
	}
}

type continueJSON struct {
	Result  string `json:"result"`
	Message string `json:"message"`
}

type blockJSON struct {
	Result string `json:"result"`
	Reason string `json:"reason"`
}

// MarshalJSON emits exactly {result, message} or {result, reason}.
func (v Verdict) MarshalJSON() ([]byte, error) {
	if v.IsBlock() {
		return marshal(blockJSON{Result: ResultBlock, Reason: v.Reason})
	}
	return marshal(continueJSON{Result: ResultContinue, Message: v.Message})
}

// Write encodes a single JSON value to w without a trailing newline.
func Write(w io.Writer, value any) error {
	data, err := marshal(value)
	if err != nil {
		return fmt.Errorf("hook: encode output: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("hook: write output: %w", err)
	}
	return nil
}

// marshal leaves HTML characters unescaped so placeholders like <prompt>
// stay readable in the host's transcript.
func marshal(value any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
