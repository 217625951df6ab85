package hook

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Input is the untyped JSON object the host sends on stdin.
type Input map[string]json.RawMessage

// ReadInput drains r and decodes it as a JSON object. Unreadable, empty or
// malformed input yields an empty Input.
func ReadInput(r io.Reader) Input {
	if r == nil {
		return Input{}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Input{}
	}
	var in Input
	if err := json.Unmarshal(data, &in); err != nil || in == nil {
		return Input{}
	}
	return in
}

// Decode unmarshals the value stored under key into v. It reports false when
// the key is absent or null, in which case v is left untouched.
func (in Input) Decode(key string, v any) (bool, error) {
	raw, ok := in[key]
	if !ok || isNull(raw) {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("hook: decode %s: %w", key, err)
	}
	return true, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}

// Stdin returns the process stdin when it is piped. An interactive terminal
// is never read, because nothing would ever close it.
func Stdin() io.Reader {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return strings.NewReader("")
	}
	return os.Stdin
}
