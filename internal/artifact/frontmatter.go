package artifact

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingFrontMatter indicates the document has no `---` fence line.
	ErrMissingFrontMatter = errors.New("artifact: missing frontmatter")
	// ErrMalformedFrontMatter indicates the opening fence was never closed.
	ErrMalformedFrontMatter = errors.New("artifact: malformed frontmatter")
)

const fence = "---"

var modeLine = regexp.MustCompile(`^mode:\s*(.+)$`)

// Block is the frontmatter section of a document.
type Block struct {
	// Lines holds the text between the fences.
	Lines []string
	// Closed is false when the document ends before a closing fence.
	Closed bool
	// Body is everything after the closing fence.
	Body string
}

// FindFrontMatter scans content line by line. The first line that is `---`
// once trimmed opens the block and the next one closes it. Lines before the
// opening fence are ignored.
func FindFrontMatter(content string) (Block, bool) {
	lines := strings.Split(normalizeNewlines(content), "\n")
	open := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != fence {
			continue
		}
		if open < 0 {
			open = i
			continue
		}
		return Block{
			Lines:  lines[open+1 : i],
			Closed: true,
			Body:   strings.Join(lines[i+1:], "\n"),
		}, true
	}
	if open < 0 {
		return Block{}, false
	}
	return Block{Lines: lines[open+1:]}, true
}

// ExtractMode returns the value of the first `mode:` line inside the
// frontmatter, trimmed. It returns "" when there is none.
func ExtractMode(content string) string {
	block, ok := FindFrontMatter(content)
	if !ok {
		return ""
	}
	for _, line := range block.Lines {
		if match := modeLine.FindStringSubmatch(line); match != nil {
			return strings.TrimSpace(match[1])
		}
	}
	return ""
}

// Metadata is the decoded frontmatter of a spec document.
type Metadata map[string]any

// Keys returns the metadata keys in sorted order.
func (m Metadata) Keys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// String renders one value for display.
func (m Metadata) String(key string) string {
	value, ok := m[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}

// ParseFrontMatter decodes the frontmatter block as YAML and returns it with
// the document body.
func ParseFrontMatter(content string) (Metadata, string, error) {
	block, ok := FindFrontMatter(content)
	if !ok {
		return nil, normalizeNewlines(content), ErrMissingFrontMatter
	}
	if !block.Closed {
		return nil, "", ErrMalformedFrontMatter
	}
	meta := Metadata{}
	if err := yaml.Unmarshal([]byte(strings.Join(block.Lines, "\n")), &meta); err != nil {
		return nil, "", fmt.Errorf("artifact: parse frontmatter: %w", err)
	}
	return meta, block.Body, nil
}

func normalizeNewlines(content string) string {
	return strings.ReplaceAll(content, "\r\n", "\n")
}
