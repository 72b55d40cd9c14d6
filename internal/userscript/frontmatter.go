// ABOUTME: YAML frontmatter parser for userscript .md files
// ABOUTME: Splits --- delimited metadata from the script body, CRLF tolerant

package userscript

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// parseFrontmatter splits content into typed YAML frontmatter and the
// remaining body. Content without an opening delimiter parses as a zero
// T with the body untouched; an opening delimiter without a closing one
// is an error.
func parseFrontmatter[T any](content string) (T, string, error) {
	var zero T

	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, delimiter+"\n") {
		return zero, content, nil
	}

	rest := normalized[len(delimiter)+1:]

	var meta, body string
	switch {
	case rest == delimiter || strings.HasPrefix(rest, delimiter+"\n"):
		// Empty frontmatter block.
		body = rest[len(delimiter):]
	default:
		before, after, ok := strings.Cut(rest, "\n"+delimiter)
		if !ok {
			return zero, "", errors.New("unterminated frontmatter: missing closing ---")
		}
		meta = before
		body = after
	}
	body = strings.TrimPrefix(body, "\n")

	var parsed T
	if err := yaml.Unmarshal([]byte(meta), &parsed); err != nil {
		return zero, "", fmt.Errorf("parse frontmatter YAML: %w", err)
	}
	return parsed, body, nil
}
