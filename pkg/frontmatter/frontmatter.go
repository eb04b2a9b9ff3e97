// Package frontmatter parses YAML frontmatter headers from markdown files,
// such as the SKILL.md metadata block at the top of a skill directory.
package frontmatter

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseHeader parses only the frontmatter from the reader.
// It stops reading after the closing delimiter "---".
// The body is not consumed or returned.
// Returns nil if no frontmatter is found (silent success, matter remains empty).
func ParseHeader(r io.Reader, matter any) error {
	scanner := bufio.NewScanner(r)

	// Check first line
	if !scanner.Scan() {
		return scanner.Err()
	}
	line := strings.TrimSpace(scanner.Text())
	if line != "---" {
		// No frontmatter start delimiter
		return nil
	}

	var buf bytes.Buffer
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			// Found closing delimiter
			return yaml.Unmarshal(buf.Bytes(), matter)
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}

	return scanner.Err()
}
