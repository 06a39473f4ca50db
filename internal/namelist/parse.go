package namelist

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a namelist document. Comments and blank lines are dropped;
// field values this package cannot interpret are kept verbatim.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}

	var cur *Section
	sc := bufio.NewScanner(r)
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(stripComment(sc.Text()))
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "&"):
			if cur != nil {
				return nil, fmt.Errorf("line %d: section %q not terminated before &%s", lineNo, cur.Name, line[1:])
			}
			name := strings.TrimSpace(line[1:])
			if name == "" {
				return nil, fmt.Errorf("line %d: empty section name", lineNo)
			}
			cur = &Section{Name: name}

		case line == "/":
			if cur == nil {
				return nil, fmt.Errorf("line %d: section terminator outside a section", lineNo)
			}
			doc.Sections = append(doc.Sections, cur)
			cur = nil

		default:
			if cur == nil {
				return nil, fmt.Errorf("line %d: field outside a section: %q", lineNo, line)
			}
			key, val, ok := strings.Cut(line, "=")
			if !ok {
				return nil, fmt.Errorf("line %d: expected key = value, got %q", lineNo, line)
			}
			key = strings.TrimSpace(key)
			if key == "" {
				return nil, fmt.Errorf("line %d: empty field key", lineNo)
			}
			cur.Entries = append(cur.Entries, Entry{Key: key, Value: parseValue(val)})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		return nil, fmt.Errorf("section %q not terminated at end of input", cur.Name)
	}

	return doc, nil
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(b []byte) (*Document, error) {
	return Parse(strings.NewReader(string(b)))
}

// stripComment removes a trailing ! comment, honoring quoted strings so a
// literal like 'bang!path' stays intact.
func stripComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '!':
			return line[:i]
		}
	}
	return line
}
