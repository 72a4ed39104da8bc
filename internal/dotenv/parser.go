package dotenv

import (
	"fmt"
	"io"
	"strings"
)

// Parse reads .env text into a Document.
//
// Before the first KEY=VALUE line only blank lines (dropped) and comment
// lines (collected into the header) are allowed. After it, every line must be
// blank, a comment, or KEY=VALUE. The first invalid line aborts the parse
// with a *ParseError.
func Parse(text string) (*Document, error) {
	doc := &Document{}
	foundFirstKey := false

	for i, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)

		if !foundFirstKey {
			switch {
			case trimmed == "":
				continue
			case strings.HasPrefix(trimmed, "#"):
				content := strings.TrimPrefix(trimmed, "#")
				content = strings.TrimPrefix(content, " ")
				doc.header = append(doc.header, content)
				continue
			}
			kv, ok := parseKeyValue(line)
			if !ok {
				return nil, &ParseError{Line: line, LineNumber: i + 1, BeforeFirstKey: true}
			}
			foundFirstKey = true
			doc.entries = append(doc.entries, kv)
			continue
		}

		entry, ok := parseLine(line)
		if !ok {
			return nil, &ParseError{Line: line, LineNumber: i + 1}
		}
		doc.entries = append(doc.entries, entry)
	}

	return doc, nil
}

// ParseReader reads all of r and parses it.
func ParseReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return Parse(string(data))
}

func parseLine(line string) (Entry, bool) {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		return Blank{}, true
	}
	if strings.HasPrefix(trimmed, "#") {
		return Comment(line), true
	}
	if kv, ok := parseKeyValue(line); ok {
		return kv, true
	}
	return nil, false
}

// parseKeyValue splits on the first '=' and then on the first '#' of the
// remainder. A '#' can therefore never be part of a value.
func parseKeyValue(line string) (*KeyValue, bool) {
	rawKey, rest, found := strings.Cut(line, "=")
	if !found {
		return nil, false
	}
	key := strings.TrimSpace(rawKey)
	if key == "" {
		return nil, false
	}

	kv := &KeyValue{Key: key}
	value, comment, hasHash := strings.Cut(rest, "#")
	kv.Value = strings.TrimSpace(value)
	if hasHash {
		if c := strings.TrimSpace(comment); c != "" {
			kv.Comment = stringPtr(c)
		}
	}
	return kv, true
}

// splitLines splits on "\n", drops a "\r" that precedes it, and does not
// produce an empty trailing line for a final terminator.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	last := len(lines) - 1
	if lines[last] == "" {
		lines = lines[:last]
		last = len(lines)
	}
	// A line without a terminator keeps its trailing \r.
	for i := 0; i < last; i++ {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}
