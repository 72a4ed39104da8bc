package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/envq-labs/envq/internal/dotenv"
	"go.yaml.in/yaml/v3"
)

// Format selects how list results are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. An empty name means FormatText.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, or yaml)", name)
	}
}

// Pair is one key and its value as shown by `list values`.
type Pair struct {
	Key     string `json:"key" yaml:"key"`
	Value   string `json:"value" yaml:"value"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Pairs collects the key-value entries of doc in order. With redact set,
// values of sensitive keys are masked.
func Pairs(doc *dotenv.Document, redact bool) []Pair {
	pairs := []Pair{}
	for _, key := range doc.Keys() {
		value, _ := doc.Value(key)
		if redact {
			value = RedactValue(key, value)
		}
		comment, _ := doc.Comment(key)
		pairs = append(pairs, Pair{Key: key, Value: value, Comment: comment})
	}
	return pairs
}

// WriteKeys writes one key per line, or a JSON/YAML list of keys.
func WriteKeys(w io.Writer, keys []string, format Format) error {
	if keys == nil {
		keys = []string{}
	}
	switch format {
	case FormatJSON:
		return writeJSON(w, keys)
	case FormatYAML:
		return writeYAML(w, keys)
	}
	for _, key := range keys {
		if _, err := fmt.Fprintln(w, key); err != nil {
			return err
		}
	}
	return nil
}

// WriteValues writes KEY=value lines, or a JSON/YAML list of pairs. Comments
// only appear in the structured formats.
func WriteValues(w io.Writer, pairs []Pair, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, pairs)
	case FormatYAML:
		return writeYAML(w, pairs)
	}
	for _, p := range pairs {
		if _, err := fmt.Fprintf(w, "%s=%s\n", p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}
