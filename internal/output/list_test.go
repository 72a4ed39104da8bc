package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/envq-labs/envq/internal/dotenv"
	"go.yaml.in/yaml/v3"
)

const sample = "# Header\n\nFOO=bar\nBAR=baz # has comment\nAPI_TOKEN=abcdefgh\n"

func parseSample(t *testing.T) *dotenv.Document {
	t.Helper()
	doc, err := dotenv.Parse(sample)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return doc
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestWriteKeysText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteKeys(&buf, parseSample(t).Keys(), FormatText); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "FOO\nBAR\nAPI_TOKEN\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriteKeysJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteKeys(&buf, nil, FormatJSON); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "[]\n" {
		t.Errorf("got %q, want %q", buf.String(), "[]\n")
	}
}

func TestWriteValuesText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteValues(&buf, Pairs(parseSample(t), false), FormatText); err != nil {
		t.Fatal(err)
	}
	want := "FOO=bar\nBAR=baz\nAPI_TOKEN=abcdefgh\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteValuesRedacted(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteValues(&buf, Pairs(parseSample(t), true), FormatText); err != nil {
		t.Fatal(err)
	}
	want := "FOO=bar\nBAR=baz\nAPI_TOKEN=abcd***\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteValuesJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteValues(&buf, Pairs(parseSample(t), false), FormatJSON); err != nil {
		t.Fatal(err)
	}

	var got []Pair
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(got))
	}
	if got[1].Key != "BAR" || got[1].Value != "baz" || got[1].Comment != "has comment" {
		t.Errorf("pair 1 = %+v", got[1])
	}
}

func TestWriteValuesYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteValues(&buf, Pairs(parseSample(t), false), FormatYAML); err != nil {
		t.Fatal(err)
	}

	var got []Pair
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML %q: %v", buf.String(), err)
	}
	if len(got) != 3 || got[0].Key != "FOO" || got[0].Value != "bar" {
		t.Errorf("pairs = %+v", got)
	}
}
