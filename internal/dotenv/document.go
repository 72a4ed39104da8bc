package dotenv

import "strings"

// Document is a parsed .env file: a header block and the ordered entries
// that follow it. Lookups and in-place edits use the first entry with a
// matching key.
type Document struct {
	header  []string
	entries []Entry
}

// Keys returns every key in entry order.
func (d *Document) Keys() []string {
	var keys []string
	for _, e := range d.entries {
		if kv, ok := e.(*KeyValue); ok {
			keys = append(keys, kv.Key)
		}
	}
	return keys
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	return d.find(key) != nil
}

// Value returns the value of key.
func (d *Document) Value(key string) (string, bool) {
	kv := d.find(key)
	if kv == nil {
		return "", false
	}
	return kv.Value, true
}

// Comment returns the inline comment of key. It reports false both when the
// key is missing and when it has no comment; use Has to tell them apart.
func (d *Document) Comment(key string) (string, bool) {
	kv := d.find(key)
	if kv == nil || kv.Comment == nil {
		return "", false
	}
	return *kv.Comment, true
}

// Header returns the header lines joined with "\n" plus a trailing "\n".
func (d *Document) Header() (string, bool) {
	if len(d.header) == 0 {
		return "", false
	}
	return strings.Join(d.header, "\n") + "\n", true
}

// SetValue updates key in place, keeping its comment, or appends it with no
// comment when it does not exist.
func (d *Document) SetValue(key, value string) {
	if kv := d.find(key); kv != nil {
		kv.Value = value
		return
	}
	d.entries = append(d.entries, &KeyValue{Key: key, Value: value})
}

// SetComment sets the inline comment of key. It does nothing and returns
// false when the key is missing.
func (d *Document) SetComment(key, comment string) bool {
	kv := d.find(key)
	if kv == nil {
		return false
	}
	kv.Comment = stringPtr(comment)
	return true
}

// SetHeader replaces the header with the lines of text, verbatim.
func (d *Document) SetHeader(text string) {
	d.header = splitLines(text)
}

// DeleteKey removes every entry for key together with its comment.
func (d *Document) DeleteKey(key string) bool {
	kept := d.entries[:0]
	removed := false
	for _, e := range d.entries {
		if kv, ok := e.(*KeyValue); ok && kv.Key == key {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	clear(d.entries[len(kept):])
	d.entries = kept
	return removed
}

// DeleteComment clears the inline comment of key and leaves its value.
func (d *Document) DeleteComment(key string) bool {
	kv := d.find(key)
	if kv == nil {
		return false
	}
	kv.Comment = nil
	return true
}

// DeleteHeader empties the header.
func (d *Document) DeleteHeader() {
	d.header = nil
}

// Entries returns a copy of the entry list. Key-value entries are copied too,
// so edits to the result do not reach the document.
func (d *Document) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	for i, e := range d.entries {
		if kv, ok := e.(*KeyValue); ok {
			cp := *kv
			if kv.Comment != nil {
				cp.Comment = stringPtr(*kv.Comment)
			}
			e = &cp
		}
		out[i] = e
	}
	return out
}

// Len returns the number of entries, not counting the header.
func (d *Document) Len() int {
	return len(d.entries)
}

func (d *Document) find(key string) *KeyValue {
	for _, e := range d.entries {
		if kv, ok := e.(*KeyValue); ok && kv.Key == key {
			return kv
		}
	}
	return nil
}
