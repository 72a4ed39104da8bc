package dotenv

// Entry is one line of the document body. It is one of *KeyValue, Comment,
// or Blank.
type Entry interface {
	isEntry()
}

// KeyValue is a KEY=VALUE line with an optional inline comment.
type KeyValue struct {
	Key   string
	Value string
	// Comment is nil when the line has no inline comment.
	Comment *string
}

// Comment is a full comment line after the first key, kept verbatim
// including the leading # and any indentation.
type Comment string

// Blank is an empty line after the first key.
type Blank struct{}

func (*KeyValue) isEntry() {}
func (Comment) isEntry()   {}
func (Blank) isEntry()     {}

// HasComment reports whether the entry carries an inline comment.
func (kv *KeyValue) HasComment() bool {
	return kv.Comment != nil
}

func stringPtr(s string) *string {
	return &s
}
