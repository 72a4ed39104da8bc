package dotenv

import (
	"io"
	"strings"
)

// String renders the document. For a document that has not been edited the
// result equals the parsed input.
func (d *Document) String() string {
	var b strings.Builder
	d.render(&b)
	return b.String()
}

// WriteTo writes the rendered document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

func (d *Document) render(b *strings.Builder) {
	if len(d.header) > 0 {
		for _, line := range d.header {
			b.WriteString("# ")
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	for _, e := range d.entries {
		switch e := e.(type) {
		case *KeyValue:
			b.WriteString(e.Key)
			b.WriteByte('=')
			b.WriteString(e.Value)
			if e.Comment != nil {
				b.WriteString(" # ")
				b.WriteString(*e.Comment)
			}
		case Comment:
			b.WriteString(string(e))
		case Blank:
		}
		b.WriteByte('\n')
	}
}
