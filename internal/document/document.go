// Package document holds the read-only text that the viewer displays.
//
// A Document is loaded once and never mutated. Rows are addressed by
// zero-based index and rendered into display columns by Row.Render.
package document

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultText is the content of the built-in document shown when no file
// could be loaded.
const DefaultText = "Hello world!"

// Document is an ordered, immutable list of rows.
type Document struct {
	rows     []Row
	fileName string
}

// Option configures document loading.
type Option func(*options)

type options struct {
	tabWidth int
}

// WithTabWidth sets the tab stop interval used when rendering rows.
func WithTabWidth(n int) Option {
	return func(o *options) {
		o.tabWidth = n
	}
}

func buildOptions(opts []Option) options {
	o := options{tabWidth: DefaultTabWidth}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tabWidth < 1 {
		o.tabWidth = DefaultTabWidth
	}
	return o
}

// Open reads the file at path into a document named after the path.
// The returned error wraps the underlying OS error.
func Open(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	return OpenReader(path, f, opts...)
}

// OpenReader reads every line from r. Lines are split on '\n' and a
// trailing '\r' is dropped, so CRLF files load the same as LF files.
// A final newline does not add an empty row.
func OpenReader(name string, r io.Reader, opts ...Option) (*Document, error) {
	o := buildOptions(opts)
	doc := &Document{fileName: name}

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			doc.rows = append(doc.rows, NewRow(line, o.tabWidth))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read document %q: %w", name, err)
		}
	}
	return doc, nil
}

// New builds a document from in-memory lines.
func New(name string, lines []string, opts ...Option) *Document {
	o := buildOptions(opts)
	doc := &Document{
		rows:     make([]Row, len(lines)),
		fileName: name,
	}
	for i, line := range lines {
		doc.rows[i] = NewRow(line, o.tabWidth)
	}
	return doc
}

// Default returns the built-in single-row document. It has no file name.
func Default(opts ...Option) *Document {
	return New("", []string{DefaultText}, opts...)
}

// IsEmpty reports whether the document has no rows.
func (d *Document) IsEmpty() bool {
	return len(d.rows) == 0
}

// Len returns the number of rows.
func (d *Document) Len() int {
	return len(d.rows)
}

// Row returns the row at index i. The second result is false for any
// index outside [0, Len()).
func (d *Document) Row(i int) (Row, bool) {
	if i < 0 || i >= len(d.rows) {
		return Row{}, false
	}
	return d.rows[i], true
}

// FileName returns the name the document was loaded from, or "" for
// documents with no backing file.
func (d *Document) FileName() string {
	return d.fileName
}
