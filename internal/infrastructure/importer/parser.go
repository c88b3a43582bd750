// Package importer parses uploaded spreadsheet exports (CSV) into trial
// balance rows.
package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrEmptyFile is returned when the file has no content
	ErrEmptyFile = errors.New("CSV file is empty")
	// ErrInvalidEncoding is returned when the file is not UTF-8
	ErrInvalidEncoding = errors.New("CSV file must be UTF-8 encoded")
	// ErrMissingHeader is returned when the file has no header row
	ErrMissingHeader = errors.New("CSV file missing header row")
	// ErrNoDataRows is returned when the header is followed by nothing
	ErrNoDataRows = errors.New("CSV file contains no data rows")
)

// Parser reads a CSV file whose first row is a header. Header names are
// normalized, so "Closing Balance (CY)" and "closing_balance_cy" match.
type Parser struct {
	delimiter rune
	reader    *csv.Reader
	headers   []string
	headerMap map[string]int
	line      int
}

// ParserOption is a functional option for Parser configuration
type ParserOption func(*Parser)

// WithDelimiter sets the field delimiter (default is comma)
func WithDelimiter(d rune) ParserOption {
	return func(p *Parser) {
		p.delimiter = d
	}
}

// NewParser prepares r for reading. A UTF-8 BOM is skipped.
func NewParser(r io.Reader, opts ...ParserOption) (*Parser, error) {
	p := &Parser{delimiter: ',', headerMap: make(map[string]int)}
	for _, opt := range opts {
		opt(p)
	}

	buf := bufio.NewReader(r)
	if bom, err := buf.Peek(3); err == nil && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		_, _ = buf.Discard(3)
	}

	head, err := buf.Peek(4096)
	if err != nil && err != io.EOF && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(head) == 0 {
		return nil, ErrEmptyFile
	}
	if !utf8.Valid(trimPartialRune(head)) {
		return nil, ErrInvalidEncoding
	}

	p.reader = csv.NewReader(buf)
	p.reader.Comma = p.delimiter
	p.reader.LazyQuotes = true
	p.reader.TrimLeadingSpace = true
	p.reader.FieldsPerRecord = -1
	return p, nil
}

// ReadHeader reads the header row
func (p *Parser) ReadHeader() error {
	record, err := p.reader.Read()
	if err == io.EOF {
		return ErrMissingHeader
	}
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}
	p.line = 1

	p.headers = make([]string, len(record))
	for i, h := range record {
		key := NormalizeHeader(h)
		p.headers[i] = key
		if _, dup := p.headerMap[key]; !dup && key != "" {
			p.headerMap[key] = i
		}
	}
	if len(p.headerMap) == 0 {
		return ErrMissingHeader
	}
	return nil
}

// Lookup returns the column index of the first header in names that is present
func (p *Parser) Lookup(names ...string) (int, bool) {
	for _, n := range names {
		if i, ok := p.headerMap[NormalizeHeader(n)]; ok {
			return i, true
		}
	}
	return -1, false
}

// Row is one data line of the file
type Row struct {
	Line   int
	Fields []string
}

// Get returns the trimmed field at index i, or "" when the row is short or i < 0
func (r *Row) Get(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return strings.TrimSpace(r.Fields[i])
}

// IsEmpty reports whether every field is blank
func (r *Row) IsEmpty() bool {
	for _, f := range r.Fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// ReadRow returns the next row or io.EOF
func (p *Parser) ReadRow() (*Row, error) {
	record, err := p.reader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	p.line++
	if err != nil {
		return nil, fmt.Errorf("error reading line %d: %w", p.line, err)
	}
	return &Row{Line: p.line, Fields: record}, nil
}

// NormalizeHeader lowercases a header and drops everything but letters and digits
func NormalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// trimPartialRune drops a multi-byte rune cut off at the end of a peeked buffer
func trimPartialRune(b []byte) []byte {
	for i := 0; i < utf8.UTFMax && len(b) > 0; i++ {
		if utf8.Valid(b) {
			return b
		}
		b = b[:len(b)-1]
	}
	return b
}

// Headers returns the normalized header names in file order
func (p *Parser) Headers() []string {
	return p.headers
}
