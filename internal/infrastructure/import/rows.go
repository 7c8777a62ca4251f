package csvimport

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// Row represents one parsed CSV row with its 1-based position in the upload.
// The format is headerless: fields are addressed by fixed column index.
type Row struct {
	Number int
	Fields []string
}

// Field returns the field at the given column index, or "" when the row
// is shorter than expected
func (r *Row) Field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

// Len returns the number of fields in the row
func (r *Row) Len() int {
	return len(r.Fields)
}

// ParseRows splits raw upload bytes into rows of comma-separated fields.
// The format has no header row and no quoting rules: rows are newline
// delimited and fields are split on every comma. A trailing newline does
// not produce an extra row, but blank interior lines do count as rows so
// that error messages keep the uploader's line numbering.
func ParseRows(data []byte) ([]Row, error) {
	// Strip UTF-8 BOM (0xEF 0xBB 0xBF)
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}

	text := string(data)
	if text == "" {
		return nil, nil
	}

	// Normalize CRLF, drop the final empty element a trailing newline leaves
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	rows := make([]Row, 0, len(lines))
	for i, line := range lines {
		rows = append(rows, Row{
			Number: i + 1,
			Fields: strings.Split(line, ","),
		})
	}

	return rows, nil
}
