// Package csvimport turns an uploaded CSV payload into articles.
//
// The payload is one article per line, "title";"content", separated by semicolons. It may be encoded in UTF-8 or
// Windows-1251. Lines are split before they are parsed, so quoted fields cannot span lines. A malformed line is
// reported and skipped; the remaining lines are still imported.
package csvimport

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
)

const (
	Separator = ';'
	Quote     = '"'
)

var (
	ErrDecode        = errors.New("payload is neither UTF-8 nor Windows-1251")
	ErrMissingFields = errors.New("a row needs a title and a content field")
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Row is a parsed line. Line is 1-based.
type Row struct {
	Line    int
	Title   string
	Content string
}

// RowError describes a line that did not become an article.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

type Result struct {
	Created int
	Skipped []RowError
}

// Decode returns raw as text, trying UTF-8 first and Windows-1251 second.
func Decode(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, bom)
	if utf8.Valid(raw) {
		return string(raw), nil
	}

	text, err := charmap.Windows1251.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrDecode, err)
	}
	// 0x98 has no mapping in Windows-1251 and is decoded as the replacement character.
	if bytes.ContainsRune(text, utf8.RuneError) {
		return "", ErrDecode
	}
	return string(text), nil
}

// Parse splits text into lines and parses each one on its own. Blank lines are ignored; lines that cannot be
// parsed or that have fewer than two fields are returned as errors.
func Parse(text string) (rows []Row, skipped []RowError) {
	for i, line := range strings.Split(text, "\n") {
		n := i + 1
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields, err := parseLine(line)
		if err != nil {
			skipped = append(skipped, RowError{Line: n, Err: err})
			continue
		}
		if len(fields) < 2 {
			skipped = append(skipped, RowError{Line: n, Err: ErrMissingFields})
			continue
		}

		rows = append(rows, Row{
			Line:    n,
			Title:   fields[0],
			Content: fields[1],
		})
	}
	return
}

func parseLine(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = Separator
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	fields, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	return fields, err
}

// Import decodes raw, parses it and calls create once per row. A failing row is recorded in the result and
// does not stop the import; every row that create accepted stays created. Only a decoding failure is returned
// as an error, together with an empty result.
func Import(ctx context.Context, raw []byte, create func(context.Context, Row) error) (Result, error) {
	text, err := Decode(raw)
	if err != nil {
		return Result{}, err
	}

	rows, skipped := Parse(text)
	result := Result{Skipped: skipped}
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := create(ctx, row); err != nil {
			log.Debug().Int("line", row.Line).Err(err).Msg("skipping csv row")
			result.Skipped = append(result.Skipped, RowError{Line: row.Line, Err: err})
			continue
		}
		result.Created++
	}
	return result, nil
}
