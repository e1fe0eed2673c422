// Package annotation parses aspect-annotation files into span records.
//
// Both the gold standard and prediction files share one line format: six or
// more tab-separated fields per record,
//
//	docID \t category \t term \t start \t end \t sentiment
//
// where start and end are character offsets into the review text. The term
// field is carried by the corpus format but ignored by scoring.
package annotation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrFormat indicates a malformed annotation record: too few fields or
// non-integer offsets.
var ErrFormat = errors.New("annotation: malformed record")

// Span is a single aspect annotation: a character-offset interval in one
// document, labelled with a category and a sentiment.
type Span struct {
	DocID     string
	Start     int
	End       int
	Category  string
	Sentiment string
}

// Field positions in a record line.
const (
	fieldDocID = iota
	fieldCategory
	fieldTerm // unused by scoring
	fieldStart
	fieldEnd
	fieldSentiment

	minFields = 6
)

// parseSpan parses one record line. lineno is 1-based and used only for
// error reporting.
func parseSpan(line string, lineno int) (Span, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < minFields {
		return Span{}, fmt.Errorf("%w: line %d: expected %d tab-separated fields, got %d",
			ErrFormat, lineno, minFields, len(fields))
	}

	start, err := strconv.Atoi(fields[fieldStart])
	if err != nil {
		return Span{}, fmt.Errorf("%w: line %d: start offset %q is not an integer",
			ErrFormat, lineno, fields[fieldStart])
	}
	end, err := strconv.Atoi(fields[fieldEnd])
	if err != nil {
		return Span{}, fmt.Errorf("%w: line %d: end offset %q is not an integer",
			ErrFormat, lineno, fields[fieldEnd])
	}

	return Span{
		DocID:     fields[fieldDocID],
		Start:     start,
		End:       end,
		Category:  fields[fieldCategory],
		Sentiment: fields[fieldSentiment],
	}, nil
}

// ParsePredictions reads prediction records in file order.
func ParsePredictions(r io.Reader) ([]Span, error) {
	var spans []Span

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		span, err := parseSpan(trimLine(scanner.Text()), lineno)
		if err != nil {
			return nil, err
		}
		spans = append(spans, span)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning predictions: %w", err)
	}

	return spans, nil
}

// LoadPredictions reads prediction records from a file.
func LoadPredictions(path string) ([]Span, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening predictions file: %w", err)
	}
	defer func() { _ = f.Close() }()

	spans, err := ParsePredictions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spans, nil
}

// ParseLines reads raw label lines for review-level scoring. Each line is an
// opaque record; no field structure is enforced.
func ParseLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, trimLine(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning labels: %w", err)
	}

	return lines, nil
}

// LoadLines reads raw label lines from a file.
func LoadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening labels file: %w", err)
	}
	defer func() { _ = f.Close() }()

	lines, err := ParseLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// trimLine strips a trailing carriage return left behind by CRLF input.
// bufio.Scanner already strips the newline itself.
func trimLine(line string) string {
	return strings.TrimSuffix(line, "\r")
}
