package annotation

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Document holds one document's gold spans in file-appearance order.
//
// Order is significant: the matching policy resolves duplicate start offsets
// to the first span carrying that offset, so spans are never sorted or
// deduplicated. The first-occurrence lookup is precomputed instead of
// re-scanning the list on every probe.
type Document struct {
	spans        []Span
	firstByStart map[int]int // start offset → index of first span with it
}

// append adds a span, recording its start offset on first sight.
func (d *Document) append(s Span) {
	if _, seen := d.firstByStart[s.Start]; !seen {
		d.firstByStart[s.Start] = len(d.spans)
	}
	d.spans = append(d.spans, s)
}

// Spans returns the document's gold spans in file order. The returned slice
// must not be modified.
func (d *Document) Spans() []Span {
	return d.spans
}

// FirstWithStart returns the index of the first span (in file order) whose
// start offset equals start, and whether any such span exists.
func (d *Document) FirstWithStart(start int) (int, bool) {
	i, ok := d.firstByStart[start]
	return i, ok
}

// GoldSet is the parsed gold standard: a document-keyed collection of
// ordered span lists. Immutable once parsed.
type GoldSet struct {
	docs map[string]*Document
	size int
}

// Doc returns the gold spans for a document ID.
func (g *GoldSet) Doc(id string) (*Document, bool) {
	d, ok := g.docs[id]
	return d, ok
}

// Size returns the total number of gold spans across all documents.
func (g *GoldSet) Size() int {
	return g.size
}

// Docs returns the number of distinct documents in the gold standard.
func (g *GoldSet) Docs() int {
	return len(g.docs)
}

// ParseGold reads the gold standard, preserving file order within each
// document. Document entries are created on first sight.
func ParseGold(r io.Reader) (*GoldSet, error) {
	gold := &GoldSet{docs: make(map[string]*Document)}

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		span, err := parseSpan(trimLine(scanner.Text()), lineno)
		if err != nil {
			return nil, err
		}

		doc, ok := gold.docs[span.DocID]
		if !ok {
			doc = &Document{firstByStart: make(map[int]int)}
			gold.docs[span.DocID] = doc
		}
		doc.append(span)
		gold.size++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning gold standard: %w", err)
	}

	return gold, nil
}

// LoadGold reads the gold standard from a file.
func LoadGold(path string) (*GoldSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening gold file: %w", err)
	}
	defer func() { _ = f.Close() }()

	gold, err := ParseGold(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return gold, nil
}
