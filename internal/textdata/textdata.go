// Package textdata extracts sample sequences from free-form text.
package textdata

import (
	"errors"
	"regexp"
	"strconv"
)

// numberPattern matches an optional sign followed by digits with an optional
// decimal point: "-1", "+2.5", ".5", "3.".
var numberPattern = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)`)

// Parse returns the numbers found in text, left to right. Text without
// numbers yields an empty, non-nil slice.
func Parse(text string) []float64 {
	tokens := numberPattern.FindAllString(text, -1)
	out := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			continue
		}
		// Out-of-range tokens keep ParseFloat's ±Inf.
		out = append(out, v)
	}

	return out
}

// Extractor parses text with a single-slot cache: the most recent text and
// its samples are remembered, so repeated extraction of an unchanged text
// does not re-parse it. Callers get their own copy of the samples.
//
// An Extractor is not safe for concurrent use.
type Extractor struct {
	text    string
	samples []float64
	valid   bool

	hits, misses int
}

// Extract returns the numbers found in text.
func (e *Extractor) Extract(text string) []float64 {
	if !e.valid || e.text != text {
		e.text = text
		e.samples = Parse(text)
		e.valid = true
		e.misses++
	} else {
		e.hits++
	}

	out := make([]float64, len(e.samples))
	copy(out, e.samples)

	return out
}

// Stats returns the number of cache hits and misses so far.
func (e *Extractor) Stats() (hits, misses int) {
	return e.hits, e.misses
}

// Reset drops the cached entry.
func (e *Extractor) Reset() {
	*e = Extractor{}
}
