package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHeaderNotFound is returned when no header candidate was confirmed.
var ErrHeaderNotFound = errors.New("header row not found")

// DefaultHeaderKeywords are the words that mark a BOQ header cell.
var DefaultHeaderKeywords = []string{"description", "particulars", "qty", "quantity", "rate", "amount", "unit"}

// HeaderOptions tunes header detection.
type HeaderOptions struct {
	ScanRows   int      // only the first ScanRows rows are examined
	MinMatches int      // matching cells needed for a row to be a candidate
	Keywords   []string // lower-case keywords
}

// DefaultHeaderOptions returns the standard detection settings.
func DefaultHeaderOptions() HeaderOptions {
	return HeaderOptions{
		ScanRows:   20,
		MinMatches: 3,
		Keywords:   DefaultHeaderKeywords,
	}
}

// HeaderConfirmer decides whether a candidate row is the real header.
// It is called once per candidate, in row order.
type HeaderConfirmer interface {
	ConfirmHeader(row int, values []string) (bool, error)
}

// HeaderConfirmerFunc adapts a function to HeaderConfirmer.
type HeaderConfirmerFunc func(row int, values []string) (bool, error)

func (f HeaderConfirmerFunc) ConfirmHeader(row int, values []string) (bool, error) {
	return f(row, values)
}

// KeywordMatches counts the cells of row that contain at least one keyword.
// A cell contributes at most once no matter how many keywords it holds.
func KeywordMatches(row []string, keywords []string) int {
	matches := 0
	for _, v := range nonEmptyCells(row) {
		lower := strings.ToLower(v)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matches++
				break
			}
		}
	}
	return matches
}

// HeaderCandidates returns, in increasing order, the indices of rows within
// the scan window that reach the keyword threshold.
func HeaderCandidates(g Grid, opts HeaderOptions) []int {
	limit := opts.ScanRows
	if limit > len(g) {
		limit = len(g)
	}
	var candidates []int
	for i := 0; i < limit; i++ {
		if KeywordMatches(g[i], opts.Keywords) >= opts.MinMatches {
			candidates = append(candidates, i)
		}
	}
	return candidates
}

// LocateHeader offers each header candidate to the confirmer and returns the
// first confirmed row index. ErrHeaderNotFound is returned when there are no
// candidates or none was confirmed.
func LocateHeader(g Grid, confirmer HeaderConfirmer, opts HeaderOptions) (int, error) {
	for _, i := range HeaderCandidates(g, opts) {
		ok, err := confirmer.ConfirmHeader(i, nonEmptyCells(g[i]))
		if err != nil {
			return -1, fmt.Errorf("confirm header row %d: %w", i+1, err)
		}
		if ok {
			return i, nil
		}
	}
	return -1, ErrHeaderNotFound
}
