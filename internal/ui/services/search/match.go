package search

import (
	"strings"
	"unicode/utf8"

	"healthgrid/internal/ui/columns"
)

// Contains reports whether needle occurs in text, ignoring case.
// An empty needle matches everything.
func Contains(text, needle string) bool {
	if needle == "" {
		return true
	}
	start, _ := Index(text, needle)
	return start >= 0
}

// Index returns the byte span in text of the first occurrence of needle
// ignoring case, or -1, -1. The span may differ in length from needle when
// folding pairs runes of different widths.
func Index(text, needle string) (start, end int) {
	if needle == "" {
		return -1, -1
	}
	runes := utf8.RuneCountInString(needle)
	for i := range text {
		j := i
		for n := 0; n < runes; n++ {
			if j >= len(text) {
				return -1, -1
			}
			_, size := utf8.DecodeRuneInString(text[j:])
			j += size
		}
		if strings.EqualFold(text[i:j], needle) {
			return i, j
		}
	}
	return -1, -1
}

// Matches reports whether any column's rendered text contains term.
// Columns whose value is undefined never match.
func Matches[T any](row T, cols []columns.Column[T], term string) bool {
	if term == "" {
		return true
	}
	for _, col := range cols {
		text, ok := col.Text(row)
		if ok && Contains(text, term) {
			return true
		}
	}
	return false
}

// MatchesFilters reports whether row satisfies every filter.
// Filters naming unknown columns are ignored.
func MatchesFilters[T any](row T, cols []columns.Column[T], filters map[string]string) bool {
	for key, value := range filters {
		if value == "" {
			continue
		}
		i := columns.IndexOf(cols, key)
		if i < 0 {
			continue
		}
		text, ok := cols[i].Text(row)
		if !ok || !Contains(text, value) {
			return false
		}
	}
	return true
}

// Apply keeps the entries that match both the term and the filters,
// preserving their relative order
func Apply[T any](entries []columns.Entry[T], cols []columns.Column[T], term string, filters map[string]string) []columns.Entry[T] {
	out := make([]columns.Entry[T], 0, len(entries))
	for _, e := range entries {
		if Matches(e.Row, cols, term) && MatchesFilters(e.Row, cols, filters) {
			out = append(out, e)
		}
	}
	return out
}
