package notetool

import (
	"sort"
	"strings"
)

// NoteFilter is a function that accepts or rejects a note.
type NoteFilter func(n Note) bool

// MatchTitle creates a filter that accepts notes that contain the given text
// in their title or body (case-insensitive).
func MatchTitle(s string) NoteFilter {
	s = strings.ToLower(s)
	return func(n Note) bool {
		if strings.Contains(strings.ToLower(n.Title), s) {
			return true
		}
		return strings.Contains(strings.ToLower(n.Body), s)
	}
}

// Filtered returns the notes that are accepted by all of the given filters.
// The input slice is not modified.
func Filtered(notes []Note, filters ...NoteFilter) []Note {
	rv := make([]Note, 0, len(notes))
	for _, n := range notes {
		if accept(n, filters) {
			rv = append(rv, n)
		}
	}
	return rv
}

func accept(n Note, filters []NoteFilter) bool {
	for _, f := range filters {
		if !f(n) {
			return false
		}
	}
	return true
}

// SortNotes sorts the given notes in-place by the given sort rule.
func SortNotes(notes []Note, less func(one, other Note) bool) {
	sort.SliceStable(notes, func(i, j int) bool {
		return less(notes[i], notes[j])
	})
}

// ByID orders notes by their ID, oldest first.
func ByID(one, other Note) bool {
	return one.ID < other.ID
}

// ByTitle orders notes by title (case-insensitive), falling back on ID.
func ByTitle(one, other Note) bool {
	a := strings.ToLower(one.Title)
	b := strings.ToLower(other.Title)
	if a == b {
		return one.ID < other.ID
	}
	return a < b
}
