package contacts

import (
	"slices"
	"strings"
)

// Display derives the list shown to the user: contacts matching term, ordered
// by name. The input slice is never modified.
func Display(items []Contact, term string, ascending bool) []Contact {
	return Sort(Filter(items, term), ascending)
}

// Filter keeps the contacts whose nombre, correo or etiqueta contains term,
// ignoring case. An empty term keeps everything.
func Filter(items []Contact, term string) []Contact {
	needle := strings.ToLower(term)
	out := make([]Contact, 0, len(items))
	for _, c := range items {
		if Matches(c, needle) {
			out = append(out, c)
		}
	}
	return out
}

// Matches reports whether c matches an already lower-cased search term.
func Matches(c Contact, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Nombre), needle) ||
		strings.Contains(strings.ToLower(c.Correo), needle) ||
		strings.Contains(strings.ToLower(c.Etiqueta), needle)
}

// Sort returns a copy of items ordered by lower-cased nombre. Equal names keep
// their relative order in both directions.
func Sort(items []Contact, ascending bool) []Contact {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b Contact) int {
		cmp := strings.Compare(strings.ToLower(a.Nombre), strings.ToLower(b.Nombre))
		if !ascending {
			cmp = -cmp
		}
		return cmp
	})
	return out
}

// IndexByID returns the position of the contact with id, or -1.
func IndexByID(items []Contact, id string) int {
	return slices.IndexFunc(items, func(c Contact) bool { return c.ID == id })
}
