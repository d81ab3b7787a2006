package trend

import (
	"sort"
	"strings"
)

// Filter narrows the item set shown to the user.
type Filter struct {
	// MinScore keeps items whose score (absent treated as 0) is >= this value.
	MinScore int
	// Query is matched case-insensitively against title and niche.
	Query string
}

// Matches reports whether the item survives the filter.
func (f Filter) Matches(it Item) bool {
	if it.FilterScore() < f.MinScore {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(it.Title), q) ||
		strings.Contains(strings.ToLower(it.AINiche), q)
}

// Visible computes the filtered, ordered projection of items. Surviving items
// are ordered by descending score; an absent score compares as -1, below the
// lowest real score. Ties keep their input order. The input slice is never
// mutated.
func Visible(items []Item, f Filter) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if f.Matches(it) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortScore() > out[j].SortScore()
	})
	return out
}
