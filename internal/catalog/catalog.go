// Package catalog implements the in-memory filter/sort engine shared by the
// museum and product listings. It operates on full collection scans; there is
// no server-side pagination.
package catalog

import (
	"sort"
	"strings"
)

type FilterKey string

const (
	FilterNone     FilterKey = ""
	FilterPrice    FilterKey = "price"    // price <= value
	FilterQuantity FilterKey = "quantity" // quantity >= value
	FilterRating   FilterKey = "rating"   // rating >= value
)

type SortKey string

const (
	SortNone   SortKey = ""
	SortName   SortKey = "name"   // ascending, lexicographic
	SortPrice  SortKey = "price"  // ascending
	SortRating SortKey = "rating" // descending
)

// Criteria is one listing query. Only one numeric filter is active at a time,
// selected by FilterBy.
type Criteria struct {
	Search   string
	FilterBy FilterKey
	Value    float64
	SortBy   SortKey
}

// Item is the neutral projection of a catalog entity. Key carries the
// caller's index into its own slice so results can be mapped back.
type Item struct {
	Key      int
	Name     string
	Fields   []string // text fields matched against Search
	Price    float64
	Quantity int
	Rating   float64
}

// Apply filters then sorts items according to c and returns the surviving
// subset in display order. The input slice is not modified.
func Apply(items []Item, c Criteria) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if matches(it, c) {
			out = append(out, it)
		}
	}

	switch c.SortBy {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Name < out[j].Name
		})
	case SortPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	}

	return out
}

func matches(it Item, c Criteria) bool {
	if term := strings.ToLower(strings.TrimSpace(c.Search)); term != "" {
		found := false
		for _, f := range it.Fields {
			if strings.Contains(strings.ToLower(f), term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	switch c.FilterBy {
	case FilterPrice:
		return it.Price <= c.Value
	case FilterQuantity:
		return it.Quantity >= int(c.Value)
	case FilterRating:
		return it.Rating >= c.Value
	}

	return true
}

// ParseFilterKey maps a query parameter to a FilterKey. Unknown values
// disable filtering, matching the permissive behavior of the listing UI.
func ParseFilterKey(s string) FilterKey {
	switch FilterKey(s) {
	case FilterPrice, FilterQuantity, FilterRating:
		return FilterKey(s)
	}

	return FilterNone
}

// ParseSortKey maps a query parameter to a SortKey.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortName, SortPrice, SortRating:
		return SortKey(s)
	}

	return SortNone
}
