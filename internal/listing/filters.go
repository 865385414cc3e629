package listing

import (
	"math"
	"slices"
	"strings"
)

const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 100
)

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func DefaultPriceRange() PriceRange {
	return PriceRange{Min: DefaultMinPrice, Max: DefaultMaxPrice}
}

// Valid reports whether the range has finite bounds with 0 <= Min <= Max.
func (p PriceRange) Valid() bool {
	for _, v := range []float64{p.Min, p.Max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return p.Min >= 0 && p.Min <= p.Max
}

// Filters is the predicate state a listing page edits.
type Filters struct {
	Query    string     `json:"query"`
	Category string     `json:"category"`
	Levels   []string   `json:"levels"`
	Price    PriceRange `json:"price"`
}

func DefaultFilters() Filters {
	return Filters{Levels: []string{}, Price: DefaultPriceRange()}
}

func (f Filters) Clone() Filters {
	f.Levels = slices.Clone(f.Levels)
	if f.Levels == nil {
		f.Levels = []string{}
	}
	return f
}

// SearchTerm is the trimmed query; blank means no search.
func (f Filters) SearchTerm() string {
	return strings.TrimSpace(f.Query)
}

// Predicate turns the category, level and price state into one intersection.
// The query is not part of it: it selects the starting set instead.
func (f Filters) Predicate() Predicate {
	var category Predicate = NoFilter{}
	if f.Category != "" {
		category = BySlug{Slug: f.Category}
	}

	var levels Predicate = NoFilter{}
	if len(f.Levels) > 0 {
		levels = ByLevelSet{Levels: slices.Clone(f.Levels)}
	}

	return Intersect(category, levels, ByPriceRange{Min: f.Price.Min, Max: f.Price.Max})
}

// IsDefault reports whether no predicate narrows the listing.
func (f Filters) IsDefault() bool {
	return f.SearchTerm() == "" && f.Category == "" && len(f.Levels) == 0 && f.Price == DefaultPriceRange()
}

// toggle adds v when absent and removes it when present, keeping order.
func toggle(values []string, v string) []string {
	if i := slices.Index(values, v); i >= 0 {
		return slices.Delete(slices.Clone(values), i, i+1)
	}
	return append(slices.Clone(values), v)
}
