package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/mealfinder/internal/domain"
)

// Match is a meal that passed the filter
type Match struct {
	Index        int         // Position in the unfiltered list
	Meal         domain.Meal // The meal itself
	MatchedRunes []int       // Rune positions in Meal.Name that matched (for highlighting)
}

// nameIndex implements sahilm/fuzzy.Source over pre-lowered meal names
type nameIndex struct {
	lowerNames []string
}

// String returns the lowercase name at index i (implements fuzzy.Source)
func (idx nameIndex) String(i int) string { return idx.lowerNames[i] }

// Len returns the number of names (implements fuzzy.Source)
func (idx nameIndex) Len() int { return len(idx.lowerNames) }

// Filter narrows meals to those whose name fuzzily matches query.
//
// Names are matched with sahilm/fuzzy first; names it rejects get a second
// chance through a diacritic-insensitive match, so "creme" finds "Crème
// Brûlée". Results keep the order of meals. A blank query matches
// everything.
func Filter(query string, meals []domain.Meal) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		all := make([]Match, len(meals))
		for i, m := range meals {
			all[i] = Match{Index: i, Meal: m}
		}
		return all
	}

	idx := nameIndex{lowerNames: make([]string, len(meals))}
	for i, m := range meals {
		idx.lowerNames[i] = strings.ToLower(m.Name)
	}

	matched := make(map[int][]int, len(meals))
	for _, found := range fuzzy.FindFrom(query, idx) {
		matched[found.Index] = byteToRuneIndexes(idx.lowerNames[found.Index], found.MatchedIndexes)
	}
	for i, m := range meals {
		if _, ok := matched[i]; ok {
			continue
		}
		if fuzzysearch.MatchNormalizedFold(query, m.Name) {
			matched[i] = nil
		}
	}

	results := make([]Match, 0, len(matched))
	for i, runes := range matched {
		results = append(results, Match{Index: i, Meal: meals[i], MatchedRunes: runes})
	}
	sort.Slice(results, func(a, b int) bool {
		return results[a].Index < results[b].Index
	})
	return results
}

// Meals unwraps matches back into a meal list
func Meals(matches []Match) []domain.Meal {
	meals := make([]domain.Meal, len(matches))
	for i, m := range matches {
		meals[i] = m.Meal
	}
	return meals
}

// byteToRuneIndexes converts byte offsets in s to rune offsets
func byteToRuneIndexes(s string, byteIdx []int) []int {
	if len(byteIdx) == 0 {
		return nil
	}
	want := make(map[int]bool, len(byteIdx))
	for _, b := range byteIdx {
		want[b] = true
	}
	runes := make([]int, 0, len(byteIdx))
	r := 0
	for b := 0; b < len(s); {
		if want[b] {
			runes = append(runes, r)
		}
		_, size := utf8.DecodeRuneInString(s[b:])
		b += size
		r++
	}
	return runes
}
