package domain

import "strings"

// Meal is one recipe returned by the search endpoint
type Meal struct {
	ID           string // Server-assigned identifier, unique per meal
	Name         string // Display title
	ThumbnailURL string // Image URL (may be unreachable)
	Instructions string // Full preparation text, never truncated here

	// Descriptive fields (optional, empty when the server omits them)
	Category    string
	Area        string
	Tags        []string
	YouTubeURL  string
	SourceURL   string
	Ingredients []Ingredient
}

// Ingredient pairs an ingredient name with its measure
type Ingredient struct {
	Name    string
	Measure string
}

// String formats the ingredient as "measure name", or just the name when no
// measure was given
func (i Ingredient) String() string {
	measure := strings.TrimSpace(i.Measure)
	if measure == "" {
		return i.Name
	}
	return measure + " " + i.Name
}

// Subtitle returns a short "Category · Area" line for list display
func (m Meal) Subtitle() string {
	var parts []string
	if m.Category != "" {
		parts = append(parts, m.Category)
	}
	if m.Area != "" {
		parts = append(parts, m.Area)
	}
	return strings.Join(parts, " · ")
}

// HasDetails returns true if the meal carries anything beyond the four
// required fields
func (m Meal) HasDetails() bool {
	return m.Category != "" || m.Area != "" || len(m.Tags) > 0 ||
		m.YouTubeURL != "" || m.SourceURL != "" || len(m.Ingredients) > 0
}
