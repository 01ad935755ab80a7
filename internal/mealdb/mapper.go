package mealdb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmcdole/mealfinder/internal/domain"
)

// MissingFieldError reports a meal object without one of the required fields
type MissingFieldError struct {
	Index int    // Position of the meal in the response list
	Field string // JSON field name
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("meal %d is missing required field %q", e.Index, e.Field)
}

// MapMeals converts TheMealDB meal objects to domain meals, keeping server
// order. A nil input (no matches) maps to an empty, non-nil slice. If any
// object lacks a required field the whole list is rejected.
func MapMeals(dtos []MealDTO) ([]domain.Meal, error) {
	meals := make([]domain.Meal, 0, len(dtos))
	for i, dto := range dtos {
		meal, err := mapMeal(i, dto)
		if err != nil {
			return nil, err
		}
		meals = append(meals, meal)
	}
	return meals, nil
}

// mapMeal converts a single meal object
func mapMeal(index int, dto MealDTO) (domain.Meal, error) {
	if dto == nil {
		return domain.Meal{}, &MissingFieldError{Index: index, Field: fieldID}
	}
	for _, field := range requiredFields {
		if dto[field] == nil {
			return domain.Meal{}, &MissingFieldError{Index: index, Field: field}
		}
	}

	return domain.Meal{
		ID:           *dto[fieldID],
		Name:         *dto[fieldName],
		ThumbnailURL: *dto[fieldThumb],
		Instructions: *dto[fieldInstructions],
		Category:     dto.optional(fieldCategory),
		Area:         dto.optional(fieldArea),
		Tags:         splitTags(dto.optional(fieldTags)),
		YouTubeURL:   dto.optional(fieldYouTube),
		SourceURL:    dto.optional(fieldSource),
		Ingredients:  mapIngredients(dto),
	}, nil
}

// optional returns the trimmed value of key, or "" when absent or null
func (d MealDTO) optional(key string) string {
	if v := d[key]; v != nil {
		return strings.TrimSpace(*v)
	}
	return ""
}

// mapIngredients collects strIngredientN/strMeasureN pairs, skipping blanks
func mapIngredients(dto MealDTO) []domain.Ingredient {
	var ingredients []domain.Ingredient
	for n := 1; n <= maxIngredients; n++ {
		suffix := strconv.Itoa(n)
		name := dto.optional(ingredientPrefix + suffix)
		if name == "" {
			continue
		}
		ingredients = append(ingredients, domain.Ingredient{
			Name:    name,
			Measure: dto.optional(measurePrefix + suffix),
		})
	}
	return ingredients
}

// splitTags turns "Soup,Warming, Vegan" into ["Soup", "Warming", "Vegan"]
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
