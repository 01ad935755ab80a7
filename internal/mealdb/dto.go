package mealdb

// SearchResponse is the body of /search.php.
// Meals is nil when the server sends "meals": null (no matches).
type SearchResponse struct {
	Meals []MealDTO `json:"meals"`
}

// MealDTO holds one meal object as sent by TheMealDB. Every value the API
// returns is a string or null, and ingredient keys are numbered
// (strIngredient1..strIngredient20), so the object is kept as a map.
type MealDTO map[string]*string

// Field names in a meal object
const (
	fieldID           = "idMeal"
	fieldName         = "strMeal"
	fieldThumb        = "strMealThumb"
	fieldInstructions = "strInstructions"
	fieldCategory     = "strCategory"
	fieldArea         = "strArea"
	fieldTags         = "strTags"
	fieldYouTube      = "strYoutube"
	fieldSource       = "strSource"

	ingredientPrefix = "strIngredient"
	measurePrefix    = "strMeasure"
	maxIngredients   = 20
)

// requiredFields lists the fields every meal must carry, in check order
var requiredFields = []string{fieldID, fieldName, fieldThumb, fieldInstructions}
