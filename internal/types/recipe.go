package types

// Difficulty buckets derived from step/ingredient counts.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Nutrition holds per-serving macro amounts.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// RecipeIngredient is one ingredient of a normalized recipe.
type RecipeIngredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// InstructionStep is one ordered cooking step.
type InstructionStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

// NormalizedRecipe is the internal recipe shape produced by the search
// adapter and consumed by the eligibility filter. Nothing mutates it after
// creation; each request builds its own copies.
type NormalizedRecipe struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	Image             string             `json:"image"`
	SourceURL         string             `json:"source_url"`
	Nutrition         Nutrition          `json:"nutrition"`
	Ingredients       []RecipeIngredient `json:"ingredients"`
	Instructions      []InstructionStep  `json:"instructions"`
	VegetableServings int                `json:"vegetable_servings"`
	Difficulty        string             `json:"difficulty"`
}

// SearchConstraints are the query parameters sent to the recipe search
// provider. Zero values are omitted from the outbound request except
// MinProtein, which the adapter defaults.
type SearchConstraints struct {
	MaxCalories  int
	MinProtein   int
	Diet         string
	MaxCarbs     int
	Number       int
	Offset       int
	Query        string
	Intolerances []string
}
