package domain

import "fmt"

// Dataset field names
const (
	FieldDishName    = "dish_name"
	FieldCalories    = "calories"
	FieldCost        = "cost"
	FieldHealthyFlag = "healthy_flag"
	FieldMacros      = "macros"
	FieldIngredients = "ingredients"

	MacroProtein = "protein_g"
	MacroCarbs   = "carbs_g"
	MacroFat     = "fat_g"
)

// InstructionFields lists the fields that may hold cooking instructions, in lookup priority order.
var InstructionFields = []string{
	"cooking_instructions",
	"cookingInstructions",
	"instructions",
	"cooking_steps",
	"recipe_steps",
	"preparation",
}

// DishRecord is one entry of the dish dataset, keyed by dish_name.
type DishRecord struct {
	Name   string
	Fields map[string]RawValue
}

// NewDishRecord builds a record from decoded fields. It reports false when
// dish_name is missing or not a string.
func NewDishRecord(fields map[string]RawValue) (DishRecord, bool) {
	name := fields[FieldDishName]
	if name.Kind() != KindString {
		return DishRecord{}, false
	}
	return DishRecord{Name: name.Str(), Fields: fields}, true
}

// Get returns the raw value of field, absent when the record lacks it.
func (r DishRecord) Get(field string) RawValue {
	return r.Fields[field]
}

// Presence distinguishes why a normalized value is what it is.
type Presence string

const (
	PresenceAbsent  Presence = "absent"
	PresenceInvalid Presence = "invalid"
	PresenceValid   Presence = "valid"
)

// MacroValue is a coerced macronutrient amount in grams.
type MacroValue struct {
	Grams    float64  `json:"grams"`
	Presence Presence `json:"presence"`
	Numeric  bool     `json:"-"` // raw dataset value was a JSON number
}

// Display renders the amount as whole grams, or "N/A" when there is nothing to show.
// An explicit numeric zero renders as "0g".
func (m MacroValue) Display() string {
	if m.Grams > 0 || (m.Numeric && m.Grams == 0) {
		return fmt.Sprintf("%.0fg", m.Grams)
	}
	return "N/A"
}

// InstructionStatus summarizes what was found for a dish's cooking instructions.
type InstructionStatus string

const (
	InstructionsAvailable  InstructionStatus = "available"
	InstructionsUnparsable InstructionStatus = "unparsable"
	InstructionsMissing    InstructionStatus = "missing"
)

// NormalizedDish is the read-only view of a DishRecord used for display.
type NormalizedDish struct {
	Name                 string            `json:"dishName"`
	Calories             float64           `json:"calories"`
	CaloriesDisplay      string            `json:"caloriesDisplay"`
	Cost                 string            `json:"cost"`
	HealthyFlag          string            `json:"healthyFlag"`
	HasMacros            bool              `json:"hasMacros"`
	Protein              MacroValue        `json:"protein"`
	Carbs                MacroValue        `json:"carbs"`
	Fat                  MacroValue        `json:"fat"`
	Ingredients          []string          `json:"ingredients"`
	IngredientsAvailable bool              `json:"ingredientsAvailable"`
	Instructions         []string          `json:"instructions"`
	InstructionField     string            `json:"instructionField,omitempty"`
	InstructionStatus    InstructionStatus `json:"instructionStatus"`
	InstructionWarning   string            `json:"instructionWarning,omitempty"`
}

// IngredientLink pairs an ingredient with a grocery search page for it
type IngredientLink struct {
	Name    string `json:"name"`
	ShopURL string `json:"shopUrl"`
}

// DishMatch is a dish name ranked against a search query
type DishMatch struct {
	Name          string   `json:"dishName"`
	Score         float64  `json:"score"`
	MatchedTokens []string `json:"matchedTokens,omitempty"`
}
