package domain

// ChartSlice is one segment of a pie chart. Rendering is left to the client.
type ChartSlice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
	Text  string  `json:"text,omitempty"`
	Pull  float64 `json:"pull,omitempty"`
}

// CalorieShare positions one dish against a daily calorie target
type CalorieShare struct {
	DishCalories      float64      `json:"dishCalories"`
	DailyTarget       float64      `json:"dailyTarget"`
	Percent           float64      `json:"percent"`
	ExceedsTarget     bool         `json:"exceedsTarget"`
	UsedDefaultTarget bool         `json:"usedDefaultTarget"`
	Slices            []ChartSlice `json:"slices"`
}

// MacroSlice is a macronutrient share of a dish's total macro grams
type MacroSlice struct {
	ChartSlice
	Percent float64 `json:"percent"`
}
