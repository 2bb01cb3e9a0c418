package domain

// Sex is the biological sex used by the Mifflin-St Jeor equation
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ActivityLevel selects the TDEE multiplier
type ActivityLevel string

const (
	ActivitySedentary   ActivityLevel = "sedentary"
	ActivityLight       ActivityLevel = "light"
	ActivityModerate    ActivityLevel = "moderate"
	ActivityActive      ActivityLevel = "active"
	ActivityExtraActive ActivityLevel = "extra_active"
)

// BiometricProfile holds the user-entered calculator inputs in imperial units.
// Sex and ActivityLevel are matched case-insensitively.
type BiometricProfile struct {
	WeightLbs     float64 `json:"weight_lbs"`
	HeightFt      int     `json:"height_ft"`
	HeightIn      int     `json:"height_in"`
	AgeYears      int     `json:"age_years"`
	Sex           string  `json:"sex"`
	ActivityLevel string  `json:"activity_level"`
}

// CalorieGoals are the daily targets derived from maintenance calories
type CalorieGoals struct {
	Maintain float64 `json:"maintain"`
	Lose     float64 `json:"lose"`
	Gain     float64 `json:"gain"`
}

// ActivityOption describes one selectable activity level
type ActivityOption struct {
	Level       ActivityLevel `json:"level"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Multiplier  float64       `json:"multiplier"`
}
