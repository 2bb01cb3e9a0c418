package usecase

import (
	"strings"

	"github.com/dishlens/backend/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Unit conversion factors
const (
	poundsToKg    = 0.453592
	inchesToCm    = 2.54
	inchesPerFoot = 12
)

// activityLevels is the multiplier table in display order
var activityLevels = []struct {
	level       domain.ActivityLevel
	multiplier  float64
	description string
}{
	{domain.ActivitySedentary, 1.2, "little/no exercise"},
	{domain.ActivityLight, 1.375, "light exercise 1-3 days/week"},
	{domain.ActivityModerate, 1.55, "moderate exercise 3-5 days/week"},
	{domain.ActivityActive, 1.725, "hard exercise 6-7 days/week"},
	{domain.ActivityExtraActive, 1.9, "very hard exercise/physical job"},
}

var validSexes = []domain.Sex{domain.SexMale, domain.SexFemale}

// CalorieCalculator computes maintenance calories from a validated profile.
// It is immutable once constructed.
type CalorieCalculator struct {
	weightKg      float64
	heightCm      float64
	ageYears      int
	sex           domain.Sex
	activityLevel domain.ActivityLevel
	multiplier    float64
}

// NewCalorieCalculator validates the profile and converts it to metric units.
// Fields are checked in a fixed order and the first failure is returned as a
// *domain.ValidationError.
func NewCalorieCalculator(p domain.BiometricProfile) (*CalorieCalculator, error) {
	if !(p.WeightLbs > 0) {
		return nil, domain.NewValidationError("weight_lbs", "Weight must be a positive number.")
	}
	if p.HeightFt < 0 {
		return nil, domain.NewValidationError("height_ft", "Height (feet) must be a non-negative integer.")
	}
	if p.HeightIn < 0 || p.HeightIn >= inchesPerFoot {
		return nil, domain.NewValidationError("height_in",
			"Height (inches) must be an integer between 0 and %d.", inchesPerFoot-1)
	}
	if p.AgeYears <= 0 {
		return nil, domain.NewValidationError("age_years", "Age must be a positive integer.")
	}

	sex, ok := parseSex(p.Sex)
	if !ok {
		return nil, domain.NewValidationError("sex", "Invalid sex. Choose from: %s.", joinSexes())
	}

	level, multiplier, ok := parseActivityLevel(p.ActivityLevel)
	if !ok {
		return nil, domain.NewValidationError("activity_level",
			"Invalid activity level. Choose from: %s.", joinActivityLevels())
	}

	totalInches := p.HeightFt*inchesPerFoot + p.HeightIn

	return &CalorieCalculator{
		weightKg:      p.WeightLbs * poundsToKg,
		heightCm:      float64(totalInches) * inchesToCm,
		ageYears:      p.AgeYears,
		sex:           sex,
		activityLevel: level,
		multiplier:    multiplier,
	}, nil
}

func (c *CalorieCalculator) WeightKg() float64 { return c.weightKg }

func (c *CalorieCalculator) HeightCm() float64 { return c.heightCm }

func (c *CalorieCalculator) AgeYears() int { return c.ageYears }

func (c *CalorieCalculator) Sex() domain.Sex { return c.sex }

func (c *CalorieCalculator) ActivityLevel() domain.ActivityLevel { return c.activityLevel }

// BMR returns the basal metabolic rate (Mifflin-St Jeor) in kcal/day
func (c *CalorieCalculator) BMR() float64 {
	bmr := 10*c.weightKg + 6.25*c.heightCm - 5*float64(c.ageYears)
	if c.sex == domain.SexMale {
		return bmr + 5
	}
	return bmr - 161
}

// MaintenanceCalories returns the TDEE: BMR scaled by the activity multiplier
func (c *CalorieCalculator) MaintenanceCalories() float64 {
	return c.BMR() * c.multiplier
}

// Goals derives maintain/lose/gain targets, delta kcal below and above maintenance
func (c *CalorieCalculator) Goals(delta float64) domain.CalorieGoals {
	maintenance := c.MaintenanceCalories()
	return domain.CalorieGoals{
		Maintain: maintenance,
		Lose:     maintenance - delta,
		Gain:     maintenance + delta,
	}
}

// ActivityOptions lists the selectable activity levels in display order
func ActivityOptions() []domain.ActivityOption {
	titleCaser := cases.Title(language.English)
	options := make([]domain.ActivityOption, 0, len(activityLevels))
	for _, a := range activityLevels {
		label := titleCaser.String(strings.ReplaceAll(string(a.level), "_", " "))
		options = append(options, domain.ActivityOption{
			Level:       a.level,
			Label:       label,
			Description: label + " (" + a.description + ")",
			Multiplier:  a.multiplier,
		})
	}
	return options
}

// SexOptions lists the accepted sex values
func SexOptions() []domain.Sex {
	return append([]domain.Sex(nil), validSexes...)
}

func parseSex(s string) (domain.Sex, bool) {
	lower := domain.Sex(strings.ToLower(s))
	for _, valid := range validSexes {
		if lower == valid {
			return valid, true
		}
	}
	return "", false
}

func parseActivityLevel(s string) (domain.ActivityLevel, float64, bool) {
	lower := domain.ActivityLevel(strings.ToLower(s))
	for _, a := range activityLevels {
		if lower == a.level {
			return a.level, a.multiplier, true
		}
	}
	return "", 0, false
}

func joinSexes() string {
	names := make([]string, len(validSexes))
	for i, s := range validSexes {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func joinActivityLevels() string {
	names := make([]string, len(activityLevels))
	for i, a := range activityLevels {
		names[i] = string(a.level)
	}
	return strings.Join(names, ", ")
}
