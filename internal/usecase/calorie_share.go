package usecase

import (
	"fmt"

	"github.com/dishlens/backend/internal/domain"
)

// DefaultDailyTarget is used when the user has not calculated maintenance calories
const DefaultDailyTarget = 2000.0

// Chart colors
const (
	colorDish      = "#EEA179"
	colorRemaining = "#a9a9a9"
	colorExceeding = "#D57D83"
	colorCarbs     = "#8ACC99"
)

// CalorieShare positions a dish against the daily target. target is the user's
// calculated maintenance calories; nil falls back to defaultTarget.
func CalorieShare(dishCalories float64, target *float64, defaultTarget float64) (*domain.CalorieShare, error) {
	if !(dishCalories > 0) {
		return nil, domain.ErrNoCalorieData
	}

	dailyTarget := defaultTarget
	usedDefault := true
	if target != nil {
		dailyTarget = *target
		usedDefault = false
	}
	if !(dailyTarget > 0) {
		return nil, fmt.Errorf("%w: %.0f", domain.ErrNonPositiveTarget, dailyTarget)
	}

	percent := dishCalories / dailyTarget * 100
	share := &domain.CalorieShare{
		DishCalories:      dishCalories,
		DailyTarget:       dailyTarget,
		Percent:           percent,
		ExceedsTarget:     dishCalories > dailyTarget,
		UsedDefaultTarget: usedDefault,
	}

	if share.ExceedsTarget {
		share.Slices = []domain.ChartSlice{
			{Label: "This Dish", Value: dishCalories, Color: colorExceeding, Text: fmt.Sprintf("%.1f%%", percent), Pull: 0.15},
		}
		return share, nil
	}

	share.Slices = []domain.ChartSlice{
		{Label: "This Dish", Value: dishCalories, Color: colorDish, Text: fmt.Sprintf("%.0f%%", percent), Pull: 0.1},
		{Label: "Remaining", Value: dailyTarget - dishCalories, Color: colorRemaining},
	}
	return share, nil
}

// macroColors are assigned by slice position, not by macro
var macroColors = []string{colorDish, colorCarbs, colorExceeding}

// MacroBreakdown returns the share of each macro with a positive gram amount,
// in protein, carbs, fat order. It is empty when no macro has grams.
func MacroBreakdown(dish domain.NormalizedDish) []domain.MacroSlice {
	candidates := []struct {
		label string
		grams float64
	}{
		{"Protein", dish.Protein.Grams},
		{"Carbs", dish.Carbs.Grams},
		{"Fat", dish.Fat.Grams},
	}

	total := 0.0
	for _, c := range candidates {
		if c.grams > 0 {
			total += c.grams
		}
	}

	slices := []domain.MacroSlice{}
	if total <= 0 {
		return slices
	}

	for _, c := range candidates {
		if c.grams <= 0 {
			continue
		}
		percent := c.grams / total * 100
		slices = append(slices, domain.MacroSlice{
			ChartSlice: domain.ChartSlice{
				Label: c.label,
				Value: c.grams,
				Color: macroColors[len(slices)],
				Text:  fmt.Sprintf("%s %.0f%%", c.label, percent),
			},
			Percent: percent,
		})
	}
	return slices
}
