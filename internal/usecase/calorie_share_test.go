package usecase

import (
	"testing"

	"github.com/dishlens/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestCalorieShare(t *testing.T) {
	t.Run("within default target", func(t *testing.T) {
		share, err := CalorieShare(500, nil, DefaultDailyTarget)
		require.NoError(t, err)

		assert.Equal(t, 2000.0, share.DailyTarget)
		assert.True(t, share.UsedDefaultTarget)
		assert.False(t, share.ExceedsTarget)
		assert.Equal(t, 25.0, share.Percent)
		require.Len(t, share.Slices, 2)

		dish, remaining := share.Slices[0], share.Slices[1]
		assert.Equal(t, domain.ChartSlice{Label: "This Dish", Value: 500, Color: "#EEA179", Text: "25%", Pull: 0.1}, dish)
		assert.Equal(t, domain.ChartSlice{Label: "Remaining", Value: 1500, Color: "#a9a9a9"}, remaining)
	})

	t.Run("uses calculated target", func(t *testing.T) {
		share, err := CalorieShare(700, ptr(2800), DefaultDailyTarget)
		require.NoError(t, err)

		assert.False(t, share.UsedDefaultTarget)
		assert.Equal(t, 2800.0, share.DailyTarget)
		assert.Equal(t, "25%", share.Slices[0].Text)
	})

	t.Run("exactly at target keeps empty remainder", func(t *testing.T) {
		share, err := CalorieShare(2000, nil, DefaultDailyTarget)
		require.NoError(t, err)

		assert.False(t, share.ExceedsTarget)
		require.Len(t, share.Slices, 2)
		assert.Equal(t, 0.0, share.Slices[1].Value)
	})

	t.Run("exceeding target shows one slice", func(t *testing.T) {
		share, err := CalorieShare(2500, ptr(2000), DefaultDailyTarget)
		require.NoError(t, err)

		assert.True(t, share.ExceedsTarget)
		assert.Equal(t, []domain.ChartSlice{
			{Label: "This Dish", Value: 2500, Color: "#D57D83", Text: "125.0%", Pull: 0.15},
		}, share.Slices)
	})

	t.Run("no calorie data", func(t *testing.T) {
		_, err := CalorieShare(0, nil, DefaultDailyTarget)
		assert.ErrorIs(t, err, domain.ErrNoCalorieData)

		_, err = CalorieShare(-10, nil, DefaultDailyTarget)
		assert.ErrorIs(t, err, domain.ErrNoCalorieData)
	})

	t.Run("non-positive target", func(t *testing.T) {
		_, err := CalorieShare(500, ptr(0), DefaultDailyTarget)
		assert.ErrorIs(t, err, domain.ErrNonPositiveTarget)

		_, err = CalorieShare(500, nil, -1)
		assert.ErrorIs(t, err, domain.ErrNonPositiveTarget)
	})
}

func TestMacroBreakdown(t *testing.T) {
	valid := func(g float64) domain.MacroValue {
		return domain.MacroValue{Grams: g, Presence: domain.PresenceValid}
	}

	t.Run("all macros present", func(t *testing.T) {
		slices := MacroBreakdown(domain.NormalizedDish{
			Protein: valid(30),
			Carbs:   valid(50),
			Fat:     valid(20),
		})

		require.Len(t, slices, 3)
		assert.Equal(t, "Protein", slices[0].Label)
		assert.InDelta(t, 30.0, slices[0].Percent, 1e-9)
		assert.Equal(t, "Protein 30%", slices[0].Text)
		assert.Equal(t, "#EEA179", slices[0].Color)
		assert.Equal(t, "#8ACC99", slices[1].Color)
		assert.Equal(t, "#D57D83", slices[2].Color)
	})

	t.Run("colors follow position when a macro is missing", func(t *testing.T) {
		slices := MacroBreakdown(domain.NormalizedDish{
			Protein: domain.MacroValue{Presence: domain.PresenceAbsent},
			Carbs:   valid(10),
			Fat:     valid(30),
		})

		require.Len(t, slices, 2)
		assert.Equal(t, "Carbs", slices[0].Label)
		assert.Equal(t, "#EEA179", slices[0].Color)
		assert.Equal(t, 25.0, slices[0].Percent)
		assert.Equal(t, "Fat", slices[1].Label)
		assert.Equal(t, "#8ACC99", slices[1].Color)
	})

	t.Run("no grams yields empty chart", func(t *testing.T) {
		slices := MacroBreakdown(domain.NormalizedDish{Protein: valid(0)})
		assert.NotNil(t, slices)
		assert.Empty(t, slices)
	})
}
