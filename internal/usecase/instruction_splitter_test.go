package usecase

import (
	"testing"

	"github.com/dishlens/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSplitInstructions_Text(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "sentences",
			input: "Mix flour. Add eggs. Bake 20 min.",
			want:  []string{"Mix flour", "Add eggs", "Bake 20 min."},
		},
		{
			name:  "newline before capital",
			input: "Boil pasta\nDrain well\nServe",
			want:  []string{"Boil pasta", "Drain well", "Serve"},
		},
		{
			name:  "comma before capital or digit",
			input: "Preheat oven, Grease pan, 2 eggs in bowl",
			want:  []string{"Preheat oven", "Grease pan", "2 eggs in bowl"},
		},
		{
			name:  "comma before lower case is kept",
			input: "Add salt, pepper and oil",
			want:  []string{"Add salt, pepper and oil"},
		},
		{
			name:  "whitespace after period",
			input: "Stir gently. then rest",
			want:  []string{"Stir gently.", "then rest"},
		},
		{
			name:  "hyphen separated",
			input: "chop onions - fry them -simmer",
			want:  []string{"chop onions", "fry them", "simmer"},
		},
		{
			name:  "decimal numbers split",
			input: "Add 1.5 cups water",
			want:  []string{"Add 1", "5 cups water"},
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "   Whisk eggs   ",
			want:  []string{"Whisk eggs"},
		},
		{
			name:  "only separators yields nothing",
			input: " - - ",
			want:  []string{},
		},
		{
			name:  "long text of separators kept as one step",
			input: "  ---------------------  ",
			want:  []string{"---------------------"},
		},
		{
			name:  "exactly twenty separators yields nothing",
			input: "--------------------",
			want:  []string{},
		},
		{
			name:  "lookbehind needs the period",
			input: "a.-B",
			want:  []string{"a.", "B"},
		},
		{
			name:  "decimal followed by comma",
			input: "Preheat to 350.5 degrees, then bake",
			want:  []string{"Preheat to 350", "5 degrees, then bake"},
		},
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
		{
			name:  "unicode text",
			input: "Sauté onions. Add crème fraîche",
			want:  []string{"Sauté onions", "Add crème fraîche"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, recognized := SplitInstructions(domain.StringValue(tt.input))
			assert.True(t, recognized)
			assert.Equal(t, tt.want, steps)
		})
	}
}

func TestSplitInstructions_List(t *testing.T) {
	t.Run("trims and drops empty entries", func(t *testing.T) {
		steps, recognized := SplitInstructions(domain.ListValue(
			domain.StringValue(" Step 1 "),
			domain.StringValue(""),
			domain.StringValue("Step 2"),
		))
		assert.True(t, recognized)
		assert.Equal(t, []string{"Step 1", "Step 2"}, steps)
	})

	t.Run("entries are not split further", func(t *testing.T) {
		steps, _ := SplitInstructions(domain.ListValue(
			domain.StringValue("Mix flour. Add eggs."),
		))
		assert.Equal(t, []string{"Mix flour. Add eggs."}, steps)
	})

	t.Run("non-string entries are coerced", func(t *testing.T) {
		steps, _ := SplitInstructions(domain.ListValue(
			domain.NumberValue(3),
			domain.AbsentValue(),
			domain.ListValue(domain.StringValue("nested")).WithRaw(`["nested"]`),
		))
		assert.Equal(t, []string{"3", `["nested"]`}, steps)
	})

	t.Run("null entries are dropped", func(t *testing.T) {
		steps, _ := SplitInstructions(domain.ListValue(
			domain.StringValue("Boil"),
			domain.AbsentValue(),
			domain.StringValue("Serve"),
		))
		assert.Equal(t, []string{"Boil", "Serve"}, steps)
	})

	t.Run("empty list", func(t *testing.T) {
		steps, recognized := SplitInstructions(domain.ListValue())
		assert.True(t, recognized)
		assert.Empty(t, steps)
	})
}

func TestSplitInstructions_UnexpectedTypes(t *testing.T) {
	tests := []struct {
		name  string
		input domain.RawValue
	}{
		{"number", domain.NumberValue(42)},
		{"object", domain.ObjectValue(map[string]domain.RawValue{"step": domain.StringValue("Boil")})},
		{"boolean", domain.OtherValue("false")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, recognized := SplitInstructions(tt.input)
			assert.False(t, recognized)
			assert.NotNil(t, steps)
			assert.Empty(t, steps)
		})
	}

	t.Run("absent is empty but recognized", func(t *testing.T) {
		steps, recognized := SplitInstructions(domain.AbsentValue())
		assert.True(t, recognized)
		assert.Empty(t, steps)
	})
}
