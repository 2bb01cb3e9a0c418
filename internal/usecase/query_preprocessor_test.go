package usecase

import (
	"strings"
	"testing"
)

func TestNewQueryPreprocessor(t *testing.T) {
	t.Run("creates preprocessor with debug logging disabled", func(t *testing.T) {
		p := NewQueryPreprocessor(false, nil)
		if p.enableDebugLogging {
			t.Error("expected debug logging to be disabled")
		}
		if p.logger == nil {
			t.Error("expected no-op logger when nil is passed")
		}
	})

	t.Run("creates preprocessor with debug logging enabled", func(t *testing.T) {
		p := NewQueryPreprocessor(true, nil)
		if !p.enableDebugLogging {
			t.Error("expected debug logging to be enabled")
		}
	})
}

func TestPreprocessQuery(t *testing.T) {
	p := NewQueryPreprocessor(false, nil)

	testCases := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "removes servings",
			query: "Chicken Curry, 2 servings",
			want:  "chicken curry",
		},
		{
			name:  "removes weight",
			query: "pad thai 500g",
			want:  "pad thai",
		},
		{
			name:  "removes calories",
			query: "greek salad 350 kcal",
			want:  "greek salad",
		},
		{
			name:  "removes serves count",
			query: "lasagna for 4",
			want:  "lasagna",
		},
		{
			name:  "removes noise words",
			query: "Easy Homemade Pancakes Recipe",
			want:  "pancakes",
		},
		{
			name:  "how to phrasing",
			query: "how to make mac and cheese",
			want:  "mac and cheese",
		},
		{
			name:  "keeps numbers in names",
			query: "7 Layer Dip",
			want:  "7 layer dip",
		},
		{
			name:  "normalizes whitespace",
			query: "  butter    chicken  ",
			want:  "butter chicken",
		},
		{
			name:  "only noise",
			query: "easy recipe",
			want:  "",
		},
		{
			name:  "empty input",
			query: "",
			want:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.PreprocessQuery(tc.query)
			if got != tc.want {
				t.Errorf("PreprocessQuery(%q) = %q, want %q", tc.query, got, tc.want)
			}
		})
	}
}

func TestPreprocessQuery_LongInput(t *testing.T) {
	p := NewQueryPreprocessor(false, nil)
	long := strings.Repeat("spicy noodle soup ", 20)

	got := p.PreprocessQuery(long)
	if len(got) > maxQueryLength {
		t.Errorf("len = %d, want <= %d", len(got), maxQueryLength)
	}
	if strings.HasSuffix(got, " ") {
		t.Errorf("query should be cut at a word boundary, got %q", got)
	}
}

func TestRemoveNoiseWords(t *testing.T) {
	p := NewQueryPreprocessor(false, nil)

	got := p.removeNoiseWords("Best, Authentic Ramen!")
	if got != "ramen!" {
		t.Errorf("removeNoiseWords() = %q, want %q", got, "ramen!")
	}
}

func TestCleanOrphanedPunctuation(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"chicken curry ,", "chicken curry "},
		{"- fried rice", " fried rice"},
		{"tofu ; stir fry", "tofu stir fry"},
		{"fish-and-chips", "fish-and-chips"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got := cleanOrphanedPunctuation(tc.input)
			if got != tc.want {
				t.Errorf("cleanOrphanedPunctuation(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
