package usecase

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dishlens/backend/internal/domain"
	"github.com/dlclark/regexp2"
)

// singleStepMinLength is the length above which an unsplittable text is kept as one step
const singleStepMinLength = 20

// stepBoundaryRegex matches the text between two steps:
//
//	a comma, newline or period, then optional whitespace, then an uppercase letter or digit
//	whitespace right after a period
//	a hyphen with optional whitespace around it
//
// Alternatives are tried in order at each position, so the leftmost boundary wins.
var stepBoundaryRegex = func() *regexp2.Regexp {
	re := regexp2.MustCompile(`[,\n.]\s*(?=[A-Z0-9])|(?<=\.)\s+|\s*-\s*`, regexp2.None)
	re.MatchTimeout = time.Second
	return re
}()

// SplitInstructions turns a raw instructions value into ordered, trimmed,
// non-empty steps. Lists are coerced element-wise; strings are split on step
// boundaries. recognized is false when the value is neither a string nor a list.
func SplitInstructions(raw domain.RawValue) (steps []string, recognized bool) {
	switch raw.Kind() {
	case domain.KindString:
		return splitInstructionText(raw.Str()), true
	case domain.KindList:
		return coerceStrings(raw.Items()), true
	case domain.KindAbsent:
		return []string{}, true
	case domain.KindNumber, domain.KindObject, domain.KindOther:
		return []string{}, false
	default:
		return []string{}, false
	}
}

// splitInstructionText drops every boundary and keeps the trimmed text between them.
// A text longer than singleStepMinLength runes that yields no step is kept whole.
func splitInstructionText(text string) []string {
	// regexp2 reports match positions in runes
	runes := []rune(text)
	steps := []string{}

	start := 0
	m, err := stepBoundaryRegex.FindStringMatch(text)
	for err == nil && m != nil {
		steps = appendStep(steps, string(runes[start:m.Index]))
		start = m.Index + m.Length
		m, err = stepBoundaryRegex.FindNextMatch(m)
	}
	steps = appendStep(steps, string(runes[start:]))

	if len(steps) == 0 && utf8.RuneCountInString(text) > singleStepMinLength {
		steps = appendStep(steps, text)
	}
	return steps
}

func appendStep(steps []string, step string) []string {
	if s := strings.TrimSpace(step); s != "" {
		return append(steps, s)
	}
	return steps
}
