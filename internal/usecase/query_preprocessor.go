package usecase

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

const maxQueryLength = 100

// QueryPreprocessor cleans free-text dish queries before they are scored
type QueryPreprocessor struct {
	enableDebugLogging bool
	logger             *zap.Logger
}

// Compiled regex patterns for query preprocessing
var (
	// Matches portion/quantity patterns like "2 servings", "500 g", "12 oz", "1.5 cups"
	portionPattern = regexp.MustCompile(`(?i)\b\d+\.?\d*\s*(servings?|portions?|pieces?|slices?|bowls?|plates?|cups?|oz|ounces?|lbs?|pounds?|kg|grams?|g|ml|kcal|calories|cal)\b`)

	// Matches "for 4", "serves 2", "x2"
	servesPattern = regexp.MustCompile(`(?i)\b(for|serves)\s+\d+\b|\bx\s*\d+\b`)

	// Multiple spaces cleanup
	multiSpacePattern = regexp.MustCompile(`\s+`)

	lonePunctuationPattern     = regexp.MustCompile(`\s+[,\-;:]+\s+`)
	trailingPunctuationPattern = regexp.MustCompile(`[,\-;:]+\s*$`)
	leadingPunctuationPattern  = regexp.MustCompile(`^\s*[,\-;:]+`)
)

// queryNoiseWords are descriptors people type that never appear in dish names
var queryNoiseWords = map[string]bool{
	"recipe":    true,
	"recipes":   true,
	"homemade":  true,
	"easy":      true,
	"quick":     true,
	"simple":    true,
	"best":      true,
	"delicious": true,
	"tasty":     true,
	"favorite":  true,
	"authentic": true,
	"how":       true,
	"to":        true,
	"make":      true,
	"cook":      true,
}

// NewQueryPreprocessor creates a new query preprocessor
func NewQueryPreprocessor(enableDebugLogging bool, logger *zap.Logger) *QueryPreprocessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueryPreprocessor{
		enableDebugLogging: enableDebugLogging,
		logger:             logger,
	}
}

// PreprocessQuery strips portion sizes, serving counts and noise words from a
// dish query and normalizes whitespace. The result is lower case.
func (p *QueryPreprocessor) PreprocessQuery(query string) string {
	if query == "" {
		return ""
	}

	cleaned := portionPattern.ReplaceAllString(query, " ")
	cleaned = servesPattern.ReplaceAllString(cleaned, " ")
	cleaned = p.removeNoiseWords(cleaned)
	cleaned = cleanOrphanedPunctuation(cleaned)
	cleaned = strings.TrimSpace(multiSpacePattern.ReplaceAllString(cleaned, " "))

	if len(cleaned) > maxQueryLength {
		cleaned = cleaned[:maxQueryLength]
		// Try to cut at word boundary
		if lastSpace := strings.LastIndex(cleaned, " "); lastSpace > maxQueryLength/2 {
			cleaned = cleaned[:lastSpace]
		}
		cleaned = strings.ToValidUTF8(cleaned, "")
	}

	if p.enableDebugLogging {
		p.logger.Debug("preprocessed dish query",
			zap.String("input", query),
			zap.String("output", cleaned))
	}

	return cleaned
}

// removeNoiseWords drops noise words, keeping the punctuation of the rest
func (p *QueryPreprocessor) removeNoiseWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	kept := make([]string, 0, len(words))

	for _, word := range words {
		cleanWord := strings.Trim(word, ",.!?;:-'\"")
		if !queryNoiseWords[cleanWord] {
			kept = append(kept, word)
		}
	}

	return strings.Join(kept, " ")
}

// cleanOrphanedPunctuation removes punctuation left alone after other removals
func cleanOrphanedPunctuation(s string) string {
	result := lonePunctuationPattern.ReplaceAllString(s, " ")
	result = trailingPunctuationPattern.ReplaceAllString(result, "")
	return leadingPunctuationPattern.ReplaceAllString(result, "")
}
