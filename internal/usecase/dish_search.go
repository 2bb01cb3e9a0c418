package usecase

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/dishlens/backend/internal/domain"
	"go.uber.org/zap"
)

// Package-level compiled regex pattern for performance
var punctuationRegex = regexp.MustCompile(`[^\p{L}\p{N}\s]`)

const (
	fuzzyWeightFactor    = 0.8 // Fuzzy matches get 80% of an exact token match
	substringMatchBonus  = 10.0
	defaultMinMatchScore = 30.0
)

// searchStopWords are tokens that never help tell dishes apart
var searchStopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"of": true, "in": true, "on": true, "with": true, "for": true,
	"style": true, "dish": true,
}

// SearchConfig holds configuration for dish name search
type SearchConfig struct {
	MinScore            float64
	EnableFuzzyMatching bool
	FuzzyEditDistance   int
	EnableDebugLogging  bool
}

// DishSearch ranks dish names against a free-text query
type DishSearch struct {
	minScore            float64
	enableFuzzyMatching bool
	fuzzyEditDistance   int
	enableDebugLogging  bool
	preprocessor        *QueryPreprocessor
	logger              *zap.Logger
}

// NewDishSearch creates a dish search with the given configuration
func NewDishSearch(config SearchConfig, logger *zap.Logger) *DishSearch {
	minScore := config.MinScore
	if minScore <= 0 {
		minScore = defaultMinMatchScore
	}

	fuzzyDist := config.FuzzyEditDistance
	if fuzzyDist <= 0 {
		fuzzyDist = 1
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &DishSearch{
		minScore:            minScore,
		enableFuzzyMatching: config.EnableFuzzyMatching,
		fuzzyEditDistance:   fuzzyDist,
		enableDebugLogging:  config.EnableDebugLogging,
		preprocessor:        NewQueryPreprocessor(config.EnableDebugLogging, logger),
		logger:              logger,
	}
}

// Search scores every name against query and returns those at or above the
// minimum score, best first, ties broken by name. limit <= 0 means no limit.
// The query is cleaned of portion sizes and noise words first.
func (s *DishSearch) Search(ctx context.Context, query string, names []string, limit int) ([]domain.DishMatch, error) {
	query = s.preprocessor.PreprocessQuery(query)
	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	matches := []domain.DishMatch{}
	for _, name := range names {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		score, matched := s.calculateMatchScore(query, queryTokens, name)
		if s.enableDebugLogging {
			s.logger.Debug("dish search candidate",
				zap.String("query", query),
				zap.String("dish", name),
				zap.Float64("score", score),
				zap.Strings("matched", matched))
		}
		if score < s.minScore {
			continue
		}
		matches = append(matches, domain.DishMatch{Name: name, Score: score, MatchedTokens: matched})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Name < matches[j].Name
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// calculateMatchScore combines query coverage (70%), name coverage (15%) and
// Jaccard similarity (15%), plus a bonus when one string contains the other.
// Returns a score in [0,100] and the matched name tokens.
func (s *DishSearch) calculateMatchScore(query string, queryTokens []string, name string) (float64, []string) {
	nameTokens := tokenize(name)
	if len(nameTokens) == 0 {
		return 0, nil
	}

	queryHits := 0.0
	var matched []string
	seen := make(map[string]bool)
	for _, qt := range queryTokens {
		nt, weight := s.bestTokenMatch(qt, nameTokens)
		if weight == 0 {
			continue
		}
		queryHits += weight
		if !seen[nt] {
			matched = append(matched, nt)
			seen[nt] = true
		}
	}
	queryCoverage := queryHits / float64(len(queryTokens))
	nameCoverage := float64(len(matched)) / float64(len(nameTokens))
	jaccard := float64(len(matched)) / float64(findUnion(queryTokens, nameTokens))

	score := (queryCoverage*0.70 + nameCoverage*0.15 + jaccard*0.15) * 100

	queryLower := strings.ToLower(strings.TrimSpace(query))
	nameLower := strings.ToLower(name)
	if len(queryLower) > 3 && (strings.Contains(nameLower, queryLower) || strings.Contains(queryLower, nameLower)) {
		score += substringMatchBonus
	}

	if score > 100 {
		score = 100
	}
	return score, matched
}

// bestTokenMatch returns the name token matching qt and the weight of the match
func (s *DishSearch) bestTokenMatch(qt string, nameTokens []string) (string, float64) {
	for _, nt := range nameTokens {
		if nt == qt {
			return nt, 1
		}
	}
	if !s.enableFuzzyMatching {
		return "", 0
	}
	for _, nt := range nameTokens {
		if fuzzyTokenMatch(qt, nt, s.fuzzyEditDistance) {
			return nt, fuzzyWeightFactor
		}
	}
	return "", 0
}

// tokenize splits a string into lowercase tokens, dropping punctuation,
// single characters and stop words
func tokenize(s string) []string {
	cleaned := punctuationRegex.ReplaceAllString(strings.ToLower(s), " ")

	var tokens []string
	for _, word := range strings.Fields(cleaned) {
		if len([]rune(word)) <= 1 {
			continue
		}
		if searchStopWords[word] {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// fuzzyTokenMatch checks if two tokens are similar within the edit distance threshold
func fuzzyTokenMatch(token1, token2 string, threshold int) bool {
	if token1 == token2 {
		return true
	}

	// Short tokens produce too many false positives
	if len(token1) < 4 || len(token2) < 4 {
		return false
	}

	lenDiff := len(token1) - len(token2)
	if lenDiff < 0 {
		lenDiff = -lenDiff
	}
	if lenDiff > threshold {
		return false
	}

	return levenshteinDistance(token1, token2) <= threshold
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)
	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}

// findUnion returns the count of unique tokens across both sets
func findUnion(tokens1, tokens2 []string) int {
	set := make(map[string]bool)
	for _, t := range tokens1 {
		set[t] = true
	}
	for _, t := range tokens2 {
		set[t] = true
	}
	return len(set)
}
