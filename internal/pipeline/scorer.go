package pipeline

import (
	"math"
	"strings"

	"fdalabel-api/internal/config"
	"fdalabel-api/internal/domain/labelModel"
)

// ScoreChunk assigns a lexical relevance score. Pure function - same inputs,
// same score. Longer keywords weigh more per hit, an exact phrase match earns
// a flat bonus, and the total is normalized so long chunks cannot win on
// length alone.
func ScoreChunk(chunk labelModel.Chunk, query string, extraKeywords []string) float64 {
	text := strings.ToLower(chunk.Text)
	if text == "" {
		return 0
	}

	loweredQuery := strings.ToLower(strings.TrimSpace(query))
	keywords := buildKeywordSet(loweredQuery, extraKeywords)

	score := 0.0
	for _, keyword := range keywords {
		occurrences := strings.Count(text, keyword)
		if occurrences > 0 {
			score += float64(occurrences) * math.Log(1+float64(len(keyword)))
		}
	}

	if loweredQuery != "" && strings.Contains(text, loweredQuery) {
		score += float64(config.PhraseBonusFactor * len(loweredQuery))
	}

	return score / math.Sqrt(float64(len(text)))
}

// buildKeywordSet keeps tokens longer than the minimum length - a cheap stand
// in for a stop-word list that works across languages.
func buildKeywordSet(loweredQuery string, extraKeywords []string) []string {
	var keywords []string
	for _, token := range strings.Fields(loweredQuery) {
		if len(token) > config.MinKeywordLength {
			keywords = append(keywords, token)
		}
	}
	for _, extra := range extraKeywords {
		extra = strings.ToLower(extra)
		if len(extra) > config.MinKeywordLength {
			keywords = append(keywords, extra)
		}
	}
	return keywords
}
