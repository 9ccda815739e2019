package pipeline

import (
	"sort"

	"fdalabel-api/internal/domain/labelModel"
)

// RankChunks scores every chunk against the query, orders them best first and
// returns at most topK. The sort is stable so equal scores keep their input
// order.
func RankChunks(chunks []labelModel.Chunk, query string, topK int, extraKeywords []string) []labelModel.Chunk {
	if topK <= 0 || len(chunks) == 0 {
		return []labelModel.Chunk{}
	}

	scored := make([]labelModel.Chunk, len(chunks))
	copy(scored, chunks)
	for i := range scored {
		scored[i].Score = ScoreChunk(scored[i], query, extraKeywords)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topK > len(scored) {
		topK = len(scored)
	}
	return scored[:topK]
}
