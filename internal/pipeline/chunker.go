package pipeline

import (
	"fmt"

	"fdalabel-api/internal/config"
	"fdalabel-api/internal/domain/labelModel"
)

//splitter

// ChunkText cuts text into ordered, overlapping windows of at most chunkSize
// characters. Windows that would split a sentence are snapped back to the last
// sentence terminator or line break, but only if that keeps at least the
// configured fraction of the window - otherwise the hard cut stands.
func ChunkText(text string, chunkSize int, overlap int, sourceID string, meta labelModel.ChunkMetadata) []labelModel.Chunk {
	if text == "" {
		return nil
	}
	if chunkSize <= 0 {
		chunkSize = config.ChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}

	minSnapLength := int(float64(chunkSize) * config.BoundarySnapFraction)

	var chunks []labelModel.Chunk
	start := 0
	index := 0

	for start < len(text) {
		end := start + chunkSize
		if end >= len(text) {
			end = len(text)
		} else if snap := lastSentenceBreak(text[start:end]); snap >= minSnapLength {
			end = start + snap
		}

		chunkMeta := meta
		chunkMeta.ChunkIndex = index
		chunkMeta.Start = start
		chunkMeta.End = end

		chunks = append(chunks, labelModel.Chunk{
			ID:       fmt.Sprintf("%s_chunk_%d", sourceID, index),
			Text:     text[start:end],
			Source:   sourceID,
			Metadata: chunkMeta,
		})
		index++

		// the chunk that reaches the end of the text is the last one
		if end == len(text) {
			break
		}

		// A short trailing fragment can make the overlap swallow the whole
		// advance; forcing a full window forward guarantees termination.
		advance := (end - start) - overlap
		if advance <= 0 {
			advance = chunkSize
		}
		start += advance
	}

	return chunks
}

// lastSentenceBreak returns the cut position just after the last sentence
// terminator or line break in the window, or -1 when there is none.
func lastSentenceBreak(window string) int {
	for i := len(window) - 1; i >= 0; i-- {
		switch window[i] {
		case '.', '!', '?', '\n':
			return i + 1
		}
	}
	return -1
}
