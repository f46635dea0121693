package youtube

import (
	"strings"

	"github.com/xxxsen/gistly/internal/model"
)

// JoinTranscript joins segment texts with a single space in the order given
// and keeps at most maxChars characters. maxChars <= 0 disables truncation.
func JoinTranscript(segments []model.TranscriptSegment, maxChars int) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		parts = append(parts, seg.Text)
	}
	return Truncate(strings.Join(parts, " "), maxChars)
}

func Truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}
