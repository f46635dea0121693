package youtube

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xxxsen/gistly/internal/model"
)

func TestJoinTranscript_OrderAndSeparator(t *testing.T) {
	segs := []model.TranscriptSegment{{Text: "hello"}, {Text: "world"}, {Text: "hello"}}
	require.Equal(t, "hello world hello", JoinTranscript(segs, DefaultMaxTranscriptChars))
}

func TestJoinTranscript_Truncates(t *testing.T) {
	segs := []model.TranscriptSegment{{Text: strings.Repeat("a", 2000)}, {Text: strings.Repeat("b", 2000)}}
	got := JoinTranscript(segs, DefaultMaxTranscriptChars)
	require.Len(t, []rune(got), 3000)
	require.True(t, strings.HasPrefix(got, strings.Repeat("a", 2000)+" b"))
}

func TestJoinTranscript_ShortUnchanged(t *testing.T) {
	segs := []model.TranscriptSegment{{Text: "short"}, {Text: "one"}}
	require.Equal(t, "short one", JoinTranscript(segs, DefaultMaxTranscriptChars))
}

func TestTruncate_CountsCharacters(t *testing.T) {
	text := strings.Repeat("é", 3005)
	got := Truncate(text, 3000)
	require.Equal(t, strings.Repeat("é", 3000), got)
	require.Equal(t, "abc", Truncate("abc", 0))
	require.Equal(t, strings.Repeat("x", 3000), Truncate(strings.Repeat("x", 3000), 3000))
}
