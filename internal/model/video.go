package model

type TranscriptSegment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

type VideoSummary struct {
	VideoID    string `json:"video_id"`
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
}
