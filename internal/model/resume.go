package model

type KeywordScore struct {
	Score   float64  `json:"score"`
	Matched []string `json:"matched"`
	Total   int      `json:"total"`
}

type ResumeAnalysis struct {
	Text            string   `json:"text"`
	Role            string   `json:"role"`
	Score           float64  `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	Keywords        []string `json:"keywords"`
	Suggestions     string   `json:"suggestions"`
}
