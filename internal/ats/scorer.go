// Package ats computes the keyword compatibility score of a resume.
package ats

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/xxxsen/gistly/internal/model"
)

// DefaultKeywords is the keyword list every resume is scored against.
var DefaultKeywords = []string{
	"Python",
	"SQL",
	"Machine Learning",
	"Data Analysis",
	"Communication",
	"Problem-Solving",
	"Leadership",
}

type keywordRule struct {
	keyword string
	re      *regexp.Regexp
}

// Scorer matches keywords as whole words, ignoring case.
type Scorer struct {
	rules []keywordRule
}

func NewScorer(keywords []string) (*Scorer, error) {
	if len(keywords) == 0 {
		return nil, fmt.Errorf("keyword list is empty")
	}
	rules := make([]keywordRule, 0, len(keywords))
	for _, kw := range keywords {
		trimmed := strings.TrimSpace(kw)
		if trimmed == "" {
			return nil, fmt.Errorf("keyword list contains an empty keyword")
		}
		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(trimmed))
		if err != nil {
			return nil, fmt.Errorf("compile keyword %q: %w", trimmed, err)
		}
		rules = append(rules, keywordRule{keyword: trimmed, re: re})
	}
	return &Scorer{rules: rules}, nil
}

// NewDefaultScorer builds a Scorer over DefaultKeywords.
func NewDefaultScorer() *Scorer {
	s, err := NewScorer(DefaultKeywords)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Scorer) Keywords() []string {
	out := make([]string, 0, len(s.rules))
	for _, r := range s.rules {
		out = append(out, r.keyword)
	}
	return out
}

// Score returns round(100*matched/total, 2). Each keyword counts once no
// matter how often it occurs.
func (s *Scorer) Score(text string) model.KeywordScore {
	matched := make([]string, 0, len(s.rules))
	for _, r := range s.rules {
		if r.matches(text) {
			matched = append(matched, r.keyword)
		}
	}
	return model.KeywordScore{
		Score:   roundScore(float64(len(matched)) / float64(len(s.rules)) * 100),
		Matched: matched,
		Total:   len(s.rules),
	}
}

// matches reports whether the keyword occurs with a word boundary on both
// sides. Word characters are unicode letters, digits, marks and '_'.
func (r keywordRule) matches(text string) bool {
	for offset := 0; offset < len(text); {
		loc := r.re.FindStringIndex(text[offset:])
		if loc == nil {
			return false
		}
		start, end := offset+loc[0], offset+loc[1]
		if isBoundary(text, start) && isBoundary(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

func isBoundary(text string, pos int) bool {
	before, after := false, false
	if pos > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:pos])
		before = isWordRune(r)
	}
	if pos < len(text) {
		r, _ := utf8.DecodeRuneInString(text[pos:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
