// Package youtube resolves YouTube URLs to video ids and fetches caption
// transcripts.
package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/gistly/internal/model"
)

const (
	DefaultBaseURL            = "https://www.youtube.com"
	DefaultMaxTranscriptChars = 3000

	captionsMarker  = `"captions":`
	maxResponseSize = 16 * 1024 * 1024
	userAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

var ErrTranscriptUnavailable = errors.New("transcript unavailable")

var (
	errNoCaptions      = errors.New("no captions in player response")
	errNoTracks        = errors.New("no caption tracks")
	errEmptyTranscript = errors.New("caption track has no segments")
	errRecaptcha       = errors.New("request blocked by recaptcha")

	formattingTag = regexp.MustCompile(`(?i)</?(?:font|b|i|u)(?:\s[^>]*)?>`)
)

type ITranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string) ([]model.TranscriptSegment, error)
}

type FetcherConfig struct {
	BaseURL   string
	Languages []string
	Timeout   time.Duration
}

// Fetcher reads caption tracks from the public watch page.
type Fetcher struct {
	baseURL   string
	languages []string
	client    *http.Client
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

type captionsPayload struct {
	Renderer struct {
		CaptionTracks []captionTrack `json:"captionTracks"`
	} `json:"playerCaptionsTracklistRenderer"`
}

func NewFetcher(cfg FetcherConfig) *Fetcher {
	base := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return &Fetcher{
		baseURL:   base,
		languages: cfg.Languages,
		client:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (f *Fetcher) Fetch(ctx context.Context, videoID string) ([]model.TranscriptSegment, error) {
	logger := logutil.GetLogger(ctx).With(zap.String("video_id", videoID))
	if strings.TrimSpace(videoID) == "" {
		return nil, fmt.Errorf("%w: empty video id", ErrTranscriptUnavailable)
	}
	page, err := f.get(ctx, f.baseURL+"/watch?v="+url.QueryEscape(videoID))
	if err != nil {
		logger.Warn("fetch watch page failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrTranscriptUnavailable, err)
	}
	tracks, err := parseCaptionTracks(string(page))
	if err != nil {
		logger.Warn("read caption tracks failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrTranscriptUnavailable, err)
	}
	track := pickTrack(tracks, f.languages)
	logger.Debug("caption track selected", zap.String("language", track.LanguageCode), zap.String("kind", track.Kind))

	body, err := f.get(ctx, strings.Replace(track.BaseURL, "&fmt=srv3", "", 1))
	if err != nil {
		logger.Warn("fetch caption track failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrTranscriptUnavailable, err)
	}
	segments, err := parseTimedText(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTranscriptUnavailable, err)
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrTranscriptUnavailable, errEmptyTranscript)
	}
	logger.Info("transcript fetched", zap.Int("segments", len(segments)))
	return segments, nil
}

func (f *Fetcher) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
}

func parseCaptionTracks(page string) ([]captionTrack, error) {
	idx := strings.Index(page, captionsMarker)
	if idx < 0 {
		if strings.Contains(page, `class="g-recaptcha"`) {
			return nil, errRecaptcha
		}
		return nil, errNoCaptions
	}
	var payload captionsPayload
	dec := json.NewDecoder(strings.NewReader(page[idx+len(captionsMarker):]))
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode captions: %w", err)
	}
	tracks := make([]captionTrack, 0, len(payload.Renderer.CaptionTracks))
	for _, t := range payload.Renderer.CaptionTracks {
		if t.BaseURL == "" {
			continue
		}
		tracks = append(tracks, t)
	}
	if len(tracks) == 0 {
		return nil, errNoTracks
	}
	return tracks, nil
}

// pickTrack prefers the configured languages in order, manual captions before
// auto-generated ones, and falls back to the first track.
func pickTrack(tracks []captionTrack, languages []string) captionTrack {
	for _, lang := range languages {
		lang = strings.ToLower(strings.TrimSpace(lang))
		var generated *captionTrack
		for i := range tracks {
			if strings.ToLower(tracks[i].LanguageCode) != lang {
				continue
			}
			if tracks[i].Kind != "asr" {
				return tracks[i]
			}
			if generated == nil {
				generated = &tracks[i]
			}
		}
		if generated != nil {
			return *generated
		}
	}
	return tracks[0]
}

func parseTimedText(body []byte) ([]model.TranscriptSegment, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse caption track: %w", err)
	}
	var segments []model.TranscriptSegment
	// Caption text is entity-encoded twice. Formatting tags are visible after
	// the first decode, literal angle brackets only after the second.
	doc.Find("text").Each(func(_ int, sel *goquery.Selection) {
		text := html.UnescapeString(formattingTag.ReplaceAllString(sel.Text(), ""))
		start, _ := strconv.ParseFloat(sel.AttrOr("start", "0"), 64)
		dur, _ := strconv.ParseFloat(sel.AttrOr("dur", "0"), 64)
		segments = append(segments, model.TranscriptSegment{Text: text, Start: start, Duration: dur})
	})
	return segments, nil
}
