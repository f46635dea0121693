package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xxxsen/gistly/internal/handler"
	"github.com/xxxsen/gistly/internal/pkg/errcode"
)

// errReported marks failures whose message was already printed as a status
// line.
var errReported = errors.New("failed")

func printStatus(w io.Writer, level string, msg string) {
	fmt.Fprintf(w, "[%s] %s\n", level, msg)
}

func printSection(w io.Writer, title string, body string) {
	fmt.Fprintf(w, "\n== %s ==\n%s\n", title, body)
}

func reportError(w io.Writer, err error) error {
	code, msg := handler.Describe(err)
	printStatus(w, errcode.Level(code), msg)
	return fmt.Errorf("%w: %w", errReported, err)
}

func setupCLI(configPath string) (*app, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	initLogger(cfg)
	return newApp(cfg)
}

func newAnalyzeCmd() *cobra.Command {
	var configPath, file, role string
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "extract a pdf resume, score it and ask for suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setupCLI(configPath)
			if err != nil {
				return err
			}
			return runAnalyze(cmd.Context(), cmd.OutOrStdout(), a, file, role)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to config.json (optional)")
	cmd.Flags().StringVar(&file, "file", "", "path to the resume pdf")
	cmd.Flags().StringVar(&role, "role", "", "target job role")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func runAnalyze(ctx context.Context, w io.Writer, a *app, file string, role string) error {
	if strings.TrimSpace(role) == "" {
		printStatus(w, errcode.LevelWarning, handler.MsgRoleRequired)
		return errReported
	}
	data, err := os.ReadFile(file)
	if err != nil {
		printStatus(w, errcode.LevelError, fmt.Sprintf("could not read %s", file))
		return fmt.Errorf("%w: %w", errReported, err)
	}
	printStatus(w, "info", "Analyzing...")
	res, err := a.resumes.Analyze(ctx, filepath.Base(file), data, role)
	if err != nil {
		return reportError(w, err)
	}
	printSection(w, "Extracted Resume Content", res.Text)
	printSection(w, "AI Suggestions", res.Suggestions)
	printSection(w, "ATS Compatibility Score", fmt.Sprintf("Your ATS Score: %.2f%%", res.Score))
	fmt.Fprintf(w, "Matched keywords: %s\n\n", strings.Join(res.MatchedKeywords, ", "))
	printStatus(w, "success", "Analysis Completed!")
	return nil
}

func newSummarizeCmd() *cobra.Command {
	var configPath, videoURL string
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "summarize a youtube video from its transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setupCLI(configPath)
			if err != nil {
				return err
			}
			return runSummarize(cmd.Context(), cmd.OutOrStdout(), a, videoURL)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to config.json (optional)")
	cmd.Flags().StringVar(&videoURL, "url", "", "youtube video url")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func runSummarize(ctx context.Context, w io.Writer, a *app, videoURL string) error {
	printStatus(w, "info", "Fetching transcript...")
	res, err := a.videos.Summarize(ctx, videoURL)
	if err != nil {
		return reportError(w, err)
	}
	printSection(w, "AI-Generated Summary", res.Summary)
	return nil
}

func newScoreCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "score",
		Short: "compute the ats keyword score of a pdf resume without calling the model",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setupCLI("")
			if err != nil {
				return err
			}
			return runScore(cmd.Context(), cmd.OutOrStdout(), a, file)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to the resume pdf")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runScore(ctx context.Context, w io.Writer, a *app, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		printStatus(w, errcode.LevelError, fmt.Sprintf("could not read %s", file))
		return fmt.Errorf("%w: %w", errReported, err)
	}
	text, err := a.resumes.Extract(ctx, filepath.Base(file), data)
	if err != nil {
		return reportError(w, err)
	}
	res := a.resumes.Score(text)
	fmt.Fprintf(w, "Your ATS Score: %.2f%% (%d/%d keywords)\n", res.Score, len(res.Matched), res.Total)
	if len(res.Matched) > 0 {
		fmt.Fprintf(w, "Matched keywords: %s\n", strings.Join(res.Matched, ", "))
	}
	return nil
}

func newVideoIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "video-id <url>",
		Short: "print the video id found in a youtube url",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setupCLI("")
			if err != nil {
				return err
			}
			return runVideoID(cmd.OutOrStdout(), a, args[0])
		},
	}
}

func runVideoID(w io.Writer, a *app, videoURL string) error {
	id, err := a.videos.ResolveID(videoURL)
	if err != nil {
		return reportError(w, err)
	}
	fmt.Fprintln(w, id)
	return nil
}
