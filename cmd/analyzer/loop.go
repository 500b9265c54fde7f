package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spacesedan/aspectsense/internal/models"
	"github.com/spacesedan/aspectsense/internal/view"
)

type textAnalyzer interface {
	Analyze(text string) models.AnalysisResult
}

// runInteractive analyzes one line at a time until EOF, "quit" or "exit".
func runInteractive(in io.Reader, out io.Writer, a textAnalyzer, format view.Format, showPrompt bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if showPrompt {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "quit", "exit":
			return nil
		}

		if err := view.Render(out, format, a.Analyze(line)); err != nil {
			return fmt.Errorf("rendering result: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func runBatch(in io.Reader, out io.Writer, a textAnalyzer, format view.Format) error {
	scanner := bufio.NewScanner(in)
	count := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := view.Render(out, format, a.Analyze(line)); err != nil {
			return fmt.Errorf("rendering line %d: %w", count+1, err)
		}
		count++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading batch input: %w", err)
	}

	slog.Info("[Batch] Finished", slog.Int("analyzed", count))
	return nil
}
