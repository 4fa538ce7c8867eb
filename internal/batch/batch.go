package batch

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/Zuo-Peng/chat-affinity/internal/analyze"
	"github.com/Zuo-Peng/chat-affinity/internal/parse"
	"github.com/Zuo-Peng/chat-affinity/internal/scan"
)

type Stats struct {
	Scanned  int
	Analyzed int
	Empty    int // no line parsed as a message
	Errors   int
}

func (s Stats) String() string {
	return fmt.Sprintf("scanned=%d analyzed=%d empty=%d errors=%d",
		s.Scanned, s.Analyzed, s.Empty, s.Errors)
}

// Result is the outcome for one transcript. Exactly one of Analysis and Err
// is set.
type Result struct {
	File       scan.FileInfo
	Analysis   *analyze.ChatAnalysis
	ParseStats parse.Stats
	Err        error
}

// LoadFile parses one export, plain text or zip, into messages.
func LoadFile(path string) ([]parse.Message, parse.Stats, error) {
	rc, err := scan.Open(path)
	if err != nil {
		return nil, parse.Stats{}, fmt.Errorf("read transcript: %w", err)
	}
	defer rc.Close()

	return parse.ParseReader(rc)
}

// AnalyzeFile runs the parse and analyze pipeline over one export.
func AnalyzeFile(path string) (*analyze.ChatAnalysis, parse.Stats, error) {
	msgs, stats, err := LoadFile(path)
	if err != nil {
		return nil, stats, err
	}
	a, err := analyze.Analyze(msgs)
	if err != nil {
		return nil, stats, fmt.Errorf("analyze: %w", err)
	}
	return a, stats, nil
}

// AnalyzeDir analyzes every export under root on its own. Failures are
// reported to warn and kept in the results; successful results come first,
// highest score first.
func AnalyzeDir(root string, warn io.Writer) ([]Result, Stats, error) {
	var stats Stats

	files, err := scan.ScanDir(root)
	if err != nil {
		return nil, stats, fmt.Errorf("scan: %w", err)
	}
	stats.Scanned = len(files)

	results := make([]Result, 0, len(files))
	for _, fi := range files {
		a, ps, err := AnalyzeFile(fi.Path)
		results = append(results, Result{File: fi, Analysis: a, ParseStats: ps, Err: err})
		switch {
		case errors.Is(err, parse.ErrEmptyTranscript):
			stats.Empty++
		case err != nil:
			stats.Errors++
			fmt.Fprintf(warn, "  WARN: %s: %v\n", fi.Path, err)
		default:
			stats.Analyzed++
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		ai, aj := results[i].Analysis, results[j].Analysis
		if ai == nil || aj == nil {
			return ai != nil && aj == nil
		}
		return ai.LoveScore > aj.LoveScore
	})
	return results, stats, nil
}
