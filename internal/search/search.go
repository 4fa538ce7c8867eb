package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/Zuo-Peng/chat-affinity/internal/parse"
)

type Result struct {
	Message parse.Message
	Snippet string // content with the first hit wrapped in >>> <<<
}

type Options struct {
	Query  string // "" = every message
	Sender string // "" = all, case-insensitive otherwise
	Since  string // "" = no filter, e.g. "2024-01-01"
	Limit  int    // 0 = no limit
}

// Filter returns the messages matching opts, in transcript order.
func Filter(msgs []parse.Message, opts Options) ([]Result, error) {
	var since time.Time
	if opts.Since != "" {
		t, err := time.Parse("2006-01-02", opts.Since)
		if err != nil {
			return nil, fmt.Errorf("invalid since date %q: %w", opts.Since, err)
		}
		since = t
	}

	var results []Result
	for _, m := range msgs {
		if opts.Sender != "" && !strings.EqualFold(m.Sender, opts.Sender) {
			continue
		}
		if !since.IsZero() && m.Timestamp.Before(since) {
			continue
		}
		if opts.Query != "" && !strings.Contains(strings.ToLower(m.Content), strings.ToLower(opts.Query)) {
			continue
		}
		snippet := m.Content
		if opts.Query != "" {
			snippet = makeSnippet(m.Content, opts.Query, 30)
		}
		results = append(results, Result{Message: m, Snippet: snippet})
		if opts.Limit > 0 && len(results) >= opts.Limit {
			break
		}
	}
	return results, nil
}

// makeSnippet extracts a snippet around the first occurrence of query in text.
func makeSnippet(text, query string, contextChars int) string {
	lower := strings.ToLower(text)
	idx := strings.Index(lower, strings.ToLower(query))
	if idx < 0 || len(lower) != len(text) {
		// no match, or lowering changed byte offsets; return head
		runes := []rune(text)
		if len(runes) > contextChars*2 {
			return string(runes[:contextChars*2]) + "..."
		}
		return text
	}
	runes := []rune(text)
	runePos := len([]rune(text[:idx]))
	qLen := len([]rune(text[idx : idx+len(query)]))
	start := max(runePos-contextChars, 0)
	end := min(runePos+qLen+contextChars, len(runes))

	prefix, suffix := "", ""
	if start > 0 {
		prefix = "..."
	}
	if end < len(runes) {
		suffix = "..."
	}
	return prefix + string(runes[start:runePos]) +
		">>>" + string(runes[runePos:runePos+qLen]) + "<<<" +
		string(runes[runePos+qLen:end]) + suffix
}
