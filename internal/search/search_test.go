package search

import (
	"testing"
	"time"

	"github.com/Zuo-Peng/chat-affinity/internal/parse"
)

var sample = []parse.Message{
	{Timestamp: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), Sender: "Alice", Content: "Good morning sunshine", LineNumber: 1},
	{Timestamp: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC), Sender: "Bob", Content: "morning! coffee?", LineNumber: 2},
	{Timestamp: time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC), Sender: "alice", Content: "see you tonight", LineNumber: 4},
}

func TestFilter_Sender(t *testing.T) {
	t.Parallel()

	got, err := Filter(sample, Options{Sender: "ALICE"})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(got) != 2 || got[1].Message.LineNumber != 4 {
		t.Fatalf("got=%+v", got)
	}
	if got[0].Snippet != "Good morning sunshine" {
		t.Fatalf("Snippet=%q", got[0].Snippet)
	}
}

func TestFilter_QueryHighlights(t *testing.T) {
	t.Parallel()

	got, err := Filter(sample, Options{Query: "MORNING"})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2", len(got))
	}
	if got[0].Snippet != "Good >>>morning<<< sunshine" {
		t.Fatalf("Snippet=%q", got[0].Snippet)
	}
}

func TestFilter_SinceAndLimit(t *testing.T) {
	t.Parallel()

	got, err := Filter(sample, Options{Since: "2024-01-02", Limit: 1})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(got) != 1 || got[0].Message.Sender != "Bob" {
		t.Fatalf("got=%+v", got)
	}
	if _, err := Filter(sample, Options{Since: "yesterday"}); err == nil {
		t.Fatalf("expected error for bad since")
	}
}

func TestMakeSnippet_Context(t *testing.T) {
	t.Parallel()

	got := makeSnippet("aaaaaaaaaa needle bbbbbbbbbb", "needle", 3)
	if got != "...aa >>>needle<<< bb..." {
		t.Fatalf("got %q", got)
	}
}
