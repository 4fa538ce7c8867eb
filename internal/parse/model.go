package parse

import (
	"fmt"
	"time"
)

// Message is one accepted transcript line. Timestamp holds the wall-clock
// values written in the transcript; its location carries no meaning.
type Message struct {
	Timestamp  time.Time
	Sender     string
	Content    string
	LineNumber int // line number in original transcript
}

// Stats describes what happened to each input line during a parse.
type Stats struct {
	Lines     int
	Blank     int
	Bracketed int // [D/M/Y, H:MM:SS] Sender: Content
	Dashed    int // D/M/Y, H:MM:SS - Sender: Content
	Short     int // D/M/Y, H:MM - Sender: Content
	Unmatched int
	Rejected  int // matched a pattern but had a bad date/time or empty content
	Samples   []string
}

func (s Stats) Accepted() int {
	return s.Bracketed + s.Dashed + s.Short - s.Rejected
}

func (s Stats) String() string {
	return fmt.Sprintf("lines=%d blank=%d accepted=%d unmatched=%d rejected=%d",
		s.Lines, s.Blank, s.Accepted(), s.Unmatched, s.Rejected)
}
