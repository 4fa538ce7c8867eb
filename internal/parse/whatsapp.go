package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
)

const maxLineSize = 10 * 1024 * 1024 // 10MB
const maxSamples = 5

// ErrEmptyTranscript is returned when no line of the input is a message.
var ErrEmptyTranscript = errors.New("no valid messages found in the chat file")

// space also accepts the no-break spaces newer exports put before AM/PM.
const space = `[\s\x{00A0}\x{202F}]`

type lineKind int

const (
	kindBracketed lineKind = iota
	kindDashed
	kindShort
)

type linePattern struct {
	kind lineKind
	re   *regexp.Regexp
}

// Tried in order; the first pattern that matches decides the line.
var linePatterns = []linePattern{
	{kindBracketed, regexp.MustCompile(`(?i)^\[(\d{1,2}/\d{1,2}/\d{2,4}),?` + space + `+(\d{1,2}:\d{2}:\d{2}(?:` + space + `*(?:AM|PM))?)` + space + `*\]\s*([^:]+):\s*(.*)$`)},
	{kindDashed, regexp.MustCompile(`(?i)^(\d{1,2}/\d{1,2}/\d{2,4}),?` + space + `+(\d{1,2}:\d{2}:\d{2}(?:` + space + `*(?:AM|PM))?)\s*-\s*([^:]+):\s*(.*)$`)},
	{kindShort, regexp.MustCompile(`(?i)^(\d{1,2}/\d{1,2}/\d{2,4}),?` + space + `+(\d{1,2}:\d{2}(?:` + space + `*(?:AM|PM))?)\s*-\s*([^:]+):\s*(.*)$`)},
}

// export artifacts that never carry meaning
var lineCleaner = strings.NewReplacer("\r", "", "\ufeff", "", "\u200e", "")

// Parse converts an exported chat transcript into messages sorted by
// timestamp. Lines that match no known shape are dropped.
func Parse(text string) ([]Message, error) {
	msgs, _, err := ParseWithStats(text)
	return msgs, err
}

// ParseWithStats is Parse plus per-line diagnostics.
func ParseWithStats(text string) ([]Message, Stats, error) {
	var p lineParser
	for i, line := range strings.Split(text, "\n") {
		p.feed(i+1, line)
	}
	return p.finish()
}

// ParseReader parses a transcript streamed from r.
func ParseReader(r io.Reader) ([]Message, Stats, error) {
	var p lineParser

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		p.feed(lineNum, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, p.stats, fmt.Errorf("scan transcript: %w", err)
	}
	return p.finish()
}

type lineParser struct {
	messages []Message
	stats    Stats
}

func (p *lineParser) feed(lineNum int, raw string) {
	p.stats.Lines++

	line := lineCleaner.Replace(raw)
	if strings.TrimSpace(line) == "" {
		p.stats.Blank++
		return
	}

	for _, pat := range linePatterns {
		m := pat.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		p.stats.count(pat.kind)

		ts, ok := parseDateTime(m[1], m[2])
		content := strings.TrimSpace(m[4])
		if !ok || content == "" {
			p.stats.Rejected++
			return
		}
		p.messages = append(p.messages, Message{
			Timestamp:  ts,
			Sender:     strings.TrimSpace(m[3]),
			Content:    content,
			LineNumber: lineNum,
		})
		return
	}

	p.stats.Unmatched++
	if len(p.stats.Samples) < maxSamples {
		p.stats.Samples = append(p.stats.Samples, strings.TrimSpace(line))
	}
}

func (p *lineParser) finish() ([]Message, Stats, error) {
	if len(p.messages) == 0 {
		return nil, p.stats, ErrEmptyTranscript
	}
	sort.SliceStable(p.messages, func(i, j int) bool {
		return p.messages[i].Timestamp.Before(p.messages[j].Timestamp)
	})
	return p.messages, p.stats, nil
}

func (s *Stats) count(kind lineKind) {
	switch kind {
	case kindBracketed:
		s.Bracketed++
	case kindDashed:
		s.Dashed++
	case kindShort:
		s.Short++
	}
}
