package parse

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func at(y int, mo time.Month, d, h, mi, s int) time.Time {
	return time.Date(y, mo, d, h, mi, s, 0, time.UTC)
}

func TestParse_AllLineShapesSorted(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"1/3/2024, 10:00 - Bob: third",
		"[1/1/2024, 09:00:00] Alice: first",
		"1/2/2024, 08:30:15 - Alice: second",
		"[1/4/2024, 7:05:00 PM] Bob: fourth",
	}, "\n")

	msgs, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(msgs) != 4 {
		t.Fatalf("len=%d, want 4", len(msgs))
	}
	want := []string{"first", "second", "third", "fourth"}
	for i, m := range msgs {
		if m.Content != want[i] {
			t.Fatalf("msgs[%d].Content=%q, want %q", i, m.Content, want[i])
		}
		if i > 0 && m.Timestamp.Before(msgs[i-1].Timestamp) {
			t.Fatalf("messages not sorted at %d", i)
		}
	}
	if !msgs[3].Timestamp.Equal(at(2024, time.January, 4, 19, 5, 0)) {
		t.Fatalf("fourth timestamp=%v", msgs[3].Timestamp)
	}
	if msgs[0].LineNumber != 2 {
		t.Fatalf("first LineNumber=%d, want 2", msgs[0].LineNumber)
	}
}

func TestParse_DayFirstWhenFirstNumberExceedsTwelve(t *testing.T) {
	t.Parallel()

	msgs, err := Parse("13/5/2024, 10:00 AM - Alice: hi")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := msgs[0].Timestamp
	if got.Day() != 13 || got.Month() != time.May || got.Year() != 2024 {
		t.Fatalf("timestamp=%v, want 2024-05-13", got)
	}
	if got.Hour() != 10 {
		t.Fatalf("hour=%d, want 10", got.Hour())
	}
}

func TestParse_MonthFirstByDefault(t *testing.T) {
	t.Parallel()

	msgs, err := Parse("05/13/2024, 10:00 AM - Alice: hi")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := msgs[0].Timestamp
	if got.Month() != time.May || got.Day() != 13 {
		t.Fatalf("timestamp=%v, want May 13", got)
	}
}

func TestParse_TwoDigitYear(t *testing.T) {
	t.Parallel()

	msgs, err := Parse("2/1/24, 10:00 - Alice: hi")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !msgs[0].Timestamp.Equal(at(2024, time.February, 1, 10, 0, 0)) {
		t.Fatalf("timestamp=%v", msgs[0].Timestamp)
	}
}

func TestParse_TwelveHourClock(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line string
		want time.Time
	}{
		{"1/2/24, 1:05 PM - A: x", at(2024, time.January, 2, 13, 5, 0)},
		{"1/2/24, 12:30 AM - A: x", at(2024, time.January, 2, 0, 30, 0)},
		{"1/2/24, 12:15 pm - A: x", at(2024, time.January, 2, 12, 15, 0)},
		{"1/2/24, 9:15 PM - A: x", at(2024, time.January, 2, 21, 15, 0)},
		{"[1/2/24, 11:59:59 am] A: x", at(2024, time.January, 2, 11, 59, 59)},
		// 13 PM rolls into the next day instead of being rejected.
		{"1/2/24, 13:00 PM - A: x", at(2024, time.January, 3, 1, 0, 0)},
	}
	for _, tc := range cases {
		msgs, err := Parse(tc.line)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.line, err)
		}
		if !msgs[0].Timestamp.Equal(tc.want) {
			t.Fatalf("Parse(%q)=%v, want %v", tc.line, msgs[0].Timestamp, tc.want)
		}
	}
}

func TestParse_DropsNoiseWithoutStopping(t *testing.T) {
	t.Parallel()

	text := "1/1/24, 10:00 - Alice: hello\nAlice joined the group\ncontinued line\n\n1/1/24, 10:01 - Bob: hey"
	msgs, stats, err := ParseWithStats(text)
	if err != nil {
		t.Fatalf("ParseWithStats: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("len=%d, want 2", len(msgs))
	}
	if stats.Unmatched != 2 || stats.Blank != 1 || stats.Lines != 5 {
		t.Fatalf("stats=%+v", stats)
	}
	if len(stats.Samples) != 2 || stats.Samples[0] != "Alice joined the group" {
		t.Fatalf("Samples=%q", stats.Samples)
	}
}

func TestParse_EmptyContentRejected(t *testing.T) {
	t.Parallel()

	text := "1/1/24, 10:00 - Alice:   \n1/1/24, 10:01 - Bob: ok"
	msgs, stats, err := ParseWithStats(text)
	if err != nil {
		t.Fatalf("ParseWithStats: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Sender != "Bob" {
		t.Fatalf("msgs=%+v", msgs)
	}
	if stats.Rejected != 1 || stats.Short != 2 || stats.Accepted() != 1 {
		t.Fatalf("stats=%+v", stats)
	}
}

func TestParse_EmptySenderKept(t *testing.T) {
	t.Parallel()

	msgs, err := Parse("1/1/24, 10:00 - : hi there")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if msgs[0].Sender != "" || msgs[0].Content != "hi there" {
		t.Fatalf("msg=%+v", msgs[0])
	}
}

func TestParse_ContentKeepsLaterColons(t *testing.T) {
	t.Parallel()

	msgs, err := Parse("1/1/24, 10:00 - Alice: meet at 10:30: ok?")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if msgs[0].Sender != "Alice" || msgs[0].Content != "meet at 10:30: ok?" {
		t.Fatalf("msg=%+v", msgs[0])
	}
}

func TestParse_ExportArtifacts(t *testing.T) {
	t.Parallel()

	text := "\ufeff[1/2/24, 09:15:01] Bob: hi\r\n\u200e[1/2/24, 09:16:00] Alice: \u200eimage omitted\r\n"
	msgs, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("len=%d, want 2", len(msgs))
	}
	if msgs[0].Content != "hi" || msgs[1].Content != "image omitted" {
		t.Fatalf("contents=%q, %q", msgs[0].Content, msgs[1].Content)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   \n\n", "Alice joined the group\nsystem notice"} {
		msgs, err := Parse(text)
		if !errors.Is(err, ErrEmptyTranscript) {
			t.Fatalf("Parse(%q) err=%v, want ErrEmptyTranscript", text, err)
		}
		if msgs != nil {
			t.Fatalf("Parse(%q) msgs=%v, want nil", text, msgs)
		}
	}
}

func TestParse_TiesKeepInputOrder(t *testing.T) {
	t.Parallel()

	msgs, err := Parse("1/1/24, 10:00 - A: one\n1/1/24, 10:00 - B: two")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if msgs[0].Content != "one" || msgs[1].Content != "two" {
		t.Fatalf("order=%q,%q", msgs[0].Content, msgs[1].Content)
	}
}

func TestParseReader_MatchesParse(t *testing.T) {
	t.Parallel()

	text := "[1/1/2024, 09:00:00] Alice: a\nnoise\n1/2/2024, 08:30 - Bob: b\n"
	want, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, stats, err := ParseReader(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("len=%d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got[%d]=%+v, want %+v", i, got[i], want[i])
		}
	}
	if stats.Unmatched != 1 || stats.Lines != 3 {
		t.Fatalf("stats=%+v", stats)
	}
}
