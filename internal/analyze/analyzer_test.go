package analyze

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Zuo-Peng/chat-affinity/internal/parse"
)

func msg(day, hour int, sender, content string) parse.Message {
	return parse.Message{
		Timestamp: time.Date(2024, time.January, day, hour, 0, 0, 0, time.UTC),
		Sender:    sender,
		Content:   content,
	}
}

func TestAnalyze_Empty(t *testing.T) {
	t.Parallel()

	a, err := Analyze(nil)
	if !errors.Is(err, ErrNoMessages) {
		t.Fatalf("err=%v, want ErrNoMessages", err)
	}
	if a != nil {
		t.Fatalf("analysis=%+v, want nil", a)
	}
}

func TestAnalyze_MixedChat(t *testing.T) {
	t.Parallel()

	a, err := Analyze([]parse.Message{
		msg(1, 10, "Alice", "hello"),
		msg(2, 10, "Bob", "hi \u2764\ufe0f"),
		msg(3, 10, "Alice", "good night 😘"),
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if a.TotalMessages != 3 || a.TotalDays != 3 {
		t.Fatalf("TotalMessages=%d TotalDays=%d", a.TotalMessages, a.TotalDays)
	}
	if a.AverageMessagesPerDay != 1 {
		t.Fatalf("AverageMessagesPerDay=%v, want 1", a.AverageMessagesPerDay)
	}
	if a.AverageMessageLength != 7 {
		t.Fatalf("AverageMessageLength=%d, want 7", a.AverageMessageLength)
	}
	if a.TotalEmojis != 2 || a.LoveEmojis != 2 {
		t.Fatalf("TotalEmojis=%d LoveEmojis=%d, want 2/2", a.TotalEmojis, a.LoveEmojis)
	}
	// 3 active days over a 2 day span is capped at 100.
	if a.Insights.Consistency != 100 {
		t.Fatalf("Consistency=%d, want 100", a.Insights.Consistency)
	}
	// 2 + 25 + 20 + 0.7 + 0.1
	if a.LoveScore != 48 {
		t.Fatalf("LoveScore=%d, want 48 (breakdown %+v)", a.LoveScore, a.Breakdown)
	}
	if a.Insights.LongestStreak != 3 {
		t.Fatalf("LongestStreak=%d, want 3", a.Insights.LongestStreak)
	}
	if len(a.Senders) != 2 || a.Senders[0].Sender != "Alice" || a.Senders[0].Messages != 2 {
		t.Fatalf("Senders=%+v", a.Senders)
	}
}

func TestAnalyze_HistogramTotals(t *testing.T) {
	t.Parallel()

	a, err := Analyze([]parse.Message{
		msg(1, 9, "A", "morning 😀😀"),
		msg(1, 22, "B", "night 🌙"),
		msg(4, 8, "A", "🚀 ✨"),
		msg(9, 12, "B", "🇫🇷"),
		msg(9, 13, "A", "plain"),
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	sumDays := 0
	for i, d := range a.DailyMessages {
		sumDays += d.Messages
		if i > 0 && d.Date <= a.DailyMessages[i-1].Date {
			t.Fatalf("DailyMessages not ascending: %+v", a.DailyMessages)
		}
	}
	if sumDays != a.TotalMessages {
		t.Fatalf("daily sum=%d, want %d", sumDays, a.TotalMessages)
	}
	if len(a.DailyMessages) != a.TotalDays || a.TotalDays != 3 {
		t.Fatalf("DailyMessages=%+v TotalDays=%d", a.DailyMessages, a.TotalDays)
	}

	sumEmoji := 0
	for i, e := range a.EmojiStats {
		sumEmoji += e.Count
		if i > 0 && e.Count > a.EmojiStats[i-1].Count {
			t.Fatalf("EmojiStats not descending: %+v", a.EmojiStats)
		}
	}
	// flag = two regional indicators
	if sumEmoji != a.TotalEmojis || a.TotalEmojis != 7 {
		t.Fatalf("emoji sum=%d TotalEmojis=%d, want 7", sumEmoji, a.TotalEmojis)
	}
	if a.Insights.TopEmoji != "😀" {
		t.Fatalf("TopEmoji=%q", a.Insights.TopEmoji)
	}
	if a.LoveEmojis > a.TotalEmojis {
		t.Fatalf("LoveEmojis=%d > TotalEmojis=%d", a.LoveEmojis, a.TotalEmojis)
	}
}

func TestAnalyze_MostActiveDayFirstWins(t *testing.T) {
	t.Parallel()

	a, err := Analyze([]parse.Message{
		msg(1, 9, "A", "a"),
		msg(1, 10, "B", "b"),
		msg(2, 9, "A", "c"),
		msg(2, 10, "B", "d"),
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if a.Insights.MostActiveDate != "2024-01-01" {
		t.Fatalf("MostActiveDate=%q", a.Insights.MostActiveDate)
	}
	if a.Insights.MostActiveDay != "Monday, January 1, 2024" {
		t.Fatalf("MostActiveDay=%q", a.Insights.MostActiveDay)
	}
}

func TestAnalyze_NoEmojiFallback(t *testing.T) {
	t.Parallel()

	a, err := Analyze([]parse.Message{msg(1, 9, "A", "just words")})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if a.Insights.TopEmoji != DefaultTopEmoji {
		t.Fatalf("TopEmoji=%q, want %q", a.Insights.TopEmoji, DefaultTopEmoji)
	}
	if a.Breakdown.Affection != 0 {
		t.Fatalf("Affection=%v, want 0", a.Breakdown.Affection)
	}
	if len(a.EmojiStats) != 0 {
		t.Fatalf("EmojiStats=%+v", a.EmojiStats)
	}
}

func TestAnalyze_SingleDayConsistency(t *testing.T) {
	t.Parallel()

	same := []parse.Message{msg(5, 9, "A", "x"), msg(5, 9, "B", "y")}
	spread := []parse.Message{msg(5, 9, "A", "x"), msg(5, 21, "B", "y")}
	for _, in := range [][]parse.Message{same, spread} {
		a, err := Analyze(in)
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if a.Insights.Consistency != 100 {
			t.Fatalf("Consistency=%d, want 100", a.Insights.Consistency)
		}
		if math.IsNaN(a.Breakdown.Consistency) || a.Breakdown.Consistency != 20 {
			t.Fatalf("Breakdown.Consistency=%v, want 20", a.Breakdown.Consistency)
		}
	}
}

func TestAnalyze_ScoreBounds(t *testing.T) {
	t.Parallel()

	var in []parse.Message
	long := "this is a long heartfelt message that keeps going and going and going for quite a while indeed, more than one hundred and fifty characters in total for sure 💕"
	for day := 1; day <= 31; day++ {
		for h := 0; h < 20; h++ {
			in = append(in, msg(day, h, "A", long))
		}
	}
	a, err := Analyze(in)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if a.LoveScore < 0 || a.LoveScore > 100 {
		t.Fatalf("LoveScore=%d out of range", a.LoveScore)
	}
	if a.Breakdown.Frequency != 30 || a.Breakdown.Affection != 25 || a.Breakdown.Length != 15 {
		t.Fatalf("Breakdown=%+v", a.Breakdown)
	}
}
