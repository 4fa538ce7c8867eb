package analyze

import (
	"errors"
	"math"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/Zuo-Peng/chat-affinity/internal/parse"
)

// DefaultTopEmoji stands in for the top emoji of a chat without any.
const DefaultTopEmoji = "😊"

const dayLayout = "2006-01-02"

// ErrNoMessages is returned by Analyze for an empty message list.
var ErrNoMessages = errors.New("no messages to analyze")

// Analyze computes counts, histograms, insights and the love score for
// messages sorted by timestamp.
//
// Calendar days come from the wall-clock date written in the transcript;
// the distinct-day count and the daily histogram share that key, so
// len(DailyMessages) == TotalDays.
func Analyze(messages []parse.Message) (*ChatAnalysis, error) {
	if len(messages) == 0 {
		return nil, ErrNoMessages
	}

	a := &ChatAnalysis{
		TotalMessages:  len(messages),
		FirstMessageAt: messages[0].Timestamp,
		LastMessageAt:  messages[0].Timestamp,
	}

	dayCounts := make(map[string]int)
	var days []time.Time
	emojiCounts := make(map[string]int)
	var emojiOrder []string
	senderCounts := make(map[string]int)
	var senderOrder []string
	totalRunes := 0

	for _, m := range messages {
		if m.Timestamp.Before(a.FirstMessageAt) {
			a.FirstMessageAt = m.Timestamp
		}
		if m.Timestamp.After(a.LastMessageAt) {
			a.LastMessageAt = m.Timestamp
		}

		key := m.Timestamp.Format(dayLayout)
		if _, ok := dayCounts[key]; !ok {
			days = append(days, calendarDay(m.Timestamp))
		}
		dayCounts[key]++

		if _, ok := senderCounts[m.Sender]; !ok {
			senderOrder = append(senderOrder, m.Sender)
		}
		senderCounts[m.Sender]++

		totalRunes += utf8.RuneCountInString(m.Content)

		for _, e := range extractEmojis(m.Content) {
			if _, ok := emojiCounts[e]; !ok {
				emojiOrder = append(emojiOrder, e)
			}
			emojiCounts[e]++
			a.TotalEmojis++
		}
		a.LoveEmojis += countAffection(m.Content)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	a.TotalDays = len(days)
	a.AverageMessagesPerDay = float64(a.TotalMessages) / float64(a.TotalDays)
	a.AverageMessageLength = int(math.Round(float64(totalRunes) / float64(a.TotalMessages)))

	a.DailyMessages = make([]DayCount, 0, len(days))
	for _, d := range days {
		key := d.Format(dayLayout)
		a.DailyMessages = append(a.DailyMessages, DayCount{Date: key, Messages: dayCounts[key]})
	}

	a.EmojiStats = make([]EmojiCount, 0, len(emojiOrder))
	for _, e := range emojiOrder {
		a.EmojiStats = append(a.EmojiStats, EmojiCount{Emoji: e, Count: emojiCounts[e]})
	}
	// stable: equal counts stay in first-seen order
	sort.SliceStable(a.EmojiStats, func(i, j int) bool {
		return a.EmojiStats[i].Count > a.EmojiStats[j].Count
	})

	a.Senders = make([]SenderCount, 0, len(senderOrder))
	for _, s := range senderOrder {
		a.Senders = append(a.Senders, SenderCount{Sender: s, Messages: senderCounts[s]})
	}
	sort.SliceStable(a.Senders, func(i, j int) bool {
		return a.Senders[i].Messages > a.Senders[j].Messages
	})

	a.Insights = Insights{
		LongestStreak: longestStreak(days),
		TopEmoji:      DefaultTopEmoji,
		Consistency:   consistency(a.TotalDays, a.FirstMessageAt, a.LastMessageAt),
	}
	if busiest, ok := mostActive(a.DailyMessages); ok {
		a.Insights.MostActiveDate = busiest.Date
		a.Insights.MostActiveDay = formatLongDate(busiest.Date)
	}
	if len(a.EmojiStats) > 0 {
		a.Insights.TopEmoji = a.EmojiStats[0].Emoji
	}

	a.Breakdown = scoreBreakdown(a)
	a.LoveScore = loveScore(a.Breakdown)

	return a, nil
}

// mostActive returns the first day holding the highest count.
func mostActive(daily []DayCount) (DayCount, bool) {
	if len(daily) == 0 {
		return DayCount{}, false
	}
	best := daily[0]
	for _, d := range daily[1:] {
		if d.Messages > best.Messages {
			best = d
		}
	}
	return best, true
}

func formatLongDate(date string) string {
	t, err := time.Parse(dayLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}
