package analyze

import "time"

// ChatAnalysis is everything derived from one transcript.
type ChatAnalysis struct {
	LoveScore             int           `json:"loveScore"`     // composite 0-100
	TotalMessages         int           `json:"totalMessages"` // accepted messages
	TotalDays             int           `json:"totalDays"`     // distinct active days
	AverageMessagesPerDay float64       `json:"averageMessagesPerDay"`
	AverageMessageLength  int           `json:"averageMessageLength"` // characters, rounded
	TotalEmojis           int           `json:"totalEmojis"`
	LoveEmojis            int           `json:"loveEmojis"`
	FirstMessageAt        time.Time     `json:"firstMessageAt"`
	LastMessageAt         time.Time     `json:"lastMessageAt"`
	DailyMessages         []DayCount    `json:"dailyMessages"` // ascending, gaps omitted
	EmojiStats            []EmojiCount  `json:"emojiStats"`    // descending by count
	Senders               []SenderCount `json:"senders"`       // descending by count
	Insights              Insights      `json:"insights"`
	Breakdown             Breakdown     `json:"breakdown"`
}

// DayCount is the number of messages on one calendar day (YYYY-MM-DD).
type DayCount struct {
	Date     string `json:"date"`
	Messages int    `json:"messages"`
}

// EmojiCount holds an emoji glyph and how often it appeared.
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

type SenderCount struct {
	Sender   string `json:"sender"`
	Messages int    `json:"messages"`
}

// Insights are the headline facts shown next to the score.
type Insights struct {
	MostActiveDay  string `json:"mostActiveDay"`  // e.g. "Monday, January 1, 2024"
	MostActiveDate string `json:"mostActiveDate"` // YYYY-MM-DD
	LongestStreak  int    `json:"longestStreak"`
	TopEmoji       string `json:"topEmoji"`
	Consistency    int    `json:"consistency"` // percent
}

// Breakdown holds each capped score component before they are summed.
type Breakdown struct {
	Frequency   float64 `json:"frequency"`   // max 30
	Affection   float64 `json:"affection"`   // max 25
	Consistency float64 `json:"consistency"` // max 20
	Length      float64 `json:"length"`      // max 15
	Duration    float64 `json:"duration"`    // max 10
}

func (b Breakdown) Total() float64 {
	return b.Frequency + b.Affection + b.Consistency + b.Length + b.Duration
}
