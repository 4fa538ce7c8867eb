package analyze

import "math"

// Component caps. They add up to 100.
const (
	maxFrequency   = 30
	maxAffection   = 25
	maxConsistency = 20
	maxLength      = 15
	maxDuration    = 10
)

func scoreBreakdown(a *ChatAnalysis) Breakdown {
	var ratio float64
	if a.TotalEmojis > 0 {
		ratio = float64(a.LoveEmojis) / float64(a.TotalEmojis)
	}
	return Breakdown{
		Frequency:   math.Min(a.AverageMessagesPerDay*2, maxFrequency),
		Affection:   math.Min(ratio*100, maxAffection),
		Consistency: float64(a.Insights.Consistency) / 100 * maxConsistency,
		Length:      math.Min(float64(a.AverageMessageLength)/10, maxLength),
		Duration:    math.Min(float64(a.TotalDays)/30, maxDuration),
	}
}

func loveScore(b Breakdown) int {
	total := math.Max(0, math.Min(b.Total(), 100))
	return int(math.Round(total))
}
