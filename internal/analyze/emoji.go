package analyze

import (
	"regexp"
	"strings"
)

type runeRange struct {
	lo, hi rune
}

var emojiRanges = []runeRange{
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F300, 0x1F5FF}, // symbols and pictographs
	{0x1F680, 0x1F6FF}, // transport and map
	{0x1F1E0, 0x1F1FF}, // regional indicators (flags)
	{0x1F900, 0x1F9FF}, // supplemental symbols and pictographs
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
}

// affectionGlyphs is matched leftmost-first, so the couple sequences are
// counted once even though they contain a heart.
var affectionGlyphs = []string{
	"\u2764\ufe0f", // red heart
	"💕", "💖", "💗", "💘", "💙", "💚", "💛", "💜", "🧡", "🖤", "🤍", "🤎", "💝", "💟",
	"😍", "🥰", "😘", "💋",
	"\U0001F468\u200d\u2764\ufe0f\u200d\U0001F468",
	"\U0001F469\u200d\u2764\ufe0f\u200d\U0001F469",
	"\U0001F468\u200d\u2764\ufe0f\u200d\U0001F469",
	"💑", "💏",
}

var affectionRe = func() *regexp.Regexp {
	quoted := make([]string, len(affectionGlyphs))
	for i, g := range affectionGlyphs {
		quoted[i] = regexp.QuoteMeta(g)
	}
	return regexp.MustCompile(strings.Join(quoted, "|"))
}()

func isEmoji(r rune) bool {
	for _, rr := range emojiRanges {
		if r >= rr.lo && r <= rr.hi {
			return true
		}
	}
	return false
}

// extractEmojis returns every emoji code point in s, in order, one entry
// per occurrence.
func extractEmojis(s string) []string {
	var out []string
	for _, r := range s {
		if isEmoji(r) {
			out = append(out, string(r))
		}
	}
	return out
}

func countAffection(s string) int {
	return len(affectionRe.FindAllStringIndex(s, -1))
}
