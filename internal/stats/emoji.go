package stats

import (
	"strings"
	"unicode/utf8"

	"github.com/Zuo-Peng/wa-chat-stats/internal/parse"
	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"
)

const variationSelector = "\ufe0f"

// EmojiCount is how often one emoji occurs in the scope.
type EmojiCount struct {
	Emoji string
	Name  string
	Count int
}

// Emojis counts every emoji occurrence in the scope, most frequent first.
// Multi-codepoint emoji (flags, skin tones, ZWJ sequences) count as one.
func Emojis(user string, msgs []parse.Message) []EmojiCount {
	t := newTally()
	names := make(map[string]string)
	for _, m := range Scope(user, msgs) {
		g := uniseg.NewGraphemes(m.Body)
		for g.Next() {
			cluster := g.Str()
			info, ok := lookupEmoji(cluster)
			if !ok {
				continue
			}
			t.add(info.Character, 1)
			names[info.Character] = info.UnicodeName
		}
	}

	ranked := t.ranked(nil)
	out := make([]EmojiCount, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, EmojiCount{Emoji: c.Key, Name: names[c.Key], Count: c.Count})
	}
	return out
}

// lookupEmoji resolves a grapheme cluster against the emoji table. A lone
// symbol is tried in its emoji presentation first so "❤" and "❤️" share a key.
func lookupEmoji(cluster string) (gomoji.Emoji, bool) {
	if len(cluster) == 1 {
		return gomoji.Emoji{}, false // ASCII
	}
	candidates := []string{cluster}
	switch {
	case utf8.RuneCountInString(cluster) == 1:
		candidates = []string{cluster + variationSelector, cluster}
	case strings.HasSuffix(cluster, variationSelector):
		candidates = append(candidates, strings.TrimSuffix(cluster, variationSelector))
	}
	for _, c := range candidates {
		if info, err := gomoji.GetInfo(c); err == nil {
			return info, true
		}
	}
	return gomoji.Emoji{}, false
}

// EmojiShares returns each of the top emojis' percentage of the occurrences
// among those top emojis.
func EmojiShares(counts []EmojiCount, top int) ([]Share, error) {
	if top < 1 {
		return nil, ErrInvalidTop
	}
	if len(counts) > top {
		counts = counts[:top]
	}
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	if total == 0 {
		return nil, nil
	}
	shares := make([]Share, 0, len(counts))
	for _, c := range counts {
		shares = append(shares, Share{Key: c.Emoji, Percent: percent(c.Count, total)})
	}
	return shares, nil
}
