package stats

import (
	"math"

	"github.com/Zuo-Peng/wa-chat-stats/internal/parse"
)

// Share is a key's percentage of a total, rounded to two decimals.
type Share struct {
	Key     string
	Percent float64
}

// Activity ranks participants by message count.
type Activity struct {
	Top    []Count // the busiest senders, at most top entries
	Shares []Share // every sender's share of human messages
}

// MostActiveUsers ranks senders across the whole chat. It rejects any scope
// other than Overall. System notifications are not counted.
func MostActiveUsers(user string, msgs []parse.Message, top int) (Activity, error) {
	if user != Overall {
		return Activity{}, ErrNotOverall
	}
	if top < 1 {
		return Activity{}, ErrInvalidTop
	}

	t := newTally()
	for _, m := range msgs {
		if !m.System {
			t.add(m.Sender, 1)
		}
	}
	total := t.total()
	if total == 0 {
		return Activity{}, nil
	}

	ranked := t.ranked(nil)
	a := Activity{Shares: make([]Share, 0, len(ranked))}
	for _, c := range ranked {
		a.Shares = append(a.Shares, Share{Key: c.Key, Percent: percent(c.Count, total)})
	}
	if len(ranked) > top {
		ranked = ranked[:top]
	}
	a.Top = ranked
	return a, nil
}

func percent(n, total int) float64 {
	return math.Round(float64(n)/float64(total)*100*100) / 100
}
