package stats

import (
	"fmt"

	"github.com/Zuo-Peng/wa-chat-stats/internal/parse"
)

// Report bundles every section for one scope.
type Report struct {
	User        string
	Summary     Summary
	Monthly     []MonthCount
	Daily       []DayCount
	BusyDays    []Count
	BusyMonths  []Count
	Heatmap     Heatmap
	Active      *Activity // only for Overall
	Words       []Count
	Cloud       string
	Emojis      []EmojiCount
	EmojiShares []Share
}

// Empty reports whether the scope had no messages.
func (r Report) Empty() bool {
	return r.Summary.Messages == 0
}

// Build computes every report section for user.
func Build(user string, msgs []parse.Message, opts Options) (Report, error) {
	r := Report{
		User:       user,
		Summary:    Top(user, msgs, opts),
		Monthly:    MonthlyTimeline(user, msgs),
		Daily:      DailyTimeline(user, msgs),
		BusyDays:   BusyDays(user, msgs),
		BusyMonths: BusyMonths(user, msgs),
		Heatmap:    WeeklyHeatmap(user, msgs),
		Cloud:      WordCloud(user, msgs, opts),
		Emojis:     Emojis(user, msgs),
	}

	if user == Overall {
		a, err := MostActiveUsers(user, msgs, opts.TopUsers)
		if err != nil {
			return Report{}, fmt.Errorf("most active users: %w", err)
		}
		r.Active = &a
	}

	words, err := CommonWords(user, msgs, opts)
	if err != nil {
		return Report{}, fmt.Errorf("common words: %w", err)
	}
	r.Words = words

	shares, err := EmojiShares(r.Emojis, opts.TopEmojis)
	if err != nil {
		return Report{}, fmt.Errorf("emoji shares: %w", err)
	}
	r.EmojiShares = shares
	return r, nil
}
