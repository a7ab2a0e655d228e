package stats

import (
	"sort"
	"strconv"
	"time"

	"github.com/Zuo-Peng/wa-chat-stats/internal/parse"
)

// MonthCount is the number of messages sent in one calendar month.
type MonthCount struct {
	Year  int
	Month time.Month
	Label string // "January-2024"
	Count int
}

// DayCount is the number of messages sent on one date.
type DayCount struct {
	Date  time.Time
	Count int
}

// MonthlyTimeline groups the scope by month, oldest first. Months without
// messages are not filled in; messages without a timestamp are skipped.
func MonthlyTimeline(user string, msgs []parse.Message) []MonthCount {
	type ym struct {
		year  int
		month int
	}
	counts := make(map[ym]int)
	for _, m := range Scope(user, msgs) {
		if m.Time == nil {
			continue
		}
		counts[ym{m.Time.Year, m.Time.MonthNum}]++
	}

	out := make([]MonthCount, 0, len(counts))
	for k, n := range counts {
		month := time.Month(k.month)
		out = append(out, MonthCount{
			Year:  k.year,
			Month: month,
			Label: month.String() + "-" + strconv.Itoa(k.year),
			Count: n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// DailyTimeline groups the scope by date, oldest first. Days without messages
// are not filled in.
func DailyTimeline(user string, msgs []parse.Message) []DayCount {
	// keyed by Unix seconds; time.Time values are unreliable map keys
	days := make(map[int64]*DayCount)
	for _, m := range Scope(user, msgs) {
		if m.Time == nil {
			continue
		}
		k := m.Time.Date.Unix()
		if dc, ok := days[k]; ok {
			dc.Count++
			continue
		}
		days[k] = &DayCount{Date: m.Time.Date, Count: 1}
	}

	out := make([]DayCount, 0, len(days))
	for _, dc := range days {
		out = append(out, *dc)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
