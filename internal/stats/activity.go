package stats

import (
	"time"

	"github.com/Zuo-Peng/wa-chat-stats/internal/parse"
)

// Weekdays lists day names in heatmap row order.
var Weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Periods lists the hour-bucket labels in heatmap column order.
var Periods = func() [24]string {
	var p [24]string
	for h := range p {
		p[h] = parse.PeriodLabel(h)
	}
	return p
}()

var monthNames = func() []string {
	names := make([]string, 12)
	for i := range names {
		names[i] = time.Month(i + 1).String()
	}
	return names
}()

// BusyDays counts messages per day of week, busiest first. Days with no
// messages are absent.
func BusyDays(user string, msgs []parse.Message) []Count {
	t := newTally()
	for _, m := range Scope(user, msgs) {
		if m.Time != nil {
			t.add(m.Time.DayName, 1)
		}
	}
	return t.ranked(Weekdays[:])
}

// BusyMonths counts messages per month name across years, busiest first.
func BusyMonths(user string, msgs []parse.Message) []Count {
	t := newTally()
	for _, m := range Scope(user, msgs) {
		if m.Time != nil {
			t.add(m.Time.Month, 1)
		}
	}
	return t.ranked(monthNames)
}

// Heatmap is a day-of-week by hour-bucket message count table.
type Heatmap struct {
	Days    [7]string
	Periods [24]string
	Cells   [7][24]int
}

// Total returns the sum of all cells.
func (h Heatmap) Total() int {
	n := 0
	for _, row := range h.Cells {
		for _, c := range row {
			n += c
		}
	}
	return n
}

// Max returns the largest cell value.
func (h Heatmap) Max() int {
	peak := 0
	for _, row := range h.Cells {
		for _, c := range row {
			peak = max(peak, c)
		}
	}
	return peak
}

// WeeklyHeatmap builds the full 7x24 table for the scope; combinations
// without messages stay zero.
func WeeklyHeatmap(user string, msgs []parse.Message) Heatmap {
	h := Heatmap{Days: Weekdays, Periods: Periods}
	for _, m := range Scope(user, msgs) {
		if m.Time == nil {
			continue
		}
		row := (int(m.Time.At.Weekday()) + 6) % 7 // Monday first
		h.Cells[row][m.Time.Hour]++
	}
	return h
}
