package parse

import (
	"strconv"
	"time"
)

// GroupNotification is the sender recorded for lines with no "name: " author,
// such as "X added Y" or encryption notices.
const GroupNotification = "group_notification"

type Message struct {
	Sender string
	Body   string
	System bool   // true when Sender is the GroupNotification sentinel
	Raw    string // timestamp token as found in the export
	Line   int    // 1-based line of the export where the message starts
	Time   *Stamp // nil when the timestamp did not parse
}

// Stamp holds a parsed timestamp and the calendar fields derived from it.
type Stamp struct {
	At       time.Time
	Date     time.Time // At truncated to midnight
	Year     int
	MonthNum int
	Month    string // "January"
	Day      int
	DayName  string // "Friday"
	Hour     int
	Minute   int
	Period   string // hour bucket, e.g. "14-15"
}

func newStamp(t time.Time) *Stamp {
	return &Stamp{
		At:       t,
		Date:     time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()),
		Year:     t.Year(),
		MonthNum: int(t.Month()),
		Month:    t.Month().String(),
		Day:      t.Day(),
		DayName:  t.Weekday().String(),
		Hour:     t.Hour(),
		Minute:   t.Minute(),
		Period:   PeriodLabel(t.Hour()),
	}
}

// PeriodLabel returns the hour-bucket label for hour h (0-23).
func PeriodLabel(h int) string {
	switch h {
	case 23:
		return "23-00"
	case 0:
		return "00-1"
	default:
		return strconv.Itoa(h) + "-" + strconv.Itoa(h+1)
	}
}
