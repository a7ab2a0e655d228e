package parse

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// DefaultCenturyPivot maps two-digit years below 69 to the 2000s and the rest
// to the 1900s, the same split time.Parse uses for "06".
const DefaultCenturyPivot = 69

const stampLayout = "1/2/2006, 3:04 PM"

var stampRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d+), (\d{1,2}:\d{2}) ([AaPp][Mm])$`)

// Parser turns export text into messages.
type Parser struct {
	// CenturyPivot decides the century of two-digit years: yy < pivot is 20yy,
	// anything else is 19yy.
	CenturyPivot int
}

// Parse parses text with the default century pivot.
func Parse(text string) []Message {
	p := Parser{CenturyPivot: DefaultCenturyPivot}
	return p.Parse(text)
}

// ParseFile reads and parses an export file.
func ParseFile(path string, pivot int) ([]Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	p := Parser{CenturyPivot: pivot}
	return p.Parse(string(data)), nil
}

// Parse returns one message per timestamp prefix, in export order. Timestamps
// that fail to parse leave Time nil; the message is kept.
func (p *Parser) Parse(text string) []Message {
	spans := Tokenize(text)
	if len(spans) == 0 {
		return nil
	}

	msgs := make([]Message, 0, len(spans))
	for _, sp := range spans {
		msg := Message{
			Raw:  sp.Prefix,
			Line: sp.Line,
		}
		if t, ok := p.parseTimestamp(sp.Prefix); ok {
			msg.Time = newStamp(t)
		}
		if name, rest, ok := splitSender(sp.Body); ok {
			msg.Sender = name
			msg.Body = trimTerminator(rest)
		} else {
			msg.Sender = GroupNotification
			msg.System = true
			msg.Body = trimTerminator(sp.Body)
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

// normalizeStamp cleans a raw prefix into "M/D/YY, H:MM AM".
func normalizeStamp(raw string) string {
	s := strings.NewReplacer("\u202f", " ", "\u00a0", " ", "\t", " ").Replace(raw)
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "-")
	return strings.TrimSpace(s)
}

func (p *Parser) parseTimestamp(raw string) (time.Time, bool) {
	m := stampRe.FindStringSubmatch(normalizeStamp(raw))
	if m == nil {
		return time.Time{}, false
	}

	// 12-hour clock: hour 0 is not a valid reading
	if h, _ := strconv.Atoi(m[4][:strings.IndexByte(m[4], ':')]); h < 1 || h > 12 {
		return time.Time{}, false
	}

	year, err := strconv.Atoi(m[3])
	if err != nil {
		return time.Time{}, false
	}
	switch len(m[3]) {
	case 2:
		if year < p.CenturyPivot {
			year += 2000
		} else {
			year += 1900
		}
	case 4:
	default:
		return time.Time{}, false
	}

	s := fmt.Sprintf("%s/%s/%04d, %s %s", m[1], m[2], year, m[4], strings.ToUpper(m[5]))
	t, err := time.Parse(stampLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// splitSender splits "name: text" at the first colon followed by whitespace,
// which may be the line break ending a message with an empty text. Names
// never span lines.
func splitSender(body string) (string, string, bool) {
	i := strings.IndexByte(body, ':')
	for i >= 0 {
		rest := body[i+1:]
		if r, size := utf8.DecodeRuneInString(rest); size > 0 && unicode.IsSpace(r) {
			name := body[:i]
			if name == "" || strings.ContainsAny(name, "\r\n") {
				return "", body, false
			}
			return name, rest[size:], true
		}
		next := strings.IndexByte(rest, ':')
		if next < 0 {
			break
		}
		i += 1 + next
	}
	return "", body, false
}

// trimTerminator drops the line break that separates a message from the next
// prefix.
func trimTerminator(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
