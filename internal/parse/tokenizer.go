package parse

import (
	"regexp"
	"strings"
)

// ws matches the separators WhatsApp puts inside a timestamp prefix; newer
// Android exports use U+202F (narrow no-break space) before AM/PM.
const ws = `[ \t\x{00a0}\x{202f}]`

// TimestampPattern matches the "M/D/YY, H:MM AM - " prefix that starts every
// message of a US-locale export. Only matches at the start of a line count.
var TimestampPattern = regexp.MustCompile(
	`(?m)^\d{1,2}/\d{1,2}/\d{2,4},` + ws + `\d{1,2}:\d{2}` + ws + `(?:AM|PM|am|pm)` + ws + `-` + ws,
)

// Span is one message as cut out of the export: the timestamp prefix and the
// text that follows it up to the next prefix.
type Span struct {
	Prefix string
	Body   string
	Line   int
}

// Tokenize splits text into spans at every timestamp prefix. Text before the
// first prefix is dropped.
func Tokenize(text string) []Span {
	text = strings.TrimPrefix(text, "\ufeff")
	locs := TimestampPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	spans := make([]Span, 0, len(locs))
	line := 1 + strings.Count(text[:locs[0][0]], "\n")
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		spans = append(spans, Span{
			Prefix: text[loc[0]:loc[1]],
			Body:   text[loc[1]:end],
			Line:   line,
		})
		line += strings.Count(text[loc[0]:end], "\n")
	}
	return spans
}

// CountPrefixes reports how many timestamp prefixes text contains.
func CountPrefixes(text string) int {
	return len(TimestampPattern.FindAllStringIndex(strings.TrimPrefix(text, "\ufeff"), -1))
}
