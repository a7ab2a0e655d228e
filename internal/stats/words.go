package stats

import (
	"strings"
	"unicode"

	"github.com/Zuo-Peng/wa-chat-stats/internal/parse"
)

// words returns the cleaned tokens of the scope: lower-cased, punctuation
// removed, stop words dropped. System rows and media placeholders are skipped.
func words(user string, msgs []parse.Message, opts Options) []string {
	var out []string
	for _, m := range Scope(user, msgs) {
		if m.System || m.Body == opts.MediaPlaceholder {
			continue
		}
		for _, f := range strings.Fields(strings.ToLower(m.Body)) {
			if opts.StopWords.Has(f) {
				continue
			}
			w := strings.Map(stripPunct, f)
			if w == "" || opts.StopWords.Has(w) {
				continue
			}
			out = append(out, w)
		}
	}
	return out
}

func stripPunct(r rune) rune {
	if unicode.IsPunct(r) {
		return -1
	}
	return r
}

// CommonWords returns the opts.TopWords most frequent words of the scope.
func CommonWords(user string, msgs []parse.Message, opts Options) ([]Count, error) {
	if opts.TopWords < 1 {
		return nil, ErrInvalidTop
	}
	t := newTally()
	for _, w := range words(user, msgs, opts) {
		t.add(w, 1)
	}
	ranked := t.ranked(nil)
	if len(ranked) > opts.TopWords {
		ranked = ranked[:opts.TopWords]
	}
	return ranked, nil
}

// WordCloud returns the cleaned words of the scope joined by spaces, ready
// for a word-cloud renderer. An empty scope yields "".
func WordCloud(user string, msgs []parse.Message, opts Options) string {
	return strings.Join(words(user, msgs, opts), " ")
}
