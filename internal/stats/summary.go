package stats

import (
	"strings"

	"github.com/Zuo-Peng/wa-chat-stats/internal/parse"
	"mvdan.cc/xurls/v2"
)

// linkRe also finds scheme-less links such as "www.example.com".
var linkRe = xurls.Relaxed()

// Summary is the headline numbers of a scope.
type Summary struct {
	Messages int
	Words    int
	Media    int
	Links    int
}

// Top counts messages, whitespace-separated words, media placeholders and
// link occurrences in the scope of user.
func Top(user string, msgs []parse.Message, opts Options) Summary {
	var s Summary
	for _, m := range Scope(user, msgs) {
		s.Messages++
		s.Words += len(strings.Fields(m.Body))
		if m.Body == opts.MediaPlaceholder {
			s.Media++
		}
		s.Links += len(linkRe.FindAllString(m.Body, -1))
	}
	return s
}
