// Package stats computes descriptive statistics over parsed chat messages.
// Every function is a pure read over the message slice and returns a fresh
// value; an empty scope yields an empty result, never an error.
package stats

import (
	"errors"
	"sort"

	"github.com/Zuo-Peng/wa-chat-stats/internal/parse"
)

// Overall selects every message, system notifications included.
const Overall = "Overall"

var (
	// ErrNotOverall is returned by reports that only make sense across all participants.
	ErrNotOverall = errors.New("stats: report requires the Overall scope")
	// ErrInvalidTop is returned when a top-N limit is below 1.
	ErrInvalidTop = errors.New("stats: top-N limit must be at least 1")
)

// Count is a key with its number of occurrences.
type Count struct {
	Key   string
	Count int
}

// Scope returns the messages a report for user covers. For Overall that is
// all of msgs; otherwise the non-system messages sent by user.
func Scope(user string, msgs []parse.Message) []parse.Message {
	if user == Overall {
		return msgs
	}
	var out []parse.Message
	for _, m := range msgs {
		if !m.System && m.Sender == user {
			out = append(out, m)
		}
	}
	return out
}

// Participants returns the sorted, distinct human senders in msgs.
func Participants(msgs []parse.Message) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, m := range msgs {
		if m.System {
			continue
		}
		if _, ok := seen[m.Sender]; ok {
			continue
		}
		seen[m.Sender] = struct{}{}
		names = append(names, m.Sender)
	}
	sort.Strings(names)
	return names
}

// tally counts keys while remembering the order they were first seen in.
type tally struct {
	counts map[string]int
	order  []string
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(key string, n int) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key] += n
}

func (t *tally) total() int {
	n := 0
	for _, c := range t.counts {
		n += c
	}
	return n
}

// ranked returns the keys by descending count. Ties keep the order of keys
// in tiebreak, or first-seen order when tiebreak is nil.
func (t *tally) ranked(tiebreak []string) []Count {
	keys := t.order
	if tiebreak != nil {
		keys = make([]string, 0, len(t.order))
		for _, k := range tiebreak {
			if _, ok := t.counts[k]; ok {
				keys = append(keys, k)
			}
		}
	}
	out := make([]Count, 0, len(keys))
	for _, k := range keys {
		out = append(out, Count{Key: k, Count: t.counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
