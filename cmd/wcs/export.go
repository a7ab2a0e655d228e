package main

import (
	"fmt"
	"strings"

	"github.com/Zuo-Peng/wa-chat-stats/internal/parse"
	"github.com/Zuo-Peng/wa-chat-stats/internal/stats"
)

// loadExport parses path with the configured century pivot.
func (a *app) loadExport(path string) ([]parse.Message, error) {
	msgs, err := parse.ParseFile(path, a.cfg.CenturyPivot)
	if err != nil {
		return nil, err
	}

	unparsed := 0
	for _, m := range msgs {
		if m.Time == nil {
			unparsed++
		}
	}
	a.log.Debug().
		Str("file", path).
		Int("records", len(msgs)).
		Int("unparsed_timestamps", unparsed).
		Msg("parsed export")
	return msgs, nil
}

// options builds metric options from config, loading the stop-word file when
// one is configured.
func (a *app) options() (stats.Options, error) {
	opts := stats.DefaultOptions()
	opts.MediaPlaceholder = a.cfg.MediaPlaceholder
	opts.TopWords = a.cfg.TopWords
	opts.TopUsers = a.cfg.TopUsers
	opts.TopEmojis = a.cfg.TopEmojis

	if a.cfg.StopWordsFile != "" {
		sw, err := stats.LoadStopWords(a.cfg.StopWordsFile)
		if err != nil {
			return opts, err
		}
		opts.StopWords = sw
		a.log.Debug().Str("file", a.cfg.StopWordsFile).Int("words", len(sw)).Msg("stop words loaded")
	}
	return opts, nil
}

// checkUser returns an error naming the participants when user is neither
// Overall nor one of them.
func checkUser(user string, msgs []parse.Message) error {
	if user == stats.Overall {
		return nil
	}
	names := stats.Participants(msgs)
	for _, n := range names {
		if n == user {
			return nil
		}
	}
	return fmt.Errorf("unknown user %q (participants: %s)", user, strings.Join(names, ", "))
}
