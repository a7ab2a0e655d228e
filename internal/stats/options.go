package stats

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultMediaPlaceholder is the body WhatsApp writes for media left out of
// an export.
const DefaultMediaPlaceholder = "<Media omitted>"

//go:embed stopwords.txt
var defaultStopWords string

// Options configures the reports that need more than a scope.
type Options struct {
	MediaPlaceholder string
	StopWords        StopWords
	TopWords         int
	TopUsers         int
	TopEmojis        int
}

// DefaultOptions returns the built-in placeholder, stop words and limits.
func DefaultOptions() Options {
	return Options{
		MediaPlaceholder: DefaultMediaPlaceholder,
		StopWords:        DefaultStopWords(),
		TopWords:         20,
		TopUsers:         5,
		TopEmojis:        5,
	}
}

// StopWords is a set of lower-case words excluded from word statistics.
type StopWords map[string]struct{}

// Has reports whether w is a stop word. A nil set has no words.
func (s StopWords) Has(w string) bool {
	_, ok := s[w]
	return ok
}

// DefaultStopWords returns the embedded stop-word list.
func DefaultStopWords() StopWords {
	sw, _ := ParseStopWords(strings.NewReader(defaultStopWords))
	return sw
}

// ParseStopWords reads one word per line. Blank lines and lines starting
// with # are skipped; words are lower-cased.
func ParseStopWords(r io.Reader) (StopWords, error) {
	sw := make(StopWords)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sw[strings.ToLower(line)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stop words: %w", err)
	}
	return sw, nil
}

// LoadStopWords reads a stop-word file.
func LoadStopWords(path string) (StopWords, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stop words: %w", err)
	}
	defer f.Close()
	return ParseStopWords(f)
}
