package render

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Zuo-Peng/wa-chat-stats/internal/stats"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const (
	colorReset   = "\033[0m"
	colorTitle   = "\033[1;34m" // bold blue
	colorBar     = "\033[32m"   // green
	colorDim     = "\033[2m"
	colorBoldRed = "\033[1;31m"
)

const (
	defaultWidth = 80
	maxLabel     = 24
)

// shades are the heatmap glyphs for levels 0-4.
var shades = [5]string{"  ", "░░", "▒▒", "▓▓", "██"}

type Options struct {
	Width int  // total output width (0 = 80)
	Color bool // emit ANSI colors
}

type writer struct {
	b     strings.Builder
	opts  Options
	lines int
}

func (w *writer) line(s string) {
	w.b.WriteString(s)
	w.b.WriteString("\n")
	w.lines++
}

func (w *writer) paint(s, color string) string {
	if !w.opts.Color {
		return s
	}
	return color + s + colorReset
}

func (w *writer) section(title string) {
	if w.lines > 0 {
		w.line("")
	}
	w.line(w.paint("== "+title+" ==", colorTitle))
}

func (w *writer) empty(what string) {
	w.line(w.paint("  (no "+what+")", colorDim))
}

// Report renders every section of r as terminal text.
func Report(r stats.Report, opts Options) string {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	w := &writer{opts: opts}

	w.line(w.paint(fmt.Sprintf("--- %s ---", r.User), colorDim))
	if r.Empty() {
		w.line("No messages found for this selection.")
		return w.b.String()
	}

	w.section("Top Statistics")
	w.line(fmt.Sprintf("  Total Messages: %d", r.Summary.Messages))
	w.line(fmt.Sprintf("  Total Words:    %d", r.Summary.Words))
	w.line(fmt.Sprintf("  Media Shared:   %d", r.Summary.Media))
	w.line(fmt.Sprintf("  Links Shared:   %d", r.Summary.Links))

	w.section("Monthly Timeline")
	monthly := make([]stats.Count, 0, len(r.Monthly))
	for _, m := range r.Monthly {
		monthly = append(monthly, stats.Count{Key: m.Label, Count: m.Count})
	}
	w.bars(monthly, "monthly data")

	w.section("Daily Timeline")
	daily := make([]stats.Count, 0, len(r.Daily))
	for _, d := range r.Daily {
		daily = append(daily, stats.Count{Key: d.Date.Format("2006-01-02"), Count: d.Count})
	}
	w.bars(daily, "daily data")

	w.section("Most Busy Day")
	w.bars(r.BusyDays, "weekday activity")

	w.section("Most Busy Month")
	w.bars(r.BusyMonths, "month activity")

	w.section("Weekly Activity Heatmap")
	w.heatmap(r.Heatmap)

	if r.Active != nil {
		w.section("Most Active Users")
		w.bars(r.Active.Top, "active users")
		w.shares(r.Active.Shares)
	}

	w.section("Word Cloud")
	w.cloud(r.Cloud)

	w.section("Most Common Words")
	w.bars(r.Words, "common words")

	w.section("Emoji Analysis")
	w.emojis(r.Emojis, r.EmojiShares)

	return w.b.String()
}

func (w *writer) labelWidth(counts []stats.Count) int {
	lw := 0
	for _, c := range counts {
		lw = max(lw, runewidth.StringWidth(c.Key))
	}
	return min(lw, maxLabel)
}

// bars draws one horizontal bar per count, scaled to the largest.
func (w *writer) bars(counts []stats.Count, what string) {
	if len(counts) == 0 {
		w.empty(what)
		return
	}
	peak := 0
	for _, c := range counts {
		peak = max(peak, c.Count)
	}
	lw := w.labelWidth(counts)
	numW := len(fmt.Sprint(peak))
	barW := w.opts.Width - lw - numW - 6
	if barW < 1 {
		barW = 1
	}
	for _, c := range counts {
		n := 0
		if peak > 0 {
			n = c.Count * barW / peak
		}
		if n == 0 && c.Count > 0 {
			n = 1
		}
		label := runewidth.FillRight(runewidth.Truncate(c.Key, lw, "…"), lw)
		w.line(fmt.Sprintf("  %s %*d %s", label, numW, c.Count, w.paint(strings.Repeat("█", n), colorBar)))
	}
}

func (w *writer) shares(shares []stats.Share) {
	if len(shares) == 0 {
		return
	}
	keys := make([]stats.Count, 0, len(shares))
	for _, s := range shares {
		keys = append(keys, stats.Count{Key: s.Key})
	}
	lw := w.labelWidth(keys)
	w.line(w.paint("  share of messages:", colorDim))
	for _, s := range shares {
		label := runewidth.FillRight(runewidth.Truncate(s.Key, lw, "…"), lw)
		w.line(fmt.Sprintf("  %s %6.2f%%", label, s.Percent))
	}
}

// heatmapLevels holds quartile thresholds over the non-zero cells.
type heatmapLevels struct {
	L1, L2, L3, L4 int
}

func computeQuartileLevels(sorted []int) heatmapLevels {
	if len(sorted) == 0 {
		return heatmapLevels{L1: 1, L2: 2, L3: 3, L4: 4}
	}
	n := len(sorted)
	return heatmapLevels{
		L1: sorted[0],
		L2: sorted[n/4],
		L3: sorted[n/2],
		L4: sorted[n*3/4],
	}
}

func assignLevel(value int, levels heatmapLevels) int {
	if value <= 0 {
		return 0
	}
	if value <= levels.L2 {
		return 1
	}
	if value <= levels.L3 {
		return 2
	}
	if value <= levels.L4 {
		return 3
	}
	return 4
}

func (w *writer) heatmap(h stats.Heatmap) {
	if h.Total() == 0 {
		w.empty("heatmap data")
		return
	}
	var values []int
	for _, row := range h.Cells {
		for _, c := range row {
			if c > 0 {
				values = append(values, c)
			}
		}
	}
	sort.Ints(values)
	levels := computeQuartileLevels(values)

	var hdr strings.Builder
	hdr.WriteString("  " + strings.Repeat(" ", 10))
	for hour := range h.Periods {
		hdr.WriteString(fmt.Sprintf("%02d", hour))
	}
	w.line(w.paint(hdr.String(), colorDim))

	for d, day := range h.Days {
		var row strings.Builder
		row.WriteString("  " + runewidth.FillRight(day, 10))
		for _, c := range h.Cells[d] {
			row.WriteString(shades[assignLevel(c, levels)])
		}
		w.line(row.String())
	}
	w.line(w.paint(fmt.Sprintf("  columns are hour buckets %s .. %s; darkest = busiest (max %d)",
		h.Periods[0], h.Periods[len(h.Periods)-1], h.Max()), colorDim))
}

// cloudWords caps how many distinct words the cloud shows.
const cloudWords = 40

// cloud draws the word-cloud corpus as text: the most frequent words first,
// weighted by case and color relative to the most frequent one.
func (w *writer) cloud(corpus string) {
	tokens := strings.Fields(corpus)
	if len(tokens) == 0 {
		w.empty("words")
		return
	}

	counts := make(map[string]int)
	var order []string
	for _, t := range tokens {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > cloudWords {
		order = order[:cloudWords]
	}

	peak := counts[order[0]]
	parts := make([]string, 0, len(order))
	for _, word := range order {
		n := counts[word]
		switch {
		case peak > 1 && n*3 > peak*2:
			word = w.paint(strings.ToUpper(word), colorBoldRed)
		case peak > 1 && n*3 > peak:
			word = w.paint(word, colorTitle)
		case peak > 1:
			word = w.paint(word, colorDim)
		}
		parts = append(parts, word)
	}
	for _, l := range wrapLine("  "+strings.Join(parts, " "), w.opts.Width) {
		w.line(l)
	}
}

func (w *writer) emojis(counts []stats.EmojiCount, shares []stats.Share) {
	if len(counts) == 0 {
		w.empty("emojis")
		return
	}
	share := make(map[string]float64, len(shares))
	for _, s := range shares {
		share[s.Key] = s.Percent
	}
	for _, c := range counts {
		name := runewidth.Truncate(c.Name, maxLabel, "…")
		emoji := runewidth.FillRight(c.Emoji, 3)
		if p, ok := share[c.Emoji]; ok {
			w.line(fmt.Sprintf("  %s %5d  %-*s %6.2f%%", emoji, c.Count, maxLabel, name, p))
			continue
		}
		w.line(fmt.Sprintf("  %s %5d  %s", emoji, c.Count, name))
	}
}

// wrapLine breaks a single line into multiple lines that fit within maxWidth
// visible columns, correctly skipping ANSI escape sequences when measuring width.
func wrapLine(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{line}
	}

	var result []string
	var cur strings.Builder
	visW := 0

	i := 0
	for i < len(line) {
		// check for ANSI escape sequence: ESC[ ... m
		if i+1 < len(line) && line[i] == '\033' && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && line[j] != 'm' {
				j++
			}
			if j < len(line) {
				j++ // include 'm'
			}
			cur.WriteString(line[i:j])
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		rw := runewidth.RuneWidth(r)

		if visW+rw > maxWidth {
			result = append(result, cur.String())
			cur.Reset()
			visW = 0
		}

		cur.WriteRune(r)
		visW += rw
		i += size
	}

	if cur.Len() > 0 {
		result = append(result, cur.String())
	}

	if len(result) == 0 {
		return []string{""}
	}
	return result
}

// Plain removes ANSI escape sequences from s.
func Plain(s string) string {
	return ansi.Strip(s)
}
