package render

import (
	"strings"
	"testing"

	"github.com/Zuo-Peng/wa-chat-stats/internal/parse"
	"github.com/Zuo-Peng/wa-chat-stats/internal/stats"
	"github.com/mattn/go-runewidth"
)

const export = "1/5/24, 10:00 AM - Alice: pizza tonight? 😀\n" +
	"1/5/24, 10:05 AM - Bob: pizza yes\n" +
	"1/6/24, 11:30 PM - Alice: <Media omitted>\n" +
	"1/6/24, 11:31 PM - Bob added Carol\n"

func buildReport(t *testing.T, user string) stats.Report {
	t.Helper()
	r, err := stats.Build(user, parse.Parse(export), stats.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestReport_Sections(t *testing.T) {
	out := Report(buildReport(t, stats.Overall), Options{Width: 60})
	for _, want := range []string{
		"--- Overall ---",
		"== Top Statistics ==",
		"Total Messages: 4",
		"Media Shared:   1",
		"== Monthly Timeline ==",
		"January-2024",
		"2024-01-06",
		"== Most Busy Day ==",
		"Friday",
		"== Weekly Activity Heatmap ==",
		"== Most Active Users ==",
		"66.67%",
		"== Word Cloud ==",
		"PIZZA",
		"== Most Common Words ==",
		"pizza",
		"😀",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("colors emitted with Color=false")
	}
}

func TestReport_PerUserHasNoActiveUsers(t *testing.T) {
	out := Report(buildReport(t, "Bob"), Options{})
	if strings.Contains(out, "Most Active Users") {
		t.Error("per-user report should not list most active users")
	}
	if !strings.Contains(out, "(no emojis)") {
		t.Errorf("expected empty emoji marker\n%s", out)
	}
}

func TestReport_Empty(t *testing.T) {
	out := Report(buildReport(t, "Zed"), Options{})
	if !strings.Contains(out, "No messages found for this selection.") {
		t.Errorf("got %q", out)
	}
}

func TestReport_Width(t *testing.T) {
	out := Report(buildReport(t, stats.Overall), Options{Width: 50})
	section := ""
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "== ") {
			section = l
			continue
		}
		if strings.Contains(section, "Heatmap") {
			continue // the grid has a fixed width
		}
		if w := runewidth.StringWidth(l); w > 50 {
			t.Errorf("%s: line wider than 50 (%d): %q", section, w, l)
		}
	}
}

func TestReport_ColorStripped(t *testing.T) {
	r := buildReport(t, stats.Overall)
	colored := Report(r, Options{Color: true})
	if !strings.Contains(colored, "\033[") {
		t.Fatal("expected ANSI colors")
	}
	if Plain(colored) != Report(r, Options{}) {
		t.Error("Plain(colored) should equal the uncolored render")
	}
}

func TestAssignLevel(t *testing.T) {
	levels := computeQuartileLevels([]int{1, 2, 3, 4, 5, 6, 7, 8})
	tests := map[int]int{0: 0, 1: 1, 3: 1, 4: 2, 5: 2, 7: 3, 8: 4}
	for v, want := range tests {
		if got := assignLevel(v, levels); got != want {
			t.Errorf("assignLevel(%d): got %d, want %d", v, got, want)
		}
	}
}

func TestWrapLine(t *testing.T) {
	got := wrapLine("abcdef", 4)
	if len(got) != 2 || got[0] != "abcd" || got[1] != "ef" {
		t.Errorf("got %q", got)
	}
	got = wrapLine("\033[1mab\033[0mcd", 2)
	if len(got) != 2 || Plain(got[0]) != "ab" {
		t.Errorf("ANSI should not count toward width: %q", got)
	}
}

func TestReport_WordCloudUsesCorpus(t *testing.T) {
	r := buildReport(t, stats.Overall)
	r.Cloud = "lasagna lasagna lasagna tiramisu espresso espresso"
	out := Report(r, Options{Width: 80})

	section := ""
	var cloud []string
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "== ") {
			section = l
			continue
		}
		if section == "== Word Cloud ==" && l != "" {
			cloud = append(cloud, l)
		}
	}
	if len(cloud) != 1 {
		t.Fatalf("got cloud lines %q, want one", cloud)
	}
	if got, want := cloud[0], "  LASAGNA espresso tiramisu"; got != want {
		t.Errorf("cloud: got %q, want %q", got, want)
	}
}

func TestReport_WordCloudFlatCorpus(t *testing.T) {
	r := buildReport(t, stats.Overall)
	r.Cloud = "alpha beta gamma"
	out := Report(r, Options{})
	if !strings.Contains(out, "  alpha beta gamma\n") {
		t.Errorf("single-use words should keep their case\n%s", out)
	}

	r.Cloud = ""
	out = Report(r, Options{})
	if !strings.Contains(out, "== Word Cloud ==\n  (no words)") {
		t.Errorf("expected empty cloud marker\n%s", out)
	}
}
