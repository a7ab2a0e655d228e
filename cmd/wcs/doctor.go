package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/wa-chat-stats/internal/parse"
	"github.com/Zuo-Peng/wa-chat-stats/internal/scan"
	"github.com/spf13/cobra"
)

func doctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [file]",
		Short: "Self-check: verify config, stop words, and parsing of an export",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("=== Config ===")
			if _, err := os.Stat(a.cfg.Path()); err != nil {
				fmt.Printf("  File: %s (NOT FOUND, using defaults)\n", a.cfg.Path())
			} else {
				fmt.Printf("  File: %s (OK)\n", a.cfg.Path())
			}
			fmt.Printf("  Century pivot: %d\n", a.cfg.CenturyPivot)
			fmt.Printf("  Top words/users/emojis: %d/%d/%d\n", a.cfg.TopWords, a.cfg.TopUsers, a.cfg.TopEmojis)

			fmt.Println("\n=== Stop Words ===")
			opts, err := a.options()
			if err != nil {
				fmt.Printf("  error: %v\n", err)
			} else if a.cfg.StopWordsFile != "" {
				fmt.Printf("  %s: %d words\n", a.cfg.StopWordsFile, len(opts.StopWords))
			} else {
				fmt.Printf("  built-in: %d words\n", len(opts.StopWords))
			}

			fmt.Println("\n=== Export Root ===")
			checkDir("Exports", a.cfg.ExportRoot)
			if files, err := scan.ScanRoot(a.cfg.ExportRoot); err == nil {
				fmt.Printf("  Export files: %d\n", len(files))
			}

			if len(args) == 0 {
				return nil
			}

			fmt.Println("\n=== Export ===")
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read export: %w", err)
			}
			h := checkExport(string(data), a.cfg.CenturyPivot)

			fmt.Printf("  File: %s\n", path)
			fmt.Printf("  Timestamp prefixes: %d\n", h.Prefixes)
			fmt.Printf("  Records:            %d\n", h.Records)
			if h.Parity() {
				fmt.Println("  Status: OK (parity)")
			} else {
				fmt.Printf("  Status: MISMATCH (prefixes=%d, records=%d)\n", h.Prefixes, h.Records)
			}
			fmt.Printf("  Unparsed timestamps: %d\n", h.Unparsed)
			fmt.Printf("  System rows:         %d\n", h.System)
			return nil
		},
	}
}

// exportHealth is what doctor reports about one export.
type exportHealth struct {
	Prefixes int // timestamp prefixes found in the text
	Records  int
	Unparsed int // records whose timestamp did not parse
	System   int
}

// Parity reports whether every prefix produced exactly one record.
func (h exportHealth) Parity() bool {
	return h.Prefixes == h.Records
}

func checkExport(text string, pivot int) exportHealth {
	p := parse.Parser{CenturyPivot: pivot}
	msgs := p.Parse(text)

	h := exportHealth{Prefixes: parse.CountPrefixes(text), Records: len(msgs)}
	for _, m := range msgs {
		if m.Time == nil {
			h.Unparsed++
		}
		if m.System {
			h.System++
		}
	}
	return h
}

func checkDir(name, path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s: %s (NOT FOUND)\n", name, path)
	} else if !info.IsDir() {
		fmt.Printf("  %s: %s (NOT A DIRECTORY)\n", name, path)
	} else {
		fmt.Printf("  %s: %s (OK)\n", name, path)
	}
}
