package main

import (
	"fmt"
	"time"

	"github.com/Zuo-Peng/wa-chat-stats/internal/parse"
	"github.com/Zuo-Peng/wa-chat-stats/internal/scan"
	"github.com/Zuo-Peng/wa-chat-stats/internal/stats"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func scanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [dir]",
		Short: "Find WhatsApp exports under a directory",
		Long:  "Find WhatsApp exports under dir (default: export_root from the config), newest first.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := a.cfg.ExportRoot
			if len(args) == 1 {
				root = args[0]
			}

			files, err := scan.ScanRoot(root)
			if err != nil {
				return fmt.Errorf("scan %s: %w", root, err)
			}
			a.log.Debug().Str("root", root).Int("files", len(files)).Msg("scan complete")

			if len(files) == 0 {
				fmt.Printf("No exports found under %s\n", root)
				return nil
			}

			for _, f := range files {
				msgs, err := a.loadExport(f.Path)
				if err != nil {
					a.log.Warn().Err(err).Str("file", f.Path).Msg("skipping unreadable export")
					continue
				}
				fmt.Println(formatExport(f, msgs))
			}
			return nil
		},
	}
}

// formatExport is one tab-separated scan row: modified time, path, size,
// message and participant counts.
func formatExport(f scan.FileInfo, msgs []parse.Message) string {
	return fmt.Sprintf("%s\t%s\t%s\t%d messages\t%d participants",
		time.Unix(f.Mtime, 0).Format("2006-01-02 15:04"),
		f.Path,
		humanize.Bytes(uint64(f.Size)),
		len(msgs),
		len(stats.Participants(msgs)),
	)
}
