package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Zuo-Peng/wa-chat-stats/internal/render"
	"github.com/Zuo-Peng/wa-chat-stats/internal/stats"
	"github.com/Zuo-Peng/wa-chat-stats/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func reportCmd(a *app) *cobra.Command {
	var user string
	var width int
	var plain bool

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Show chat statistics for everyone or one participant",
		Long: `Show the statistics report for an exported chat.

On a terminal this opens an interactive dashboard: pick a participant on the
left, scroll their report on the right, press enter to copy it. When output is
piped, or with --plain, the report is printed as text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := a.loadExport(args[0])
			if err != nil {
				return err
			}
			if err := checkUser(user, msgs); err != nil {
				return err
			}
			opts, err := a.options()
			if err != nil {
				return err
			}

			fd := int(os.Stdout.Fd())
			tty := term.IsTerminal(fd)

			// Interactive TUI when stdout is a terminal; text output for pipes
			if tty && !plain {
				return tui.Run(msgs, opts, filepath.Base(args[0]), user)
			}

			if width <= 0 && tty {
				if w, _, err := term.GetSize(fd); err == nil {
					width = w
				}
			}

			r, err := stats.Build(user, msgs, opts)
			if err != nil {
				return err
			}
			fmt.Print(render.Report(r, render.Options{Width: width, Color: tty}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", stats.Overall, "Participant to report on")
	cmd.Flags().IntVar(&width, "width", 0, "Output width (default terminal width or 80)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print the text report even on a terminal")

	return cmd
}
