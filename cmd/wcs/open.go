package main

import (
	"github.com/Zuo-Peng/wa-chat-stats/internal/open"
	"github.com/Zuo-Peng/wa-chat-stats/internal/stats"
	"github.com/spf13/cobra"
)

func openCmd(a *app) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "open <file>",
		Short: "Open the export in $EDITOR at a participant's first message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := a.loadExport(args[0])
			if err != nil {
				return err
			}
			if err := checkUser(user, msgs); err != nil {
				return err
			}

			line, err := open.FirstLine(msgs, user)
			if err != nil {
				return err
			}
			a.log.Debug().Str("user", user).Int("line", line).Msg("opening export")
			return open.OpenExport(args[0], line)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", stats.Overall, "Participant whose first message to jump to")

	return cmd
}
