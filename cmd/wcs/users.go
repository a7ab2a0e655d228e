package main

import (
	"fmt"

	"github.com/Zuo-Peng/wa-chat-stats/internal/stats"
	"github.com/spf13/cobra"
)

func usersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "users <file>",
		Short: "List the participants of an exported chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := a.loadExport(args[0])
			if err != nil {
				return err
			}

			counts := make(map[string]int)
			for _, m := range msgs {
				if !m.System {
					counts[m.Sender]++
				}
			}

			names := stats.Participants(msgs)
			if len(names) == 0 {
				fmt.Println("No participants found.")
				return nil
			}
			fmt.Printf("%s\t%d\n", stats.Overall, len(msgs))
			for _, n := range names {
				fmt.Printf("%s\t%d\n", n, counts[n])
			}
			return nil
		},
	}
}
