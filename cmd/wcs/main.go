package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/wa-chat-stats/internal/config"
	wlog "github.com/Zuo-Peng/wa-chat-stats/internal/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "dev"

// app carries what every command needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log zerolog.Logger
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	a.log = wlog.New(level, os.Stderr)
	a.log.Debug().Str("config", cfg.Path()).Str("level", level).Msg("config loaded")
	return nil
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:               "wcs",
		Short:             "WhatsApp chat stats - analyse exported WhatsApp chats",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default ~/.config/wcs/config.toml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(reportCmd(a))
	rootCmd.AddCommand(usersCmd(a))
	rootCmd.AddCommand(scanCmd(a))
	rootCmd.AddCommand(openCmd(a))
	rootCmd.AddCommand(doctorCmd(a))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
