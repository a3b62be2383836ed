package main

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/linkhub/internal/config"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
)

// rootCmd is the base command; every subcommand registers itself in its
// own init().
var rootCmd = &cobra.Command{
	Use:   "linkhub",
	Short: "Link-in-bio profile editor",
	Long: `LinkHub serves a link-in-bio profile editor: an ordered list of links
with a name, bio, theme and accent color, a public share URL and its QR code.

Configuration is read from LINKHUB_* environment variables.`,
	SilenceUsage: true,
}

// loadRuntime loads the configuration and builds the logger for commands
// that touch the store.
func loadRuntime() (*config.Config, logger.Logger) {
	cfg := config.Load()
	return cfg, logger.New(cfg.LogLevel, cfg.PrettyLog)
}
