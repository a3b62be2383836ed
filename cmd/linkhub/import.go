package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/linkhub/internal/app"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/sources/homepage"
)

var importCmd = &cobra.Command{
	Use:   "import <bookmarks.yaml|services.yaml>",
	Short: "Append the links of a Homepage config file to the profile",
	Long: `Reads a Homepage bookmarks.yaml or services.yaml file and appends one
link per entry to the stored profile. Entries whose URL is already in the
profile are skipped, so running the import twice adds nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log := loadRuntime()
		defer func() { _ = log.Sync() }()

		entries, err := homepage.NewLoader(args[0]).Load()
		if err != nil {
			return err
		}
		links, err := homepage.NewMapper().MapLinks(entries)
		if err != nil {
			return err
		}

		ws, err := app.OpenWorkspace(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := ws.Store.Close(); err != nil {
				log.Warn("failed to close store", logger.Error(err))
			}
		}()

		p, added := ws.Editor.ImportLinks(cmd.Context(), links)
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d entries, profile has %d links\n",
			added, len(entries), len(p.Links))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
