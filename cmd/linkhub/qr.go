package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/linkhub/internal/app"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/share"
)

var qrOutput string

var qrCmd = &cobra.Command{
	Use:   "qr",
	Short: "Write the share URL as a PNG QR code",
	Long: `Resolves the public share URL (creating it on first use), prints it and
writes its QR code in the profile theme. The file defaults to
<name>-qrcode.png in the current directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log := loadRuntime()
		defer func() { _ = log.Sync() }()

		ws, err := app.OpenWorkspace(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := ws.Store.Close(); err != nil {
				log.Warn("failed to close store", logger.Error(err))
			}
		}()

		url, err := share.NewResolver(ws.Store, cfg.PublicURL).Resolve(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to resolve share url: %w", err)
		}

		p := ws.Index.Profile()
		png, err := share.EncodeQR(url, p.Theme, cfg.QRSize)
		if err != nil {
			return err
		}

		out := qrOutput
		if out == "" {
			out = share.QRFilename(p.Name)
		}
		if err := os.WriteFile(out, png, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), url)
		fmt.Fprintf(cmd.OutOrStdout(), "QR code written to %s\n", out)
		return nil
	},
}

func init() {
	qrCmd.Flags().StringVarP(&qrOutput, "output", "o", "", "PNG file to write")
	rootCmd.AddCommand(qrCmd)
}
