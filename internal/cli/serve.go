package cli

import (
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pdfdoctor/internal/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "address to bind (host:port, default from config)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve dependency health over HTTP",
	Long:  "Start an HTTP server with /api/health (503 while required tools are missing), /api/deps, /api/deps/:tool, /api/guide and /api/version.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = conf.Addr
		}
		srv := &server.Server{Addr: addr, Config: conf}

		// Handle Ctrl+C
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if err := srv.Start(ctx); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}
		return nil
	},
}
