package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"termtap/internal/server"
	"termtap/internal/system"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "127.0.0.1:8789", "address to bind (host:port)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the capture server",
	Long:  "Runs the local capture server that hosts named PTY sessions and serves their recent output to the term command.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		srv := &server.Server{Addr: addr}

		// Handle Ctrl+C
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		system.Logger.Info("starting capture server", "addr", addr)
		if err := srv.Start(ctx); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}
		return nil
	},
}
