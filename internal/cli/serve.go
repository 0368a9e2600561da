package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jenilutfifauzi/dockbar/audit"
)

var (
	serveAddr string
	serveDB   string
	serveDir  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve recorded audit runs over HTTP",
	Long: `Starts an HTTP server exposing the audit history as JSON under
/api/runs, plus the files of a rendered report directory when --reports
is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := audit.OpenStore(serveDB)
		if err != nil {
			return fmt.Errorf("opening audit history: %w", err)
		}
		defer store.Close()

		srv := audit.NewServer(store, serveDir, newLogger())

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down...")
			if err := srv.Shutdown(context.Background()); err != nil {
				fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
			}
		}()

		fmt.Fprintf(os.Stderr, "Serving audit runs on %s\n", serveAddr)
		if err := srv.ListenAndServe(serveAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8321", "listen address")
	serveCmd.Flags().StringVar(&serveDB, "db", "",
		"audit history database path (default: XDG data dir)")
	serveCmd.Flags().StringVar(&serveDir, "reports", "",
		"directory of rendered reports to serve as static files")
	rootCmd.AddCommand(serveCmd)
}
