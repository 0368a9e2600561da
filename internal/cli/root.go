// Package cli implements the dockbar command line interface.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "dockbar",
	Short: "Accessible bottom navigation bars for terminal dashboards",
	Long: `Dockbar renders a mobile-style bottom navigation bar for terminal
dashboards: route-aware active markers, wrap-around keyboard traversal,
badges, and a WCAG contrast audit for its color themes.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file path (default: XDG config dir, ./dockbar.toml, ./dockbar.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// newLogger returns the CLI logger. Quiet by default so TUI and report
// output stay clean; --verbose enables text logs on stderr.
func newLogger() *slog.Logger {
	if verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
