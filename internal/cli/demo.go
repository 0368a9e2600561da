package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jenilutfifauzi/dockbar/config"
	"github.com/jenilutfifauzi/dockbar/internal/demo"
)

var demoNoWatch bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive dashboard demo",
	Long: `Runs a full-screen dashboard wired around the dock: keyboard
traversal, route-aware pages, live theme cycling, a second dock mounted
at runtime, and config reload on file change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var watcher *config.Watcher
		if path := config.FindPath(cfgFile); path != "" && !demoNoWatch {
			watcher, err = config.Watch(ctx, path, newLogger())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: config watching disabled: %v\n", err)
			}
		}

		m, err := demo.New(cfg, watcher)
		if err != nil {
			return fmt.Errorf("building demo: %w", err)
		}

		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running demo: %w", err)
		}
		return nil
	},
}

func init() {
	demoCmd.Flags().BoolVar(&demoNoWatch, "no-watch", false, "do not reload the config on file change")
	rootCmd.AddCommand(demoCmd)
}
