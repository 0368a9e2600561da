package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/jenilutfifauzi/dockbar/config"
	"github.com/jenilutfifauzi/dockbar/item"
	"github.com/jenilutfifauzi/dockbar/theme"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with an interactive wizard",
	Long:  `Walks through theme, icon, and item choices and writes a dockbar config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runWizard() (*config.Config, error) {
	fmt.Println("Welcome to dockbar! Let's set up your navigation bar.")
	fmt.Println()

	cfg := config.Default()

	// 1. Theme.
	themePrompt := promptui.Select{
		Label: "Select a theme",
		Items: theme.Names(),
	}
	_, themeName, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.Theme = themeName

	// 2. Icon style.
	iconPrompt := promptui.Select{
		Label: "Select an icon style",
		Items: []string{"unicode", "nerd", "none"},
	}
	_, icons, err := iconPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("icon selection: %w", err)
	}
	cfg.Icons = icons

	// 3. Compact mode.
	compact, err := confirm("Compact bar (icons only)")
	if err != nil {
		return nil, err
	}
	cfg.Compact = compact

	// 4. Audit level.
	levelPrompt := promptui.Select{
		Label: "WCAG conformance level for audits",
		Items: []string{string(theme.AA), string(theme.AAA)},
	}
	_, level, err := levelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("level selection: %w", err)
	}
	cfg.Audit.Level = level

	// 5. Items.
	useSample, err := confirm("Use the sample admin items")
	if err != nil {
		return nil, err
	}
	if !useSample {
		items, err := promptItems()
		if err != nil {
			return nil, err
		}
		if len(items) > 0 {
			cfg.Items = items
		}
	}

	// 6. Destination.
	pathPrompt := promptui.Prompt{
		Label:   "Config file path",
		Default: "dockbar.yaml",
	}
	path, err := pathPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("config path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	fmt.Println(`Run "dockbar demo" to see the bar and "dockbar audit" to check it.`)
	return cfg, nil
}

// promptItems collects navigation items until the label is left blank.
func promptItems() ([]config.ItemConfig, error) {
	var items []config.ItemConfig
	for {
		labelPrompt := promptui.Prompt{
			Label: fmt.Sprintf("Item %d label (blank to finish)", len(items)+1),
		}
		label, err := labelPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("item label: %w", err)
		}
		label = strings.TrimSpace(label)
		if label == "" {
			return items, nil
		}

		routePrompt := promptui.Prompt{
			Label:   "Route",
			Default: slugRoute(label),
		}
		route, err := routePrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("item route: %w", err)
		}

		iconPrompt := promptui.Prompt{
			Label: "Icon name (blank for none)",
			Validate: func(s string) error {
				if s == "" || item.KnownIcon(s) {
					return nil
				}
				return fmt.Errorf("unknown icon %q", s)
			},
		}
		icon, err := iconPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("item icon: %w", err)
		}

		items = append(items, config.ItemConfig{
			Label: label,
			Route: route,
			Icon:  icon,
		})
	}
}

// confirm asks a yes/no question. promptui reports "no" as ErrAbort.
func confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	default:
		return false, fmt.Errorf("%s: %w", strings.ToLower(label), err)
	}
}

func slugRoute(label string) string {
	slug := strings.ToLower(strings.TrimSpace(label))
	slug = strings.ReplaceAll(slug, " ", "-")
	return "/" + slug
}
