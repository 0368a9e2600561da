package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jenilutfifauzi/dockbar/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in themes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range theme.Names() {
			th, _ := theme.ByName(name)
			label := theme.Gradient(fmt.Sprintf("%-10s", name), th.Primary, th.Secondary)
			fmt.Printf("%s %s\n", label, swatches(&th))
		}
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func swatches(th *theme.Theme) string {
	block := func(c lipgloss.Color) string {
		return lipgloss.NewStyle().Foreground(c).Render("██")
	}
	return strings.Join([]string{
		block(th.Primary),
		block(th.Secondary),
		block(th.FgBase),
		block(th.BgActive),
		block(th.BadgeBg),
	}, " ")
}
