package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-splash/internal/registry"
)

var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true)
	listIDStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	listHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available widgets",
	Long:  `Shows a list of all splash widgets this build knows about.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	widgets := registry.List()

	if len(widgets) == 0 {
		fmt.Println("No widgets available.")
		return
	}

	fmt.Println(listHeaderStyle.Render("Available widgets:"))
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, w := range widgets {
		if len(w.ID) > maxIDLen {
			maxIDLen = len(w.ID)
		}
	}

	// Pad before styling so ANSI codes do not skew the columns
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, w := range widgets {
		id := fmt.Sprintf("%-*s", maxIDLen, w.ID)
		fmt.Printf("  %s  %s\n", listIDStyle.Render(id), w.Title)
	}

	fmt.Println()
	fmt.Println(listHintStyle.Render("Run 'splash play <id>' to try one."))
}
