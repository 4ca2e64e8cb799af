package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wezzle/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows a list of all registered game modes.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	idW, titleW := 2, 5 // header widths
	for _, m := range modes {
		idW = max(idW, runewidth.StringWidth(m.ID))
		titleW = max(titleW, runewidth.StringWidth(m.Title))
	}

	fmt.Printf("  %s  %s  %s\n", runewidth.FillRight("ID", idW), runewidth.FillRight("Title", titleW), "Description")
	fmt.Printf("  %s  %s  %s\n", runewidth.FillRight("--", idW), runewidth.FillRight("-----", titleW), "-----------")
	for _, m := range modes {
		fmt.Printf("  %s  %s  %s\n", runewidth.FillRight(m.ID, idW), runewidth.FillRight(m.Title, titleW), m.Description)
	}

	fmt.Println()
	fmt.Println("Run 'wezzle play <id>' to play a mode.")
}
