package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func printBanner() {
	logo := `
 ██████╗ █████╗ ██████╗ ███████╗███████╗███████╗ ██████╗
██╔════╝██╔══██╗██╔══██╗██╔════╝██╔════╝██╔════╝██╔════╝
██║     ███████║██████╔╝███████╗█████╗  ███████╗██║
██║     ██╔══██║██╔═══╝ ╚════██║██╔══╝  ╚════██║██║
╚██████╗██║  ██║██║     ███████║███████╗███████║╚██████╗
 ╚═════╝╚═╝  ╚═╝╚═╝     ╚══════╝╚══════╝╚══════╝ ╚═════╝`

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ccbeff")).
		Bold(true)

	fmt.Println(style.Render(logo))
}
