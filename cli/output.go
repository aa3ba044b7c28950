package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
)

const banner = `  __  __ ____   ____
 |  \/  |  _ \ / __ \
 | \  / | |_) | |  | |
 | |\/| |  __/| |  | |
 | |  | | |    \ \__/ /
 |_|  |_|_|     \____/

 Your terminal password manager`

func printBanner() {
	fmt.Println(bannerStyle.Render(banner))
}

func printOK(format string, args ...any) {
	fmt.Println(okStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

func printError(format string, args ...any) {
	fmt.Println(errStyle.Render("Error: " + fmt.Sprintf(format, args...)))
}

func printWarn(format string, args ...any) {
	fmt.Println(warnStyle.Render(fmt.Sprintf(format, args...)))
}

func printDim(format string, args ...any) {
	fmt.Println(dimStyle.Render(fmt.Sprintf(format, args...)))
}
