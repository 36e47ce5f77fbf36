package cli

import (
	"fmt"
	"strings"

	"github.com/buger/goterm"
	"github.com/fatih/color"
)

var (
	// Colors.
	titleColor  = color.New(color.Bold)
	formatColor = color.New(color.FgGreen)
	errorColor  = color.New(color.FgRed)
	mutedColor  = color.New(color.FgHiBlack)

	width = goterm.Width()
)

// Separator printed to cli.
func Separator() {
	separator := strings.Repeat("-", width)
	formatColor.Println(separator)
}

// Title printed to cli.
func Title(text string, args ...any) {
	title := "      " + fmt.Sprintf(text, args...) + "      "
	leftWidth := (width - len(title)) / 2
	separator1 := strings.Repeat("-", leftWidth)
	separator2 := strings.Repeat("-", width-len(title)-len(separator1))
	output := fmt.Sprintf("%s%s%s", separator1, title, separator2)
	formatColor.Println(output)
}

// Row prints a bold leading column followed by muted detail.
func Row(head, detail string) {
	titleColor.Printf("%s ", head)
	mutedColor.Println(detail)
}

// Error printed to cli.
func Error(text string, args ...any) {
	errorColor.Printf("error: %s\n", fmt.Sprintf(text, args...))
}
