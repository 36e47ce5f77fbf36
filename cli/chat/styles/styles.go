package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout constants
const (
	// Textarea
	MinTextareaHeight   = 3
	MaxTextareaHeight   = 12
	TextAreaPaddingLeft = 1

	// Viewport
	MinViewportHeight = 1

	// Layout
	InputBorderHeight  = 2
	HeaderHeight       = 2
	SidebarWidth       = 28
	MessagePaddingLeft = 2

	// Confirmation dialog
	ConfirmPaddingHorizontal = 2
	ConfirmPaddingVertical   = 1
	ConfirmMarginTop         = 1

	// Help
	HelpMarginTop = 1

	// Truncation
	TruncateSuffix       = "..."
	TruncateSuffixLength = 3
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#00F2FE") // Cyan, the Lumina accent
	SecondaryColor = lipgloss.Color("#7000FF") // Purple
	AccentColor    = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#EF4444") // Red
	MutedColor     = lipgloss.Color("#6B7280") // Gray
	TextColor      = lipgloss.Color("#ECECEC")
	DimTextColor   = lipgloss.Color("#9CA3AF")
	ThoughtColor   = lipgloss.Color("#FCD34D")
	BorderColor    = lipgloss.Color("#4B5563")
)

// Title bar
var (
	TitleStyle = lipgloss.NewStyle().
			Background(SecondaryColor).
			Foreground(TextColor).
			Bold(true)
)

// Sidebar
var (
	SidebarStyle = lipgloss.NewStyle().
			Width(SidebarWidth).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(BorderColor)

	SidebarHeaderStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Bold(true)

	SidebarItemStyle = lipgloss.NewStyle().
				Foreground(DimTextColor).
				PaddingLeft(1)

	SidebarActiveItemStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(1)
)

// Messages.
var (
	messageStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())

	UserMessageStyle = lipgloss.NewStyle().
				Inherit(messageStyle).
				BorderForeground(SecondaryColor).
				MarginLeft(10)

	AIMessageStyle = lipgloss.NewStyle().
			Inherit(messageStyle).
			BorderForeground(PrimaryColor).
			MarginRight(10)

	MessagePendingStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Italic(true).
				PaddingLeft(MessagePaddingLeft)
)

// Reasoning/thought
var (
	ThoughtLabelStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Italic(true)

	ThoughtStyle = lipgloss.NewStyle().
			Foreground(ThoughtColor).
			Italic(true).
			PaddingLeft(MessagePaddingLeft)

	DimTextStyle = lipgloss.NewStyle().
			Foreground(DimTextColor)
)

// Welcome screen
var (
	WelcomeTitleStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	WelcomeQuestionStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	WelcomeAnswerStyle = lipgloss.NewStyle().
				Foreground(DimTextColor)
)

// Error
var (
	ErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorColor).
		Bold(true)
)

// Input area
var (
	TextAreaStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SecondaryColor).
		PaddingLeft(TextAreaPaddingLeft)
)

// Spinner
var (
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(PrimaryColor)
)

// Help text
var (
	HelpStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true).
		MarginTop(HelpMarginTop)
)

// Confirmation dialog
var (
	ConfirmBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(AccentColor).
			Padding(ConfirmPaddingVertical, ConfirmPaddingHorizontal).
			MarginTop(ConfirmMarginTop)

	ConfirmTitleStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true)
)

// MessageHorizontalFrameSize returns the horizontal frame size of AI messages.
func MessageHorizontalFrameSize() int {
	return AIMessageStyle.GetHorizontalFrameSize()
}

// Truncate truncates a string to the specified length with a suffix.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-TruncateSuffixLength]) + TruncateSuffix
}
