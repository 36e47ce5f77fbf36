package session

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"

	"github.com/luminaai/lumina/cli/chat/styles"
	"github.com/luminaai/lumina/cli/chat/types"
	"github.com/luminaai/lumina/configuration"
	"github.com/luminaai/lumina/internal/controller"
	"github.com/luminaai/lumina/internal/debug"
	"github.com/luminaai/lumina/internal/history"
	"github.com/luminaai/lumina/internal/markdown"
	"github.com/luminaai/lumina/internal/typewriter"
)

const typewriterTickInterval = 90 * time.Millisecond

var log = debug.GetLogger()

// Model represents the Bubble Tea model for the chat session.
type Model struct {
	// Core dependencies
	ctx        context.Context
	config     *configuration.Config
	controller *controller.Controller
	opts       types.ChatOptions

	// UI components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *markdown.Renderer

	// UI state
	width            int
	height           int
	ready            bool
	sending          bool
	loading          bool
	confirmingDelete bool
	renaming         bool
	stashedInput     string
	err              error
	quitting         bool

	// Welcome screen animation
	typewriter *typewriter.Typewriter

	// Alert notifications.
	alert bubbleup.AlertModel

	// Input history
	history           *history.History
	historyNavigating bool
}

// welcomeExchanges are the landing page's sample prompts, replayed by the
// typewriter while no conversation is active.
var welcomeExchanges = []typewriter.Exchange{
	{
		Question: "Explain quantum computing in simple terms",
		Answer:   "Think of a coin spinning on a table: until it lands it is both heads and tails. Qubits work the same way, letting a quantum computer test many answers at once.",
	},
	{
		Question: "Write a professional resignation letter",
		Answer:   "Dear team, after much reflection I have decided to move on. I am grateful for everything we built together...",
	},
	{
		Question: "How do I make a chocolate cake?",
		Answer:   "Cream the butter and sugar, fold in cocoa, flour and eggs, then bake at 180°C for 30 minutes.",
	},
}

// New creates a new chat session model.
func New(ctx context.Context, config *configuration.Config, chatController *controller.Controller, opts types.ChatOptions) (*Model, error) {
	ta := textarea.New()
	ta.Placeholder = "Message Lumina AI... (Ctrl+J to send, Ctrl+N for a new chat, Ctrl+C to quit)"
	ta.Focus()
	ta.CharLimit = 0
	ta.SetHeight(styles.MinTextareaHeight)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(true)
	ta.Prompt = ""

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	renderer, err := markdown.NewRenderer(80)
	if err != nil {
		return nil, err
	}

	alert := bubbleup.NewAlertModel(25, true, 1)

	return &Model{
		ctx:        ctx,
		config:     config,
		controller: chatController,
		opts:       opts,
		textarea:   ta,
		spinner:    sp,
		renderer:   renderer,
		alert:      *alert,
		history:    history.NewHistory(),
		typewriter: typewriter.New(welcomeExchanges),
		loading:    true,
	}, nil
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.alert.Init(),
		m.refreshCmd(),
		m.typewriterTickCmd(),
	)
}

// welcomeVisible reports whether the welcome screen should render in place
// of the message viewport.
func (m *Model) welcomeVisible() bool {
	return m.controller.ActiveID() == 0 && len(m.controller.Entries()) == 0
}
