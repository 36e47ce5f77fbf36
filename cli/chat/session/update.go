package session

import (
	"fmt"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"
	"golang.design/x/clipboard"

	"github.com/luminaai/lumina/cli/chat/types"
	"github.com/luminaai/lumina/internal/api"
	"github.com/luminaai/lumina/internal/controller"
)

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Always update the alert model with every message
	outAlert, alertCmd := m.alert.Update(msg)
	m.alert = outAlert.(bubbleup.AlertModel)
	if alertCmd != nil {
		cmds = append(cmds, alertCmd)
	}

	// Log for non-tick messages only
	defer func() {
		switch msg.(type) {
		case spinner.TickMsg, cursor.BlinkMsg, types.TypewriterTickMsg, tea.MouseMsg:
		// Skip logging for ticks
		default:
			log.Info("update completed", "msg_type", fmt.Sprintf("%T", msg), "send_state", m.controller.SendState().String())
		}
	}()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if model, cmd, handled := m.handleKey(msg); handled {
			return model, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalculateLayout()

	case types.RefreshedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.ErrorKey, msg.Err.Error()))
		}
		m.refreshViewport(true)

	case types.TimelineLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.ErrorKey, msg.Err.Error()))
		}
		m.refreshViewport(true)

	case types.SendDoneMsg:
		m.sending = false
		switch {
		case msg.Err == nil:
		case controller.IsDropped(msg.Err):
			// Empty input or an already-outstanding send: no effect.
		default:
			m.err = msg.Err
			cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.ErrorKey, msg.Err.Error()))
		}
		m.refreshViewport(true)

	case types.RenamedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.ErrorKey, msg.Err.Error()))
		}

	case types.RemovedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.ErrorKey, msg.Err.Error()))
		}
		m.refreshViewport(true)

	case types.TypewriterTickMsg:
		if m.welcomeVisible() {
			m.typewriter.Tick()
		}
		cmds = append(cmds, m.typewriterTickCmd())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
		if m.sending || m.loading {
			m.refreshViewport(false)
		}
	}

	if !m.sending && !m.confirmingDelete {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
		m.adjustTextareaHeight()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKey processes key input; handled reports whether the key was
// consumed and the generic component updates should be skipped.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	// Delete confirmation intercepts everything.
	if m.confirmingDelete {
		switch msg.String() {
		case "y", "Y":
			m.confirmingDelete = false
			return m, m.removeActive(), true
		case "n", "N", "esc":
			m.confirmingDelete = false
			return m, nil, true
		}
		return m, nil, true
	}

	// Rename mode repurposes the textarea for the new title.
	if m.renaming {
		switch msg.Type {
		case tea.KeyEnter:
			title := m.textarea.Value()
			m.renaming = false
			m.textarea.Reset()
			m.textarea.SetValue(m.stashedInput)
			m.stashedInput = ""
			m.textarea.Placeholder = "Message Lumina AI... (Ctrl+J to send, Ctrl+N for a new chat, Ctrl+C to quit)"
			return m, m.renameActive(title), true
		case tea.KeyEsc:
			m.renaming = false
			m.textarea.Reset()
			m.textarea.SetValue(m.stashedInput)
			m.stashedInput = ""
			m.textarea.Placeholder = "Message Lumina AI... (Ctrl+J to send, Ctrl+N for a new chat, Ctrl+C to quit)"
			return m, nil, true
		}
		return m, nil, false
	}

	// History navigation.
	if msg.Alt && !m.sending {
		switch msg.String() {
		case "alt+p":
			if entry, ok := m.history.Previous(m.textarea.Value()); ok {
				m.textarea.SetValue(entry)
				m.historyNavigating = true
				m.adjustTextareaHeight()
				return m, nil, true
			}
		case "alt+n":
			if entry, ok := m.history.Next(); ok {
				m.textarea.SetValue(entry)
				m.historyNavigating = true
				m.adjustTextareaHeight()
				return m, nil, true
			}
		case "alt+w":
			if content, ok := m.lastAssistantContent(); ok {
				clipboard.Write(clipboard.FmtText, []byte(content))
				return m, m.alert.NewAlertCmd(bubbleup.InfoKey, "Copied to clipboard!"), true
			}
		}
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit, true

	case tea.KeyCtrlJ:
		if cmd := m.sendMessage(); cmd != nil {
			m.refreshViewport(true)
			return m, cmd, true
		}
		return m, nil, true

	case tea.KeyCtrlN:
		// "New chat": clear the active selection; the conversation itself
		// is created lazily on the first send.
		if m.sending {
			return m, nil, true
		}
		return m, m.setActiveCmd(0), true

	case tea.KeyCtrlP:
		// Switching conversations mid-send would detach the in-flight
		// exchange from the visible timeline.
		if m.sending {
			return m, nil, true
		}
		return m, m.cycleConversation(-1), true

	case tea.KeyCtrlK:
		if m.sending {
			return m, nil, true
		}
		return m, m.cycleConversation(1), true

	case tea.KeyCtrlX:
		if m.controller.ActiveID() != 0 {
			m.confirmingDelete = true
		}
		return m, nil, true

	case tea.KeyCtrlE:
		if active := m.controller.Active(); active != nil {
			m.renaming = true
			m.stashedInput = m.textarea.Value()
			m.textarea.Reset()
			m.textarea.SetValue(active.Title)
			m.textarea.Placeholder = "New title... (Enter to save, Esc to cancel)"
		}
		return m, nil, true

	case tea.KeyCtrlT:
		m.opts.ThinkingMode = !m.opts.ThinkingMode
		return m, nil, true

	case tea.KeyCtrlG:
		if m.opts.Model == api.ModelGemini {
			m.opts.Model = api.ModelOpenAI
		} else {
			m.opts.Model = api.ModelGemini
		}
		return m, nil, true

	case tea.KeyEnter:
		if m.historyNavigating {
			m.history.Reset()
			m.historyNavigating = false
		}
	}

	if m.historyNavigating {
		switch msg.Type {
		case tea.KeyRunes, tea.KeyBackspace, tea.KeyDelete:
			m.history.Reset()
			m.historyNavigating = false
		}
	}

	return m, nil, false
}

// lastAssistantContent returns the content of the newest assistant message.
func (m *Model) lastAssistantContent() (string, bool) {
	entries := m.controller.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Message.Role == api.RoleAssistant {
			return entries[i].Message.Content, true
		}
	}
	return "", false
}
