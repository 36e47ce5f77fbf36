package session

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/luminaai/lumina/cli/chat/types"
	"github.com/luminaai/lumina/internal/controller"
)

// refreshCmd loads the conversation list from the backend.
func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return types.RefreshedMsg{Err: m.controller.Refresh(m.ctx)}
	}
}

// setActiveCmd switches the active conversation and loads its timeline.
func (m *Model) setActiveCmd(chatID int64) tea.Cmd {
	return func() tea.Msg {
		return types.TimelineLoadedMsg{
			ChatID: chatID,
			Err:    m.controller.SetActive(m.ctx, chatID),
		}
	}
}

// sendMessage runs the optimistic send cycle. The controller rejects empty
// input and in-flight sends; both are dropped silently here as well.
func (m *Model) sendMessage() tea.Cmd {
	userInput := strings.TrimSpace(m.textarea.Value())
	if userInput == "" || m.sending {
		return nil
	}

	m.history.Add(userInput)
	m.historyNavigating = false
	m.textarea.Reset()
	m.sending = true
	m.err = nil

	opts := m.opts
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		err := m.controller.Send(m.ctx, userInput, controller.SendOptions{
			Model:        opts.Model,
			ThinkingMode: opts.ThinkingMode,
		})
		return types.SendDoneMsg{Err: err}
	})
}

// renameActive renames the active conversation to the given title.
func (m *Model) renameActive(title string) tea.Cmd {
	chatID := m.controller.ActiveID()
	if chatID == 0 {
		return nil
	}
	return func() tea.Msg {
		return types.RenamedMsg{Err: m.controller.Rename(m.ctx, chatID, title)}
	}
}

// removeActive deletes the active conversation. Confirmation has already
// happened in the update loop.
func (m *Model) removeActive() tea.Cmd {
	chatID := m.controller.ActiveID()
	if chatID == 0 {
		return nil
	}
	return func() tea.Msg {
		return types.RemovedMsg{Err: m.controller.Remove(m.ctx, chatID)}
	}
}

// typewriterTickCmd schedules the next welcome animation frame.
func (m *Model) typewriterTickCmd() tea.Cmd {
	return tea.Tick(typewriterTickInterval, func(time.Time) tea.Msg {
		return types.TypewriterTickMsg{}
	})
}

// cycleConversation moves the active selection up or down the sidebar.
func (m *Model) cycleConversation(delta int) tea.Cmd {
	chats := m.controller.Chats()
	if len(chats) == 0 {
		return nil
	}
	activeID := m.controller.ActiveID()
	index := -1
	for i, chat := range chats {
		if chat.ID == activeID {
			index = i
			break
		}
	}
	index += delta
	if index < 0 {
		index = 0
	}
	if index >= len(chats) {
		index = len(chats) - 1
	}
	if chats[index].ID == activeID {
		return nil
	}
	m.loading = true
	return m.setActiveCmd(chats[index].ID)
}
