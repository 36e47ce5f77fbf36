package session

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luminaai/lumina/cli/chat/styles"
	"github.com/luminaai/lumina/internal/api"
)

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n")

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderSidebar(),
		m.viewport.View(),
	)
	b.WriteString(body)
	b.WriteString("\n")

	if m.confirmingDelete {
		b.WriteString(m.renderConfirmDialog())
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render("Press Y to confirm, N or Esc to cancel"))
	} else if m.sending {
		b.WriteString(fmt.Sprintf("%s Lumina AI is thinking...\n", m.spinner.View()))
	} else {
		b.WriteString(styles.TextAreaStyle.Render(m.textarea.View()))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return m.alert.Render(b.String())
}

func (m *Model) renderTitle() string {
	thinkingStr := "off"
	if m.opts.ThinkingMode {
		thinkingStr = "on"
	}

	creditsStr := "-"
	if credits := m.controller.Credits(); credits >= 0 {
		creditsStr = fmt.Sprintf("%d", credits)
	}

	chatStr := "new chat"
	if active := m.controller.Active(); active != nil {
		chatStr = styles.Truncate(active.Title, 40)
	}

	title := fmt.Sprintf(" ✨ %s │ 🤖 %s │ 🧠 thinking %s │ 💳 %s ",
		chatStr, m.opts.Model, thinkingStr, creditsStr)

	return styles.TitleStyle.Width(m.width).Render(title)
}

func (m *Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(styles.SidebarHeaderStyle.Render("Recent Conversations"))
	b.WriteString("\n\n")

	activeID := m.controller.ActiveID()
	for _, chat := range m.controller.Chats() {
		title := styles.Truncate(chat.Title, styles.SidebarWidth-4)
		if chat.ID == activeID {
			b.WriteString(styles.SidebarActiveItemStyle.Render("▸ " + title))
		} else {
			b.WriteString(styles.SidebarItemStyle.Render(title))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("Ctrl+P/K switch · Ctrl+N new\nCtrl+E rename · Ctrl+X delete"))

	height := m.viewport.Height
	return styles.SidebarStyle.Height(height).Render(b.String())
}

// renderMessages builds the viewport content from the controller's
// timeline snapshot, or the welcome animation when nothing is active.
func (m *Model) renderMessages() string {
	if m.welcomeVisible() {
		return m.renderWelcome()
	}

	var b strings.Builder
	for i, entry := range m.controller.Entries() {
		if i > 0 {
			b.WriteString("\n\n")
		}
		message := entry.Message
		switch message.Role {
		case api.RoleUser:
			b.WriteString(styles.UserMessageStyle.Render(message.Content))
			if entry.Pending && !m.sending {
				b.WriteString("\n")
				b.WriteString(styles.MessagePendingStyle.Render("⚠ sent, no answer yet"))
			}

		case api.RoleAssistant:
			if message.Thinking != "" {
				b.WriteString(styles.ThoughtLabelStyle.Render("💭 Thought Process:"))
				b.WriteString("\n")
				b.WriteString(styles.ThoughtStyle.Render(message.Thinking))
				b.WriteString("\n")
			}
			b.WriteString(styles.AIMessageStyle.Render(m.renderer.Render(message.Content)))
		}
	}

	if m.sending {
		b.WriteString("\n\n")
		b.WriteString(styles.SpinnerStyle.Render("▋"))
	}

	return b.String()
}

func (m *Model) renderWelcome() string {
	var b strings.Builder
	b.WriteString(styles.WelcomeTitleStyle.Render("How can I help you today?"))
	b.WriteString("\n\n")

	question, answer := m.typewriter.Frame()
	if question != "" {
		b.WriteString(styles.WelcomeQuestionStyle.Render("-> " + question))
		b.WriteString("\n")
	}
	if answer != "" {
		b.WriteString(styles.WelcomeAnswerStyle.Render(answer))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.DimTextStyle.Render("Type a message below to start a conversation."))
	return b.String()
}

func (m *Model) renderConfirmDialog() string {
	title := ""
	if active := m.controller.Active(); active != nil {
		title = active.Title
	}
	var b strings.Builder
	b.WriteString(styles.ConfirmTitleStyle.Render("🗑 Delete this conversation?"))
	b.WriteString("\n\n")
	b.WriteString(styles.DimTextStyle.Render(title))
	return styles.ConfirmBoxStyle.Render(b.String())
}
