package session

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/luminaai/lumina/cli/chat/styles"
)

// adjustTextareaHeight resizes the textarea based on content line count.
func (m *Model) adjustTextareaHeight() {
	content := m.textarea.Value()
	lineCount := strings.Count(content, "\n") + 1

	newHeight := lineCount
	if newHeight < styles.MinTextareaHeight {
		newHeight = styles.MinTextareaHeight
	}
	if newHeight > styles.MaxTextareaHeight {
		newHeight = styles.MaxTextareaHeight
	}

	if m.textarea.Height() != newHeight {
		m.textarea.SetHeight(newHeight)
		m.recalculateLayout()
	}
}

// refreshViewport rebuilds the viewport content from the controller state.
func (m *Model) refreshViewport(gotoBottom bool) {
	if !m.ready {
		return
	}
	wasAtBottom := m.viewport.AtBottom()
	m.viewport.SetContent(m.renderMessages())
	if gotoBottom || wasAtBottom {
		m.viewport.GotoBottom()
	}
}

// recalculateLayout adjusts viewport and textarea dimensions.
func (m *Model) recalculateLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	viewportHeight := m.height - styles.HeaderHeight
	if !m.sending {
		viewportHeight -= m.textarea.Height() + styles.InputBorderHeight
	}
	if m.err != nil {
		viewportHeight -= 1
	}
	if viewportHeight < styles.MinViewportHeight {
		viewportHeight = styles.MinViewportHeight
	}

	viewportWidth := m.width - styles.SidebarWidth - 1
	if viewportWidth < 20 {
		viewportWidth = 20
	}
	m.renderer.SetWidth(viewportWidth - styles.MessageHorizontalFrameSize())

	if !m.ready {
		m.viewport = viewport.New(viewportWidth, viewportHeight)
		m.ready = true
		m.viewport.SetContent(m.renderMessages())
		m.viewport.GotoBottom()
	} else {
		m.viewport.Width = viewportWidth
		m.viewport.Height = viewportHeight
		m.viewport.SetContent(m.renderMessages())
	}

	m.textarea.SetWidth(m.width - styles.TextAreaStyle.GetHorizontalPadding() - styles.TextAreaStyle.GetHorizontalBorderSize())
}
