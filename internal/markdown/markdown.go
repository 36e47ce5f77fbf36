package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer renders assistant markdown for terminal display.
type Renderer struct {
	glamour *glamour.TermRenderer
	width   int
}

// NewRenderer creates a renderer wrapping at the given width.
func NewRenderer(width int) (*Renderer, error) {
	termRenderer, err := newTermRenderer(width)
	if err != nil {
		return nil, err
	}
	return &Renderer{glamour: termRenderer, width: width}, nil
}

func newTermRenderer(width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
}

// SetWidth rebuilds the renderer when the terminal is resized.
func (r *Renderer) SetWidth(width int) {
	if width == r.width || width <= 0 {
		return
	}
	termRenderer, err := newTermRenderer(width)
	if err != nil {
		return
	}
	r.glamour = termRenderer
	r.width = width
}

// Render returns the terminal rendering of content, falling back to the
// raw text when rendering fails.
func (r *Renderer) Render(content string) string {
	rendered, err := r.glamour.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(rendered, "\n")
}
