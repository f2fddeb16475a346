package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/cli/go-gh/v2/pkg/markdown"
)

// Renderer prints the reply to the output stream.
type Renderer struct {
	out      io.Writer
	markdown *glamour.TermRenderer
}

// NewPlain returns a Renderer that prints the reply verbatim.
func NewPlain(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// NewMarkdown returns a Renderer that formats the reply for a terminal.
func NewMarkdown(out io.Writer) (*Renderer, error) {
	md, err := glamour.NewTermRenderer(
		markdown.WithWrap(120),
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return &Renderer{out: out, markdown: md}, nil
}

// Print writes content followed by a single newline.
func (r *Renderer) Print(content string) error {
	if r.markdown != nil {
		rendered, err := r.markdown.Render(content)
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		content = strings.TrimSpace(rendered)
	}

	if _, err := fmt.Fprintln(r.out, content); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
