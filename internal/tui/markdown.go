package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

const markdownStyle = "dark"

var (
	mdRendererMu sync.Mutex
	// Cached per wrap width. A fixed style avoids WithAutoStyle, which can
	// block on terminal background queries.
	mdRenderers = map[int]*glamour.TermRenderer{}
)

// renderMarkdown renders post text, falling back to the raw text when the
// renderer cannot be built or fails.
func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()
	r := mdRenderers[width]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(markdownStyle),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRenderers[width] = rr
		r = rr
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
