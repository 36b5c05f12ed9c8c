package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// cellStyle is the style key of a run of cells.
type cellStyle struct {
	fg, bg core.Color
}

// styleCache memoizes lipgloss styles per color pair. The palette is small,
// so one cache lives for the whole process; SSH sessions render
// concurrently and share it.
type styleCache struct {
	mu     sync.Mutex
	styles map[cellStyle]lipgloss.Style
}

func newStyleCache() *styleCache {
	return &styleCache{styles: make(map[cellStyle]lipgloss.Style)}
}

func (c *styleCache) get(k cellStyle) lipgloss.Style {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(k.fg.String())).
		Background(lipgloss.Color(k.bg.String()))
	c.styles[k] = s
	return s
}

func (c *styleCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.styles)
}

var screenStyles = newStyleCache()

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, screenStyles)
}

func renderScreen(s *core.Screen, styles *styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{fg: cell.Fg, bg: cell.Bg}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != key.fg || cell.Bg != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(key).Render(run.String()))
		}
	}
	return sb.String()
}
