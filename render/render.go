// Package render draws a terrain grid and a route through it for the console.
//
// Each cell is one glyph: [P] on the route, [X] obstacle, [O] open, [W] water.
// The start cell is not part of the route and renders as open terrain.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvpath/gridgraph"
)

// Glyphs per cell kind.
const (
	GlyphPath     = "[P]"
	GlyphObstacle = "[X]"
	GlyphOpen     = "[O]"
	GlyphWater    = "[W]"
)

// Palette colors.
var (
	ColorPath     = lipgloss.Color("#2CD7C7")
	ColorObstacle = lipgloss.Color("#E74C3C")
	ColorOpen     = lipgloss.Color("#2C4A54")
	ColorWater    = lipgloss.Color("#157483")
)

// Styles holds one lipgloss style per cell kind.
type Styles struct {
	Path     lipgloss.Style
	Obstacle lipgloss.Style
	Open     lipgloss.Style
	Water    lipgloss.Style
}

// DefaultStyles returns the colored palette.
func DefaultStyles() Styles {
	return Styles{
		Path:     lipgloss.NewStyle().Bold(true).Foreground(ColorPath),
		Obstacle: lipgloss.NewStyle().Foreground(ColorObstacle),
		Open:     lipgloss.NewStyle().Foreground(ColorOpen),
		Water:    lipgloss.NewStyle().Foreground(ColorWater),
	}
}

// Options controls rendering.
type Options struct {
	Plain  bool
	Styles Styles
}

// Option configures rendering.
type Option func(*Options)

// WithPlain disables styling; output is bare glyphs.
func WithPlain() Option {
	return func(o *Options) { o.Plain = true }
}

// WithStyles replaces the palette.
func WithStyles(s Styles) Option {
	return func(o *Options) { o.Styles = s }
}

// Grid renders terrain (row-major raw values) with path cells marked.
// One line per row, each terminated by a newline. Cells beyond len(terrain)
// are not drawn.
func Grid(terrain []int, dims gridgraph.Dimensions, path []int, opts ...Option) string {
	cfg := Options{Styles: DefaultStyles()}
	for _, opt := range opts {
		opt(&cfg)
	}

	onPath := make(map[int]struct{}, len(path))
	for _, idx := range path {
		onPath[idx] = struct{}{}
	}

	var b strings.Builder
	for row := 0; row < dims.Rows; row++ {
		for col := 0; col < dims.Cols; col++ {
			idx := dims.Index(gridgraph.Point{Col: col, Row: row})
			if idx >= len(terrain) {
				break
			}
			b.WriteString(cfg.cell(idx, terrain[idx], onPath))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// cell picks the glyph and style for one cell.
func (o *Options) cell(idx, raw int, onPath map[int]struct{}) string {
	glyph, style := GlyphOpen, o.Styles.Open
	if _, ok := onPath[idx]; ok {
		glyph, style = GlyphPath, o.Styles.Path
	} else {
		switch gridgraph.ClassifyTerrain(raw) {
		case gridgraph.Obstacle:
			glyph, style = GlyphObstacle, o.Styles.Obstacle
		case gridgraph.Water:
			glyph, style = GlyphWater, o.Styles.Water
		}
	}
	if o.Plain {
		return glyph
	}

	return style.Render(glyph)
}
