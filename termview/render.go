package termview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/navgraph/astar"
	"github.com/katalvlaran/navgraph/gridgraph"
)

// Canvas is the part of tcell.Screen the renderer writes to.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Glyphs used for cells.
const (
	GlyphBlocked = '#'
	GlyphOpen    = '.'
	GlyphHeavy   = '+'
	GlyphPath    = '*'
	GlyphStart   = 'S'
	GlyphGoal    = 'G'
)

// Theme holds the styles for each kind of cell.
type Theme struct {
	Blocked tcell.Style
	Open    tcell.Style
	Path    tcell.Style
	Start   tcell.Style
	Goal    tcell.Style
	Status  tcell.Style
	// Islands colours walkable cells by connected component when non-empty.
	Islands []tcell.Color
}

// DefaultTheme returns the built-in colours.
func DefaultTheme() Theme {
	return Theme{
		Blocked: tcell.StyleDefault.Foreground(tcell.ColorGray),
		Open:    tcell.StyleDefault.Foreground(tcell.ColorGreen),
		Path:    tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Start:   tcell.StyleDefault.Foreground(tcell.ColorBlue).Reverse(true),
		Goal:    tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true),
		Status:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
	}
}

// Frame is one search result to draw over the grid.
type Frame struct {
	From, To int   // requested cell indices; -1 to hide the marker
	Path     []int // destination first, as returned by BuildIndexedPath
	Kind     astar.PathKind
	Err      error
	Message  string
}

// Renderer draws grids at a fixed offset on a Canvas.
type Renderer struct {
	Theme            Theme
	OriginX, OriginY int
}

// NewRenderer returns a Renderer with DefaultTheme at (0,0).
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// Draw renders gg, then f on top of it, then the status line on the row
// below the grid. Cells outside the canvas are skipped.
func (r *Renderer) Draw(c Canvas, gg *gridgraph.GridGraph, f Frame) {
	w, h := c.Size()
	put := func(x, y int, ch rune, st tcell.Style) {
		x, y = x+r.OriginX, y+r.OriginY
		if x >= 0 && x < w && y >= 0 && y < h {
			c.SetContent(x, y, ch, nil, st)
		}
	}

	var labels []int
	if len(r.Theme.Islands) > 0 {
		labels = gg.ComponentLabels()
	}

	// 1) Terrain.
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			ch, st := r.cell(gg, x, y)
			if labels != nil {
				if l := labels[y*gg.Width+x]; l >= 0 {
					st = st.Foreground(r.Theme.Islands[l%len(r.Theme.Islands)])
				}
			}
			put(x, y, ch, st)
		}
	}

	// 2) Path, then markers so they stay visible.
	total := gg.Width * gg.Height
	for _, idx := range f.Path {
		if idx >= 0 && idx < total {
			x, y := gg.Coordinate(idx)
			put(x, y, GlyphPath, r.Theme.Path)
		}
	}
	if f.From >= 0 && f.From < total {
		x, y := gg.Coordinate(f.From)
		put(x, y, GlyphStart, r.Theme.Start)
	}
	if f.To >= 0 && f.To < total {
		x, y := gg.Coordinate(f.To)
		put(x, y, GlyphGoal, r.Theme.Goal)
	}

	// 3) Status.
	for i, ch := range []rune(Status(f)) {
		put(i, gg.Height, ch, r.Theme.Status)
	}
}

// cell picks the glyph and style for one terrain cell.
func (r *Renderer) cell(gg *gridgraph.GridGraph, x, y int) (rune, tcell.Style) {
	if !gg.Walkable(x, y) {
		return GlyphBlocked, r.Theme.Blocked
	}
	v := gg.CellValues[y][x]
	switch {
	case v <= 1:
		return GlyphOpen, r.Theme.Open
	case v <= 9:
		return rune('0' + v), r.Theme.Open
	default:
		return GlyphHeavy, r.Theme.Open
	}
}

// Status formats the one-line summary shown under the grid.
func Status(f Frame) string {
	s := fmt.Sprintf("%s path, %d cells", f.Kind, len(f.Path))
	if f.Err != nil {
		s += " (" + f.Err.Error() + ")"
	}
	if f.Message != "" {
		s += " | " + f.Message
	}

	return s
}
