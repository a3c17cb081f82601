package render

import (
	"sync"

	"github.com/vancomm/minesweeper-term/internal/mines"
)

// Layout places the board on screen. X and Y are the terminal cell of the
// board's top-left corner.
type Layout struct {
	Bordered bool
	Centered bool
	X, Y     int
}

// Center recomputes the board offset for a terminal of termW x termH.
func (l *Layout) Center(termW, termH, boardW, boardH int) {
	switch {
	case l.Centered:
		l.X = max(termW/2-(boardW*CellWidth)/2, 0)
		l.Y = max(termH/2-boardH/2, 0)
		if l.Bordered {
			l.X = max(l.X-1, 1)
			l.Y = max(l.Y-1, 1)
		}
	case l.Bordered:
		l.X, l.Y = 1, 1
	default:
		l.X, l.Y = 0, 0
	}
}

// Pan shifts the board, never past the top-left corner of the terminal.
func (l *Layout) Pan(dx, dy int) {
	l.X = max(l.X+dx, 0)
	l.Y = max(l.Y+dy, 0)
}

func (l Layout) ToScreen(p mines.Position) (x, y int) {
	return l.X + p.X*CellWidth, l.Y + p.Y
}

// ToCell maps a terminal cell to the nearest board position.
func (l Layout) ToCell(x, y, boardW, boardH int) mines.Position {
	return mines.Position{
		X: min(max((x-l.X)/CellWidth, 0), boardW-1),
		Y: min(max(y-l.Y, 0), boardH-1),
	}
}

// Viewport is the layout shared by the input loop, which pans it, and the
// resize watcher, which recenters it. Painting happens inside With so the
// two never draw over each other.
type Viewport struct {
	mu     sync.Mutex
	layout Layout
}

func NewViewport(l Layout) *Viewport {
	return &Viewport{layout: l}
}

func (v *Viewport) With(fn func(l *Layout)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fn(&v.layout)
}

func (v *Viewport) Layout() Layout {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.layout
}
