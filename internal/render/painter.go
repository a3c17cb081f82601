package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/minesweeper-term/internal/config"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

var (
	styleFrame = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleText  = tcell.StyleDefault
)

func Help(mode config.InputMode) string {
	if mode == config.Keys {
		return "WASD to move around, C to Click, F to Flag and ESC to exit to main menu. Use arrow keys to move board"
	}
	return "Left Mouse Button to Click, F to Flag and ESC to exit to main menu. Use arrow keys to move board"
}

// Painter draws boards and status text on a tcell screen, clipped to the
// terminal. It remembers whether a board is on screen and how many status
// lines follow it.
type Painter struct {
	screen  tcell.Screen
	showing bool
	boardW  int
	boardH  int
	lines   int
}

func NewPainter(screen tcell.Screen) *Painter {
	return &Painter{screen: screen}
}

func (p *Painter) put(x, y int, s string, style tcell.Style) {
	w, h := p.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range s {
		if x >= 0 && x < w {
			p.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

func (p *Painter) Clear() {
	p.screen.Clear()
	p.showing = false
	p.lines = 0
}

func (p *Painter) Show() {
	p.screen.Show()
}

// Sync repaints the whole terminal, used after a resize.
func (p *Painter) Sync() {
	p.screen.Sync()
}

// Cell redraws one board cell.
func (p *Painter) Cell(b *mines.Board, pos mines.Position, l Layout) {
	c := b.At(pos)
	x, y := l.ToScreen(pos)
	text, style := Glyph(c, c.Selected)
	p.put(x, y, text, style)
}

// Board clears the screen and draws the whole board, its frame and the
// help line.
func (p *Painter) Board(b *mines.Board, l Layout, help string) {
	p.Clear()
	w, h := b.Width(), b.Height()
	for y := range h {
		for x := range w {
			p.Cell(b, mines.Position{X: x, Y: y}, l)
		}
	}
	if l.Bordered {
		p.frame(w, h, l)
	}
	p.showing = true
	p.boardW, p.boardH = w, h
	if help != "" {
		_, termH := p.screen.Size()
		limit := termH
		if l.Bordered {
			limit--
		}
		if p.lineRow(l) < limit {
			p.Print(l, help)
		}
	}
}

func (p *Painter) frame(w, h int, l Layout) {
	for i := range w {
		x := l.X + i*CellWidth
		p.put(x, l.Y-1, "━━━", styleFrame)
		p.put(x, l.Y+h, "━━━", styleFrame)
	}
	left, right := l.X-1, l.X+w*CellWidth
	for i := -1; i <= h; i++ {
		y := l.Y + i
		switch i {
		case -1:
			p.put(left, y, "┏", styleFrame)
			p.put(right, y, "┓", styleFrame)
		case h:
			p.put(left, y, "┗", styleFrame)
			p.put(right, y, "┛", styleFrame)
		default:
			p.put(left, y, "┃", styleFrame)
			p.put(right, y, "┃", styleFrame)
		}
	}
}

func (p *Painter) lineRow(l Layout) int {
	row := p.lines
	if p.showing {
		row += l.Y + p.boardH
		if l.Bordered {
			row++
		}
	}
	return row
}

// Print writes a status line under the board, or from the top of the
// screen when no board is showing. Consecutive calls stack downwards.
func (p *Painter) Print(l Layout, text string) {
	x := l.X
	if l.Bordered {
		x = max(x-1, 0)
	}
	if l.Centered && p.showing {
		x = max(x-len([]rune(text))/2+(p.boardW*CellWidth)/2, 0)
	}
	p.put(x, p.lineRow(l), text, styleText)
	p.lines++
}

// NextRow is the first row below the board and its status lines.
func (p *Painter) NextRow(l Layout) int {
	return p.lineRow(l)
}

// Showing reports whether a board is on screen.
func (p *Painter) Showing() bool {
	return p.showing
}
