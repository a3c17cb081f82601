package mines

import (
	"fmt"
	"strings"
)

// Content is what a cell holds: a mine, or the number of mined neighbours.
type Content int8

const Mine Content = -1

func (c Content) IsMine() bool {
	return c == Mine
}

func (c Content) String() string {
	switch {
	case c == Mine:
		return "*"
	case 0 <= c && c <= 8:
		return fmt.Sprint(int(c))
	default:
		return "!"
	}
}

type Cell struct {
	Hidden   bool
	Flagged  bool
	Selected bool
	Content  Content
}

// Position is a board coordinate: X is the column, Y the row.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

type Board struct {
	width, height int
	cells         []Cell
	cursor        int
	seeded        bool
}

func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(Assertionf("invalid board size %dx%d", width, height))
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i].Hidden = true
	}
	return &Board{
		width:  width,
		height: height,
		cells:  cells,
		cursor: -1,
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Seeded reports whether mines have been placed.
func (b *Board) Seeded() bool { return b.seeded }

func (b *Board) InBounds(p Position) bool {
	return 0 <= p.X && p.X < b.width && 0 <= p.Y && p.Y < b.height
}

// panics [AssertionError]
func (b *Board) index(p Position) int {
	if !b.InBounds(p) {
		panic(Assertionf("position %s out of range %dx%d", p, b.width, b.height))
	}
	return p.Y*b.width + p.X
}

func (b *Board) position(i int) Position {
	return Position{X: i % b.width, Y: i / b.width}
}

// panics [AssertionError]
func (b *Board) At(p Position) Cell {
	return b.cells[b.index(p)]
}

// neighbours appends the in-bounds 8-neighbourhood of cell i to buf.
func (b *Board) neighbours(i int, buf []int) []int {
	x, y := i%b.width, i/b.width
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			xx, yy := x+dx, y+dy
			if xx >= 0 && xx < b.width && yy >= 0 && yy < b.height {
				buf = append(buf, yy*b.width+xx)
			}
		}
	}
	return buf
}

// Neighbors returns every in-bounds position adjacent to p, diagonals included.
//
// panics [AssertionError]
func (b *Board) Neighbors(p Position) []Position {
	idx := b.neighbours(b.index(p), make([]int, 0, 8))
	ps := make([]Position, len(idx))
	for k, i := range idx {
		ps[k] = b.position(i)
	}
	return ps
}

// Reveal uncovers the cell at p. It reports whether anything changed.
//
// panics [AssertionError]
func (b *Board) Reveal(p Position) bool {
	return b.reveal(b.index(p))
}

func (b *Board) reveal(i int) bool {
	if !b.cells[i].Hidden {
		return false
	}
	b.cells[i].Hidden = false
	return true
}

// ToggleFlag flips the flag on a hidden cell. Revealed cells are left alone.
//
// panics [AssertionError]
func (b *Board) ToggleFlag(p Position) bool {
	i := b.index(p)
	if !b.cells[i].Hidden {
		return false
	}
	b.cells[i].Flagged = !b.cells[i].Flagged
	return true
}

// Select moves the cursor highlight to p. It returns the previously
// highlighted position, if there was one.
//
// panics [AssertionError]
func (b *Board) Select(p Position) (prev Position, ok bool) {
	i := b.index(p)
	if b.cursor >= 0 {
		prev, ok = b.position(b.cursor), true
		b.cells[b.cursor].Selected = false
	}
	b.cells[i].Selected = true
	b.cursor = i
	return prev, ok
}

// Cursor returns the highlighted position.
func (b *Board) Cursor() (Position, bool) {
	if b.cursor < 0 {
		return Position{}, false
	}
	return b.position(b.cursor), true
}

// Clone returns a deep copy that shares nothing with b.
func (b *Board) Clone() *Board {
	c := *b
	c.cells = make([]Cell, len(b.cells))
	copy(c.cells, b.cells)
	return &c
}

// Mines counts mined cells.
func (b *Board) Mines() (n int) {
	for _, c := range b.cells {
		if c.Content.IsMine() {
			n++
		}
	}
	return
}

// String dumps the board one row per line: '#' hidden, 'F' flagged,
// '*' mine, '.' empty, digits for hints.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.height {
		for x := range b.width {
			c := b.cells[y*b.width+x]
			switch {
			case c.Flagged && c.Hidden:
				sb.WriteByte('F')
			case c.Hidden:
				sb.WriteByte('#')
			case c.Content == 0:
				sb.WriteByte('.')
			default:
				sb.WriteString(c.Content.String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
