package render

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-term/internal/config"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func row(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var sb strings.Builder
	for x := range w {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(c.Runes[0])
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func styleAt(s tcell.SimulationScreen, x, y int) tcell.Style {
	cells, w, _ := s.GetContents()
	return cells[y*w+x].Style
}

func TestGlyph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cell mines.Cell
		text string
	}{
		{name: "covered", cell: mines.Cell{Hidden: true}, text: "   "},
		{name: "flag", cell: mines.Cell{Hidden: true, Flagged: true}, text: " ⚑ "},
		{name: "flag over mine", cell: mines.Cell{Hidden: true, Flagged: true, Content: mines.Mine}, text: " ⚑ "},
		{name: "mine", cell: mines.Cell{Content: mines.Mine}, text: " ✹ "},
		{name: "empty", cell: mines.Cell{}, text: "   "},
		{name: "three", cell: mines.Cell{Content: 3}, text: " 3 "},
		{name: "eight", cell: mines.Cell{Content: 8}, text: " 8 "},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			text, plain := Glyph(test.cell, false)
			assert.Equal(t, test.text, text)
			assert.Len(t, []rune(text), CellWidth)

			hText, lit := Glyph(test.cell, true)
			assert.Equal(t, text, hText)
			assert.NotEqual(t, plain, lit)
			_, bg, _ := lit.Decompose()
			assert.Equal(t, colorHighlight, bg)
		})
	}
}

func TestGlyphUnknownContentPanics(t *testing.T) {
	assert.Panics(t, func() { Glyph(mines.Cell{Content: 9}, false) })
	assert.Panics(t, func() { Glyph(mines.Cell{Content: -5}, true) })
}

func TestLayoutCenter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		layout Layout
		termW  int
		termH  int
		x, y   int
	}{
		{name: "centered", layout: Layout{Centered: true}, termW: 80, termH: 24, x: 28, y: 8},
		{name: "centered bordered", layout: Layout{Centered: true, Bordered: true}, termW: 80, termH: 24, x: 27, y: 7},
		{name: "too small", layout: Layout{Centered: true}, termW: 10, termH: 4, x: 0, y: 0},
		{name: "too small bordered", layout: Layout{Centered: true, Bordered: true}, termW: 10, termH: 4, x: 1, y: 1},
		{name: "top left bordered", layout: Layout{Bordered: true, X: 9, Y: 9}, termW: 80, termH: 24, x: 1, y: 1},
		{name: "top left", layout: Layout{X: 9, Y: 9}, termW: 80, termH: 24, x: 0, y: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			l := test.layout
			l.Center(test.termW, test.termH, 8, 8)
			assert.Equal(t, test.x, l.X)
			assert.Equal(t, test.y, l.Y)
		})
	}
}

func TestLayoutConversions(t *testing.T) {
	l := Layout{X: 10, Y: 4}

	x, y := l.ToScreen(mines.Position{X: 2, Y: 3})
	assert.Equal(t, 16, x)
	assert.Equal(t, 7, y)

	for dx := range CellWidth {
		assert.Equal(t, mines.Position{X: 2, Y: 3}, l.ToCell(16+dx, 7, 8, 8))
	}
	assert.Equal(t, mines.Position{X: 0, Y: 0}, l.ToCell(0, 0, 8, 8))
	assert.Equal(t, mines.Position{X: 7, Y: 7}, l.ToCell(200, 100, 8, 8))
}

func TestLayoutPan(t *testing.T) {
	l := Layout{X: 1, Y: 0}
	l.Pan(-1, 1)
	assert.Equal(t, Layout{X: 0, Y: 1}, l)
	l.Pan(-1, -2)
	assert.Equal(t, Layout{X: 0, Y: 0}, l)
	l.Pan(3, 2)
	assert.Equal(t, Layout{X: 3, Y: 2}, l)
}

func TestViewport(t *testing.T) {
	v := NewViewport(Layout{Centered: true})
	v.With(func(l *Layout) { l.Pan(2, 3) })
	assert.Equal(t, Layout{Centered: true, X: 2, Y: 3}, v.Layout())
}

func TestPainterBoard(t *testing.T) {
	s := newScreen(t, 20, 8)
	p := NewPainter(s)

	b := mines.NewBoard(3, 2)
	b.PlaceMines(1, mines.Position{X: 0, Y: 0}, rand.New(rand.NewPCG(1, 2)))
	b.Reveal(mines.Position{X: 0, Y: 0})
	b.ToggleFlag(mines.Position{X: 1, Y: 1})
	b.Select(mines.Position{X: 2, Y: 1})

	l := Layout{Bordered: true, X: 1, Y: 1}
	p.Board(b, l, "help")
	p.Show()

	assert.Equal(t, "┏━━━━━━━━━┓", row(s, 0))
	assert.Equal(t, "┗━━━━━━━━━┛", row(s, 3))
	assert.Equal(t, "help", row(s, 4))
	assert.True(t, strings.HasPrefix(row(s, 2), "┃    ⚑"))

	_, hidden := Glyph(mines.Cell{Hidden: true}, true)
	assert.Equal(t, hidden, styleAt(s, 7, 2), "cursor cell is highlighted")
	assert.True(t, p.Showing())
	assert.Equal(t, 5, p.NextRow(l))
}

func TestPainterCellAndClip(t *testing.T) {
	s := newScreen(t, 5, 2)
	p := NewPainter(s)
	b := mines.NewBoard(10, 10)

	// Most of this board is off screen; drawing must not panic.
	p.Board(b, Layout{}, Help(config.Keys))
	b.ToggleFlag(mines.Position{X: 1, Y: 0})
	p.Cell(b, mines.Position{X: 1, Y: 0}, Layout{})
	p.Cell(b, mines.Position{X: 9, Y: 9}, Layout{})
	p.Show()

	assert.Equal(t, "    ⚑", row(s, 0))
}

func TestPainterPrintStacks(t *testing.T) {
	s := newScreen(t, 30, 10)
	p := NewPainter(s)

	p.Clear()
	p.Print(Layout{}, "You died.")
	p.Print(Layout{}, "second")
	p.Show()

	assert.Equal(t, "You died.", row(s, 0))
	assert.Equal(t, "second", row(s, 1))
	assert.False(t, p.Showing())
}

func TestHelp(t *testing.T) {
	assert.Contains(t, Help(config.Keys), "WASD")
	assert.Contains(t, Help(config.Pointer), "Mouse")
}
