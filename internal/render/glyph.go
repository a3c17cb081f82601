package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/minesweeper-term/internal/mines"
)

// CellWidth is how many terminal columns one board cell takes.
const CellWidth = 3

var (
	colorBoard     = tcell.ColorWhite
	colorCovered   = tcell.ColorBlack
	colorHighlight = tcell.NewRGBColor(144, 238, 144)

	hintColors = [9]tcell.Color{
		0: tcell.ColorWhite,
		1: tcell.NewRGBColor(6, 3, 255),
		2: tcell.NewRGBColor(3, 122, 6),
		3: tcell.NewRGBColor(254, 0, 0),
		4: tcell.NewRGBColor(0, 0, 132),
		5: tcell.NewRGBColor(130, 1, 2),
		6: tcell.NewRGBColor(2, 127, 130),
		7: tcell.NewRGBColor(0, 0, 0),
		8: tcell.NewRGBColor(125, 125, 125),
	}

	hintGlyphs = [9]string{"   ", " 1 ", " 2 ", " 3 ", " 4 ", " 5 ", " 6 ", " 7 ", " 8 "}
)

const (
	glyphMine    = " ✹ "
	glyphFlag    = " ⚑ "
	glyphCovered = "   "
)

func style(fg, bg tcell.Color, highlighted bool) tcell.Style {
	if highlighted {
		bg = colorHighlight
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg).Bold(true)
}

// Glyph returns the text and style a cell is drawn with. Flags win over
// everything, then covered cells, then the content itself.
func Glyph(c mines.Cell, highlighted bool) (string, tcell.Style) {
	switch {
	case c.Flagged:
		return glyphFlag, style(tcell.ColorWhite, colorCovered, highlighted)
	case c.Hidden:
		return glyphCovered, style(colorCovered, colorCovered, highlighted)
	case c.Content.IsMine():
		return glyphMine, style(tcell.ColorBlack, colorBoard, highlighted)
	case 0 <= c.Content && c.Content <= 8:
		return hintGlyphs[c.Content], style(hintColors[c.Content], colorBoard, highlighted)
	default:
		panic(mines.Assertionf("unknown cell content %d", c.Content))
	}
}
