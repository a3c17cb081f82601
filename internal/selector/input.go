package selector

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/minesweeper-term/internal/config"
	"github.com/vancomm/minesweeper-term/internal/mines"
	"github.com/vancomm/minesweeper-term/internal/render"
)

type action int

const (
	actionNone action = iota
	actionMove
	actionPan
	actionClick
	actionFlag
	actionExit
)

type command struct {
	action action
	pos    mines.Position
	dx, dy int
}

var (
	moves = map[rune][2]int{
		'w': {0, -1},
		'a': {-1, 0},
		's': {0, 1},
		'd': {1, 0},
	}
	pans = map[tcell.Key][2]int{
		tcell.KeyUp:    {0, -1},
		tcell.KeyDown:  {0, 1},
		tcell.KeyLeft:  {-1, 0},
		tcell.KeyRight: {1, 0},
	}
)

// translate maps a terminal event to what the loop should do with it.
// Mouse events are ignored in keys mode and WASD/C in pointer mode.
func (s *Selector) translate(ev tcell.Event, b *mines.Board, l render.Layout) command {
	cur, _ := b.Cursor()

	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		return command{action: actionExit}

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return command{action: actionExit}
		case tcell.KeyRune:
		default:
			if d, ok := pans[ev.Key()]; ok {
				return command{action: actionPan, dx: d[0], dy: d[1]}
			}
			return command{}
		}

		r := unicode.ToLower(ev.Rune())
		if r == 'f' {
			return command{action: actionFlag, pos: cur}
		}
		if s.input != config.Keys {
			return command{}
		}
		if r == 'c' {
			return command{action: actionClick, pos: cur}
		}
		if d, ok := moves[r]; ok {
			return command{action: actionMove, pos: step(b, cur, d[0], d[1])}
		}

	case *tcell.EventMouse:
		if s.input != config.Pointer {
			return command{}
		}
		x, y := ev.Position()
		pos := l.ToCell(x, y, b.Width(), b.Height())

		buttons := ev.Buttons()
		pressed := buttons &^ s.buttons
		s.buttons = buttons

		switch {
		case pressed&tcell.Button1 != 0:
			return command{action: actionClick, pos: pos}
		case pressed&tcell.Button2 != 0:
			return command{action: actionFlag, pos: pos}
		default:
			return command{action: actionMove, pos: pos}
		}
	}

	return command{}
}

func step(b *mines.Board, p mines.Position, dx, dy int) mines.Position {
	return mines.Position{
		X: min(max(p.X+dx, 0), b.Width()-1),
		Y: min(max(p.Y+dy, 0), b.Height()-1),
	}
}
