package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

type InputMode int

const (
	Pointer InputMode = iota
	Keys
)

func (m InputMode) String() string {
	switch m {
	case Pointer:
		return "mouse"
	case Keys:
		return "keyboard"
	default:
		return fmt.Sprintf("InputMode(%d)", int(m))
	}
}

func ParseInputMode(s string) (InputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mouse", "pointer":
		return Pointer, nil
	case "keyboard", "keys":
		return Keys, nil
	default:
		return 0, fmt.Errorf("unknown input mode %q (want mouse or keyboard)", s)
	}
}

// Game is everything a single session needs to know. It is resolved before
// the session starts and not changed while it runs.
type Game struct {
	Mines    int
	Width    int
	Height   int
	Input    InputMode
	Bordered bool
	Centered bool
}

func DefaultGame() Game {
	return Game{
		Mines:    Easy.Mines,
		Width:    Easy.Width,
		Height:   Easy.Height,
		Input:    Pointer,
		Centered: true,
	}
}

func (g Game) WithDifficulty(d Difficulty) Game {
	g.Width, g.Height, g.Mines = d.Width, d.Height, d.Mines
	return g
}

func (g Game) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("board size %dx%d must be positive", g.Width, g.Height)
	}
	if g.Mines <= 0 {
		return fmt.Errorf("mine count %d must be positive", g.Mines)
	}
	if g.Mines >= g.Width*g.Height {
		return fmt.Errorf("mine count %d must be below the board area %d", g.Mines, g.Width*g.Height)
	}
	return nil
}

func (g Game) Fields() logrus.Fields {
	return logrus.Fields{
		"width":    g.Width,
		"height":   g.Height,
		"mines":    g.Mines,
		"input":    g.Input.String(),
		"bordered": g.Bordered,
		"centered": g.Centered,
	}
}
