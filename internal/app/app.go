package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-term/internal/config"
	"github.com/vancomm/minesweeper-term/internal/menu"
	"github.com/vancomm/minesweeper-term/internal/render"
	"github.com/vancomm/minesweeper-term/internal/selector"
	"github.com/vancomm/minesweeper-term/internal/session"
	"github.com/vancomm/minesweeper-term/internal/sound"
)

type App struct {
	logger  *logrus.Logger
	screen  tcell.Screen
	events  selector.EventSource
	cfg     *config.App
	sound   sound.Player
	rnd     *rand.Rand
	painter *render.Painter
	menu    *menu.Menu
}

func New(logger *logrus.Logger, screen tcell.Screen, cfg *config.App, player sound.Player) *App {
	if player == nil {
		player = sound.Silent()
	}
	return &App{
		logger:  logger,
		screen:  screen,
		events:  screen,
		cfg:     cfg,
		sound:   player,
		rnd:     createRand(),
		painter: render.NewPainter(screen),
	}
}

type postGame int

const (
	playAgain postGame = iota
	mainMenu
	exitGame
)

var postGameItems = []string{"Play Again", "Main Menu", "Exit"}

// Start runs menus and games until the player exits or ctx is cancelled.
// Leaving is not an error; only terminal failures are returned.
func (a *App) Start(ctx context.Context) error {
	a.menu = menu.New(a.screen, a.events)
	game := a.cfg.Game
	skipMenu := false

	for {
		if ctx.Err() != nil {
			return nil
		}

		if !skipMenu {
			next, play, err := a.mainMenu(game)
			if err != nil {
				return quit(err)
			}
			if !play {
				return nil
			}
			game = next
		}

		s := session.New(a.deps(), game)
		outcome, err := s.Play(ctx)
		if err != nil {
			return err
		}
		if outcome == session.Abandoned {
			skipMenu = false
			continue
		}

		choice, err := a.postGame(s.Layout())
		if err != nil {
			return quit(err)
		}
		switch choice {
		case playAgain:
			skipMenu = true
		case mainMenu:
			skipMenu = false
		default:
			return nil
		}
	}
}

// quit maps the player backing out of a menu to a clean exit.
func quit(err error) error {
	if errors.Is(err, menu.ErrInterrupted) {
		return nil
	}
	return err
}

func (a *App) deps() session.Deps {
	return session.Deps{
		Events:   a.events,
		Geometry: a.screen,
		Painter:  a.painter,
		Sound:    a.sound,
		Rand:     a.rnd,
		Log:      a.logger,
		Poll:     a.cfg.ResizePoll,
	}
}

func (a *App) postGame(l render.Layout) (postGame, error) {
	_, termH := a.screen.Size()
	y := a.painter.NextRow(l) + 1
	if y+len(postGameItems) > termH {
		y = max(termH-len(postGameItems), 0)
	}
	i, err := a.menu.Select(y, "", postGameItems, 0)
	if err != nil {
		return exitGame, err
	}
	a.logger.WithField("choice", postGameItems[i]).Debug("post-game menu")
	return postGame(i), nil
}

var mainItems = []string{"Play", "Difficulty", "Controls", "Appearance", "Exit"}

// mainMenu lets the player adjust game and returns it once they choose to
// play. The flag is false when they chose to exit instead.
func (a *App) mainMenu(game config.Game) (config.Game, bool, error) {
	for {
		a.clear()
		i, err := a.menu.Select(0, "", mainItems, 0)
		if err != nil {
			return game, false, err
		}
		switch mainItems[i] {
		case "Play":
			a.logger.WithFields(game.Fields()).Debug("starting game")
			return game, true, nil
		case "Difficulty":
			game, err = a.selectDifficulty(game)
		case "Controls":
			game, err = a.selectInput(game)
		case "Appearance":
			game, err = a.selectAppearance(game)
		default:
			return game, false, nil
		}
		if err != nil {
			return game, false, err
		}
	}
}

func (a *App) clear() {
	a.painter.Clear()
	a.screen.Show()
}

func (a *App) selectDifficulty(game config.Game) (config.Game, error) {
	presets := config.Presets()
	items := make([]string, 0, len(presets)+1)
	for _, d := range presets {
		items = append(items, d.Name)
	}
	items = append(items, "Custom")

	a.clear()
	i, err := a.menu.Select(0, "Select Difficulty", items, 0)
	if err != nil {
		return game, err
	}
	if i < len(presets) {
		return game.WithDifficulty(presets[i]), nil
	}

	d, err := a.customDifficulty(len(items) + 1)
	if err != nil {
		return game, err
	}
	return game.WithDifficulty(d), nil
}

// customDifficulty prompts for a board that fits the terminal.
func (a *App) customDifficulty(y int) (config.Difficulty, error) {
	termW, termH := a.screen.Size()
	maxW, maxH := termW/render.CellWidth, termH-2

	width, err := a.menu.Number(y, fmt.Sprintf("Board width (max: %d)", maxW), func(n int) error {
		switch {
		case n < 1:
			return errors.New("Width must be at least 1")
		case n > maxW:
			return errors.New("Width entered exceeds the width of your terminal")
		}
		return nil
	})
	if err != nil {
		return config.Difficulty{}, err
	}

	height, err := a.menu.Number(y+2, fmt.Sprintf("Board height (max: %d)", maxH), func(n int) error {
		switch {
		case n < 1:
			return errors.New("Height must be at least 1")
		case n > maxH:
			return errors.New("Height entered exceeds the height of your terminal and the instructions")
		}
		return nil
	})
	if err != nil {
		return config.Difficulty{}, err
	}

	mines, err := a.menu.Number(y+4, "Mine amount", func(n int) error {
		switch {
		case n < 1:
			return errors.New("Place at least one mine")
		case n >= width*height:
			return errors.New("Mine amount cannot exceed board area")
		}
		return nil
	})
	if err != nil {
		return config.Difficulty{}, err
	}

	return config.Difficulty{Name: "Custom", Width: width, Height: height, Mines: mines}, nil
}

var inputModes = []config.InputMode{config.Pointer, config.Keys}

func (a *App) selectInput(game config.Game) (config.Game, error) {
	a.clear()
	i, err := a.menu.Select(0, "Select Input Type", []string{"Mouse", "Keyboard"}, int(game.Input))
	if err != nil {
		return game, err
	}
	game.Input = inputModes[i]
	return game, nil
}

func (a *App) selectAppearance(game config.Game) (config.Game, error) {
	a.clear()
	on, err := a.menu.Toggle(0, []string{"Centered", "Bordered"}, []bool{game.Centered, game.Bordered})
	if err != nil {
		return game, err
	}
	game.Centered, game.Bordered = on[0], on[1]
	return game, nil
}
