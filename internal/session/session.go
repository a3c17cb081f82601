// Package session plays one game from the empty board to its end screen.
package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-term/internal/config"
	"github.com/vancomm/minesweeper-term/internal/mines"
	"github.com/vancomm/minesweeper-term/internal/render"
	"github.com/vancomm/minesweeper-term/internal/selector"
	"github.com/vancomm/minesweeper-term/internal/sound"
)

type Outcome int

const (
	Abandoned Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "abandoned"
	}
}

const (
	MessageWon  = "You win!"
	MessageLost = "You died."
)

// Deps are the terminal and services a session draws on. They outlive the
// session and are shared between games.
type Deps struct {
	Events   selector.EventSource
	Geometry selector.Geometry
	Painter  *render.Painter
	Sound    sound.Player
	Rand     *rand.Rand
	Log      logrus.FieldLogger
	Poll     time.Duration
}

type Session struct {
	id   uuid.UUID
	cfg  config.Game
	deps Deps
	log  *logrus.Entry
	view *render.Viewport
}

func New(deps Deps, cfg config.Game) *Session {
	if deps.Sound == nil {
		deps.Sound = sound.Silent()
	}
	if deps.Log == nil {
		deps.Log = logrus.StandardLogger()
	}
	id := uuid.New()
	return &Session{
		id:   id,
		cfg:  cfg,
		deps: deps,
		log:  deps.Log.WithField("session", id.String()),
		view: render.NewViewport(render.Layout{
			Bordered: cfg.Bordered,
			Centered: cfg.Centered,
		}),
	}
}

func (s *Session) ID() uuid.UUID { return s.id }

// Layout is where the board currently sits on screen.
func (s *Session) Layout() render.Layout { return s.view.Layout() }

// Play runs the game until it is won, lost or abandoned. Mines are placed
// only after the first click so that it always lands on safe ground.
func (s *Session) Play(ctx context.Context) (Outcome, error) {
	cfg := s.cfg
	board := mines.NewBoard(cfg.Width, cfg.Height)

	termW, termH := s.deps.Geometry.Size()
	s.view.With(func(l *render.Layout) {
		l.Center(termW, termH, cfg.Width, cfg.Height)
		s.deps.Painter.Clear()
	})

	sel := selector.New(s.deps.Events, s.deps.Geometry, s.deps.Painter, s.view, selector.Options{
		Input: cfg.Input,
		Poll:  s.deps.Poll,
		Log:   s.log,
	})

	s.log.WithFields(cfg.Fields()).Info("session started")

	var (
		game    *mines.Game
		started time.Time
		cursor  = mines.Position{X: cfg.Width / 2, Y: cfg.Height / 2}
	)
	for {
		if ctx.Err() != nil {
			s.log.Info("session cancelled")
			return Abandoned, nil
		}

		res, err := sel.Run(board, cursor)
		if err != nil {
			return Abandoned, fmt.Errorf("session %s: %w", s.id, err)
		}
		if res.Choice == selector.Exit {
			s.log.Info("session abandoned")
			return Abandoned, nil
		}
		cursor = res.Pos

		if game == nil {
			board.PlaceMines(cfg.Mines, res.Pos, s.deps.Rand)
			game = mines.NewGame(board)
			started = time.Now()
			s.log.WithField("first", res.Pos.String()).Debugf("mines placed\n%s", board.Clone().String())
		}

		move := game.Open(res.Pos)
		s.log.WithFields(logrus.Fields{
			"pos":       res.Pos.String(),
			"result":    move.Result.String(),
			"opened":    len(move.Opened),
			"remaining": game.Remaining(),
		}).Debug("cell opened")

		s.view.With(func(l *render.Layout) {
			for _, p := range move.Opened {
				s.deps.Painter.Cell(board, p, *l)
			}
			s.deps.Painter.Show()
		})

		if game.State().Terminal() {
			return s.finish(game, time.Since(started)), nil
		}
	}
}

// finish draws the end screen: the whole board uncovered when the terminal
// has room for it, then the verdict.
func (s *Session) finish(game *mines.Game, elapsed time.Duration) Outcome {
	board := game.Board()
	game.RevealAll()

	outcome, message := Lost, MessageLost
	if game.State() == mines.Won {
		outcome, message = Won, MessageWon
	}

	_, termH := s.deps.Geometry.Size()
	s.view.With(func(l *render.Layout) {
		if termH > board.Height()+4 {
			s.deps.Painter.Board(board, *l, "")
		} else {
			s.deps.Painter.Clear()
		}
		s.deps.Painter.Print(*l, message)
		s.deps.Painter.Show()
	})

	if outcome == Won {
		s.deps.Sound.Win()
	} else {
		s.deps.Sound.Explode()
	}

	s.log.WithFields(logrus.Fields{
		"outcome": outcome.String(),
		"elapsed": elapsed.Round(time.Millisecond).String(),
	}).Info("session finished")
	return outcome
}
