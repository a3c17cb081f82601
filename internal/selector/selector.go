// Package selector runs the interactive cell selection loop. The foreground
// task owns the board and reads input; a background watcher repaints the
// last published snapshot whenever the terminal changes size.
package selector

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-term/internal/config"
	"github.com/vancomm/minesweeper-term/internal/mines"
	"github.com/vancomm/minesweeper-term/internal/render"
)

var ErrScreenClosed = errors.New("screen closed")

type Choice int

const (
	Click Choice = iota
	Exit
)

func (c Choice) String() string {
	if c == Exit {
		return "exit"
	}
	return "click"
}

type Result struct {
	Choice Choice
	Pos    mines.Position
}

// EventSource blocks until the next terminal event. A nil event means the
// source is finished.
type EventSource interface {
	PollEvent() tcell.Event
}

type Geometry interface {
	Size() (width, height int)
}

const DefaultPoll = 20 * time.Millisecond

type Options struct {
	Input config.InputMode
	// Poll is how often the watcher samples the terminal size.
	Poll time.Duration
	Log  *logrus.Entry
}

type Selector struct {
	events   EventSource
	geometry Geometry
	painter  *render.Painter
	view     *render.Viewport
	input    config.InputMode
	help     string
	poll     time.Duration
	log      *logrus.Entry

	buttons tcell.ButtonMask
}

func New(
	events EventSource, geometry Geometry,
	painter *render.Painter, view *render.Viewport, opts Options,
) *Selector {
	if opts.Poll <= 0 {
		opts.Poll = DefaultPoll
	}
	if opts.Log == nil {
		opts.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Selector{
		events:   events,
		geometry: geometry,
		painter:  painter,
		view:     view,
		input:    opts.Input,
		help:     render.Help(opts.Input),
		poll:     opts.Poll,
		log:      opts.Log,
	}
}

// Run draws the board unless it is already on screen, highlights start and
// handles input until the player clicks a cell or asks to leave. Flags and
// cursor moves are applied to b directly. The resize watcher is stopped
// before Run returns.
func (s *Selector) Run(b *mines.Board, start mines.Position) (Result, error) {
	snapshots := make(chan *mines.Board, 1)
	s.commit(b, snapshots, func(l *render.Layout) {
		if !s.painter.Showing() {
			s.painter.Board(b, *l, s.help)
		}
		s.highlight(b, start, *l)
	})

	var (
		stop atomic.Bool
		g    errgroup.Group
	)
	w, h := s.geometry.Size()
	g.Go(func() error {
		s.watch(&stop, snapshots, w, h)
		return nil
	})

	res, err := s.loop(b, snapshots)
	stop.Store(true)
	_ = g.Wait()

	if err != nil {
		return Result{}, err
	}
	s.log.WithFields(logrus.Fields{
		"choice": res.Choice.String(),
		"pos":    res.Pos.String(),
	}).Debug("selection done")
	return res, nil
}

// publish replaces whatever snapshot is pending with b.
func publish(ch chan *mines.Board, b *mines.Board) {
	select {
	case <-ch:
	default:
	}
	ch <- b
}

// commit draws under the viewport lock and publishes the board before the
// lock is released, so the watcher never repaints a snapshot older than
// what is on screen.
func (s *Selector) commit(b *mines.Board, snapshots chan *mines.Board, draw func(l *render.Layout)) {
	s.view.With(func(l *render.Layout) {
		draw(l)
		s.painter.Show()
		publish(snapshots, b.Clone())
	})
}

func (s *Selector) loop(b *mines.Board, snapshots chan *mines.Board) (Result, error) {
	for {
		ev := s.events.PollEvent()
		if ev == nil {
			return Result{}, ErrScreenClosed
		}

		cmd := s.translate(ev, b, s.view.Layout())
		switch cmd.action {
		case actionExit:
			cur, _ := b.Cursor()
			return Result{Choice: Exit, Pos: cur}, nil
		case actionClick:
			s.commit(b, snapshots, func(l *render.Layout) {
				s.highlight(b, cmd.pos, *l)
			})
			return Result{Choice: Click, Pos: cmd.pos}, nil
		case actionMove:
			if cur, ok := b.Cursor(); ok && cur == cmd.pos {
				continue
			}
			s.commit(b, snapshots, func(l *render.Layout) {
				s.highlight(b, cmd.pos, *l)
			})
		case actionFlag:
			s.commit(b, snapshots, func(l *render.Layout) {
				s.highlight(b, cmd.pos, *l)
				if b.ToggleFlag(cmd.pos) {
					s.painter.Cell(b, cmd.pos, *l)
				}
			})
		case actionPan:
			s.commit(b, snapshots, func(l *render.Layout) {
				l.Pan(cmd.dx, cmd.dy)
				s.painter.Board(b, *l, s.help)
			})
		}
	}
}

// highlight moves the cursor to pos and redraws the cells it left and
// entered.
func (s *Selector) highlight(b *mines.Board, pos mines.Position, l render.Layout) {
	if cur, ok := b.Cursor(); ok && cur == pos {
		return
	}
	prev, ok := b.Select(pos)
	if ok {
		s.painter.Cell(b, prev, l)
	}
	s.painter.Cell(b, pos, l)
}
