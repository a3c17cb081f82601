package selector

import (
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-term/internal/mines"
	"github.com/vancomm/minesweeper-term/internal/render"
)

// watch samples the terminal size every s.poll until stop is set. On a
// change it recenters the shared layout and repaints the newest snapshot.
// It never reads the live board. Sampling on a ticker rather than in a
// tight loop means shutdown may lag by up to one poll interval.
func (s *Selector) watch(stop *atomic.Bool, snapshots <-chan *mines.Board, w, h int) {
	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()

	var latest *mines.Board
	for range ticker.C {
		if stop.Load() {
			return
		}
		select {
		case b := <-snapshots:
			latest = b
		default:
		}

		nw, nh := s.geometry.Size()
		if nw == w && nh == h {
			continue
		}
		w, h = nw, nh
		if latest == nil {
			continue
		}

		s.log.WithFields(logrus.Fields{"width": w, "height": h}).Debug("terminal resized")
		s.view.With(func(l *render.Layout) {
			l.Center(w, h, latest.Width(), latest.Height())
			s.painter.Board(latest, *l, s.help)
			s.painter.Sync()
		})
	}
}
