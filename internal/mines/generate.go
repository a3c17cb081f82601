package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log logrus.FieldLogger = logrus.StandardLogger()

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// PlaceMines seeds exactly count mines, none of which is at start or within
// one square of it, then fills in the hint of every other cell. A board is
// seeded once; the caller is expected to have checked count < width*height.
//
// panics [AssertionError]
func (b *Board) PlaceMines(count int, start Position, r *rand.Rand) {
	if b.seeded {
		panic(Assertionf("mines already placed"))
	}
	b.index(start)
	if count < 0 || count >= len(b.cells) {
		panic(Assertionf("cannot place %d mines on %dx%d", count, b.width, b.height))
	}

	/*
	 * Write down the list of possible mine locations.
	 */
	candidates := make([]int, 0, len(b.cells))
	for y := range b.height {
		for x := range b.width {
			if absDiff(start.Y, y) > 1 || absDiff(start.X, x) > 1 {
				candidates = append(candidates, y*b.width+x)
			}
		}
	}
	if len(candidates) < count {
		Log.WithFields(logrus.Fields{
			"mines":    count,
			"eligible": len(candidates),
			"start":    start.String(),
		}).Warn("board too dense for a safe opening, sparing the start cell only")
		candidates = candidates[:0]
		for i := range b.cells {
			if i != b.index(start) {
				candidates = append(candidates, i)
			}
		}
	}

	/*
	 * Now pick n off the list at random.
	 */
	k := len(candidates)
	for range count {
		i := r.IntN(k)
		b.cells[candidates[i]].Content = Mine
		k--
		candidates[i] = candidates[k]
	}

	b.seeded = true
	b.computeHints()
}

// computeHints runs exactly once, right after placement.
func (b *Board) computeHints() {
	buf := make([]int, 0, 8)
	for i := range b.cells {
		if b.cells[i].Content.IsMine() {
			continue
		}
		var n Content
		buf = b.neighbours(i, buf[:0])
		for _, j := range buf {
			if b.cells[j].Content.IsMine() {
				n++
			}
		}
		b.cells[i].Content = n
	}
}
