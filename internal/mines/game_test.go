package mines

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameRequiresMines(t *testing.T) {
	assert.Panics(t, func() { NewGame(NewBoard(3, 3)) })
}

func TestOpenNumberedCell(t *testing.T) {
	g := NewGame(boardWith(3, 3, Position{0, 0}))
	require.Equal(t, 8, g.Remaining())

	move := g.Open(Position{1, 1})
	assert.Equal(t, Fine, move.Result)
	assert.Equal(t, []Position{{1, 1}}, move.Opened)
	assert.Equal(t, 7, g.Remaining())
	assert.Equal(t, Playing, g.State())
}

func TestOpenFloodsToWin(t *testing.T) {
	g := NewGame(boardWith(3, 3, Position{0, 0}))

	move := g.Open(Position{2, 2})
	assert.Equal(t, Fine, move.Result)
	assert.Len(t, move.Opened, 8)
	assert.Equal(t, Position{2, 2}, move.Opened[0])
	assert.Equal(t, 0, g.Remaining())
	assert.Equal(t, Won, g.State())

	// Mines may stay covered at the win until the board is normalized.
	assert.True(t, g.Board().At(Position{0, 0}).Hidden)

	changed := g.RevealAll()
	assert.Equal(t, []Position{{0, 0}}, changed)
	assert.False(t, g.Board().At(Position{0, 0}).Hidden)
}

func TestWinOnlyWhenAllSafeCellsOpen(t *testing.T) {
	g := NewGame(boardWith(3, 1, Position{1, 0}))

	g.Open(Position{0, 0})
	assert.Equal(t, Playing, g.State())
	assert.Equal(t, 1, g.Remaining())

	g.Open(Position{2, 0})
	assert.Equal(t, Won, g.State())
	assert.Equal(t, 0, g.Remaining())
	assert.True(t, g.Board().At(Position{1, 0}).Hidden)
}

func TestOpenMineLoses(t *testing.T) {
	g := NewGame(boardWith(3, 3, Position{1, 1}))

	move := g.Open(Position{1, 1})
	assert.Equal(t, Dead, move.Result)
	assert.Empty(t, move.Opened)
	assert.Equal(t, Lost, g.State())
	assert.Equal(t, 8, g.Remaining())

	// Terminal: nothing else moves.
	after := g.Open(Position{0, 0})
	assert.Equal(t, Fine, after.Result)
	assert.Empty(t, after.Opened)
	assert.False(t, g.Flag(Position{0, 0}))
	assert.True(t, g.Board().At(Position{0, 0}).Hidden)
	assert.Equal(t, Lost, g.State())
}

func TestFlaggedCellIsImmuneToOpen(t *testing.T) {
	tests := []struct {
		name  string
		mines []Position
	}{
		{name: "safe cell", mines: []Position{{2, 2}}},
		{name: "mined cell", mines: []Position{{0, 0}}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := NewGame(boardWith(3, 3, test.mines...))
			before := g.Remaining()

			require.True(t, g.Flag(Position{0, 0}))
			move := g.Open(Position{0, 0})

			assert.Equal(t, Fine, move.Result)
			assert.Empty(t, move.Opened)
			c := g.Board().At(Position{0, 0})
			assert.True(t, c.Hidden)
			assert.True(t, c.Flagged)
			assert.Equal(t, Playing, g.State())
			assert.Equal(t, before, g.Remaining())
		})
	}
}

func TestFlagNeverChangesState(t *testing.T) {
	g := NewGame(boardWith(3, 3, Position{0, 0}))
	for range 3 {
		g.Flag(Position{0, 0})
		g.Flag(Position{2, 2})
		assert.Equal(t, Playing, g.State())
		assert.Equal(t, 8, g.Remaining())
	}

	g.Open(Position{1, 1})
	assert.False(t, g.Flag(Position{1, 1}), "revealed cell")
	assert.False(t, g.Board().At(Position{1, 1}).Flagged)
}

func TestOpenRevealedCellIsNoop(t *testing.T) {
	g := NewGame(boardWith(3, 3, Position{0, 0}))
	g.Open(Position{1, 1})
	move := g.Open(Position{1, 1})
	assert.Empty(t, move.Opened)
	assert.Equal(t, 7, g.Remaining())
}

func TestFloodOpensThroughFlags(t *testing.T) {
	tests := []struct {
		name string
		flag Position
	}{
		{name: "flagged zero", flag: Position{1, 0}},
		{name: "flagged hint", flag: Position{3, 0}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// 5x1 strip, mine at the far right: opening the left end floods
			// up to the hint next to the mine, flag or no flag.
			g := NewGame(boardWith(5, 1, Position{4, 0}))
			require.True(t, g.Flag(test.flag))

			move := g.Open(Position{0, 0})
			assert.Equal(t, []Position{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, move.Opened)
			assert.Equal(t, 0, g.Remaining())
			assert.Equal(t, Won, g.State())

			c := g.Board().At(test.flag)
			assert.False(t, c.Hidden)
			assert.False(t, c.Flagged, "opened cells lose their flag")
			assert.True(t, g.Board().At(Position{4, 0}).Hidden)
		})
	}
}

func TestFloodLeavesFlaggedMine(t *testing.T) {
	g := NewGame(boardWith(5, 1, Position{4, 0}))
	require.True(t, g.Flag(Position{4, 0}))

	g.Open(Position{0, 0})
	c := g.Board().At(Position{4, 0})
	assert.True(t, c.Hidden)
	assert.True(t, c.Flagged)
	assert.Equal(t, Won, g.State())
}

func TestFloodIsIdempotent(t *testing.T) {
	b := boardWith(6, 6, Position{5, 5}, Position{0, 5})
	g := NewGame(b)
	g.Open(Position{0, 0})

	before := b.Clone()
	remaining := g.Remaining()

	opened := g.flood(b.index(Position{0, 0}))
	assert.Empty(t, opened)
	assert.Equal(t, before.cells, b.cells)
	assert.Equal(t, remaining, g.Remaining())
}

func TestFloodNeverOpensMines(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		b := NewBoard(16, 16)
		start := Position{r.IntN(16), r.IntN(16)}
		b.PlaceMines(40, start, r)
		g := NewGame(b)
		move := g.Open(start)

		require.Equal(t, Fine, move.Result)
		for _, p := range move.Opened {
			assert.False(t, b.At(p).Content.IsMine())
			assert.False(t, b.At(p).Hidden)
		}
	}
}

func TestFirstClickScenario(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	b := NewBoard(8, 8)
	start := Position{4, 4}
	b.PlaceMines(10, start, r)
	require.Equal(t, Content(0), b.At(start).Content)

	g := NewGame(b)
	before := g.Remaining()
	require.Equal(t, 54, before)

	move := g.Open(start)
	require.Equal(t, Fine, move.Result)
	assert.Greater(t, len(move.Opened), 1)
	assert.Equal(t, before-len(move.Opened), g.Remaining())

	// Every opened cell is a zero cell or borders one that was opened.
	for _, p := range move.Opened {
		if b.At(p).Content == 0 {
			continue
		}
		touchesZero := slices.ContainsFunc(b.Neighbors(p), func(n Position) bool {
			return b.At(n).Content == 0 && slices.Contains(move.Opened, n)
		})
		assert.True(t, touchesZero, "stray boundary cell %s", p)
	}
}

func TestRevealAllNormalizes(t *testing.T) {
	b := boardWith(3, 3, Position{2, 2})
	b.Select(Position{0, 0})
	g := NewGame(b)

	assert.Panics(t, func() { g.RevealAll() }, "game still running")

	g.Open(Position{2, 2})
	require.Equal(t, Lost, g.State())

	changed := g.RevealAll()
	assert.Len(t, changed, 9)
	for y := range 3 {
		for x := range 3 {
			c := b.At(Position{x, y})
			assert.False(t, c.Hidden)
			assert.False(t, c.Selected)
		}
	}
	_, ok := b.Cursor()
	assert.False(t, ok)
}
