package mines

type State int

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

func (s State) Terminal() bool {
	return s != Playing
}

type Result int

const (
	Fine Result = iota
	Dead
)

func (r Result) String() string {
	if r == Dead {
		return "dead"
	}
	return "fine"
}

// Move is what a single Open did to the board.
type Move struct {
	Result Result
	Opened []Position
}

type Game struct {
	board     *Board
	remaining *indexSet /* hidden safe cells */
	state     State
}

// NewGame starts play on a seeded board. Every hidden non-mine cell counts
// towards the win.
//
// panics [AssertionError]
func NewGame(board *Board) *Game {
	if !board.seeded {
		panic(Assertionf("game started on a board without mines"))
	}
	remaining := newIndexSet(len(board.cells))
	for i, c := range board.cells {
		if c.Hidden && !c.Content.IsMine() {
			remaining.add(i)
		}
	}
	g := &Game{board: board, remaining: remaining}
	if remaining.len() == 0 {
		g.state = Won
	}
	return g
}

func (g *Game) Board() *Board  { return g.board }
func (g *Game) State() State   { return g.state }
func (g *Game) Remaining() int { return g.remaining.len() }

// Open reveals the cell at p. Flagged cells swallow the click. Opening a
// zero cell floods its region. Nothing happens once the game is over.
//
// panics [AssertionError]
func (g *Game) Open(p Position) Move {
	i := g.board.index(p)
	if g.state.Terminal() {
		return Move{Result: Fine}
	}

	c := g.board.cells[i]
	if c.Flagged || !c.Hidden {
		return Move{Result: Fine}
	}

	if c.Content.IsMine() {
		/*
		 * The player has landed on a mine. The cell itself is left for
		 * RevealAll to uncover with the rest.
		 */
		g.state = Lost
		return Move{Result: Dead}
	}

	g.board.reveal(i)
	g.remaining.remove(i)
	opened := []int{i}
	opened = append(opened, g.flood(i)...)

	if g.remaining.len() == 0 {
		g.state = Won
	}

	move := Move{Result: Fine, Opened: make([]Position, len(opened))}
	for k, j := range opened {
		move.Opened[k] = g.board.position(j)
	}
	return move
}

// Flag toggles the flag at p. It never changes the game state.
//
// panics [AssertionError]
func (g *Game) Flag(p Position) bool {
	g.board.index(p)
	if g.state.Terminal() {
		return false
	}
	return g.board.ToggleFlag(p)
}

// RevealAll uncovers and unhighlights every cell for the end screen and
// returns the positions that changed.
//
// panics [AssertionError]
func (g *Game) RevealAll() []Position {
	if !g.state.Terminal() {
		panic(Assertionf("reveal all while %s", g.state))
	}
	var changed []Position
	for i := range g.board.cells {
		c := &g.board.cells[i]
		if c.Hidden || c.Selected {
			c.Hidden = false
			c.Selected = false
			changed = append(changed, g.board.position(i))
		}
	}
	g.board.cursor = -1
	return changed
}
