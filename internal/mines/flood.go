package mines

// flood opens the zero region around start breadth-first, plus the hinted
// cells bordering it. Mines are never opened or expanded. Flags inside the
// region are lifted and their cells opened like any other; only a direct
// Open is stopped by a flag. Each index is looked at once, so a second call
// over an already open region opens nothing.
func (g *Game) flood(start int) (opened []int) {
	b := g.board
	if b.cells[start].Content != 0 {
		return nil
	}

	visited := make([]bool, len(b.cells))
	visited[start] = true
	frontier := []int{start}
	var next []int
	buf := make([]int, 0, 8)

	for len(frontier) > 0 {
		for _, i := range frontier {
			buf = b.neighbours(i, buf[:0])
			for _, j := range buf {
				if visited[j] {
					continue
				}
				visited[j] = true

				c := b.cells[j]
				if c.Content.IsMine() {
					continue
				}
				b.cells[j].Flagged = false
				if b.reveal(j) {
					g.remaining.remove(j)
					opened = append(opened, j)
				}
				if c.Content == 0 {
					next = append(next, j)
				}
			}
		}
		frontier, next = next, frontier[:0]
	}
	return opened
}
