package mines

// Reveal uncovers cell (x, y). It returns true if any state changed.
//
// Revealing a mine loses the game. Revealing a cell with no neighboring
// mines chain-reveals its connected zero region and the numbered cells
// bordering it; flagged cells are skipped and stay flagged.
//
// Flagged or already revealed cells, and any call after the game has
// ended, are rejected with (false, nil). Out-of-range coordinates return
// ErrOutOfRange.
func (b *Board) Reveal(x, y int) (bool, error) {
	if !b.InBounds(x, y) {
		return false, outOfRange(x, y)
	}
	if b.status != InProgress || b.state[x][y] != Hidden {
		return false, nil
	}

	b.state[x][y] = Revealed
	b.revealed++

	c := b.content[x][y]
	if c.IsMine() {
		b.finish(Lost)
		return true, nil
	}
	if c.NeighborMines() == 0 {
		b.chainReveal(x, y)
	}

	b.checkWin()
	return true, nil
}

// chainReveal flood-fills outward from a revealed zero cell.
// Cells are marked Revealed before being pushed, so each is visited once.
func (b *Board) chainReveal(x, y int) {
	stack := []Point{{X: x, Y: y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for n := range b.neighbors(p.X, p.Y) {
			if b.state[n.X][n.Y] != Hidden {
				continue
			}
			b.state[n.X][n.Y] = Revealed
			b.revealed++

			c := b.content[n.X][n.Y]
			if !c.IsMine() && c.NeighborMines() == 0 {
				stack = append(stack, n)
			}
		}
	}
}

// ToggleFlag flips cell (x, y) between Hidden and Flagged. Revealed cells
// and calls after the game has ended are rejected with (false, nil).
func (b *Board) ToggleFlag(x, y int) (bool, error) {
	if !b.InBounds(x, y) {
		return false, outOfRange(x, y)
	}
	if b.status != InProgress {
		return false, nil
	}

	switch b.state[x][y] {
	case Hidden:
		b.state[x][y] = Flagged
		b.flags++
	case Flagged:
		b.state[x][y] = Hidden
		b.flags--
	default:
		return false, nil
	}
	return true, nil
}

// checkWin ends the game once every non-mine cell is revealed.
// Flags do not matter.
func (b *Board) checkWin() {
	if b.status == InProgress && b.revealed+b.mines == b.width*b.height {
		b.finish(Won)
	}
}

func (b *Board) finish(s Status) {
	b.status = s
	b.finishedAt = b.now()
}
