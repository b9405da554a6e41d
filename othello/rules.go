package othello

type direction struct {
	dr, dc int
}

var directions = [8]direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// captureLen walks outward from (row, col) along d and returns the
// number of opponent discs that a c disc placed at (row, col) would
// capture in that direction. The target cell itself is not examined.
func captureLen(board *[Size * Size]Color, row, col int, d direction, c Color) int {
	opp := c.Flip()
	r, cc := row+d.dr, col+d.dc
	n := 0
	for InBounds(r, cc) {
		switch board[r*Size+cc] {
		case opp:
			n++
		case c:
			return n
		default:
			return 0
		}
		r += d.dr
		cc += d.dc
	}
	return 0
}

func (p *Position) IsLegal(row, col int, c Color) bool {
	if !InBounds(row, col) || p.At(row, col) != NoColor {
		return false
	}
	if c != Black && c != White {
		return false
	}
	for _, d := range directions {
		if captureLen(&p.board, row, col, d, c) > 0 {
			return true
		}
	}
	return false
}

func (p *Position) HasLegalMove(c Color) bool {
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			if p.IsLegal(r, col, c) {
				return true
			}
		}
	}
	return false
}

// LegalMoves appends every legal placement for c to out, in row-major
// order, and returns the extended slice.
func (p *Position) LegalMoves(c Color, out []Move) []Move {
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			if p.IsLegal(r, col, c) {
				out = append(out, Move{Row: r, Col: col, Type: Place})
			}
		}
	}
	return out
}

// GameOver reports whether neither side has a legal move.
func (p *Position) GameOver() bool {
	return !p.HasLegalMove(Black) && !p.HasLegalMove(White)
}
