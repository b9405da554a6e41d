package othello

import (
	"errors"
	"fmt"
)

const Size = 8

var (
	ErrBadDimensions = errors.New("board must be 8x8")
	ErrBadColor      = errors.New("bad color")
)

// Position is a complete Othello game state: the grid, the number of
// discs placed so far (counting the four seeded discs), and the side
// to move. A Position is a plain value; copying it yields an
// independent snapshot.
type Position struct {
	board  [Size * Size]Color
	moves  int
	toMove Color
}

// New returns the standard starting position with Black to move.
func New() *Position {
	p := &Position{toMove: Black}
	p.set(3, 3, White)
	p.set(3, 4, Black)
	p.set(4, 3, Black)
	p.set(4, 4, White)
	p.moves = 4
	return p
}

// FromCells initializes a Position from a slice of rows, numbered
// from row 0, each of which holds Size cells. The move count is
// derived from the occupied cells.
func FromCells(cells [][]Color, toMove Color) (*Position, error) {
	if len(cells) != Size {
		return nil, ErrBadDimensions
	}
	if toMove != Black && toMove != White {
		return nil, fmt.Errorf("side to move: %w", ErrBadColor)
	}
	p := &Position{toMove: toMove}
	for r, row := range cells {
		if len(row) != Size {
			return nil, ErrBadDimensions
		}
		for c, cell := range row {
			switch cell {
			case NoColor:
			case Black, White:
				p.moves++
			default:
				return nil, fmt.Errorf("cell (%d,%d): %w", r, c, ErrBadColor)
			}
			p.set(r, c, cell)
		}
	}
	return p, nil
}

func (p *Position) At(row, col int) Color {
	return p.board[row*Size+col]
}

func (p *Position) set(row, col int, c Color) {
	p.board[row*Size+col] = c
}

func (p *Position) ToMove() Color {
	return p.toMove
}

// MoveCount returns the number of discs placed since the start of the
// game, including the four seeded discs.
func (p *Position) MoveCount() int {
	return p.moves
}

func (p *Position) Full() bool {
	return p.moves == Size*Size
}

func (p *Position) CountPieces() (black, white int) {
	for _, c := range p.board {
		switch c {
		case Black:
			black++
		case White:
			white++
		}
	}
	return black, white
}

// Count returns the number of discs of color c on the board.
func (p *Position) Count(c Color) int {
	b, w := p.CountPieces()
	if c == Black {
		return b
	}
	return w
}

type WinDetails struct {
	Winner Color
	Black  int
	White  int
}

func (p *Position) WinDetails() WinDetails {
	if !p.GameOver() {
		panic("WinDetails on a game not over")
	}
	var d WinDetails
	d.Black, d.White = p.CountPieces()
	switch {
	case d.Black > d.White:
		d.Winner = Black
	case d.White > d.Black:
		d.Winner = White
	default:
		d.Winner = NoColor
	}
	return d
}
