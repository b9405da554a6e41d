package othello

import "errors"

type MoveType byte

const (
	Place MoveType = 1 + iota
	Pass
)

type Move struct {
	Row, Col int
	Type     MoveType
}

func (m Move) Equal(rhs Move) bool {
	if m.Type != rhs.Type {
		return false
	}
	if m.Type == Pass {
		return true
	}
	return m.Row == rhs.Row && m.Col == rhs.Col
}

var (
	ErrOutOfBounds = errors.New("position is off the board")
	ErrOccupied    = errors.New("position is occupied")
	ErrIllegalMove = errors.New("move captures nothing")
	ErrCannotPass  = errors.New("cannot pass with a legal move available")
	ErrBadMoveType = errors.New("invalid move type")
	ErrWrongSide   = errors.New("not a side")
)

func (p *Position) check(row, col int, c Color) error {
	if c != Black && c != White {
		return ErrWrongSide
	}
	if !InBounds(row, col) {
		return ErrOutOfBounds
	}
	if p.At(row, col) != NoColor {
		return ErrOccupied
	}
	if !p.IsLegal(row, col, c) {
		return ErrIllegalMove
	}
	return nil
}

// Apply places a c disc at (row, col), flips every captured run, and
// hands the turn to the opponent. The position is modified in place.
// An illegal placement returns an error and leaves p unchanged.
func (p *Position) Apply(row, col int, c Color) (Flips, error) {
	if err := p.check(row, col, c); err != nil {
		return Flips{}, err
	}
	f := Flips{before: p.board, row: row, col: col, c: c}
	p.place(row, col, c)
	return f, nil
}

func (p *Position) place(row, col int, c Color) {
	var runs [len(directions)]int
	for i, d := range directions {
		runs[i] = captureLen(&p.board, row, col, d, c)
	}
	p.set(row, col, c)
	p.moves++
	for i, d := range directions {
		r, cc := row, col
		for j := 0; j < runs[i]; j++ {
			r += d.dr
			cc += d.dc
			p.set(r, cc, c)
		}
	}
	p.toMove = c.Flip()
}

// Pass hands the turn to the opponent without touching the board. It
// is only allowed when the side to move has no legal placement.
func (p *Position) Pass() error {
	if p.HasLegalMove(p.toMove) {
		return ErrCannotPass
	}
	p.toMove = p.toMove.Flip()
	return nil
}

// Move returns the position after the side to move plays m. The
// receiver is not modified.
func (p *Position) Move(m Move) (*Position, error) {
	return p.MovePreallocated(m, nil)
}

func (p *Position) MovePreallocated(m Move, next *Position) (*Position, error) {
	switch m.Type {
	case Pass:
		if next == nil {
			next = new(Position)
		}
		*next = *p
		if err := next.Pass(); err != nil {
			return nil, err
		}
		return next, nil
	case Place:
		return p.PlacePreallocated(m.Row, m.Col, p.toMove, next)
	default:
		return nil, ErrBadMoveType
	}
}

// PlacePreallocated is like Apply, but writes the successor position
// into next (allocating it if nil) and leaves p untouched.
func (p *Position) PlacePreallocated(row, col int, c Color, next *Position) (*Position, error) {
	if err := p.check(row, col, c); err != nil {
		return nil, err
	}
	if next == nil {
		next = new(Position)
	}
	*next = *p
	next.place(row, col, c)
	return next, nil
}
