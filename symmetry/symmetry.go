package symmetry

import (
	"github.com/nelhage/othello/othello"
)

// Symmetry maps a cell of the board to its image.
type Symmetry func(row, col int) (int, int)

func flip(i int) int {
	return othello.Size - 1 - i
}

func identity(r, c int) (int, int) { return r, c }
func flipRows(r, c int) (int, int) { return flip(r), c }
func flipCols(r, c int) (int, int) { return r, flip(c) }
func transpose(r, c int) (int, int) {
	return c, r
}
func antiTranspose(r, c int) (int, int) {
	return flip(c), flip(r)
}
func rotate2(r, c int) (int, int) { return flip(r), flip(c) }
func rotCW(r, c int) (int, int)   { return c, flip(r) }
func rotCCW(r, c int) (int, int)  { return flip(c), r }

// All is the full symmetry group of the square board.
var All = []Symmetry{
	identity,
	flipRows,
	flipCols,
	transpose,
	antiTranspose,
	rotate2,
	rotCW,
	rotCCW,
}

// Diagonal is the subgroup that fixes the starting position. It is
// also the subgroup under which the edge term of the evaluator is
// invariant, since each maps the border index i uniformly to i or
// 7-i.
var Diagonal = []Symmetry{
	identity,
	transpose,
	antiTranspose,
	rotate2,
}

func TransformMove(s Symmetry, m othello.Move) othello.Move {
	if m.Type != othello.Place {
		return m
	}
	out := m
	out.Row, out.Col = s(m.Row, m.Col)
	return out
}

// Transform returns the image of p under s.
func Transform(s Symmetry, p *othello.Position) *othello.Position {
	cells := make([][]othello.Color, othello.Size)
	for r := range cells {
		cells[r] = make([]othello.Color, othello.Size)
	}
	for r := 0; r < othello.Size; r++ {
		for c := 0; c < othello.Size; c++ {
			rr, rc := s(r, c)
			cells[rr][rc] = p.At(r, c)
		}
	}
	out, err := othello.FromCells(cells, p.ToMove())
	if err != nil {
		panic(err)
	}
	return out
}

type PositionAndSymmetry struct {
	P *othello.Position
	S Symmetry
}

// Symmetries returns the distinct images of p under syms, in order.
func Symmetries(p *othello.Position, syms []Symmetry) []PositionAndSymmetry {
	seen := make(map[othello.Position]struct{})
	var out []PositionAndSymmetry
	for _, s := range syms {
		img := Transform(s, p)
		if _, ok := seen[*img]; ok {
			continue
		}
		seen[*img] = struct{}{}
		out = append(out, PositionAndSymmetry{P: img, S: s})
	}
	return out
}

// Set records positions up to a group of symmetries.
type Set struct {
	syms []Symmetry
	seen map[othello.Position]struct{}
}

func NewSet(syms []Symmetry) *Set {
	return &Set{syms: syms, seen: make(map[othello.Position]struct{})}
}

// Add inserts p and reports whether an equivalent position was
// already present.
func (s *Set) Add(p *othello.Position) bool {
	for _, sym := range s.syms {
		if _, ok := s.seen[*Transform(sym, p)]; ok {
			return true
		}
	}
	s.seen[*p] = struct{}{}
	return false
}
