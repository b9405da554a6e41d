package ai

import "github.com/nelhage/othello/othello"

// moveGenerator yields the legal placements of side in row-major
// order. Each successor is written into child, which belongs to the
// generator's ply and is overwritten by the next call.
type moveGenerator struct {
	p     *othello.Position
	side  othello.Color
	child *othello.Position

	i int
}

func (mg *moveGenerator) Next() (othello.Move, *othello.Position) {
	for mg.i < othello.Size*othello.Size {
		r, c := mg.i/othello.Size, mg.i%othello.Size
		mg.i++
		child, e := mg.p.PlacePreallocated(r, c, mg.side, mg.child)
		if e == nil {
			return othello.Move{Row: r, Col: c, Type: othello.Place}, child
		}
	}
	return othello.Move{}, nil
}
