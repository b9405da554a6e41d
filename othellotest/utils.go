package othellotest

import (
	"github.com/nelhage/othello/notation"
	"github.com/nelhage/othello/othello"
)

func Move(s string) othello.Move {
	m, e := notation.ParseMove(s)
	if e != nil {
		panic(e)
	}
	return m
}

func Moves(s string) []othello.Move {
	ms, e := notation.ParseMoves(s)
	if e != nil {
		panic(e)
	}
	return ms
}

func Board(s string) *othello.Position {
	p, e := notation.ParseBoard(s)
	if e != nil {
		panic(e)
	}
	return p
}

// Position plays the space-separated moves ms from the starting
// position, by whichever side is to move.
func Position(ms string) *othello.Position {
	p := othello.New()
	var e error
	for _, m := range Moves(ms) {
		p, e = p.Move(m)
		if e != nil {
			panic(e)
		}
	}
	return p
}
