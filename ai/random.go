package ai

import (
	"math/rand"

	"golang.org/x/net/context"

	"github.com/nelhage/othello/othello"
)

type RandomAI struct {
	r *rand.Rand
}

func (r *RandomAI) GetMove(ctx context.Context, p *othello.Position) othello.Move {
	moves := p.LegalMoves(p.ToMove(), nil)
	if len(moves) == 0 {
		return othello.Move{Type: othello.Pass}
	}
	return moves[r.r.Intn(len(moves))]
}

func NewRandom(seed int64) OthelloPlayer {
	return &RandomAI{
		r: rand.New(rand.NewSource(seed)),
	}
}
