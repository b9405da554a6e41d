package ai

import (
	"golang.org/x/net/context"

	"github.com/nelhage/othello/othello"
)

type OthelloPlayer interface {
	GetMove(ctx context.Context, p *othello.Position) othello.Move
}
