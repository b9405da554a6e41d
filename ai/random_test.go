package ai

import (
	"context"
	"testing"

	"github.com/nelhage/othello/othello"
	"github.com/nelhage/othello/othellotest"
)

func TestRandomAI(t *testing.T) {
	r := NewRandom(3)
	p := othello.New()
	for !p.GameOver() {
		m := r.GetMove(context.Background(), p)
		next, err := p.Move(m)
		if err != nil {
			t.Fatalf("random move %v: %v", m, err)
		}
		p = next
	}

	stuck := othellotest.Board("WB6/8/8/8/8/8/8/8 b")
	if m := r.GetMove(context.Background(), stuck); m.Type != othello.Pass {
		t.Errorf("stuck: %v", m)
	}
}
