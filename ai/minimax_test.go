package ai

import (
	"context"
	"flag"
	"math/rand"
	"testing"

	"github.com/nelhage/othello/notation"
	"github.com/nelhage/othello/othello"
	"github.com/nelhage/othello/othellotest"
)

var depth = flag.Int("depth", MaxDepth, "minimax search depth")

// randomPositions returns n positions reached by random play, each
// with a legal move for the side to move.
func randomPositions(seed int64, n int) []*othello.Position {
	r := rand.New(rand.NewSource(seed))
	var out []*othello.Position
	for len(out) < n {
		p := othello.New()
		plies := r.Intn(50)
		for i := 0; i < plies && !p.GameOver(); i++ {
			ms := p.LegalMoves(p.ToMove(), nil)
			if len(ms) == 0 {
				p.Pass()
				continue
			}
			m := ms[r.Intn(len(ms))]
			if _, err := p.Apply(m.Row, m.Col, p.ToMove()); err != nil {
				panic(err)
			}
		}
		if p.HasLegalMove(p.ToMove()) {
			out = append(out, p)
		}
	}
	return out
}

func BenchmarkMinimax(b *testing.B) {
	ai := NewMinimax(MinimaxConfig{Depth: *depth})
	p := othello.New()
	for i := 0; i < b.N; i++ {
		if p.GameOver() {
			p = othello.New()
		}
		m := ai.GetMove(context.Background(), p)
		var e error
		p, e = p.Move(m)
		if e != nil {
			b.Fatal("bad move", e)
		}
	}
}

func TestMinimaxDepthZero(t *testing.T) {
	ai := NewMinimax(MinimaxConfig{})
	for _, p := range randomPositions(1, 20) {
		for _, side := range []othello.Color{othello.Black, othello.White} {
			for _, maximizing := range []bool{true, false} {
				got := ai.minimax(p, 0, 0, maximizing, side, MinEval-1, MaxEval+1)
				if want := DefaultEvaluate(p, side); got != want {
					t.Errorf("%s: minimax(0)=%d evaluate=%d", notation.FormatBoard(p), got, want)
				}
			}
		}
	}
}

func TestPruningEquivalence(t *testing.T) {
	ctx := context.Background()
	for d := 1; d <= MaxDepth; d++ {
		pruned := NewMinimax(MinimaxConfig{Depth: d})
		full := NewMinimax(MinimaxConfig{Depth: d, NoPrune: true})
		for _, p := range randomPositions(int64(d), 15) {
			m1, v1, st1 := pruned.Analyze(ctx, p, p.ToMove())
			m2, v2, st2 := full.Analyze(ctx, p, p.ToMove())
			if !m1.Equal(m2) || v1 != v2 {
				t.Errorf("depth=%d %s: pruned=%s/%d full=%s/%d",
					d, notation.FormatBoard(p),
					notation.FormatMove(m1), v1, notation.FormatMove(m2), v2)
			}
			if st2.Cuts != 0 {
				t.Errorf("unpruned search cut %d nodes", st2.Cuts)
			}
			if st1.Evaluated > st2.Evaluated {
				t.Errorf("pruned search evaluated more nodes: %d > %d", st1.Evaluated, st2.Evaluated)
			}
		}
	}
}

func TestAnalyzeOpening(t *testing.T) {
	// The four opening moves are symmetric, so they tie and the first
	// in row-major order wins.
	for name, w := range Heuristics {
		ai := NewMinimax(MinimaxConfig{Evaluate: MakeEvaluator(w)})
		m, _, st := ai.Analyze(context.Background(), othello.New(), othello.Black)
		if got := notation.FormatMove(m); got != "D3" {
			t.Errorf("%s: opening move=%s", name, got)
		}
		if st.Depth != MaxDepth {
			t.Errorf("depth=%d", st.Depth)
		}
	}
}

func TestAnalyzeLegal(t *testing.T) {
	ai := NewMinimax(MinimaxConfig{})
	for _, p := range randomPositions(7, 20) {
		before := *p
		m, _, st := ai.Analyze(context.Background(), p, p.ToMove())
		if st.Static {
			t.Errorf("%s: scored value marked static", notation.FormatBoard(p))
		}
		if *p != before {
			t.Fatalf("Analyze mutated the position")
		}
		if m.Type != othello.Place || !p.IsLegal(m.Row, m.Col, p.ToMove()) {
			t.Fatalf("%s: illegal move %s", notation.FormatBoard(p), notation.FormatMove(m))
		}
		again, _, _ := ai.Analyze(context.Background(), p, p.ToMove())
		if !again.Equal(m) {
			t.Fatalf("nondeterministic: %s then %s", notation.FormatMove(m), notation.FormatMove(again))
		}
	}
}

func TestAnalyzeExplicitSide(t *testing.T) {
	ai := NewMinimax(MinimaxConfig{})
	p := othello.New()
	m, _, _ := ai.Analyze(context.Background(), p, othello.White)
	if m.Type != othello.Place || !p.IsLegal(m.Row, m.Col, othello.White) {
		t.Errorf("white move %s", notation.FormatMove(m))
	}
}

func TestAnalyzePass(t *testing.T) {
	p := othellotest.Board("WB6/8/8/8/8/8/8/8 b")
	ai := NewMinimax(MinimaxConfig{})
	m, v, st := ai.Analyze(context.Background(), p, othello.Black)
	if m.Type != othello.Pass {
		t.Errorf("move=%s, want pass", notation.FormatMove(m))
	}
	if want := DefaultEvaluate(p, othello.Black); v != want {
		t.Errorf("val=%d want %d", v, want)
	}
	if !st.Static {
		t.Error("pass value not marked static")
	}
}

func TestForcedPassInSearch(t *testing.T) {
	// White's only move is A3, which leaves no black discs and ends
	// the game.
	p := othellotest.Board("W7/B7/8/8/8/8/8/8 w")
	ai := NewMinimax(MinimaxConfig{})
	m, _, st := ai.Analyze(context.Background(), p, othello.White)
	if got := notation.FormatMove(m); got != "A3" {
		t.Errorf("move=%s", got)
	}
	if st.Terminal == 0 {
		t.Errorf("expected a terminal node: %+v", st)
	}
}

func TestAnalyzeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ai := NewMinimax(MinimaxConfig{})
	p := othello.New()
	m, v, st := ai.Analyze(ctx, p, othello.Black)
	if m.Type != othello.Place || !p.IsLegal(m.Row, m.Col, othello.Black) {
		t.Errorf("cancelled search returned %s", notation.FormatMove(m))
	}
	if !st.Cancelled || !st.Static {
		t.Errorf("stats=%+v, want cancelled and static", st)
	}
	if want := DefaultEvaluate(p, othello.Black); v != want {
		t.Errorf("val=%d want static %d", v, want)
	}

	_, _, st = ai.Analyze(context.Background(), p, othello.Black)
	if st.Cancelled || st.Static {
		t.Errorf("full search stats=%+v", st)
	}
}

func TestDedupSymmetry(t *testing.T) {
	ctx := context.Background()
	plain := NewMinimax(MinimaxConfig{Depth: 3})
	dedup := NewMinimax(MinimaxConfig{Depth: 3, DedupSymmetry: true})

	m, v, st := dedup.Analyze(ctx, othello.New(), othello.Black)
	if got := notation.FormatMove(m); got != "D3" {
		t.Errorf("opening=%s", got)
	}
	if st.Symmetric != 3 {
		t.Errorf("symmetric=%d", st.Symmetric)
	}
	if _, pv, _ := plain.Analyze(ctx, othello.New(), othello.Black); pv != v {
		t.Errorf("val=%d plain=%d", v, pv)
	}

	for _, p := range randomPositions(21, 20) {
		m1, v1, _ := plain.Analyze(ctx, p, p.ToMove())
		m2, v2, _ := dedup.Analyze(ctx, p, p.ToMove())
		if !m1.Equal(m2) || v1 != v2 {
			t.Errorf("%s: plain=%s/%d dedup=%s/%d", notation.FormatBoard(p),
				notation.FormatMove(m1), v1, notation.FormatMove(m2), v2)
		}
	}
}
