package ai

import (
	"log"
	"sync/atomic"
	"time"

	"golang.org/x/net/context"

	"github.com/nelhage/othello/notation"
	"github.com/nelhage/othello/othello"
	"github.com/nelhage/othello/symmetry"
)

const (
	MaxEval int64 = 1 << 30
	MinEval       = -MaxEval

	// MaxDepth is the fixed search depth, in plies.
	MaxDepth = 4
)

type MinimaxAI struct {
	cfg MinimaxConfig
	st  Stats

	evaluate EvaluationFunc

	// stack holds one frame per ply. A frame's position is the
	// scratch successor for that ply; it is rewritten from the
	// parent for every sibling and never shared between plies.
	stack []frame

	cancel *int32
}

type frame struct {
	p  othello.Position
	mg moveGenerator
}

type Stats struct {
	Depth     int
	Visited   uint64
	Evaluated uint64
	Terminal  uint64
	Passes    uint64
	Cuts      uint64
	Symmetric uint64

	Elapsed   time.Duration
	Cancelled bool

	// Static is set when no root move was scored, either because
	// there was none to play or because the search was cancelled.
	// The value returned is then the static evaluation of the
	// position itself, not a score for the returned move.
	Static bool
}

type MinimaxConfig struct {
	Depth int
	Debug int

	// NoPrune disables alpha-beta cutoffs. The result is the same;
	// only the node count changes.
	NoPrune bool

	// DedupSymmetry skips root moves whose result is a symmetric
	// image of an earlier one. It is only sound for evaluators that
	// are invariant under symmetry.Diagonal, as MakeEvaluator's are.
	DedupSymmetry bool

	Evaluate EvaluationFunc
}

func NewMinimax(cfg MinimaxConfig) *MinimaxAI {
	m := &MinimaxAI{cfg: cfg}
	if m.cfg.Depth <= 0 {
		m.cfg.Depth = MaxDepth
	}
	m.evaluate = cfg.Evaluate
	if m.evaluate == nil {
		m.evaluate = DefaultEvaluate
	}
	m.stack = make([]frame, m.cfg.Depth+1)
	m.cancel = new(int32)
	return m
}

func (m *MinimaxAI) GetMove(ctx context.Context, p *othello.Position) othello.Move {
	mv, _, _ := m.Analyze(ctx, p, p.ToMove())
	return mv
}

// Analyze returns the best move for side in p, along with its score
// from side's perspective. If side has no legal move, it returns a
// Pass. Ties go to the first move in row-major order.
//
// If ctx is cancelled mid-search, Analyze returns the best move among
// those fully searched, or the first legal move if there are none. In
// the latter case Stats.Static is set.
func (m *MinimaxAI) Analyze(ctx context.Context, p *othello.Position, side othello.Color) (othello.Move, int64, Stats) {
	var cancel int32
	if ctx.Err() != nil {
		cancel = 1
	}
	m.cancel = &cancel
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			atomic.StoreInt32(&cancel, 1)
		case <-done:
		}
	}()

	m.st = Stats{Depth: m.cfg.Depth}
	start := time.Now()

	var best, first othello.Move
	var v int64
	found, legal := false, false

	var seen *symmetry.Set
	if m.cfg.DedupSymmetry {
		seen = symmetry.NewSet(symmetry.Diagonal)
	}

	mg := &m.stack[0].mg
	*mg = moveGenerator{p: p, side: side, child: &m.stack[0].p}
	for mv, child := mg.Next(); child != nil; mv, child = mg.Next() {
		if !legal {
			first, legal = mv, true
		}
		if seen != nil && seen.Add(child) {
			m.st.Symmetric++
			continue
		}
		s := m.minimax(child, 1, m.cfg.Depth-1, false, side, MinEval-1, MaxEval+1)
		if atomic.LoadInt32(m.cancel) != 0 {
			m.st.Cancelled = true
			break
		}
		if !found || s > v {
			best, v, found = mv, s, true
		}
	}
	if !found {
		if legal {
			best = first
		} else {
			best = othello.Move{Type: othello.Pass}
		}
		v = m.evaluate(p, side)
		m.st.Static = true
	}
	m.st.Elapsed = time.Since(start)

	if m.cfg.Debug > 0 {
		log.Printf("[minimax] side=%s move=%s val=%d static=%v depth=%d time=%s evaluated=%d visited=%d",
			side, notation.FormatMove(best), v, m.st.Static, m.st.Depth,
			m.st.Elapsed, m.st.Evaluated, m.st.Visited)
	}
	if m.cfg.Debug > 1 {
		log.Printf("[minimax]  stats: terminal=%d passes=%d cuts=%d symmetric=%d cancelled=%v",
			m.st.Terminal, m.st.Passes, m.st.Cuts, m.st.Symmetric, m.st.Cancelled)
	}
	return best, v, m.st
}

// minimax scores p from me's perspective. When maximizing, me is to
// move; otherwise the opponent is.
func (ai *MinimaxAI) minimax(
	p *othello.Position,
	ply, depth int,
	maximizing bool,
	me othello.Color,
	α, β int64) int64 {
	if depth <= 0 || p.Full() {
		ai.st.Evaluated++
		return ai.evaluate(p, me)
	}
	if atomic.LoadInt32(ai.cancel) != 0 {
		return 0
	}
	ai.st.Visited++

	current := me
	if !maximizing {
		current = me.Flip()
	}

	mg := &ai.stack[ply].mg
	*mg = moveGenerator{p: p, side: current, child: &ai.stack[ply].p}

	_, child := mg.Next()
	if child == nil {
		if !p.HasLegalMove(current.Flip()) {
			ai.st.Evaluated++
			ai.st.Terminal++
			return ai.evaluate(p, me)
		}
		ai.st.Passes++
		return ai.minimax(p, ply+1, depth-1, !maximizing, me, α, β)
	}

	best := MaxEval + 1
	if maximizing {
		best = MinEval - 1
	}
	for ; child != nil; _, child = mg.Next() {
		v := ai.minimax(child, ply+1, depth-1, !maximizing, me, α, β)
		if maximizing {
			if v > best {
				best = v
			}
			if v > α {
				α = v
			}
		} else {
			if v < best {
				best = v
			}
			if v < β {
				β = v
			}
		}
		if β <= α && !ai.cfg.NoPrune {
			ai.st.Cuts++
			break
		}
	}
	return best
}
