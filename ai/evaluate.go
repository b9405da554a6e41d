package ai

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nelhage/othello/othello"
)

type Weights struct {
	Disc   int
	Corner int

	// Edge is awarded once for each index i in [0, 8) such that any
	// of the four border cells (0,i), (7,i), (i,0), (i,7) holds one of
	// our discs. It is never charged against the opponent.
	Edge int
}

// DefaultWeights is the console engine's heuristic, and the one we
// play with unless told otherwise.
var DefaultWeights = Weights{
	Disc:   1,
	Corner: 25,
	Edge:   5,
}

// GUIWeights is the heuristic of the graphical engine, which has no
// edge bonus.
var GUIWeights = Weights{
	Disc:   1,
	Corner: 25,
}

var Heuristics = map[string]*Weights{
	"console": &DefaultWeights,
	"gui":     &GUIWeights,
}

type EvaluationFunc func(p *othello.Position, perspective othello.Color) int64

func MakeEvaluator(w *Weights) EvaluationFunc {
	return func(p *othello.Position, perspective othello.Color) int64 {
		return evaluate(w, p, perspective)
	}
}

var DefaultEvaluate = MakeEvaluator(&DefaultWeights)

var corners = [4][2]int{{0, 0}, {0, 7}, {7, 0}, {7, 7}}

type terms struct {
	discs, corners, edges int
}

func score(p *othello.Position, me othello.Color) terms {
	var t terms
	b, w := p.CountPieces()
	if me == othello.Black {
		t.discs = b - w
	} else {
		t.discs = w - b
	}
	for _, c := range corners {
		switch p.At(c[0], c[1]) {
		case othello.NoColor:
		case me:
			t.corners++
		default:
			t.corners--
		}
	}
	last := othello.Size - 1
	for i := 0; i < othello.Size; i++ {
		if p.At(0, i) == me || p.At(last, i) == me ||
			p.At(i, 0) == me || p.At(i, last) == me {
			t.edges++
		}
	}
	return t
}

func evaluate(w *Weights, p *othello.Position, me othello.Color) int64 {
	t := score(p, me)
	return int64(w.Disc*t.discs + w.Corner*t.corners + w.Edge*t.edges)
}

// ExplainScore writes a breakdown of the evaluation of p from the
// perspective of me.
func ExplainScore(w *Weights, out io.Writer, p *othello.Position, me othello.Color) {
	tw := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	t := score(p, me)
	fmt.Fprintf(tw, "term\tcount\tweight\tscore\n")
	fmt.Fprintf(tw, "discs\t%d\t%d\t%d\n", t.discs, w.Disc, t.discs*w.Disc)
	fmt.Fprintf(tw, "corners\t%d\t%d\t%d\n", t.corners, w.Corner, t.corners*w.Corner)
	fmt.Fprintf(tw, "edges\t%d\t%d\t%d\n", t.edges, w.Edge, t.edges*w.Edge)
	fmt.Fprintf(tw, "total\t\t\t%d\n", evaluate(w, p, me))
	tw.Flush()
}
