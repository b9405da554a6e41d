package ai

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nelhage/othello/othello"
	"github.com/nelhage/othello/othellotest"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name    string
		board   string
		black   int64
		white   int64
		guiBlk  int64
		guiWhit int64
	}{
		{"start", "8/8/8/3WB3/3BW3/8/8/8 b", 0, 0, 0, 0},
		{"corners", "B7/8/8/3WB3/3BW3/8/8/7W b", 5, 5, 0, 0},
		{"top row", "BBBBBBBB/8/8/8/8/8/8/8 w", 98, -58, 58, -58},
		{"one edge index", "3B4/8/8/B7/8/8/8/8 b", 7, -2, 2, -2},
		{"two edge indexes", "3BB3/8/8/8/8/8/8/8 b", 12, -2, 2, -2},
	}
	gui := MakeEvaluator(&GUIWeights)
	for _, tc := range cases {
		p := othellotest.Board(tc.board)
		if got := DefaultEvaluate(p, othello.Black); got != tc.black {
			t.Errorf("%s: console(black)=%d want %d", tc.name, got, tc.black)
		}
		if got := DefaultEvaluate(p, othello.White); got != tc.white {
			t.Errorf("%s: console(white)=%d want %d", tc.name, got, tc.white)
		}
		if got := gui(p, othello.Black); got != tc.guiBlk {
			t.Errorf("%s: gui(black)=%d want %d", tc.name, got, tc.guiBlk)
		}
		if got := gui(p, othello.White); got != tc.guiWhit {
			t.Errorf("%s: gui(white)=%d want %d", tc.name, got, tc.guiWhit)
		}
	}
}

func TestHeuristics(t *testing.T) {
	if Heuristics["console"].Edge != 5 {
		t.Error("console heuristic has no edge bonus")
	}
	if Heuristics["gui"].Edge != 0 {
		t.Error("gui heuristic has an edge bonus")
	}
}

func TestExplainScore(t *testing.T) {
	var buf bytes.Buffer
	p := othellotest.Board("BBBBBBBB/8/8/8/8/8/8/8 w")
	ExplainScore(&DefaultWeights, &buf, p, othello.Black)
	out := buf.String()
	for _, want := range []string{"discs", "corners", "edges", "98"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
