package symmetry

import (
	"testing"

	"github.com/nelhage/othello/notation"
	"github.com/nelhage/othello/othello"
	"github.com/nelhage/othello/othellotest"
)

func TestStartIsDiagonal(t *testing.T) {
	p := othello.New()
	if n := len(Symmetries(p, Diagonal)); n != 1 {
		t.Errorf("start has %d diagonal images", n)
	}
	if n := len(Symmetries(p, All)); n != 2 {
		t.Errorf("start has %d images", n)
	}
}

func TestOpeningsEquivalent(t *testing.T) {
	set := NewSet(Diagonal)
	p := othello.New()
	dups := 0
	for _, m := range p.LegalMoves(othello.Black, nil) {
		child, err := p.Move(m)
		if err != nil {
			t.Fatal(err)
		}
		if set.Add(child) {
			dups++
		}
	}
	if dups != 3 {
		t.Errorf("%d of 4 openings were duplicates", dups)
	}
}

func TestTransformMove(t *testing.T) {
	cases := []struct {
		s       Symmetry
		in, out string
	}{
		{transpose, "D3", "C4"},
		{rotate2, "D3", "E6"},
		{antiTranspose, "D3", "F5"},
		{flipCols, "A1", "H1"},
		{rotCW, "A1", "H1"},
		{identity, "pass", "pass"},
	}
	for _, tc := range cases {
		got := notation.FormatMove(TransformMove(tc.s, othellotest.Move(tc.in)))
		if got != tc.out {
			t.Errorf("%s -> %s, want %s", tc.in, got, tc.out)
		}
	}
}

func TestTransformCommutesWithMove(t *testing.T) {
	p := othellotest.Position("D3 C5 F6")
	m := othellotest.Move("F5")
	after, err := p.Move(m)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range All {
		img, err := Transform(s, p).Move(TransformMove(s, m))
		if err != nil {
			t.Fatalf("sym %d: %v", i, err)
		}
		if *img != *Transform(s, after) {
			t.Errorf("sym %d: transform does not commute with move", i)
		}
	}
}
