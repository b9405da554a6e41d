package othello

import (
	"math/rand"
	"testing"
)

func TestNew(t *testing.T) {
	p := New()
	if p.MoveCount() != 4 {
		t.Errorf("MoveCount=%d", p.MoveCount())
	}
	if p.ToMove() != Black {
		t.Errorf("ToMove=%v", p.ToMove())
	}
	want := map[[2]int]Color{
		{3, 3}: White, {3, 4}: Black,
		{4, 3}: Black, {4, 4}: White,
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if got := p.At(r, c); got != want[[2]int{r, c}] {
				t.Errorf("At(%d,%d)=%v", r, c, got)
			}
		}
	}
	if b, w := p.CountPieces(); b != 2 || w != 2 {
		t.Errorf("CountPieces=%d,%d", b, w)
	}
}

func TestFromCells(t *testing.T) {
	cells := make([][]Color, Size)
	for i := range cells {
		cells[i] = make([]Color, Size)
	}
	cells[0][0] = Black
	cells[7][7] = White
	cells[7][6] = White
	p, err := FromCells(cells, White)
	if err != nil {
		t.Fatalf("FromCells: %v", err)
	}
	if p.MoveCount() != 3 {
		t.Errorf("MoveCount=%d", p.MoveCount())
	}
	if p.At(0, 0) != Black || p.At(7, 6) != White {
		t.Errorf("bad cells")
	}

	cells[3][3] = Color(7)
	if _, err := FromCells(cells, White); err == nil {
		t.Error("accepted a bad color")
	}
	cells[3][3] = NoColor
	if _, err := FromCells(cells, NoColor); err == nil {
		t.Error("accepted NoColor to move")
	}
	if _, err := FromCells(cells[:7], Black); err != ErrBadDimensions {
		t.Errorf("short board: %v", err)
	}
}

func TestColor(t *testing.T) {
	if Black.Flip() != White || White.Flip() != Black || NoColor.Flip() != NoColor {
		t.Error("Flip")
	}
	if Black.String() != "black" || White.String() != "white" {
		t.Error("String")
	}
}

// playRandom plays a random game from the start, calling f after each
// placement with the position before and after it.
func playRandom(r *rand.Rand, f func(before, after *Position, m Move, fl Flips)) *Position {
	p := New()
	var buf []Move
	for !p.GameOver() {
		buf = p.LegalMoves(p.ToMove(), buf[:0])
		if len(buf) == 0 {
			if err := p.Pass(); err != nil {
				panic(err)
			}
			continue
		}
		m := buf[r.Intn(len(buf))]
		before := *p
		fl, err := p.Apply(m.Row, m.Col, p.ToMove())
		if err != nil {
			panic(err)
		}
		if f != nil {
			f(&before, p, m, fl)
		}
	}
	return p
}

func TestCountInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for g := 0; g < 50; g++ {
		playRandom(r, func(_, p *Position, _ Move, _ Flips) {
			b, w := p.CountPieces()
			empty := 0
			for i := 0; i < Size*Size; i++ {
				if p.board[i] == NoColor {
					empty++
				}
			}
			if b+w+empty != 64 {
				t.Fatalf("b=%d w=%d e=%d", b, w, empty)
			}
			if b+w != p.MoveCount() {
				t.Fatalf("move count %d != discs %d", p.MoveCount(), b+w)
			}
		})
	}
}

func TestWinDetails(t *testing.T) {
	p := &Position{toMove: Black}
	p.set(0, 0, Black)
	p.set(7, 7, White)
	p.set(7, 6, White)
	p.moves = 3
	d := p.WinDetails()
	if d.Winner != White || d.Black != 1 || d.White != 2 {
		t.Errorf("WinDetails=%+v", d)
	}

	p.set(7, 6, NoColor)
	p.moves = 2
	if d := p.WinDetails(); d.Winner != NoColor {
		t.Errorf("tie: %+v", d)
	}

	defer func() {
		if recover() == nil {
			t.Error("WinDetails on a live game did not panic")
		}
	}()
	New().WinDetails()
}
