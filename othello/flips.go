package othello

// Flip records a single disc changing hands as the result of a move.
type Flip struct {
	Row, Col int
	From, To Color
}

// Flips describes the discs captured by one placement. It holds a
// snapshot of the board from before the move, and computes nothing
// until iterated, so it may be replayed any number of times.
type Flips struct {
	before   [Size * Size]Color
	row, col int
	c        Color
}

// Flips returns the captures that c would make by playing at (row,
// col). An illegal placement yields an empty sequence.
func (p *Position) Flips(row, col int, c Color) Flips {
	if !InBounds(row, col) || p.At(row, col) != NoColor {
		return Flips{}
	}
	return Flips{before: p.board, row: row, col: col, c: c}
}

func (f Flips) Iterator() FlipIterator {
	return FlipIterator{f: f}
}

func (f Flips) Len() int {
	n := 0
	for it := f.Iterator(); ; n++ {
		if _, ok := it.Next(); !ok {
			return n
		}
	}
}

func (f Flips) All() []Flip {
	var out []Flip
	it := f.Iterator()
	for fl, ok := it.Next(); ok; fl, ok = it.Next() {
		out = append(out, fl)
	}
	return out
}

// FlipIterator yields flips direction by direction, nearest disc
// first.
type FlipIterator struct {
	f    Flips
	dir  int
	dist int
	end  int
}

func (it *FlipIterator) Next() (Flip, bool) {
	if it.f.c != Black && it.f.c != White {
		return Flip{}, false
	}
	for it.dir < len(directions) {
		d := directions[it.dir]
		if it.dist == 0 {
			it.end = captureLen(&it.f.before, it.f.row, it.f.col, d, it.f.c)
			it.dist = 1
		}
		if it.dist <= it.end {
			fl := Flip{
				Row:  it.f.row + d.dr*it.dist,
				Col:  it.f.col + d.dc*it.dist,
				From: it.f.c.Flip(),
				To:   it.f.c,
			}
			it.dist++
			return fl, true
		}
		it.dir++
		it.dist = 0
	}
	return Flip{}, false
}
