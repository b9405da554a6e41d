package notation

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/nelhage/othello/othello"
)

// StartPosition is the board string for othello.New().
const StartPosition = "8/8/8/3WB3/3BW3/8/8/8 b"

// ParseBoard parses a board string of the form
//
//	8/8/8/3WB3/3BW3/8/8/8 b
//
// Rows run from row 0 (printed as row 1) downward. Within a row, B and
// W are discs and a digit is a run of that many empty cells. The final
// word is the side to move.
func ParseBoard(s string) (*othello.Position, error) {
	words := strings.Fields(s)
	if len(words) != 2 {
		return nil, errors.New("bad board: wrong number of words")
	}
	var toMove othello.Color
	switch words[1] {
	case "b", "B":
		toMove = othello.Black
	case "w", "W":
		toMove = othello.White
	default:
		return nil, fmt.Errorf("bad side to move: %q", words[1])
	}
	rows := strings.Split(words[0], "/")
	if len(rows) != othello.Size {
		return nil, fmt.Errorf("bad board: %d rows", len(rows))
	}
	cells := make([][]othello.Color, 0, othello.Size)
	for i, r := range rows {
		row, err := parseRow(r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		cells = append(cells, row)
	}
	return othello.FromCells(cells, toMove)
}

func parseRow(r string) ([]othello.Color, error) {
	var row []othello.Color
	for _, ch := range r {
		switch {
		case ch == 'B' || ch == 'b':
			row = append(row, othello.Black)
		case ch == 'W' || ch == 'w':
			row = append(row, othello.White)
		case ch >= '1' && ch <= '8':
			for i := 0; i < int(ch-'0'); i++ {
				row = append(row, othello.NoColor)
			}
		default:
			return nil, fmt.Errorf("bad cell: %q", ch)
		}
	}
	if len(row) != othello.Size {
		return nil, fmt.Errorf("bad length: %d", len(row))
	}
	return row, nil
}

func FormatBoard(p *othello.Position) string {
	var out bytes.Buffer
	for r := 0; r < othello.Size; r++ {
		if r != 0 {
			out.WriteByte('/')
		}
		empty := 0
		for c := 0; c < othello.Size; c++ {
			cell := p.At(r, c)
			if cell == othello.NoColor {
				empty++
				continue
			}
			if empty > 0 {
				out.WriteByte(byte('0' + empty))
				empty = 0
			}
			if cell == othello.Black {
				out.WriteByte('B')
			} else {
				out.WriteByte('W')
			}
		}
		if empty > 0 {
			out.WriteByte(byte('0' + empty))
		}
	}
	if p.ToMove() == othello.White {
		out.WriteString(" w")
	} else {
		out.WriteString(" b")
	}
	return out.String()
}
