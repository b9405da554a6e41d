package notation

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/width"

	"github.com/nelhage/othello/othello"
)

var (
	ErrMalformedMove = errors.New("malformed move")
	ErrOutOfRange    = errors.New("coordinate out of range")
)

// ParseMove parses a console coordinate: a column letter A-H followed
// by a row digit 1-8, in either case, or the word "pass". Full-width
// input is folded to ASCII first.
func ParseMove(move string) (othello.Move, error) {
	s := strings.TrimSpace(width.Narrow.String(move))
	if strings.EqualFold(s, "pass") {
		return othello.Move{Type: othello.Pass}, nil
	}
	if len(s) != 2 {
		return othello.Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, move)
	}
	col, row := s[0], s[1]
	switch {
	case col >= 'a' && col <= 'z':
		col = col - 'a'
	case col >= 'A' && col <= 'Z':
		col = col - 'A'
	default:
		return othello.Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, move)
	}
	if row < '0' || row > '9' {
		return othello.Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, move)
	}
	row = row - '1'
	if !othello.InBounds(int(row), int(col)) {
		return othello.Move{}, fmt.Errorf("%w: %q", ErrOutOfRange, move)
	}
	return othello.Move{Row: int(row), Col: int(col), Type: othello.Place}, nil
}

func FormatMove(m othello.Move) string {
	switch m.Type {
	case othello.Pass:
		return "pass"
	case othello.Place:
		return string([]byte{byte('A' + m.Col), byte('1' + m.Row)})
	}
	return "?"
}

func FormatSquare(row, col int) string {
	return FormatMove(othello.Move{Row: row, Col: col, Type: othello.Place})
}

func FormatMoves(ms []othello.Move) string {
	var bits []string
	for _, m := range ms {
		bits = append(bits, FormatMove(m))
	}
	return strings.Join(bits, " ")
}

func ParseMoves(s string) ([]othello.Move, error) {
	var ms []othello.Move
	for _, w := range strings.Fields(s) {
		m, err := ParseMove(w)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, nil
}
