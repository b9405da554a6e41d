package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nelhage/othello/notation"
	"github.com/nelhage/othello/othello"
)

// QuitMove is the move a player returns to abandon the game. Its Type is
// neither Place nor Pass, so no position accepts it.
var QuitMove = othello.Move{}

func IsQuit(m othello.Move) bool {
	return m.Type != othello.Place && m.Type != othello.Pass
}

// NewCLIPlayer reads moves from in, one per line. End of input or the
// word "quit" abandons the game.
func NewCLIPlayer(out io.Writer, in *bufio.Reader) Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *cliPlayer) GetMove(p *othello.Position) othello.Move {
	legal := p.LegalMoves(p.ToMove(), nil)
	for {
		fmt.Fprintf(c.out, "%s [%s]> ", p.ToMove(), notation.FormatMoves(legal))
		line, err := c.in.ReadString('\n')
		if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
			fmt.Fprintln(c.out)
			return QuitMove
		}
		if strings.EqualFold(strings.TrimSpace(line), "quit") {
			return QuitMove
		}
		m, err := notation.ParseMove(line)
		if err != nil {
			fmt.Fprintln(c.out, "parse error: ", err)
			continue
		}
		if m.Type == othello.Place && !p.IsLegal(m.Row, m.Col, p.ToMove()) {
			fmt.Fprintf(c.out, "%s is not a legal move\n", notation.FormatMove(m))
			continue
		}
		return m
	}
}
