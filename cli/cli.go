package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/muesli/termenv"

	"github.com/nelhage/othello/notation"
	"github.com/nelhage/othello/othello"
)

type Player interface {
	GetMove(p *othello.Position) othello.Move
}

type Glyphs struct {
	Black, White, Empty string
}

type CLI struct {
	moves []othello.Move
	p     *othello.Position
	quit  bool

	// Start is the initial position; nil means the standard opening.
	Start  *othello.Position
	Glyphs *Glyphs
	Color  bool
	Out    io.Writer
	Black  Player
	White  Player
}

var DefaultGlyphs = Glyphs{
	Black: "B",
	White: "W",
	Empty: ".",
}

var UnicodeGlyphs = Glyphs{
	Black: "●",
	White: "○",
	Empty: "·",
}

// Play runs a game to completion, or until a player quits, and
// returns the final position.
func (c *CLI) Play() *othello.Position {
	c.moves = nil
	c.quit = false
	if c.Start != nil {
		p := *c.Start
		c.p = &p
	} else {
		c.p = othello.New()
	}
	for {
		c.render()
		if c.p.GameOver() {
			d := c.p.WinDetails()
			fmt.Fprintf(c.Out, "Game Over! ")
			if d.Winner == othello.NoColor {
				fmt.Fprintf(c.Out, "Tie.")
			} else {
				fmt.Fprintf(c.Out, "%s wins.", d.Winner)
			}
			fmt.Fprintf(c.Out, "\nfinal score: black=%d white=%d\n", d.Black, d.White)
			return c.p
		}
		side := c.p.ToMove()
		if !c.p.HasLegalMove(side) {
			fmt.Fprintf(c.Out, "%s has no legal move and passes.\n", side)
			if err := c.p.Pass(); err != nil {
				panic(err)
			}
			c.moves = append(c.moves, othello.Move{Type: othello.Pass})
			continue
		}
		var m othello.Move
		if side == othello.White {
			m = c.White.GetMove(c.p)
		} else {
			m = c.Black.GetMove(c.p)
		}
		if IsQuit(m) {
			fmt.Fprintf(c.Out, "%s quits.\n", side)
			c.quit = true
			return c.p
		}
		flips := c.p.Flips(m.Row, m.Col, side)
		p, e := c.p.Move(m)
		if e != nil {
			fmt.Fprintf(c.Out, "illegal move %s: %v\n", notation.FormatMove(m), e)
			continue
		}
		fmt.Fprintf(c.Out, "%s played %s (flipped %s)\n",
			side, notation.FormatMove(m), formatFlips(flips))
		c.p = p
		c.moves = append(c.moves, m)
	}
}

// Quit reports whether the last game was abandoned.
func (c *CLI) Quit() bool {
	return c.quit
}

// Moves returns the moves played in the last game, including passes.
func (c *CLI) Moves() []othello.Move {
	return c.moves
}

func (c *CLI) render() {
	RenderBoard(c.Glyphs, c.Out, c.p, c.Color)
}

func formatFlips(f othello.Flips) string {
	var sq []string
	it := f.Iterator()
	for fl, ok := it.Next(); ok; fl, ok = it.Next() {
		sq = append(sq, notation.FormatSquare(fl.Row, fl.Col))
	}
	return strings.Join(sq, " ")
}

// RenderBoard draws p with row 1 on top. With color set, discs are
// drawn in ANSI colors; every cell gets an escape sequence of the same
// length so the columns stay aligned.
func RenderBoard(g *Glyphs, out io.Writer, p *othello.Position, color bool) {
	if g == nil {
		g = &DefaultGlyphs
	}
	style := func(s, _ string) string { return s }
	if color {
		o := termenv.NewOutput(out, termenv.WithProfile(termenv.ANSI))
		style = func(s, c string) string {
			return o.String(s).Foreground(o.Color(c)).String()
		}
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "[%s to play]\n", p.ToMove())
	w := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	fmt.Fprintf(w, "\t")
	for c := 0; c < othello.Size; c++ {
		fmt.Fprintf(w, "%c\t", 'A'+c)
	}
	fmt.Fprintf(w, "\n")
	for r := 0; r < othello.Size; r++ {
		fmt.Fprintf(w, "%d.\t", r+1)
		for c := 0; c < othello.Size; c++ {
			var cell string
			switch p.At(r, c) {
			case othello.Black:
				cell = style(g.Black, "4")
			case othello.White:
				cell = style(g.White, "7")
			default:
				cell = style(g.Empty, "8")
			}
			fmt.Fprintf(w, "%s\t", cell)
		}
		fmt.Fprintf(w, "\n")
	}
	w.Flush()
	b, wh := p.CountPieces()
	fmt.Fprintf(out, "discs: B:%d W:%d\n", b, wh)
}
