package play

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/nelhage/othello/ai"
	"github.com/nelhage/othello/cli"
	"github.com/nelhage/othello/cmd/internal/opt"
	"github.com/nelhage/othello/notation"
	"github.com/nelhage/othello/othello"
)

type Command struct {
	white string
	black string
	board string
	limit time.Duration
	opt   opt.Minimax

	unicode bool
	color   bool
	again   bool
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Othello from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play Othello on the command-line, against a human or the computer.
Players are one of: human, minimax[:console|:gui], rand[:SEED], oei:COMMAND.
Moves are entered as a column and row, like D3, or "pass".
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.white, "white", "minimax", "white player")
	flags.StringVar(&c.black, "black", "human", "black player")
	flags.StringVar(&c.board, "board", "", "start from this board instead of the opening")
	flags.DurationVar(&c.limit, "limit", 0, "computer time limit per move (0 for none)")
	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
	flags.BoolVar(&c.color, "color", false, "render discs in color")
	flags.BoolVar(&c.again, "again", true, "offer to play again after each game")
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := bufio.NewReader(os.Stdin)
	var start *othello.Position
	if c.board != "" {
		var err error
		start, err = notation.ParseBoard(c.board)
		if err != nil {
			log.Printf("-board: %v", err)
			return subcommands.ExitUsageError
		}
	}
	for {
		white, err := c.parsePlayer(ctx, in, c.white)
		if err != nil {
			log.Printf("-white: %v", err)
			return subcommands.ExitUsageError
		}
		black, err := c.parsePlayer(ctx, in, c.black)
		if err != nil {
			log.Printf("-black: %v", err)
			return subcommands.ExitUsageError
		}
		st := &cli.CLI{
			Start:  start,
			Out:    os.Stdout,
			White:  white,
			Black:  black,
			Glyphs: glyphs(c.unicode),
			Color:  c.color,
		}
		st.Play()
		closePlayer(white)
		closePlayer(black)
		if st.Quit() || !c.again || !playAgain(in) {
			break
		}
	}
	return subcommands.ExitSuccess
}

func playAgain(in *bufio.Reader) bool {
	fmt.Fprintf(os.Stdout, "play again? [y/N] ")
	line, err := in.ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

type aiWrapper struct {
	ctx   context.Context
	limit time.Duration
	p     ai.OthelloPlayer
}

func (a *aiWrapper) GetMove(p *othello.Position) othello.Move {
	ctx := a.ctx
	if a.limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.limit)
		defer cancel()
	}
	return a.p.GetMove(ctx, p)
}

func closePlayer(p cli.Player) {
	if w, ok := p.(*aiWrapper); ok {
		if c, ok := w.p.(opt.Closer); ok {
			c.Close()
		}
	}
}

func (c *Command) parsePlayer(ctx context.Context, in *bufio.Reader, s string) (cli.Player, error) {
	if s == "human" {
		return cli.NewCLIPlayer(os.Stdout, in), nil
	}
	f, err := opt.ParsePlayer(s, &c.opt)
	if err != nil {
		return nil, err
	}
	return &aiWrapper{ctx, c.limit, f.GetPlayer(0)}, nil
}
