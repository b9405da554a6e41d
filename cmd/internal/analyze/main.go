package analyze

import (
	"context"
	"flag"
	"fmt"
	"io"
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
	"github.com/nelhage/othello/symmetry"
)

type Command struct {
	quiet     bool
	variation string
	timeLimit time.Duration

	eval    bool
	explain bool
	mmopt   opt.Minimax
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Evaluate a position" }
func (*Command) Usage() string {
	return `analyze [options] [ROWS SIDE]

Evaluate a position with the minimax engine. The position is given in
board notation, like 8/8/8/3WB3/3BW3/8/8/8 b, and defaults to the
opening. Use -variation to play additional moves prior to analysis.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.quiet, "quiet", false, "don't print board diagrams")
	flags.StringVar(&c.variation, "variation", "", "apply the listed moves before analysis")
	flags.DurationVar(&c.timeLimit, "limit", 0, "limit of how much time to use")
	flags.BoolVar(&c.eval, "evaluate", false, "only show static evaluation")
	flags.BoolVar(&c.explain, "explain", false, "explain scoring")
	c.mmopt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p := othello.New()
	if flag.NArg() > 0 {
		var e error
		p, e = notation.ParseBoard(strings.Join(flag.Args(), " "))
		if e != nil {
			log.Printf("parse: %v", e)
			return subcommands.ExitUsageError
		}
	}
	if c.variation != "" {
		var e error
		p, e = applyVariation(p, c.variation)
		if e != nil {
			log.Printf("-variation: %v", e)
			return subcommands.ExitUsageError
		}
	}
	if c.timeLimit != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeLimit)
		defer cancel()
	}
	c.analyze(ctx, os.Stdout, p)
	return subcommands.ExitSuccess
}

func applyVariation(p *othello.Position, variant string) (*othello.Position, error) {
	ms, e := notation.ParseMoves(variant)
	if e != nil {
		return nil, e
	}
	for _, m := range ms {
		p, e = p.Move(m)
		if e != nil {
			return nil, fmt.Errorf("bad move `%s': %w", notation.FormatMove(m), e)
		}
	}
	return p, nil
}

func (c *Command) weights() *ai.Weights {
	if w, ok := ai.Heuristics[c.mmopt.Eval]; ok {
		return w
	}
	return &ai.DefaultWeights
}

func (c *Command) analyze(ctx context.Context, out io.Writer, p *othello.Position) {
	cfg := c.mmopt.BuildConfig()
	side := p.ToMove()
	if !c.quiet {
		cli.RenderBoard(nil, out, p, false)
		if c.explain {
			ai.ExplainScore(c.weights(), out, p, side)
		}
	}
	if c.eval {
		fmt.Fprintf(out, " val=%d\n", cfg.Evaluate(p, side))
		return
	}
	if p.GameOver() {
		d := p.WinDetails()
		fmt.Fprintf(out, "game over: black=%d white=%d\n", d.Black, d.White)
		return
	}

	mm := ai.NewMinimax(cfg)
	m, val, st := mm.Analyze(ctx, p, side)
	fmt.Fprintf(out, "AI analysis:\n")
	fmt.Fprintf(out, " move=%s value=%d\n", notation.FormatMove(m), val)
	fmt.Fprintf(out, " depth=%d visited=%d evaluated=%d cuts=%d time=%s\n",
		st.Depth, st.Visited, st.Evaluated, st.Cuts, st.Elapsed)
	if st.Static {
		fmt.Fprintf(out, " value is the static evaluation; no move was searched\n")
	}
	if c.explain {
		explainSymmetry(out, p, m)
	}
	fmt.Fprintf(out, "[board \"%s\"]\n", notation.FormatBoard(p))

	if c.quiet {
		return
	}
	next, e := p.Move(m)
	if e != nil {
		log.Fatalf("engine returned an illegal move: %s: %v", notation.FormatMove(m), e)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Resulting position:")
	cli.RenderBoard(nil, out, next, false)
	if c.explain {
		ai.ExplainScore(c.weights(), out, next, side)
	}
}

// explainSymmetry reports how many distinct positions p has under the
// symmetries of the board, and which moves are equivalent to m under
// the symmetries that fix p.
func explainSymmetry(out io.Writer, p *othello.Position, m othello.Move) {
	images := symmetry.Symmetries(p, symmetry.All)
	var equiv []othello.Move
	seen := make(map[othello.Move]bool)
	for _, s := range symmetry.All {
		if *symmetry.Transform(s, p) != *p {
			continue
		}
		img := symmetry.TransformMove(s, m)
		if !seen[img] {
			seen[img] = true
			equiv = append(equiv, img)
		}
	}
	fmt.Fprintf(out, " images=%d equivalent=%s\n", len(images), notation.FormatMoves(equiv))
}
