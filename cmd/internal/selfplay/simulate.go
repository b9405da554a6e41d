package selfplay

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nelhage/othello/ai"
	"github.com/nelhage/othello/cmd/internal/opt"
	"github.com/nelhage/othello/logs"
	"github.com/nelhage/othello/notation"
	"github.com/nelhage/othello/othello"
)

type Config struct {
	Games int

	Verbose bool

	P1, P2 opt.Factory

	Swap    bool
	Threads int
	Seed    int64
	Limit   time.Duration
}

type Stats struct {
	Players [2]struct {
		Wins      int
		WhiteWins int
		BlackWins int
	}
	White, Black int
	Ties         int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.White + s.Black + s.Ties
}

func (s *Stats) Merge(other *Stats) Stats {
	out := *s
	for i := range out.Players {
		out.Players[i].Wins += other.Players[i].Wins
		out.Players[i].WhiteWins += other.Players[i].WhiteWins
		out.Players[i].BlackWins += other.Players[i].BlackWins
	}
	out.White += other.White
	out.Black += other.Black
	out.Ties += other.Ties
	out.Games = append(append([]Result(nil), s.Games...), other.Games...)
	return out
}

// add tallies a single finished game.
func (s *Stats) add(r Result) {
	switch r.Winner {
	case othello.White:
		s.White++
	case othello.Black:
		s.Black++
	default:
		s.Ties++
	}
	if r.Winner != othello.NoColor {
		pst := &s.Players[0]
		if r.Winner != r.spec.p1color {
			pst = &s.Players[1]
		}
		if r.Winner == othello.White {
			pst.WhiteWins++
		} else {
			pst.BlackWins++
		}
		pst.Wins++
	}
	s.Games = append(s.Games, r)
}

type gameSpec struct {
	i       int
	seed    int64
	p1color othello.Color
}

type Result struct {
	spec     gameSpec
	Position *othello.Position
	Moves    []othello.Move
	Winner   othello.Color
}

// LogGame converts r to a results-log row. p1 and p2 name the players.
func (r *Result) LogGame(day string, when time.Time, p1, p2 string) *logs.Game {
	black, white := p1, p2
	if r.spec.p1color == othello.White {
		black, white = p2, p1
	}
	b, w := r.Position.CountPieces()
	winner := "tie"
	if r.Winner != othello.NoColor {
		winner = r.Winner.String()
	}
	return &logs.Game{
		Day:        day,
		ID:         r.spec.i,
		Timestamp:  when,
		Black:      black,
		White:      white,
		BlackDiscs: b,
		WhiteDiscs: w,
		Winner:     winner,
		Plies:      len(r.Moves),
		Moves:      notation.FormatMoves(r.Moves),
	}
}

func specs(c *Config) []gameSpec {
	r := rand.New(rand.NewSource(c.Seed))
	n := c.Games
	if c.Swap {
		n *= 2
	}
	out := make([]gameSpec, n)
	for g := range out {
		p1color := othello.Black
		if c.Swap && g%2 == 1 {
			p1color = othello.White
		}
		out[g] = gameSpec{i: g, seed: r.Int63(), p1color: p1color}
	}
	return out
}

// Simulate plays every configured game on a pool of c.Threads workers
// and returns the tallied results, in game order.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	games := specs(c)
	results := make([]Result, len(games))

	var mu sync.Mutex
	grp, ctx := errgroup.WithContext(ctx)
	threads := c.Threads
	if threads <= 0 {
		threads = 1
	}
	grp.SetLimit(threads)
	for _, g := range games {
		g := g
		grp.Go(func() error {
			r, err := play(ctx, c, g)
			if err != nil {
				return err
			}
			if c.Verbose {
				log.Printf("game n=%d plies=%d p1=%s winner=%s black=%d white=%d",
					g.i, len(r.Moves), g.p1color, winnerName(r.Winner),
					r.Position.Count(othello.Black), r.Position.Count(othello.White))
			}
			mu.Lock()
			results[g.i] = r
			mu.Unlock()
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return Stats{}, err
	}

	var st Stats
	for _, r := range results {
		st.add(r)
	}
	return st, nil
}

func winnerName(c othello.Color) string {
	if c == othello.NoColor {
		return "tie"
	}
	return c.String()
}

func play(ctx context.Context, c *Config, g gameSpec) (Result, error) {
	p1 := c.P1.GetPlayer(g.seed)
	defer closePlayer(p1)
	p2 := c.P2.GetPlayer(g.seed + 1)
	defer closePlayer(p2)

	black, white := p1, p2
	if g.p1color == othello.White {
		black, white = p2, p1
	}

	var ms []othello.Move
	p := othello.New()
	for !p.GameOver() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		var pl ai.OthelloPlayer = black
		if p.ToMove() == othello.White {
			pl = white
		}
		mctx, cancel := ctx, context.CancelFunc(func() {})
		if c.Limit != 0 {
			mctx, cancel = context.WithTimeout(ctx, c.Limit)
		}
		m, err := getMove(mctx, pl, p)
		cancel()
		if err != nil {
			return Result{}, fmt.Errorf("game %d: %s to move: %w", g.i, p.ToMove(), err)
		}
		next, err := p.Move(m)
		if err != nil {
			return Result{}, fmt.Errorf("game %d: illegal move %s by %s: %w",
				g.i, notation.FormatMove(m), p.ToMove(), err)
		}
		p = next
		ms = append(ms, m)
	}
	return Result{
		spec:     g,
		Position: p,
		Moves:    ms,
		Winner:   p.WinDetails().Winner,
	}, nil
}

func getMove(ctx context.Context, pl ai.OthelloPlayer, p *othello.Position) (othello.Move, error) {
	if fp, ok := pl.(opt.FalliblePlayer); ok {
		return fp.OEIGetMove(ctx, p)
	}
	return pl.GetMove(ctx, p), nil
}

func closePlayer(p ai.OthelloPlayer) {
	if c, ok := p.(opt.Closer); ok {
		c.Close()
	}
}
