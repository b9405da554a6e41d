package opt

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/nelhage/othello/ai"
	"github.com/nelhage/othello/oei"
	"github.com/nelhage/othello/othello"
)

var ErrUnknownPlayer = errors.New("unparseable player")

// Factory builds fresh players. Minimax players carry search state,
// so each game needs its own.
type Factory interface {
	GetPlayer(seed int64) ai.OthelloPlayer
	String() string
}

// Closer is implemented by players that own an external resource.
type Closer interface {
	Close()
}

// FalliblePlayer is implemented by players whose moves can fail, such
// as an engine subprocess that dies or replies with an illegal move.
type FalliblePlayer interface {
	OEIGetMove(ctx context.Context, p *othello.Position) (othello.Move, error)
}

// ParsePlayer parses a player spec:
//
//	minimax[:console|:gui]
//	rand[:SEED]
//	oei:COMMAND LINE
//
// A bare "minimax" takes its heuristic from o.
func ParsePlayer(s string, o *Minimax) (Factory, error) {
	name, arg, hasArg := strings.Cut(s, ":")
	switch name {
	case "minimax":
		mo := *o
		if hasArg {
			if _, ok := ai.Heuristics[arg]; !ok {
				return nil, fmt.Errorf("%w: unknown heuristic %q", ErrUnknownPlayer, arg)
			}
			mo.Eval = arg
		}
		if _, ok := ai.Heuristics[mo.Eval]; mo.Eval != "" && !ok {
			return nil, fmt.Errorf("%w: unknown heuristic %q", ErrUnknownPlayer, mo.Eval)
		}
		return &minimaxFactory{opt: mo}, nil
	case "rand":
		var seed int64
		if hasArg {
			i, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad seed %q", ErrUnknownPlayer, arg)
			}
			seed = i
		}
		return &randFactory{seed}, nil
	case "oei":
		cmdline := strings.Fields(arg)
		if len(cmdline) == 0 {
			return nil, fmt.Errorf("%w: oei needs a command", ErrUnknownPlayer)
		}
		return &oeiFactory{cmdline}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, s)
}

type minimaxFactory struct {
	opt Minimax
}

func (m *minimaxFactory) GetPlayer(int64) ai.OthelloPlayer {
	return ai.NewMinimax(m.opt.BuildConfig())
}

func (m *minimaxFactory) String() string {
	if m.opt.Eval == "" {
		return "minimax:console"
	}
	return "minimax:" + m.opt.Eval
}

type randFactory struct {
	seed int64
}

func (r *randFactory) GetPlayer(seed int64) ai.OthelloPlayer {
	return ai.NewRandom(r.seed + seed)
}

func (r *randFactory) String() string {
	return fmt.Sprintf("rand:%d", r.seed)
}

type oeiFactory struct {
	cmdline []string
}

type oeiPlayer struct {
	*oei.Player
	client *oei.Client
}

func (p *oeiPlayer) Close() {
	p.client.Close()
}

func (f *oeiFactory) GetPlayer(int64) ai.OthelloPlayer {
	cl, err := oei.NewClient(f.cmdline)
	if err != nil {
		log.Fatalf("starting engine %v: %v", f.cmdline, err)
	}
	p, err := cl.NewGame()
	if err != nil {
		log.Fatalf("starting game on %v: %v", f.cmdline, err)
	}
	return &oeiPlayer{p, cl}
}

func (f *oeiFactory) String() string {
	return "oei:" + strings.Join(f.cmdline, " ")
}
