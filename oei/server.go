package oei

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/nelhage/othello/ai"
	"github.com/nelhage/othello/notation"
	"github.com/nelhage/othello/othello"
)

// Engine answers the OEI line protocol, a UCI-like protocol for
// driving the minimax engine from another program.
type Engine struct {
	ConfigFactory func() ai.MinimaxConfig

	in  *bufio.Reader
	out io.Writer

	mm  *ai.MinimaxAI
	pos *othello.Position
}

func NewEngine(in io.Reader, out io.Writer) *Engine {
	return &Engine{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (e *Engine) Run(ctx context.Context) error {
	for {
		line, err := e.in.ReadString('\n')
		if err == io.EOF && line == "" {
			return nil
		}
		if err != nil && err != io.EOF {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words := strings.Fields(line)
		switch words[0] {
		case "oei":
			fmt.Fprintln(e.out, "id name othello")
			fmt.Fprintln(e.out, "oeiok")
		case "quit":
			return nil
		case "oeinewgame":
			e.mm = nil
			e.pos = nil
		case "position":
			e.pos, err = parsePosition(words)
			if err != nil {
				return fmt.Errorf("error parsing position: %w", err)
			}
		case "go":
			if err := e.analyze(ctx, words); err != nil {
				log.Printf("error in go: %v", err)
			}
		case "stop":
		case "isready":
			fmt.Fprintln(e.out, "readyok")
		default:
			return fmt.Errorf("unknown command: %q", line)
		}
	}
}

func parsePosition(words []string) (*othello.Position, error) {
	var pos *othello.Position
	words = words[1:]
	if len(words) == 0 {
		return nil, errors.New("not enough arguments")
	}
	switch words[0] {
	case "startpos":
		words = words[1:]
		pos = othello.New()
	case "board":
		// board ROWS SIDE
		if len(words) < 3 {
			return nil, errors.New("position board: not enough arguments")
		}
		var err error
		pos, err = notation.ParseBoard(strings.Join(words[1:3], " "))
		if err != nil {
			return nil, fmt.Errorf("parse board: %w", err)
		}
		words = words[3:]
	default:
		return nil, fmt.Errorf("unknown initial position: %q", words[0])
	}
	if len(words) == 0 {
		return pos, nil
	}
	if words[0] != "moves" {
		return nil, errors.New("position: expected `moves'")
	}
	for _, w := range words[1:] {
		move, err := notation.ParseMove(w)
		if err != nil {
			return nil, fmt.Errorf("parse move %q: %w", w, err)
		}
		pos, err = pos.Move(move)
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", w, err)
		}
	}
	return pos, nil
}

func (e *Engine) analyze(ctx context.Context, words []string) error {
	if e.pos == nil {
		return errors.New("no position provided")
	}
	if e.mm == nil {
		var cfg ai.MinimaxConfig
		if e.ConfigFactory != nil {
			cfg = e.ConfigFactory()
		}
		e.mm = ai.NewMinimax(cfg)
	}
	words = words[1:]
	if len(words) > 0 {
		if len(words) != 2 || words[0] != "movetime" {
			return errors.New("expected movetime N")
		}
		limit, err := parseTime(words[1])
		if err != nil {
			return err
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, limit)
		defer cancel()
	}

	m, val, stats := e.mm.Analyze(ctx, e.pos, e.pos.ToMove())
	static := ""
	if stats.Static {
		static = " static"
	}
	fmt.Fprintf(e.out, "info depth %d nodes %d evaluated %d time %s score %d%s\n",
		stats.Depth,
		stats.Visited,
		stats.Evaluated,
		formatTime(stats.Elapsed),
		val,
		static,
	)
	fmt.Fprintf(e.out, "bestmove %s\n", notation.FormatMove(m))
	return nil
}
