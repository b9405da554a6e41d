package oei

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/nelhage/othello/notation"
	"github.com/nelhage/othello/othello"
)

// Client drives an OEI engine, either a subprocess or any pair of
// streams speaking the protocol.
type Client struct {
	cmd *exec.Cmd

	stdinPipe  io.WriteCloser
	stdoutPipe io.ReadCloser

	read  *bufio.Reader
	write io.Writer

	gameid int
	info   Info
}

var (
	ErrDeadPlayer      = errors.New("player belongs to a finished game")
	ErrBadBestmove     = errors.New("malformed bestmove")
	ErrIllegalBestmove = errors.New("engine played an illegal move")
)

func NewClient(cmdline []string) (*Client, error) {
	cmd := &exec.Cmd{
		Args: cmdline,
	}
	if path, err := exec.LookPath(cmdline[0]); err != nil {
		return nil, err
	} else {
		cmd.Path = path
	}

	cl := &Client{
		cmd: cmd,
	}

	if stdin, err := cmd.StdinPipe(); err != nil {
		cl.Close()
		return nil, err
	} else {
		cl.stdinPipe = stdin
		cl.write = stdin
	}

	if stdout, err := cmd.StdoutPipe(); err != nil {
		cl.Close()
		return nil, err
	} else {
		cl.stdoutPipe = stdout
		cl.read = bufio.NewReader(stdout)
	}

	if err := cl.cmd.Start(); err != nil {
		cl.Close()
		return nil, err
	}
	if err := cl.handshake(); err != nil {
		cl.Close()
		return nil, err
	}
	return cl, nil
}

// Connect speaks OEI over an existing pair of streams. Close closes w
// if it is an io.Closer.
func Connect(r io.Reader, w io.Writer) (*Client, error) {
	cl := &Client{
		read:  bufio.NewReader(r),
		write: w,
	}
	if wc, ok := w.(io.WriteCloser); ok {
		cl.stdinPipe = wc
	}
	if err := cl.handshake(); err != nil {
		cl.Close()
		return nil, err
	}
	return cl, nil
}

func (c *Client) handshake() error {
	_, err := c.sendCommand("oei", "oeiok")
	return err
}

func (c *Client) NewGame() (*Player, error) {
	c.gameid += 1
	if _, err := c.sendCommand("oeinewgame", ""); err != nil {
		return nil, err
	}
	if _, err := c.sendCommand("isready", "readyok"); err != nil {
		return nil, err
	}
	return &Player{
		client: c,
		gameid: c.gameid,
	}, nil
}

func (c *Client) Close() {
	if c.write != nil {
		c.sendCommand("quit", "")
	}
	if c.stdinPipe != nil {
		c.stdinPipe.Close()
	}
	if c.stdoutPipe != nil {
		c.stdoutPipe.Close()
	}
	if c.cmd != nil && c.cmd.Process != nil {
		c.cmd.Wait()
	}
}

func (c *Client) sendCommand(cmd string, expect string) ([]string, error) {
	if _, err := fmt.Fprintln(c.write, cmd); err != nil {
		return nil, err
	}
	if expect == "" {
		return nil, nil
	}

	for {
		line, err := c.read.ReadString('\n')
		if err != nil {
			return nil, err
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		if words[0] == "info" {
			c.info = parseInfo(words)
		}
		if words[0] == expect {
			return words, nil
		}
	}
}

// Info is the search report an engine sends before its bestmove.
type Info struct {
	Depth     int
	Nodes     uint64
	Evaluated uint64
	Time      time.Duration
	Score     int64
	// Static is set when Score is the static evaluation of the
	// position rather than the score of a searched move.
	Static bool
}

func parseInfo(words []string) Info {
	var info Info
	for i := 1; i < len(words); i++ {
		key := words[i]
		if key == "static" {
			info.Static = true
			continue
		}
		if i+1 >= len(words) {
			break
		}
		val := words[i+1]
		i++
		switch key {
		case "depth":
			info.Depth, _ = strconv.Atoi(val)
		case "nodes":
			info.Nodes, _ = strconv.ParseUint(val, 10, 64)
		case "evaluated":
			info.Evaluated, _ = strconv.ParseUint(val, 10, 64)
		case "time":
			info.Time, _ = parseTime(val)
		case "score":
			info.Score, _ = strconv.ParseInt(val, 10, 64)
		}
	}
	return info
}

// Player plays one game on an engine.
type Player struct {
	client *Client
	gameid int
}

// LastInfo returns the engine's report for the most recent search.
func (p *Player) LastInfo() Info {
	return p.client.info
}

// OEIGetMove asks the engine for a move in pos. A side with no legal
// placement passes without consulting the engine. The engine's reply
// is checked against the rules before it is returned.
func (p *Player) OEIGetMove(ctx context.Context, pos *othello.Position) (othello.Move, error) {
	if p.gameid != p.client.gameid {
		return othello.Move{}, ErrDeadPlayer
	}
	if !pos.HasLegalMove(pos.ToMove()) {
		return othello.Move{Type: othello.Pass}, nil
	}
	board := notation.FormatBoard(pos)
	if _, err := p.client.sendCommand(fmt.Sprintf("position board %s", board), ""); err != nil {
		return othello.Move{}, fmt.Errorf("send position: %w", err)
	}
	goCmd := "go"
	if deadline, ok := ctx.Deadline(); ok {
		goCmd = fmt.Sprintf("%s movetime %s", goCmd, formatTime(time.Until(deadline)))
	}
	bestmove, err := p.client.sendCommand(goCmd, "bestmove")
	if err != nil {
		return othello.Move{}, fmt.Errorf("send go: %w", err)
	}
	if len(bestmove) != 2 {
		return othello.Move{}, fmt.Errorf("%w: %q", ErrBadBestmove, strings.Join(bestmove, " "))
	}
	mv, err := notation.ParseMove(bestmove[1])
	if err != nil {
		return othello.Move{}, fmt.Errorf("%w: %v", ErrBadBestmove, err)
	}
	if _, err := pos.Move(mv); err != nil {
		return othello.Move{}, fmt.Errorf("%w: %s in %s: %v", ErrIllegalBestmove, bestmove[1], board, err)
	}
	return mv, nil
}

func (p *Player) GetMove(ctx context.Context, pos *othello.Position) othello.Move {
	mv, err := p.OEIGetMove(ctx, pos)
	if err != nil {
		panic(err)
	}
	return mv
}
