package othello

import "fmt"

// Color is the contents of a cell, or a side. NoColor marks an empty
// cell, and the winner of a tied game.
type Color byte

const (
	NoColor Color = 0
	Black   Color = 1
	White   Color = 2
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case NoColor:
		return "no color"
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

func (c Color) Flip() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	case NoColor:
		return NoColor
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}
