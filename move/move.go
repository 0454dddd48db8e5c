// Package move describes a single Azul turn: which source to draft from,
// which color to take, and where to put the tiles.
package move

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/azul/board"
	"github.com/domino14/azul/tiles"
)

const (
	// CenterSource drafts from the center of the table instead of a factory.
	CenterSource = -1
	// FloorDest sends the drafted tiles straight to the floor line.
	FloorDest = board.FloorRow
)

// Move is a draft. Source is a factory index or CenterSource. Dest is a
// pattern-line row (0-4) or FloorDest.
type Move struct {
	Source int
	Color  tiles.Color
	Dest   int
}

// New creates a move.
func New(source int, c tiles.Color, dest int) Move {
	return Move{Source: source, Color: c, Dest: dest}
}

// FromCenter returns true if the move drafts from the center.
func (m Move) FromCenter() bool {
	return m.Source == CenterSource
}

// ToFloor returns true if the move sends its tiles to the floor.
func (m Move) ToFloor() bool {
	return m.Dest == FloorDest
}

// ShortDescription provides a short description, useful for logging or
// user display. Factories and rows are 1-based, e.g. "F3 R>2", "C B>F".
func (m Move) ShortDescription() string {
	src := "C"
	if !m.FromCenter() {
		src = "F" + strconv.Itoa(m.Source+1)
	}
	dst := "F"
	if !m.ToFloor() {
		dst = strconv.Itoa(m.Dest + 1)
	}
	return fmt.Sprintf("%s %c>%s", src, m.Color.UserVisible(), dst)
}

func (m Move) String() string {
	return fmt.Sprintf("<source: %d color: %v dest: %d>", m.Source, m.Color, m.Dest)
}

// FromShortDescription parses the output of ShortDescription.
func FromShortDescription(s string) (Move, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("cannot parse move %q", s)
	}
	src, rest := strings.ToUpper(fields[0]), strings.ToUpper(fields[1])

	m := Move{}
	switch {
	case src == "C":
		m.Source = CenterSource
	case strings.HasPrefix(src, "F"):
		n, err := strconv.Atoi(src[1:])
		if err != nil || n < 1 {
			return Move{}, fmt.Errorf("bad factory in move %q", s)
		}
		m.Source = n - 1
	default:
		return Move{}, fmt.Errorf("bad source in move %q", s)
	}

	colorStr, destStr, ok := strings.Cut(rest, ">")
	if !ok {
		return Move{}, fmt.Errorf("missing destination in move %q", s)
	}
	c, err := tiles.FromString(colorStr)
	if err != nil {
		return Move{}, err
	}
	if !c.IsPlayable() {
		return Move{}, fmt.Errorf("cannot draft %v", c)
	}
	m.Color = c

	if destStr == "F" {
		m.Dest = FloorDest
	} else {
		n, err := strconv.Atoi(destStr)
		if err != nil || n < 1 || n > tiles.WallDim {
			return Move{}, fmt.Errorf("bad destination in move %q", s)
		}
		m.Dest = n - 1
	}
	return m, nil
}
