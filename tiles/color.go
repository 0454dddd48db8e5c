// Package tiles holds the tile colors, the fixed wall pattern, and the
// shared tile supply (bag and box) for a game of Azul.
package tiles

import (
	"fmt"
	"strings"
)

// A Color is the machine representation of a tile. The 0 value is an
// empty space. The five playable colors follow, and the first-player
// token sits after them; it only ever occupies floor-line space.
type Color uint8

const (
	Empty Color = iota
	Blue
	Yellow
	Red
	Black
	White
	FirstPlayerToken
)

const (
	// NumColors is the number of playable colors.
	NumColors = 5
	// TilesPerColor is how many tiles of each color make up a full supply.
	TilesPerColor = 20
)

// PlayableColors lists the five colors that can be drafted, in order.
var PlayableColors = [NumColors]Color{Blue, Yellow, Red, Black, White}

var colorLetters = [...]rune{
	Empty:            '.',
	Blue:             'B',
	Yellow:           'Y',
	Red:              'R',
	Black:            'K',
	White:            'W',
	FirstPlayerToken: 'S',
}

var colorNames = [...]string{
	Empty:            "empty",
	Blue:             "blue",
	Yellow:           "yellow",
	Red:              "red",
	Black:            "black",
	White:            "white",
	FirstPlayerToken: "first-player-token",
}

// IsPlayable returns true for the five draftable colors.
func (c Color) IsPlayable() bool {
	return c >= Blue && c <= White
}

// Index returns the 0-based index of a playable color into a Counts
// vector. It must only be called on a playable color.
func (c Color) Index() int {
	return int(c) - 1
}

// UserVisible returns the single-letter representation of the color.
func (c Color) UserVisible() rune {
	if int(c) >= len(colorLetters) {
		return '?'
	}
	return colorLetters[c]
}

func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return fmt.Sprintf("color(%d)", c)
	}
	return colorNames[c]
}

// FromString parses either a color name ("red") or its letter ("R").
func FromString(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if len([]rune(s)) == 1 {
		r := []rune(strings.ToUpper(s))[0]
		for c, l := range colorLetters {
			if l == r {
				return Color(c), nil
			}
		}
	}
	lower := strings.ToLower(s)
	for c, n := range colorNames {
		if n == lower {
			return Color(c), nil
		}
	}
	return Empty, fmt.Errorf("unknown tile color %q", s)
}
