package tiles

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Counts is a per-color tally of playable tiles, indexed by Color.Index.
// The factories, the center, the bag and the box are all Counts.
type Counts [NumColors]int

// FullCounts returns a Counts with TilesPerColor of every color.
func FullCounts() Counts {
	var c Counts
	for i := range c {
		c[i] = TilesPerColor
	}
	return c
}

// Get returns how many tiles of the given color are present. Non-playable
// colors always count zero.
func (c *Counts) Get(col Color) int {
	if !col.IsPlayable() {
		return 0
	}
	return c[col.Index()]
}

// Add adds n tiles of a playable color. Non-playable colors are ignored.
func (c *Counts) Add(col Color, n int) {
	if !col.IsPlayable() {
		return
	}
	c[col.Index()] += n
}

// Take removes and returns every tile of the given color.
func (c *Counts) Take(col Color) int {
	if !col.IsPlayable() {
		return 0
	}
	n := c[col.Index()]
	c[col.Index()] = 0
	return n
}

// Total returns the number of tiles across all colors.
func (c *Counts) Total() int {
	return lo.Sum(c[:])
}

// IsEmpty returns true if there are no tiles at all.
func (c *Counts) IsEmpty() bool {
	return c.Total() == 0
}

// Clear removes every tile.
func (c *Counts) Clear() {
	*c = Counts{}
}

// Merge adds all of other's tiles into c.
func (c *Counts) Merge(other Counts) {
	for i := range c {
		c[i] += other[i]
	}
}

// Colors returns the colors with at least one tile, in PlayableColors order.
func (c *Counts) Colors() []Color {
	return lo.Filter(PlayableColors[:], func(col Color, _ int) bool {
		return c[col.Index()] > 0
	})
}

// String renders the counts compactly, e.g. "B2 R1".
func (c Counts) String() string {
	var sb strings.Builder
	for _, col := range PlayableColors {
		n := c[col.Index()]
		if n == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(col.UserVisible())
		sb.WriteString(strconv.Itoa(n))
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// CountColors tallies a list of tiles. The token and empty spaces are
// not counted.
func CountColors(colors []Color) Counts {
	var c Counts
	for _, col := range colors {
		c.Add(col, 1)
	}
	return c
}
