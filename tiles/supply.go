package tiles

import (
	"errors"

	"github.com/rs/zerolog/log"
)

// ErrSupplyExhausted is returned when both the bag and the box are empty.
var ErrSupplyExhausted = errors.New("tile supply exhausted")

// A Randomizer is the random source the supply draws with. It is
// satisfied by *rand.Rand from math/rand/v2.
type Randomizer interface {
	IntN(n int) int
}

// Supply is the bag o'tiles, plus the box that discarded tiles wait in
// until the bag runs dry.
type Supply struct {
	bag Counts
	box Counts

	randSource Randomizer
}

// NewSupply creates a full supply that draws using the given source.
func NewSupply(randSource Randomizer) *Supply {
	s := &Supply{randSource: randSource}
	s.Reset()
	return s
}

// Reset puts a fresh set of TilesPerColor tiles of each color in the bag
// and empties the box. Tiles lost to walls in a previous game come back.
func (s *Supply) Reset() {
	s.bag = FullCounts()
	s.box.Clear()
}

// Bag returns a copy of the bag counts.
func (s *Supply) Bag() Counts {
	return s.bag
}

// Box returns a copy of the box counts.
func (s *Supply) Box() Counts {
	return s.box
}

// Remaining returns the combined number of tiles in the bag and box.
func (s *Supply) Remaining() int {
	return s.bag.Total() + s.box.Total()
}

// SetContents overwrites the bag and box. It is meant for setting up
// specific positions.
func (s *Supply) SetContents(bag, box Counts) {
	s.bag = bag
	s.box = box
}

// refillFromBox dumps the box into the bag wholesale.
func (s *Supply) refillFromBox() {
	log.Debug().Str("box", s.box.String()).Msg("bag-empty-refilling-from-box")
	s.bag = s.box
	s.box.Clear()
}

// Draw draws a single tile, weighted by the remaining counts in the bag.
func (s *Supply) Draw() (Color, error) {
	numTiles := s.bag.Total()
	if numTiles == 0 {
		if s.box.IsEmpty() {
			return Empty, ErrSupplyExhausted
		}
		s.refillFromBox()
		numTiles = s.bag.Total()
	}
	idx := s.randSource.IntN(numTiles)
	// Count up through the bag until we pass the drawn index.
	counter := 0
	for _, c := range PlayableColors {
		counter += s.bag[c.Index()]
		if counter > idx {
			s.bag[c.Index()]--
			return c, nil
		}
	}
	// Unreachable as long as idx < numTiles.
	return Empty, ErrSupplyExhausted
}

// DrawAtMost draws at most n tiles. It can draw fewer if the supply runs
// out, and even draw no tiles at all.
func (s *Supply) DrawAtMost(n int) []Color {
	drawn := make([]Color, 0, n)
	for range n {
		c, err := s.Draw()
		if err != nil {
			break
		}
		drawn = append(drawn, c)
	}
	return drawn
}

// Recycle puts discarded tiles into the box. The first-player token and
// empty spaces are never recycled.
func (s *Supply) Recycle(colors ...Color) {
	for _, c := range colors {
		s.box.Add(c, 1)
	}
}
