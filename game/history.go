package game

import (
	"github.com/domino14/azul/board"
	"github.com/domino14/azul/tiles"
)

// RoundRecord is what happened when a round was scored.
type RoundRecord struct {
	Round int
	// Results holds each player's round result, indexed by player.
	Results []board.RoundResult
	// Recycled is everything that went into the box this round.
	Recycled tiles.Counts
}

// History returns the scored rounds since the last reset, oldest first.
func (g *Game) History() []RoundRecord {
	h := make([]RoundRecord, len(g.history))
	copy(h, g.history)
	return h
}
