package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/azul/board"
	"github.com/domino14/azul/move"
	"github.com/domino14/azul/tiles"
)

// PlayMove drafts tiles for the player on turn and places them. If the
// move empties the table the round is scored, and the next round is
// dealt unless somebody completed a wall row.
//
// A move to a pattern line that cannot take the color is not an error:
// all of the drafted tiles go to the floor instead.
func (g *Game) PlayMove(m move.Move) error {
	if g.playing == PlayStateGameOver {
		return ErrGameOver
	}
	if m.Dest < move.FloorDest || m.Dest >= tiles.WallDim {
		return fmt.Errorf("%w: %d", ErrInvalidDestination, m.Dest)
	}
	n, err := g.pickUp(m)
	if err != nil {
		return err
	}

	player := g.players[g.onturn]
	if !player.Place(m.Dest, m.Color, n) {
		log.Debug().Int("player", g.onturn).Str("move", m.ShortDescription()).
			Msg("cannot-place-tiles-go-to-floor")
		player.Place(board.FloorRow, m.Color, n)
	}
	g.turnnum++

	if g.roundIsOver() {
		g.endRound()
		return nil
	}
	g.onturn = (g.onturn + 1) % len(g.players)
	return nil
}

// pickUp takes every tile of the move's color from its source and returns
// how many there were. Taking from a factory pushes the rest of that
// factory into the center; the first draft from the center each round
// also takes the first-player token.
func (g *Game) pickUp(m move.Move) (int, error) {
	if !m.Color.IsPlayable() {
		return 0, &PickupError{Source: m.Source, Color: m.Color,
			Reason: "color is not draftable"}
	}
	if m.FromCenter() {
		n := g.center.Take(m.Color)
		if n == 0 {
			return 0, &PickupError{Source: m.Source, Color: m.Color,
				Reason: "color not in center"}
		}
		if g.firstPlayerTokenAvailable {
			g.firstPlayerTokenAvailable = false
			g.startPlayer = g.onturn
			g.players[g.onturn].PlaceFirstPlayerToken()
			log.Debug().Int("player", g.onturn).Msg("took-first-player-token")
		}
		return n, nil
	}

	if m.Source < 0 || m.Source >= len(g.factories) {
		return 0, &PickupError{Source: m.Source, Color: m.Color,
			Reason: "no such factory"}
	}
	factory := &g.factories[m.Source]
	n := factory.Take(m.Color)
	if n == 0 {
		return 0, &PickupError{Source: m.Source, Color: m.Color,
			Reason: "color not in factory"}
	}
	g.center.Merge(*factory)
	factory.Clear()
	return n, nil
}

// LegalDestination returns whether the player on turn may put tiles of
// color c into the given row. The floor is always legal.
func (g *Game) LegalDestination(dest int, c tiles.Color) bool {
	return g.players[g.onturn].CanPlace(dest, c)
}

// LegalMoves returns every move the player on turn can make without
// error and without tiles falling to the floor against their will.
// Factories come first, then the center; the floor is always offered.
func (g *Game) LegalMoves() []move.Move {
	if g.playing == PlayStateGameOver {
		return nil
	}
	var moves []move.Move
	addFrom := func(source int, pool *tiles.Counts) {
		for _, c := range pool.Colors() {
			for row := range tiles.WallDim {
				if g.LegalDestination(row, c) {
					moves = append(moves, move.New(source, c, row))
				}
			}
			moves = append(moves, move.New(source, c, move.FloorDest))
		}
	}
	for i := range g.factories {
		addFrom(i, &g.factories[i])
	}
	addFrom(move.CenterSource, &g.center)
	return moves
}
