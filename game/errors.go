package game

import (
	"errors"
	"fmt"

	"github.com/domino14/azul/move"
	"github.com/domino14/azul/tiles"
)

var (
	ErrInvalidPlayerCount = errors.New("invalid number of players")
	ErrIllegalPickup      = errors.New("illegal pickup")
	ErrInvalidDestination = errors.New("invalid destination row")
	ErrGameOver           = errors.New("cannot play a move on a game that is over")
	ErrGameNotOver        = errors.New("game is not over")
	ErrBonusesApplied     = errors.New("end-game bonuses were already applied")
)

// PickupError describes a draft of a color the chosen source does not
// have. It wraps ErrIllegalPickup.
type PickupError struct {
	Source int
	Color  tiles.Color
	Reason string
}

func (e *PickupError) Error() string {
	src := "center"
	if e.Source != move.CenterSource {
		src = fmt.Sprintf("factory %d", e.Source)
	}
	return fmt.Sprintf("%v: cannot take %v from %s: %s",
		ErrIllegalPickup, e.Color, src, e.Reason)
}

func (e *PickupError) Unwrap() error {
	return ErrIllegalPickup
}
