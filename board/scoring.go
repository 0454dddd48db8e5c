package board

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/domino14/azul/tiles"
)

const (
	RowBonus    = 2
	ColumnBonus = 7
	ColorBonus  = 10
)

// RoundResult is what happened to a board at the end of a round.
type RoundResult struct {
	// Points is the net change for the round: wall placements plus the
	// (negative) floor penalty. The board's score is clamped at 0
	// afterwards, but Points is not.
	Points int
	// Discards are the tiles that go back to the box.
	Discards []tiles.Color
	// Events are human-readable descriptions of each scoring step.
	Events []string
}

// EndgameBonus breaks down the end-of-game bonus for a board.
type EndgameBonus struct {
	Rows    int
	Columns int
	Colors  int
	Points  int
}

// ResolveRound moves every full pattern line onto the wall, scores the
// placed tiles, applies the floor penalty, and clears the floor.
func (b *PlayerBoard) ResolveRound() RoundResult {
	res := RoundResult{}
	for row := range tiles.WallDim {
		capacity := RowCapacity(row)
		line := b.lines[row]
		if line.Count != capacity {
			// Partial lines carry over to the next round.
			continue
		}
		col := tiles.WallColumn(row, line.Color)
		b.wall[row][col] = line.Color
		pts := b.placementScore(row, col)
		res.Points += pts
		for range capacity - 1 {
			res.Discards = append(res.Discards, line.Color)
		}
		res.Events = append(res.Events, fmt.Sprintf(
			"row %d: %v to wall col %d for %d, discarding %d",
			row, line.Color, col, pts, capacity-1))
		b.lines[row] = PatternLine{}
	}

	penalty := FloorPenalty(len(b.floor))
	if len(b.floor) > 0 {
		res.Events = append(res.Events, fmt.Sprintf(
			"floor: %d tiles for %d", len(b.floor), penalty))
	}
	res.Points += penalty
	for _, c := range b.floor {
		if c != tiles.FirstPlayerToken {
			res.Discards = append(res.Discards, c)
		}
	}

	b.score += res.Points
	if b.score < 0 {
		b.score = 0
	}
	b.floor = b.floor[:0]
	return res
}

// FloorPenalty returns the total penalty for n occupied floor slots.
func FloorPenalty(n int) int {
	penalty := 0
	for i := range n {
		if i < len(FloorPenalties) {
			penalty += FloorPenalties[i]
		} else {
			// The floor is clamped to its capacity, so this never
			// happens on a real board.
			penalty += worstFloorPenalty
		}
	}
	return penalty
}

// placementScore scores a tile that was just placed at (row, col).
func (b *PlayerBoard) placementScore(row, col int) int {
	horiz := 0
	for c := col - 1; c >= 0 && b.wall[row][c] != tiles.Empty; c-- {
		horiz++
	}
	for c := col + 1; c < tiles.WallDim && b.wall[row][c] != tiles.Empty; c++ {
		horiz++
	}
	if horiz > 0 {
		horiz++
	}

	vert := 0
	for r := row - 1; r >= 0 && b.wall[r][col] != tiles.Empty; r-- {
		vert++
	}
	for r := row + 1; r < tiles.WallDim && b.wall[r][col] != tiles.Empty; r++ {
		vert++
	}
	if vert > 0 {
		vert++
	}

	if horiz == 0 && vert == 0 {
		return 1
	}
	// A tile with neighbors both ways counts once in each line.
	return horiz + vert
}

// CompletedRows returns the number of full wall rows.
func (b *PlayerBoard) CompletedRows() int {
	return lo.CountBy(b.wall[:], func(row [tiles.WallDim]tiles.Color) bool {
		return !lo.Contains(row[:], tiles.Empty)
	})
}

// HasCompletedRow returns true if any wall row is full. This is what
// ends the game.
func (b *PlayerBoard) HasCompletedRow() bool {
	return b.CompletedRows() > 0
}

// CompletedColumns returns the number of full wall columns.
func (b *PlayerBoard) CompletedColumns() int {
	n := 0
	for col := range tiles.WallDim {
		full := true
		for row := range tiles.WallDim {
			if b.wall[row][col] == tiles.Empty {
				full = false
				break
			}
		}
		if full {
			n++
		}
	}
	return n
}

// CompletedColors returns the number of colors with all five of their
// wall cells filled.
func (b *PlayerBoard) CompletedColors() int {
	return lo.CountBy(tiles.PlayableColors[:], func(c tiles.Color) bool {
		for row := range tiles.WallDim {
			if b.wall[row][tiles.WallColumn(row, c)] == tiles.Empty {
				return false
			}
		}
		return true
	})
}

// ResolveEndgame adds the end-of-game bonuses to the score. The score is
// not clamped here.
func (b *PlayerBoard) ResolveEndgame() EndgameBonus {
	bonus := EndgameBonus{
		Rows:    b.CompletedRows(),
		Columns: b.CompletedColumns(),
		Colors:  b.CompletedColors(),
	}
	bonus.Points = bonus.Rows*RowBonus + bonus.Columns*ColumnBonus +
		bonus.Colors*ColorBonus
	b.score += bonus.Points
	return bonus
}
