// Package board implements a single player's Azul board: the five
// pattern lines, the 5x5 wall, the floor line, and the scoring rules
// that tie them together.
package board

import (
	"github.com/domino14/azul/tiles"
)

const (
	// FloorRow is the destination row for the floor line.
	FloorRow = -1
	// FloorCapacity is how many tiles fit on the floor line. Anything
	// past this is dropped out of play.
	FloorCapacity = 7
)

// FloorPenalties is the score for each occupied floor-line slot.
var FloorPenalties = [FloorCapacity]int{-1, -1, -2, -2, -2, -3, -3}

// worstFloorPenalty is charged for every slot past the schedule.
const worstFloorPenalty = -3

// A PatternLine is a staging row. Row r holds up to r+1 tiles of a
// single color.
type PatternLine struct {
	Color tiles.Color
	Count int
}

// RowCapacity returns how many tiles fit in the given pattern line.
func RowCapacity(row int) int {
	return row + 1
}

// PlayerBoard is everything in front of one player.
type PlayerBoard struct {
	wall  [tiles.WallDim][tiles.WallDim]tiles.Color
	lines [tiles.WallDim]PatternLine
	floor []tiles.Color
	score int
}

// NewPlayerBoard returns an empty board with a score of 0.
func NewPlayerBoard() *PlayerBoard {
	b := &PlayerBoard{}
	b.Reset()
	return b
}

// Reset clears the board for a new game.
func (b *PlayerBoard) Reset() {
	b.wall = [tiles.WallDim][tiles.WallDim]tiles.Color{}
	b.lines = [tiles.WallDim]PatternLine{}
	b.floor = make([]tiles.Color, 0, FloorCapacity)
	b.score = 0
}

// Copy returns a deep copy of the board.
func (b *PlayerBoard) Copy() *PlayerBoard {
	n := &PlayerBoard{
		wall:  b.wall,
		lines: b.lines,
		floor: make([]tiles.Color, len(b.floor), FloorCapacity),
		score: b.score,
	}
	copy(n.floor, b.floor)
	return n
}

func (b *PlayerBoard) Score() int {
	return b.score
}

// SetScore overwrites the score. It is meant for setting up positions.
func (b *PlayerBoard) SetScore(s int) {
	b.score = s
}

// WallAt returns the tile on the wall at (row, col), or tiles.Empty.
func (b *PlayerBoard) WallAt(row, col int) tiles.Color {
	return b.wall[row][col]
}

// Wall returns a copy of the wall.
func (b *PlayerBoard) Wall() [tiles.WallDim][tiles.WallDim]tiles.Color {
	return b.wall
}

// Line returns the pattern line at the given row.
func (b *PlayerBoard) Line(row int) PatternLine {
	return b.lines[row]
}

// Lines returns a copy of all the pattern lines.
func (b *PlayerBoard) Lines() [tiles.WallDim]PatternLine {
	return b.lines
}

// Floor returns a copy of the tiles on the floor line, in order.
func (b *PlayerBoard) Floor() []tiles.Color {
	f := make([]tiles.Color, len(b.floor))
	copy(f, b.floor)
	return f
}

// SetWallTile places a tile directly on the wall at the cell its color
// belongs to in the given row. It is meant for setting up positions and
// does no scoring.
func (b *PlayerBoard) SetWallTile(row int, c tiles.Color) {
	col := tiles.WallColumn(row, c)
	if col < 0 {
		return
	}
	b.wall[row][col] = c
}

// CanPlace returns whether tiles of color c may go into the given row.
// The floor always accepts tiles.
func (b *PlayerBoard) CanPlace(row int, c tiles.Color) bool {
	if row == FloorRow {
		return true
	}
	if row < 0 || row >= tiles.WallDim || !c.IsPlayable() {
		return false
	}
	if b.wall[row][tiles.WallColumn(row, c)] != tiles.Empty {
		return false
	}
	line := b.lines[row]
	if line.Count >= RowCapacity(row) {
		return false
	}
	return line.Color == tiles.Empty || line.Color == c
}

// Place puts count tiles of color c into the given row. Tiles that do
// not fit in a pattern line spill onto the floor, and tiles that do not
// fit on the floor are dropped.
//
// It returns false, without touching the board, if the row cannot take
// this color. In that case the caller must put all the tiles on the
// floor itself. A count below 1 places nothing and returns false.
func (b *PlayerBoard) Place(row int, c tiles.Color, count int) bool {
	if count <= 0 {
		return false
	}
	if row == FloorRow {
		b.addToFloor(c, count)
		return true
	}
	if !b.CanPlace(row, c) {
		return false
	}
	line := &b.lines[row]
	line.Color = c
	space := RowCapacity(row) - line.Count
	if count <= space {
		line.Count += count
		return true
	}
	line.Count += space
	b.addToFloor(c, count-space)
	return true
}

// PlaceFirstPlayerToken puts the first-player token on the floor.
func (b *PlayerBoard) PlaceFirstPlayerToken() {
	b.addToFloor(tiles.FirstPlayerToken, 1)
}

func (b *PlayerBoard) addToFloor(c tiles.Color, count int) {
	for range count {
		if len(b.floor) >= FloorCapacity {
			return
		}
		b.floor = append(b.floor, c)
	}
}

// HasFirstPlayerToken returns true if the token is on this floor.
func (b *PlayerBoard) HasFirstPlayerToken() bool {
	for _, c := range b.floor {
		if c == tiles.FirstPlayerToken {
			return true
		}
	}
	return false
}
