package board

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/azul/tiles"
)

func TestCanPlace(t *testing.T) {
	b := NewPlayerBoard()
	b.Place(2, tiles.Red, 1)
	b.SetWallTile(1, tiles.Blue)
	b.Place(0, tiles.Yellow, 1)

	cases := []struct {
		name string
		row  int
		c    tiles.Color
		want bool
	}{
		{"empty row", 3, tiles.Black, true},
		{"same color", 2, tiles.Red, true},
		{"different color", 2, tiles.Blue, false},
		{"wall cell taken", 1, tiles.Blue, false},
		{"other color on wall row", 1, tiles.White, true},
		{"row full", 0, tiles.Yellow, false},
		{"floor takes anything", FloorRow, tiles.White, true},
		{"floor takes the token", FloorRow, tiles.FirstPlayerToken, true},
		{"token never on a line", 4, tiles.FirstPlayerToken, false},
		{"row out of range", 5, tiles.Blue, false},
		{"negative row", -2, tiles.Blue, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, b.CanPlace(tc.row, tc.c), tc.name)
	}
}

func TestPlaceOverflowsToFloor(t *testing.T) {
	is := is.New(t)
	b := NewPlayerBoard()
	is.True(b.Place(1, tiles.Black, 4))
	is.Equal(b.Line(1), PatternLine{Color: tiles.Black, Count: 2})
	is.Equal(b.Floor(), []tiles.Color{tiles.Black, tiles.Black})
}

func TestPlaceIllegalDoesNotMutate(t *testing.T) {
	is := is.New(t)
	b := NewPlayerBoard()
	b.Place(3, tiles.White, 2)
	before := b.Copy()
	is.True(!b.Place(3, tiles.Red, 3))
	is.Equal(b, before)
}

func TestPlaceNothingDoesNotMutate(t *testing.T) {
	is := is.New(t)
	b := NewPlayerBoard()
	before := b.Copy()
	for _, count := range []int{0, -2} {
		is.True(!b.Place(2, tiles.Red, count))
		is.True(!b.Place(FloorRow, tiles.Red, count))
	}
	is.Equal(b, before)
	is.Equal(b.Line(2), PatternLine{})
	is.True(b.CanPlace(2, tiles.Blue))
}

func TestFloorDropsOverflow(t *testing.T) {
	is := is.New(t)
	b := NewPlayerBoard()
	b.PlaceFirstPlayerToken()
	is.True(b.Place(FloorRow, tiles.Blue, 10))
	is.Equal(len(b.Floor()), FloorCapacity)
	is.Equal(b.Floor()[0], tiles.FirstPlayerToken)
	is.True(b.HasFirstPlayerToken())

	b.PlaceFirstPlayerToken()
	is.Equal(len(b.Floor()), FloorCapacity)
}

func TestCopyIsDeep(t *testing.T) {
	is := is.New(t)
	b := NewPlayerBoard()
	b.Place(FloorRow, tiles.Red, 1)
	c := b.Copy()
	c.Place(FloorRow, tiles.Blue, 1)
	c.SetWallTile(0, tiles.Blue)
	is.Equal(len(b.Floor()), 1)
	is.Equal(b.WallAt(0, 0), tiles.Empty)
}
