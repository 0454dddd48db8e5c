package tiles

// WallDim is the width and height of the wall, and the number of
// pattern lines.
const WallDim = 5

// WallPattern fixes the only color each wall cell can ever hold. Each
// row is the row above shifted one cell to the right.
var WallPattern = [WallDim][WallDim]Color{
	{Blue, Yellow, Red, Black, White},
	{White, Blue, Yellow, Red, Black},
	{Black, White, Blue, Yellow, Red},
	{Red, Black, White, Blue, Yellow},
	{Yellow, Red, Black, White, Blue},
}

// WallColumn returns the column that the given color occupies in the
// given wall row, or -1 if the color is not playable.
func WallColumn(row int, c Color) int {
	if !c.IsPlayable() || row < 0 || row >= WallDim {
		return -1
	}
	// The pattern is a cyclic shift, so the column is computable directly.
	return (c.Index() + row) % WallDim
}
