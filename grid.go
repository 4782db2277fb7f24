package maze

import (
	"fmt"
)

// One of the four directions a wall can lie in, relative to a cell. The
// numbering is the order in which the generator probes for walls.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// All directions, in probing order.
var Directions = [4]Direction{Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Unknown direction: %d", uint8(d))
}

// Returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	}
	panic(fmt.Sprintf("Invalid direction: %d", uint8(d)))
}

// Describes the dimensions of a rectangular grid of cells, addressed by
// row-major linear indices.
type Grid struct {
	Width  int
	Height int
}

// Returns the number of cells in the grid.
func (g Grid) Size() int {
	return g.Width * g.Height
}

// Returns true if idx refers to a cell in the grid.
func (g Grid) Contains(idx int) bool {
	return (idx >= 0) && (idx < g.Size())
}

// Returns the column and row of the cell at idx.
func (g Grid) Coords(idx int) (col, row int) {
	return idx % g.Width, idx / g.Width
}

// Returns the linear index of the cell at the given column and row.
func (g Grid) Index(col, row int) int {
	return row*g.Width + col
}

// Returns the index of the cell next to idx in the given direction. Returns
// false if that would leave the grid. Left and right moves never wrap onto a
// different row.
func (g Grid) Neighbor(idx int, d Direction) (int, bool) {
	if !g.Contains(idx) {
		return -1, false
	}
	col, row := g.Coords(idx)
	switch d {
	case Left:
		if col == 0 {
			return -1, false
		}
		return idx - 1, true
	case Right:
		if col == (g.Width - 1) {
			return -1, false
		}
		return idx + 1, true
	case Up:
		if row == 0 {
			return -1, false
		}
		return idx - g.Width, true
	case Down:
		if row == (g.Height - 1) {
			return -1, false
		}
		return idx + g.Width, true
	}
	return -1, false
}

// Returns the direction to go from a to reach b, if b is directly next to a.
func (g Grid) DirectionTo(a, b int) (Direction, bool) {
	for _, d := range Directions {
		n, ok := g.Neighbor(a, d)
		if ok && (n == b) {
			return d, true
		}
	}
	return 0, false
}

// Returns true if a and b share a wall. Diagonal cells, distant cells, and
// cells on either end of a row boundary are not adjacent.
func (g Grid) Adjacent(a, b int) bool {
	_, ok := g.DirectionTo(a, b)
	return ok
}
