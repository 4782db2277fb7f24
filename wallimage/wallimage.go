// Package wallimage draws the walls of a grid maze as an image. A Picture
// starts with every wall in place and is carved out by passing it to
// maze.Maze.FeedWhitespace.
package wallimage

import (
	"fmt"
	"image"
	"image/color"

	"github.com/canufeel/maze"
)

// The smallest usable number of pixels across a cell.
const MinCellPixels = 5

// The number of pixels across a cell, if nothing else is specified.
const DefaultCellPixels = 9

// The color used to highlight the cells along a path.
var PathColor = color.RGBA{
	R: 230,
	G: 20,
	B: 20,
	A: 255,
}

// A single cell of the picture.
type cell struct {
	// Whether each of the cell's walls are present, indexed by direction.
	walls [4]bool
	// If non-nil, the cell's interior is filled with this color.
	fill color.Color
}

// Returns false only if both walls adjacent to the corner between the two
// directions are clear.
func (c *cell) cornerSet(a, b maze.Direction) bool {
	return c.walls[a] || c.walls[b]
}

// Returns the color at the given pixel of a single cell, with size pixels
// across.
func (c *cell) at(x, y, size int) color.Color {
	last := size - 1
	if x == 0 {
		if y == 0 {
			if c.cornerSet(maze.Left, maze.Up) {
				return color.Black
			}
			return color.White
		}
		if y == last {
			if c.cornerSet(maze.Left, maze.Down) {
				return color.Black
			}
			return color.White
		}
		if c.walls[maze.Left] {
			return color.Black
		}
		return color.White
	}
	if x == last {
		if y == 0 {
			if c.cornerSet(maze.Right, maze.Up) {
				return color.Black
			}
			return color.White
		}
		if y == last {
			if c.cornerSet(maze.Right, maze.Down) {
				return color.Black
			}
			return color.White
		}
		if c.walls[maze.Right] {
			return color.Black
		}
		return color.White
	}
	// We already checked corners along with the left and right walls, so we
	// don't need to check them for the top and bottom walls.
	if y == 0 {
		if c.walls[maze.Up] {
			return color.Black
		}
		return color.White
	}
	if y == last {
		if c.walls[maze.Down] {
			return color.Black
		}
		return color.White
	}
	if c.fill == nil {
		return color.White
	}
	// Filled cells are only colored more than two pixels away from an edge.
	if (x > 1) && (x < (size - 2)) && (y > 1) && (y < (size - 2)) {
		return c.fill
	}
	return color.White
}

// Satisfies both image.Image and maze.EdgeSink. Create using New.
type Picture struct {
	grid       maze.Grid
	cellPixels int
	cells      []cell
}

// Returns a new picture of the given grid with every wall present.
func New(grid maze.Grid, cellPixels int) (*Picture, error) {
	if cellPixels < MinCellPixels {
		return nil, fmt.Errorf("Cells must be at least %d pixels across, "+
			"got %d", MinCellPixels, cellPixels)
	}
	if (grid.Width < 1) || (grid.Height < 1) {
		return nil, fmt.Errorf("Invalid grid size %dx%d", grid.Width,
			grid.Height)
	}
	toReturn := &Picture{
		grid:       grid,
		cellPixels: cellPixels,
		cells:      make([]cell, grid.Size()),
	}
	for i := range toReturn.cells {
		for j := range toReturn.cells[i].walls {
			toReturn.cells[i].walls[j] = true
		}
	}
	return toReturn, nil
}

// Clears the wall between two adjacent cells. Panics if the cells aren't
// adjacent, since that means the maze handed over a bogus passage.
func (p *Picture) RemoveWall(a, b int) {
	d, ok := p.grid.DirectionTo(a, b)
	if !ok {
		panic(fmt.Sprintf("Cells %d and %d don't share a wall", a, b))
	}
	p.cells[a].walls[d] = false
	p.cells[b].walls[d.Opposite()] = false
}

// Returns true if the cell's wall in the given direction is still present.
func (p *Picture) HasWall(idx int, d maze.Direction) bool {
	return p.cells[idx].walls[d]
}

// Fills the given cell with a color. A nil color clears the cell.
func (p *Picture) MarkCell(idx int, c color.Color) error {
	if !p.grid.Contains(idx) {
		return fmt.Errorf("Invalid cell %d: %w", idx, maze.ErrCellOutOfRange)
	}
	p.cells[idx].fill = c
	return nil
}

// Highlights every cell along the path.
func (p *Picture) ShowPath(path []int) error {
	for _, idx := range path {
		e := p.MarkCell(idx, PathColor)
		if e != nil {
			return fmt.Errorf("Error showing path: %w", e)
		}
	}
	return nil
}

// Removes all cell highlights.
func (p *Picture) ClearMarks() {
	for i := range p.cells {
		p.cells[i].fill = nil
	}
}

// Returns the pixel at the center of the cell.
func (p *Picture) CellCenter(idx int) image.Point {
	col, row := p.grid.Coords(idx)
	half := p.cellPixels / 2
	return image.Pt(col*p.cellPixels+half, row*p.cellPixels+half)
}

// Returns the pixel in the middle of the cell's wall in the given direction.
func (p *Picture) CellEdge(idx int, d maze.Direction) image.Point {
	center := p.CellCenter(idx)
	last := p.cellPixels - 1
	col, row := p.grid.Coords(idx)
	switch d {
	case maze.Left:
		return image.Pt(col*p.cellPixels, center.Y)
	case maze.Right:
		return image.Pt(col*p.cellPixels+last, center.Y)
	case maze.Up:
		return image.Pt(center.X, row*p.cellPixels)
	case maze.Down:
		return image.Pt(center.X, row*p.cellPixels+last)
	}
	return center
}

func (p *Picture) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *Picture) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.grid.Width*p.cellPixels,
		p.grid.Height*p.cellPixels)
}

func (p *Picture) At(x, y int) color.Color {
	if (x < 0) || (y < 0) || (x >= p.grid.Width*p.cellPixels) ||
		(y >= p.grid.Height*p.cellPixels) {
		return color.Transparent
	}
	// We delegate drawing of each pixel to the cell it falls into.
	col := x / p.cellPixels
	row := y / p.cellPixels
	c := &(p.cells[p.grid.Index(col, row)])
	return c.at(x%p.cellPixels, y%p.cellPixels, p.cellPixels)
}
