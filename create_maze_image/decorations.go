package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/canufeel/maze"
	"github.com/canufeel/maze/wallimage"
	"github.com/yalue/image_utils"
)

const arrowLength = 16

// Space left around the maze so arrows outside of it stay in the image.
const decorationMargin = arrowLength + 2

var (
	startColor = color.RGBA{40, 180, 70, 255}
	exitColor  = color.RGBA{100, 120, 255, 255}
)

func getArrowForDirection(d maze.Direction,
	arrowColor color.Color) image.Image {
	switch d {
	case maze.Left:
		return image_utils.LeftArrow(arrowColor)
	case maze.Up:
		return image_utils.UpArrow(arrowColor)
	case maze.Down:
		return image_utils.DownArrow(arrowColor)
	}
	return image_utils.RightArrow(arrowColor)
}

// Returns an arrow pointing in the given direction, with a white center.
func getOutlinedArrow(d maze.Direction, arrowColor color.Color) image.Image {
	outerArrow := image_utils.ResizeImage(getArrowForDirection(d, arrowColor),
		arrowLength, arrowLength)
	innerArrow := image_utils.ResizeImage(getArrowForDirection(d, color.White),
		arrowLength/2, arrowLength/2)
	toReturn := image_utils.NewCompositeImage()
	toReturn.AddImage(outerArrow, image.Pt(0, 0))
	toReturn.AddImage(innerArrow, image.Pt(arrowLength/4, arrowLength/4))
	return image_utils.ToRGBA(toReturn)
}

// If the tip of the arrow is supposed to be at the given pt (or the tail of
// the arrow, if "away" is true), this returns the top-left where the square
// image returned by getOutlinedArrow should be drawn.
func getArrowTopLeft(pt image.Point, d maze.Direction, away bool) image.Point {
	halfLength := arrowLength / 2
	switch d {
	case maze.Left:
		if away {
			return image.Pt(pt.X-arrowLength-1, pt.Y-halfLength)
		}
		return image.Pt(pt.X+1, pt.Y-halfLength)
	case maze.Up:
		if away {
			return image.Pt(pt.X-halfLength, pt.Y-arrowLength-1)
		}
		return image.Pt(pt.X-halfLength, pt.Y+1)
	case maze.Right:
		if away {
			return image.Pt(pt.X+1, pt.Y-halfLength)
		}
		return image.Pt(pt.X-arrowLength-1, pt.Y-halfLength)
	case maze.Down:
		if away {
			return image.Pt(pt.X-halfLength, pt.Y+1)
		}
		return image.Pt(pt.X-halfLength, pt.Y-arrowLength-1)
	}
	panic("Invalid arrow direction!")
}

// Returns the first direction, in order of preference, that leads off the
// grid from the cell. Returns false for cells away from the outer walls.
func outerSide(grid maze.Grid, cell int, preference ...maze.Direction) (
	maze.Direction, bool) {
	for _, d := range preference {
		if _, ok := grid.Neighbor(cell, d); !ok {
			return d, true
		}
	}
	return 0, false
}

// Adds "decorations" to the maze: an arrow into the start cell and an arrow out
// of the exit cell. Cells away from the outer walls are filled in instead.
// Rasterizes the maze to an image.RGBA.
func drawMazeDecorations(pic *wallimage.Picture, grid maze.Grid, start,
	exit int) (*image.RGBA, error) {
	offset := image.Pt(decorationMargin, decorationMargin)
	startSide, startOuter := outerSide(grid, start, maze.Left, maze.Up,
		maze.Right, maze.Down)
	if !startOuter {
		e := pic.MarkCell(start, startColor)
		if e != nil {
			return nil, fmt.Errorf("Error marking start cell: %w", e)
		}
	}
	exitSide, exitOuter := outerSide(grid, exit, maze.Right, maze.Down,
		maze.Left, maze.Up)
	if !exitOuter {
		e := pic.MarkCell(exit, exitColor)
		if e != nil {
			return nil, fmt.Errorf("Error marking exit cell: %w", e)
		}
	}

	decorated := image_utils.NewCompositeImage()
	e := decorated.AddImage(image_utils.ToRGBA(pic), offset)
	if e != nil {
		return nil, fmt.Errorf("Error setting base maze image: %w", e)
	}
	// Keep the margin on the far sides too.
	bounds := pic.Bounds()
	e = decorated.AddImage(image.NewRGBA(image.Rect(0, 0, 1, 1)),
		image.Pt(bounds.Dx()+2*decorationMargin-1,
			bounds.Dy()+2*decorationMargin-1))
	if e != nil {
		return nil, fmt.Errorf("Error padding maze image: %w", e)
	}

	if startOuter {
		// The arrow points into the maze, with its tip on the outer wall.
		d := startSide.Opposite()
		pt := pic.CellEdge(start, startSide).Add(offset)
		e = decorated.AddImage(getOutlinedArrow(d, startColor),
			getArrowTopLeft(pt, d, false))
		if e != nil {
			return nil, fmt.Errorf("Error adding start arrow: %w", e)
		}
	}
	if exitOuter {
		pt := pic.CellEdge(exit, exitSide).Add(offset)
		e = decorated.AddImage(getOutlinedArrow(exitSide, exitColor),
			getArrowTopLeft(pt, exitSide, true))
		if e != nil {
			return nil, fmt.Errorf("Error adding exit arrow: %w", e)
		}
	}

	toReturn := image_utils.ToRGBA(decorated)
	return toReturn, nil
}

// Surrounds the finished image with a white border, unless width is 0.
func addBorder(pic image.Image, width int) image.Image {
	if width <= 0 {
		return pic
	}
	return image_utils.AddImageBorder(pic, color.White, width)
}
