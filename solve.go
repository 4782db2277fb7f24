package maze

import (
	"errors"
	"fmt"
)

// Returned by Solve if the two cells aren't connected. Never happens for a
// maze returned by New.
var ErrNoPath = errors.New("no path between cells")

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Orders all four directions from cell toward target, best first: the axis
// with the larger manhattan distance comes first, and each axis is tried
// toward the target before away from it. Ties favor the horizontal axis.
func (g Grid) rankDirections(cell, target int) [4]Direction {
	col, row := g.Coords(cell)
	targetCol, targetRow := g.Coords(target)
	horizontal := Left
	if targetCol > col {
		horizontal = Right
	}
	vertical := Up
	if targetRow > row {
		vertical = Down
	}
	primary, secondary := horizontal, vertical
	if abs(targetRow-row) > abs(targetCol-col) {
		primary, secondary = vertical, horizontal
	}
	return [4]Direction{primary, secondary, secondary.Opposite(),
		primary.Opposite()}
}

// Returns the neighbor in the given direction if there's a passage to it and
// it hasn't been visited yet.
func (m *Maze) reachableAndUnvisited(current int, d Direction,
	visited []bool) (int, bool) {
	dst, ok := m.grid.Neighbor(current, d)
	if !ok || visited[dst] {
		return -1, false
	}
	if !m.IsPassage(current, dst) {
		return -1, false
	}
	return dst, true
}

// Returns the cells along the path from one cell to another, including both
// ends. This is basically a depth-first search, always trying the direction
// with the shortest manhattan distance to the target first.
func (m *Maze) Solve(from, to int) ([]int, error) {
	if !m.grid.Contains(from) {
		return nil, fmt.Errorf("Invalid start cell %d: %w", from,
			ErrCellOutOfRange)
	}
	if !m.grid.Contains(to) {
		return nil, fmt.Errorf("Invalid end cell %d: %w", to,
			ErrCellOutOfRange)
	}
	visited := make([]bool, m.grid.Size())
	// These will be -1 to indicate either uninitialized or the start of the
	// path.
	parentIndices := make([]int, m.grid.Size())
	for i := range parentIndices {
		parentIndices[i] = -1
	}

	// The initial capacity of this is arbitrary, but hopefully something big
	// enough that it won't need to be reallocated.
	dfsStack := make([]int, 0, m.grid.Size()/2)
	dfsStack = append(dfsStack, from)
	visited[from] = true

	found := false

DFSLoop:
	for len(dfsStack) != 0 {
		currentIndex := dfsStack[len(dfsStack)-1]
		dfsStack = dfsStack[:len(dfsStack)-1]
		if currentIndex == to {
			found = true
			break
		}

		// Follow the path as long as possible, minimizing manhattan distance
		// at each step.
		for {
			moveDst := -1
			for _, d := range m.grid.rankDirections(currentIndex, to) {
				dstIndex, ok := m.reachableAndUnvisited(currentIndex, d,
					visited)
				if !ok {
					continue
				}
				if moveDst == -1 {
					moveDst = dstIndex
					continue
				}
				// Already picked the next step, so test this one later.
				visited[dstIndex] = true
				parentIndices[dstIndex] = currentIndex
				dfsStack = append(dfsStack, dstIndex)
			}
			if moveDst < 0 {
				break
			}
			visited[moveDst] = true
			parentIndices[moveDst] = currentIndex
			currentIndex = moveDst
			if currentIndex == to {
				found = true
				break DFSLoop
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("Can't get from %d to %d: %w", from, to,
			ErrNoPath)
	}

	// Follow the chain of parent indices back from the end.
	var path []int
	for index := to; index >= 0; index = parentIndices[index] {
		path = append(path, index)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
