package maze

import (
	"fmt"
)

// Maps the names of arrow keys, as reported by browsers and most UI toolkits,
// to directions. Returns false for any other key.
func DirectionForKey(key string) (Direction, bool) {
	switch key {
	case "ArrowLeft":
		return Left, true
	case "ArrowRight":
		return Right, true
	case "ArrowUp":
		return Up, true
	case "ArrowDown":
		return Down, true
	}
	return 0, false
}

// Tracks a player's position in a maze, only allowing moves through carved
// passages.
type Player struct {
	maze  *Maze
	loc   int
	moves int
}

// Places a new player at the given cell.
func NewPlayer(m *Maze, loc int) (*Player, error) {
	if !m.grid.Contains(loc) {
		return nil, fmt.Errorf("Invalid player location %d: %w", loc,
			ErrCellOutOfRange)
	}
	return &Player{
		maze: m,
		loc:  loc,
	}, nil
}

// Returns the cell the player is in.
func (p *Player) Location() int {
	return p.loc
}

// Returns the number of successful moves so far.
func (p *Player) Moves() int {
	return p.moves
}

// Attempts to move one cell in the given direction. Returns false, leaving the
// player where they are, if there's a wall or the edge of the maze in the way.
func (p *Player) Move(d Direction) bool {
	next, ok := p.maze.grid.Neighbor(p.loc, d)
	if !ok {
		return false
	}
	return p.MoveTo(next)
}

// Attempts to move to a neighboring cell.
func (p *Player) MoveTo(next int) bool {
	if !p.maze.IsPassage(p.loc, next) {
		return false
	}
	p.loc = next
	p.moves++
	return true
}
