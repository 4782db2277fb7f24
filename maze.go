// This defines a library for generating perfect 2D grid mazes using a
// union-find structure. The carved passages are exposed as a list of removed
// walls, for drawing, and as an adjacency query, for checking player moves.
package maze

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

var (
	// Returned by New if the grid is narrower or shorter than two cells.
	ErrDegenerateGrid = errors.New("width and height must be at least 2")
	// Returned by New if no random source is given.
	ErrNilRandomSource = errors.New("a random source is required")
	// Returned when a cell index doesn't fall inside the maze.
	ErrCellOutOfRange = errors.New("cell index out of range")
)

// A passage between two grid-adjacent cells, i.e. a removed wall.
type Edge struct {
	A int
	B int
}

// Receives removed walls from FeedWhitespace.
type EdgeSink interface {
	// Marks the wall between the two adjacent cells as open.
	RemoveWall(a, b int)
}

// Adapts a plain function to the EdgeSink interface.
type EdgeSinkFunc func(a, b int)

func (f EdgeSinkFunc) RemoveWall(a, b int) {
	f(a, b)
}

type options struct {
	logger *slog.Logger
}

// Customizes maze generation.
type Option func(*options)

// Sets the logger used to report generation progress at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// A perfect maze: every cell is reachable from every other cell by exactly
// one path. Read-only once returned by New.
type Maze struct {
	grid  Grid
	ds    *DisjointSet
	stats Stats
	// The seed used for generation, if the random source reported one.
	seed    int64
	hasSeed bool
}

// Generates a new width x height maze using the given source of randomness.
// Both dimensions must be at least 2.
func New(width, height int, rng RandomSource, opts ...Option) (*Maze, error) {
	if (width < 2) || (height < 2) {
		return nil, fmt.Errorf("%w (got %dx%d)", ErrDegenerateGrid, width,
			height)
	}
	cellCount := width * height
	// Check for overflow.
	if (cellCount <= 0) || (cellCount/width != height) {
		return nil, fmt.Errorf("The maze's size was too big")
	}
	if rng == nil {
		return nil, ErrNilRandomSource
	}
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	grid := Grid{Width: width, Height: height}
	o.logger.Debug("Generating maze.", "width", width, "height", height)
	g := newGenerator(grid, rng, o.logger)
	g.run()
	toReturn := &Maze{
		grid:  grid,
		ds:    g.ds,
		stats: g.stats,
	}
	if s, ok := rng.(interface{ Seed() int64 }); ok {
		toReturn.seed = s.Seed()
		toReturn.hasSeed = true
	}
	o.logger.Debug("Maze generated.", "passages", cellCount-1,
		"duration", g.stats.Duration)
	return toReturn, nil
}

// Returns the maze's grid dimensions.
func (m *Maze) Grid() Grid {
	return m.grid
}

func (m *Maze) Width() int {
	return m.grid.Width
}

func (m *Maze) Height() int {
	return m.grid.Height
}

// Returns counters collected while generating the maze.
func (m *Maze) Stats() Stats {
	return m.stats
}

// Returns the root of the component containing the cell. Panics if the index
// is out of range.
func (m *Maze) Find(cell int) int {
	return m.ds.Find(cell)
}

// Returns the cell's direct parent in the carved tree, or false for the root.
func (m *Maze) Parent(cell int) (int, bool) {
	return m.ds.Parent(cell)
}

// Returns true if every cell is connected. Always true for a maze returned by
// New.
func (m *Maze) IsSingleSet() bool {
	return m.ds.IsSingleSet()
}

// Sends every passage to the sink, as (cell, parent) in ascending cell order.
func (m *Maze) FeedWhitespace(sink EdgeSink) {
	for i := 0; i < m.ds.Len(); i++ {
		if parent, ok := m.ds.Parent(i); ok {
			sink.RemoveWall(i, parent)
		}
	}
}

// Returns every passage in the maze, in the order FeedWhitespace produces
// them.
func (m *Maze) Edges() []Edge {
	toReturn := make([]Edge, 0, m.grid.Size()-1)
	m.FeedWhitespace(EdgeSinkFunc(func(a, b int) {
		toReturn = append(toReturn, Edge{A: a, B: b})
	}))
	return toReturn
}

// Returns true if a and b are grid neighbors and connected, meaning a player
// can step directly from one to the other. Returns false for indices outside
// of the maze.
func (m *Maze) HasNoWall(a, b int) bool {
	if !m.grid.Contains(a) || !m.grid.Contains(b) {
		return false
	}
	if !m.grid.Adjacent(a, b) {
		return false
	}
	return m.ds.Find(a) == m.ds.Find(b)
}

// Returns true if the wall between a and b was carved away, i.e. one of the
// two cells is the other's direct parent. Unlike HasNoWall, this stays false
// for neighbors that are only connected by a longer path.
func (m *Maze) IsPassage(a, b int) bool {
	if !m.grid.Contains(a) || !m.grid.Contains(b) {
		return false
	}
	if parent, ok := m.ds.Parent(a); ok && (parent == b) {
		return true
	}
	parent, ok := m.ds.Parent(b)
	return ok && (parent == a)
}

// Returns a human-readable string about the maze, for providing debug info
// such as the random seed.
func (m *Maze) GetInfo() string {
	seed := "unknown"
	if m.hasSeed {
		seed = fmt.Sprintf("%d", m.seed)
	}
	return fmt.Sprintf("%dx%d grid maze with random seed %s, generated in "+
		"%.03f seconds", m.grid.Width, m.grid.Height, seed,
		m.stats.Duration.Seconds())
}
