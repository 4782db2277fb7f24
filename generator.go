package maze

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Identifies one of the strategies the generator uses, in the order they run.
type Phase uint8

const (
	// Joins walls around randomly chosen cells for a quarter of the grid's
	// size, seeding many small regions quickly.
	PhaseSample Phase = iota
	// Visits every cell the sampling phase never touched.
	PhaseLeftovers
	// Tries to join each remaining component to a neighbor, giving up after
	// too many consecutive failures.
	PhaseDrain
	// Keeps joining walls around random cells until one component remains.
	PhaseFinish
	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseSample:
		return "sample"
	case PhaseLeftovers:
		return "leftovers"
	case PhaseDrain:
		return "drain"
	case PhaseFinish:
		return "finish"
	}
	return fmt.Sprintf("Unknown phase: %d", uint8(p))
}

// The drain phase stops after this many consecutive failed attempts, leaving
// the rest of the work to the finishing phase.
const drainRetryBudget = 10

// Only this many of the four directions are probed per wall search. The
// direction just before the random starting one is skipped.
const probedDirections = 3

// Counters for a single generation phase.
type PhaseStats struct {
	// The number of wall searches started.
	Attempts int
	// The number of walls removed.
	Unions int
	// The number of wall searches that found nothing to remove.
	Failures int
}

// Describes how a maze was generated.
type Stats struct {
	Phases   [phaseCount]PhaseStats
	Duration time.Duration
}

// Carves a spanning tree out of a grid. Used once, by New.
type generator struct {
	grid   Grid
	ds     *DisjointSet
	rng    RandomSource
	logger *slog.Logger
	// Cells that have been joined to at least one neighbor.
	touched mapset.Set[int]
	stats   Stats
}

func newGenerator(grid Grid, rng RandomSource, logger *slog.Logger) *generator {
	return &generator{
		grid:    grid,
		ds:      NewDisjointSet(grid.Size()),
		rng:     rng,
		logger:  logger,
		touched: mapset.New[int](),
	}
}

// Runs every phase in order. Returns once the grid is a single component.
func (g *generator) run() {
	startTime := time.Now()
	for p := PhaseSample; p < phaseCount; p++ {
		if g.ds.IsSingleSet() {
			break
		}
		g.logger.Debug("Starting generation phase.", "phase", p,
			"components", g.ds.Roots())
		switch p {
		case PhaseSample:
			g.sample()
		case PhaseLeftovers:
			g.leftovers()
		case PhaseDrain:
			g.drain()
		case PhaseFinish:
			g.finish()
		}
		s := g.stats.Phases[p]
		g.logger.Debug("Finished generation phase.", "phase", p,
			"attempts", s.Attempts, "unions", s.Unions, "failures", s.Failures,
			"components", g.ds.Roots())
	}
	g.stats.Duration = time.Since(startTime)
}

func (g *generator) randomCell() int {
	return g.rng.Range(0, g.grid.Size())
}

func (g *generator) sample() {
	stats := &(g.stats.Phases[PhaseSample])
	iterations := g.grid.Size() / 4
	for i := 0; i < iterations; i++ {
		g.tryJoin(g.randomCell(), stats)
	}
}

func (g *generator) leftovers() {
	stats := &(g.stats.Phases[PhaseLeftovers])
	pool := make([]int, 0, g.grid.Size()-g.touched.Size())
	for i := 0; i < g.grid.Size(); i++ {
		if !g.touched.Has(i) {
			pool = append(pool, i)
		}
	}
	for len(pool) != 0 {
		i := g.rng.Range(0, len(pool))
		cell := pool[i]
		pool = append(pool[:i], pool[i+1:]...)
		// An earlier leftover may have been joined to this one already.
		if g.touched.Has(cell) {
			continue
		}
		// An untouched cell is still alone in its component, and at least one
		// of the probed directions stays inside a grid that's 2x2 or larger.
		if !g.tryJoin(cell, stats) {
			panic(fmt.Sprintf("Internal error: no wall to remove around "+
				"untouched cell %d", cell))
		}
	}
}

func (g *generator) drain() {
	stats := &(g.stats.Phases[PhaseDrain])
	failures := 0
	for !g.ds.IsSingleSet() && (failures < drainRetryBudget) {
		root, ok := g.ds.NextRootIdx()
		if !ok {
			break
		}
		if g.tryJoin(root, stats) {
			failures = 0
		} else {
			failures++
		}
	}
}

func (g *generator) finish() {
	stats := &(g.stats.Phases[PhaseFinish])
	for !g.ds.IsSingleSet() {
		g.tryJoin(g.randomCell(), stats)
	}
}

// Looks for a removable wall around cell and removes it. Returns false if none
// of the probed walls could be removed.
func (g *generator) tryJoin(cell int, stats *PhaseStats) bool {
	stats.Attempts++
	a, b, ok := g.findWallPair(cell)
	if !ok {
		stats.Failures++
		return false
	}
	g.join(a, b)
	stats.Unions++
	return true
}

// Picks a random starting direction and probes three directions in order from
// there. Returns the cell and the first neighbor that exists and belongs to a
// different component.
func (g *generator) findWallPair(cell int) (int, int, bool) {
	start := g.rng.Range(0, len(Directions))
	root := g.ds.Find(cell)
	for i := 0; i < probedDirections; i++ {
		d := Directions[(start+i)%len(Directions)]
		neighbor, ok := g.grid.Neighbor(cell, d)
		if !ok {
			continue
		}
		if g.ds.Find(neighbor) != root {
			return cell, neighbor, true
		}
	}
	return cell, -1, false
}

// Removes the wall between a and b, which must be in different components.
// Both components are re-rooted first so that the new parent link is the
// removed wall itself.
func (g *generator) join(a, b int) {
	g.ds.MakeRoot(a)
	g.ds.MakeRoot(b)
	g.ds.Union(a, b)
	g.touched.Put(a)
	g.touched.Put(b)
}
