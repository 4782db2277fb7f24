package maze

import (
	"fmt"
)

// One slot of a DisjointSet. The zero value is a root; otherwise parent holds
// the index of the next cell on the way to the root.
type link struct {
	parent int
	linked bool
}

// Implements a union-find structure over a fixed number of grid cells. Unlike
// the usual formulation, parent pointers are never compressed or rebalanced,
// so every parent pointer stays meaningful to callers. The maze generator
// relies on this: each parent link is exactly one carved passage.
type DisjointSet struct {
	links []link
	// The number of roots remaining.
	roots int
}

// Returns a new DisjointSet where each of the size cells is its own root.
func NewDisjointSet(size int) *DisjointSet {
	if size < 0 {
		panic(fmt.Sprintf("Invalid disjoint set size: %d", size))
	}
	return &DisjointSet{
		links: make([]link, size),
		roots: size,
	}
}

// Returns the number of cells tracked by the set.
func (s *DisjointSet) Len() int {
	return len(s.links)
}

// Returns the number of disjoint components remaining.
func (s *DisjointSet) Roots() int {
	return s.roots
}

func (s *DisjointSet) checkIndex(x int) {
	if (x < 0) || (x >= len(s.links)) {
		panic(fmt.Sprintf("Cell index %d out of range [0, %d)", x,
			len(s.links)))
	}
}

// Returns true if x is the root of its component.
func (s *DisjointSet) IsRoot(x int) bool {
	s.checkIndex(x)
	return !s.links[x].linked
}

// Returns the root of the component containing x, following parent pointers.
// Panics if x is out of range.
func (s *DisjointSet) Find(x int) int {
	s.checkIndex(x)
	for s.links[x].linked {
		x = s.links[x].parent
	}
	return x
}

// Returns x's direct parent, or false if x is a root.
func (s *DisjointSet) Parent(x int) (int, bool) {
	s.checkIndex(x)
	l := s.links[x]
	return l.parent, l.linked
}

// Attaches rootB under rootA. Both must be roots of distinct components;
// anything else is a caller bug and panics rather than silently corrupting the
// structure.
func (s *DisjointSet) Union(rootA, rootB int) {
	if !s.IsRoot(rootA) || !s.IsRoot(rootB) {
		panic(fmt.Sprintf("Union(%d, %d) called on a non-root cell", rootA,
			rootB))
	}
	if rootA == rootB {
		panic(fmt.Sprintf("Union(%d, %d) called on a single root", rootA,
			rootB))
	}
	s.links[rootB] = link{parent: rootA, linked: true}
	s.roots--
}

// Makes x the root of its own component by reversing every parent pointer on
// the path from x to the old root. The set of cells in the component doesn't
// change, and each reversed pointer still joins the same two cells.
func (s *DisjointSet) MakeRoot(x int) {
	s.checkIndex(x)
	previous := link{}
	current := x
	for {
		next := s.links[current]
		s.links[current] = previous
		if !next.linked {
			return
		}
		previous = link{parent: current, linked: true}
		current = next.parent
	}
}

// Returns the index of the second root found when scanning from cell 0, or
// false if at most one root remains.
func (s *DisjointSet) NextRootIdx() (int, bool) {
	seen := 0
	for i := range s.links {
		if s.links[i].linked {
			continue
		}
		if seen == 1 {
			return i, true
		}
		seen++
	}
	return -1, false
}

// Returns true if every cell belongs to a single component.
func (s *DisjointSet) IsSingleSet() bool {
	return s.roots == 1
}
