package maze

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		m := newTestMaze(t, 12, 9, NewSeededSource(seed))
		end := m.Grid().Size() - 1
		path, e := m.Solve(0, end)
		require.NoError(t, e)
		require.Equal(t, 0, path[0])
		require.Equal(t, end, path[len(path)-1])
		seen := map[int]bool{}
		for i, cell := range path {
			require.False(t, seen[cell], "path revisits %d", cell)
			seen[cell] = true
			if i > 0 {
				require.True(t, m.IsPassage(path[i-1], cell),
					"step %d -> %d goes through a wall", path[i-1], cell)
			}
		}
	}
}

func TestSolveKnownMaze(t *testing.T) {
	// Edges: 0-1, 1-2, 2-5, 3-4, 4-5, 5-8, 6-7, 7-8.
	m := newTestMaze(t, 3, 3, constantSource(0))
	path, e := m.Solve(0, 6)
	require.NoError(t, e)
	require.Equal(t, []int{0, 1, 2, 5, 8, 7, 6}, path)

	path, e = m.Solve(3, 3)
	require.NoError(t, e)
	require.Equal(t, []int{3}, path)
}

func TestSolveOutOfRange(t *testing.T) {
	m := newTestMaze(t, 3, 3, constantSource(0))
	_, e := m.Solve(-1, 4)
	require.ErrorIs(t, e, ErrCellOutOfRange)
	_, e = m.Solve(0, 9)
	require.ErrorIs(t, e, ErrCellOutOfRange)
}

func TestRankDirections(t *testing.T) {
	g := Grid{Width: 5, Height: 5}
	tests := []struct {
		cell, target int
		expected     [4]Direction
	}{
		{12, 14, [4]Direction{Right, Up, Down, Left}},
		{12, 2, [4]Direction{Up, Left, Right, Down}},
		{12, 23, [4]Direction{Down, Right, Left, Up}},
		{12, 6, [4]Direction{Left, Up, Down, Right}},
		{12, 12, [4]Direction{Left, Up, Down, Right}},
	}
	for _, tc := range tests {
		require.Equal(t, tc.expected, g.rankDirections(tc.cell, tc.target),
			"%d -> %d", tc.cell, tc.target)
	}
}
