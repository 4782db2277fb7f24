package maze

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSeededSourceRange(t *testing.T) {
	s := NewSeededSource(7)
	require.Equal(t, int64(7), s.Seed())
	for i := 0; i < 1000; i++ {
		v := s.Range(3, 9)
		require.True(t, (v >= 3) && (v < 9), "%d out of range", v)
	}
	require.Positive(t, NewSeededSource(0).Seed())
}

func TestSameSeedSameMaze(t *testing.T) {
	a := newTestMaze(t, 15, 11, NewSeededSource(2024))
	b := newTestMaze(t, 15, 11, NewSeededSource(2024))
	if diff := cmp.Diff(a.Edges(), b.Edges()); diff != "" {
		t.Fatalf("Mazes from the same seed differ (-a +b):\n%s", diff)
	}
}
