package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/canufeel/maze"
	"github.com/canufeel/maze/wallimage"
	"github.com/stretchr/testify/require"
)

func TestParseArgsPrecedence(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "maze.hcl")
	require.NoError(t, os.WriteFile(configPath, []byte(`
cells_wide  = 30
cells_high  = 10
output_file = "from_config.png"
`), 0644))

	var out bytes.Buffer
	cfg, e := parseArgs([]string{"--config", configPath, "--cells_high", "12",
		"--show_solution"}, &out)
	require.NoError(t, e)
	require.Equal(t, 30, cfg.Width)
	require.Equal(t, 12, cfg.Height)
	require.Equal(t, "from_config.png", cfg.Output)
	require.True(t, cfg.ShowSolution)
	require.Equal(t, DefaultConfig().CellPixels, cfg.CellPixels)
}

func TestParseArgsErrors(t *testing.T) {
	var out bytes.Buffer
	_, e := parseArgs([]string{"--cells_wide", "1", "--output_file", "x.png"},
		&out)
	require.Error(t, e)
	_, e = parseArgs([]string{"--no_such_flag"}, &out)
	require.Error(t, e)
	_, e = parseArgs(nil, &out)
	require.Error(t, e, "an output file is required")
}

func TestRun(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "maze.png")
	var out bytes.Buffer
	status := run([]string{"--cells_wide", "8", "--cells_high", "6",
		"--random_seed", "42", "--show_solution", "--border", "3",
		"--output_file", outPath, "--log_level", "debug"}, &out)
	require.Equal(t, 0, status, out.String())
	require.Contains(t, out.String(), "random seed 42")
	require.Contains(t, out.String(), "phase=leftovers")

	f, e := os.Open(outPath)
	require.NoError(t, e)
	defer f.Close()
	pic, e := png.Decode(f)
	require.NoError(t, e)
	// At least the maze itself plus the border must be there.
	require.GreaterOrEqual(t, pic.Bounds().Dx(), 8*9+6)
	require.GreaterOrEqual(t, pic.Bounds().Dy(), 6*9+6)
}

func TestRunInvalidArguments(t *testing.T) {
	var out bytes.Buffer
	status := run([]string{"--cells_wide", "0"}, &out)
	require.Equal(t, 1, status)
	require.Contains(t, out.String(), "Invalid or missing argument")
}

func TestOuterSide(t *testing.T) {
	grid := maze.Grid{Width: 4, Height: 3}
	d, ok := outerSide(grid, 0, maze.Left, maze.Up)
	require.True(t, ok)
	require.Equal(t, maze.Left, d)
	d, ok = outerSide(grid, 11, maze.Right, maze.Down)
	require.True(t, ok)
	require.Equal(t, maze.Right, d)
	d, ok = outerSide(grid, 1, maze.Left, maze.Right, maze.Up)
	require.True(t, ok)
	require.Equal(t, maze.Up, d)
	_, ok = outerSide(grid, 5, maze.Left, maze.Up, maze.Right, maze.Down)
	require.False(t, ok)
}

func TestAddBorder(t *testing.T) {
	p, e := wallimage.New(maze.Grid{Width: 2, Height: 2},
		wallimage.DefaultCellPixels)
	require.NoError(t, e)
	bordered := addBorder(p, 5)
	require.Equal(t, image.Rect(0, 0, 28, 28), bordered.Bounds())
	require.Equal(t, color.White, bordered.At(0, 0))
	require.Equal(t, color.White, bordered.At(27, 27))
	// The top-left corner of the maze itself is a wall.
	r, g, b, _ := bordered.At(5, 5).RGBA()
	require.Equal(t, []uint32{0, 0, 0}, []uint32{r, g, b})
	require.Equal(t, image.Image(p), addBorder(p, 0))
}

func TestWriteImage(t *testing.T) {
	dir := t.TempDir()
	pic := image.NewRGBA(image.Rect(0, 0, 4, 3))
	outPath := filepath.Join(dir, "out.png")
	require.NoError(t, writeImage(outPath, pic))
	f, e := os.Open(outPath)
	require.NoError(t, e)
	defer f.Close()
	decoded, e := png.Decode(f)
	require.NoError(t, e)
	require.Equal(t, pic.Bounds(), decoded.Bounds())

	// A directory can't be created as a file.
	require.Error(t, writeImage(dir, pic))
}

func TestRunUnwritableOutput(t *testing.T) {
	var out bytes.Buffer
	status := run([]string{"--cells_wide", "4", "--cells_high", "4",
		"--output_file", t.TempDir()}, &out)
	require.Equal(t, 1, status)
	require.NotContains(t, out.String(), "Image written OK.")
}
