package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg := DefaultConfig()
	e := cfg.Load("test.hcl", []byte(`
cells_wide    = 60
cells_high    = 40
cell_pixels   = 20
random_seed   = 1234
show_solution = true
output_file   = "maze.png"
log_format    = "json"
`))
	require.NoError(t, e)
	require.Equal(t, 60, cfg.Width)
	require.Equal(t, 40, cfg.Height)
	require.Equal(t, 20, cfg.CellPixels)
	require.Equal(t, int64(1234), cfg.Seed)
	require.True(t, cfg.ShowSolution)
	require.Equal(t, "maze.png", cfg.Output)
	require.Equal(t, "json", cfg.LogFormat)
	// Settings missing from the file keep their defaults.
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, -1, cfg.ExitCell)
	require.NoError(t, cfg.Validate())

	start, exit := cfg.endpoints()
	require.Equal(t, 0, start)
	require.Equal(t, 2399, exit)
}

func TestLoadConfigErrors(t *testing.T) {
	cfg := DefaultConfig()
	require.Error(t, cfg.Load("test.hcl", []byte(`cells_wide = "wide"`)))
	require.Error(t, cfg.Load("test.hcl", []byte(`unknown_setting = 1`)))
	require.Error(t, cfg.LoadFile(filepath.Join(t.TempDir(), "none.hcl")))
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.hcl")
	require.NoError(t, os.WriteFile(path, []byte("cells_high = 7\n"), 0644))
	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFile(path))
	require.Equal(t, 7, cfg.Height)
	require.Equal(t, 20, cfg.Width)
}

func TestValidate(t *testing.T) {
	valid := DefaultConfig()
	valid.Output = "out.png"
	require.NoError(t, valid.Validate())

	tests := map[string]func(c *Config){
		"narrow":         func(c *Config) { c.Width = 1 },
		"short":          func(c *Config) { c.Height = 0 },
		"tiny cells":     func(c *Config) { c.CellPixels = 3 },
		"border":         func(c *Config) { c.Border = -1 },
		"no output":      func(c *Config) { c.Output = "" },
		"start":          func(c *Config) { c.StartCell = 400 },
		"negative start": func(c *Config) { c.StartCell = -1 },
		"exit":           func(c *Config) { c.ExitCell = 400 },
		"negative exit":  func(c *Config) { c.ExitCell = -7 },
		"log level":      func(c *Config) { c.LogLevel = "loud" },
		"log format":     func(c *Config) { c.LogFormat = "xml" },
	}
	for name, modify := range tests {
		c := valid
		modify(&c)
		require.Error(t, c.Validate(), name)
	}
}
