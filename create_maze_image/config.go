package main

import (
	"fmt"

	"github.com/canufeel/maze/wallimage"
	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Holds everything needed to generate and save one maze image. Can be loaded
// from an HCL file, with command-line flags taking precedence.
type Config struct {
	Width        int    `hcl:"cells_wide,optional"`
	Height       int    `hcl:"cells_high,optional"`
	CellPixels   int    `hcl:"cell_pixels,optional"`
	Border       int    `hcl:"border,optional"`
	Seed         int64  `hcl:"random_seed,optional"`
	ShowSolution bool   `hcl:"show_solution,optional"`
	StartCell    int    `hcl:"start_cell,optional"`
	ExitCell     int    `hcl:"exit_cell,optional"`
	Output       string `hcl:"output_file,optional"`
	LogLevel     string `hcl:"log_level,optional"`
	LogFormat    string `hcl:"log_format,optional"`
}

// Returns the configuration used when nothing else is specified. The default
// start is the top-left cell, and the default exit (-1) is the bottom-right
// one.
func DefaultConfig() Config {
	return Config{
		Width:      20,
		Height:     20,
		CellPixels: wallimage.DefaultCellPixels,
		Border:     0,
		Seed:       -1,
		StartCell:  0,
		ExitCell:   -1,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Overwrites any settings present in the given .hcl (or .json) file.
func (c *Config) LoadFile(path string) error {
	e := hclsimple.DecodeFile(path, nil, c)
	if e != nil {
		return fmt.Errorf("Error loading config %s: %w", path, e)
	}
	return nil
}

// Overwrites any settings present in the given HCL source. The filename is
// only used in error messages and to pick the syntax.
func (c *Config) Load(filename string, src []byte) error {
	e := hclsimple.Decode(filename, src, nil, c)
	if e != nil {
		return fmt.Errorf("Error parsing config %s: %w", filename, e)
	}
	return nil
}

// Returns the start and exit cells, resolving the -1 exit default.
func (c *Config) endpoints() (int, int) {
	exit := c.ExitCell
	if exit < 0 {
		exit = c.Width*c.Height - 1
	}
	return c.StartCell, exit
}

// Returns an error if the configuration can't produce an image.
func (c *Config) Validate() error {
	if (c.Width < 2) || (c.Height < 2) {
		return fmt.Errorf("The maze must be at least 2x2 cells, got %dx%d",
			c.Width, c.Height)
	}
	if c.CellPixels < wallimage.MinCellPixels {
		return fmt.Errorf("cell_pixels must be at least %d",
			wallimage.MinCellPixels)
	}
	if c.Border < 0 {
		return fmt.Errorf("border can't be negative")
	}
	if c.Output == "" {
		return fmt.Errorf("An output file is required")
	}
	start, exit := c.endpoints()
	size := c.Width * c.Height
	if (start < 0) || (start >= size) {
		return fmt.Errorf("Invalid start cell %d for a %d-cell maze", start,
			size)
	}
	if (c.ExitCell < -1) || (exit >= size) {
		return fmt.Errorf("Invalid exit cell %d for a %d-cell maze",
			c.ExitCell, size)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("Unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("Unknown log format %q", c.LogFormat)
	}
	return nil
}
