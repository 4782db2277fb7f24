// This defines a basic executable for generating an image of a maze.
package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/alecthomas/kingpin"
	"github.com/canufeel/maze"
	"github.com/canufeel/maze/wallimage"
)

// Builds the configuration from the defaults, an optional config file, and
// finally any flags the user actually passed.
func parseArgs(args []string, outW io.Writer) (*Config, error) {
	app := kingpin.New("create_maze_image",
		"Generates a random maze and saves it as a .png image.")
	app.Writer(outW)
	app.ErrorWriter(outW)

	set := make(map[string]bool)
	flag := func(name, help string) *kingpin.FlagClause {
		return app.Flag(name, help).Action(func(*kingpin.ParseContext) error {
			set[name] = true
			return nil
		})
	}
	configPath := app.Flag("config",
		"An optional .hcl file containing any of the other settings.").String()
	cellsWide := flag("cells_wide",
		"The width of the maze, in grid cells.").Int()
	cellsHigh := flag("cells_high",
		"The height of the maze, in grid cells.").Int()
	cellPixels := flag("cell_pixels",
		"The number of pixels across each cell.").Int()
	border := flag("border",
		"The width of a white border around the image, in pixels.").Int()
	randomSeed := flag("random_seed",
		"If positive, specifies the random seed to use.").Int64()
	showSolution := flag("show_solution",
		"If set, shows the solution of the maze.").Bool()
	startCell := flag("start_cell",
		"The index of the cell where the maze starts.").Int()
	exitCell := flag("exit_cell",
		"The index of the cell where the maze ends.").Int()
	outFilename := flag("output_file",
		"The name of the .png file to which the maze will be saved.").String()
	logLevel := flag("log_level",
		"One of debug, info, warn, or error.").String()
	logFormat := flag("log_format", "Either text or json.").String()

	_, e := app.Parse(args)
	if e != nil {
		return nil, e
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		e = cfg.LoadFile(*configPath)
		if e != nil {
			return nil, e
		}
	}
	if set["cells_wide"] {
		cfg.Width = *cellsWide
	}
	if set["cells_high"] {
		cfg.Height = *cellsHigh
	}
	if set["cell_pixels"] {
		cfg.CellPixels = *cellPixels
	}
	if set["border"] {
		cfg.Border = *border
	}
	if set["random_seed"] {
		cfg.Seed = *randomSeed
	}
	if set["show_solution"] {
		cfg.ShowSolution = *showSolution
	}
	if set["start_cell"] {
		cfg.StartCell = *startCell
	}
	if set["exit_cell"] {
		cfg.ExitCell = *exitCell
	}
	if set["output_file"] {
		cfg.Output = *outFilename
	}
	if set["log_level"] {
		cfg.LogLevel = *logLevel
	}
	if set["log_format"] {
		cfg.LogFormat = *logFormat
	}
	e = cfg.Validate()
	if e != nil {
		return nil, e
	}
	return &cfg, nil
}

// Encodes pic as a PNG at path, including errors from closing the file.
func writeImage(path string, pic image.Image) error {
	f, e := os.Create(path)
	if e != nil {
		return fmt.Errorf("Error creating %s: %w", path, e)
	}
	e = png.Encode(f, pic)
	if e != nil {
		f.Close()
		return fmt.Errorf("Error writing %s: %w", path, e)
	}
	e = f.Close()
	if e != nil {
		return fmt.Errorf("Error closing %s: %w", path, e)
	}
	return nil
}

func run(args []string, outW io.Writer) int {
	cfg, e := parseArgs(args, outW)
	if e != nil {
		fmt.Fprintf(outW, "Invalid or missing argument: %s\n", e)
		fmt.Fprintln(outW, "Run with --help for more information.")
		return 1
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)

	rng := maze.NewSeededSource(cfg.Seed)
	m, e := maze.New(cfg.Width, cfg.Height, rng, maze.WithLogger(logger))
	if e != nil {
		logger.Error("Failed generating maze.", "error", e)
		return 1
	}
	logger.Info("Generated maze.", "info", m.GetInfo())

	pic, e := wallimage.New(m.Grid(), cfg.CellPixels)
	if e != nil {
		logger.Error("Failed creating maze image.", "error", e)
		return 1
	}
	m.FeedWhitespace(pic)

	start, exit := cfg.endpoints()
	if cfg.ShowSolution {
		logger.Info("Finding solution to the maze.", "start", start,
			"exit", exit)
		path, e := m.Solve(start, exit)
		if e != nil {
			logger.Error("Error finding solution.", "error", e)
			return 1
		}
		e = pic.ShowPath(path)
		if e != nil {
			logger.Error("Error drawing solution.", "error", e)
			return 1
		}
		logger.Debug("Solution found.", "length", len(path))
	}
	finalPic, e := drawMazeDecorations(pic, m.Grid(), start, exit)
	if e != nil {
		logger.Error("Error adding maze decorations.", "error", e)
		return 1
	}

	e = writeImage(cfg.Output, addBorder(finalPic, cfg.Border))
	if e != nil {
		logger.Error("Error saving image.", "error", e)
		return 1
	}
	logger.Info("Image written OK.", "path", cfg.Output)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
