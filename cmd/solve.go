package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/cwbudde/tourclimb/internal/render"
	"github.com/cwbudde/tourclimb/internal/search"
	"github.com/cwbudde/tourclimb/internal/store"
	"github.com/cwbudde/tourclimb/internal/tour"
)

// solveConfig holds everything one solve needs besides its output stream
type solveConfig struct {
	cityFile  string
	restarts  int
	strategy  string
	seed      int64
	width     int
	height    int
	patience  int
	pngPath   string
	pngScale  int
	xlsxPath  string
	tracePath string
	saveDir   string
	view      bool
}

var solveFlags solveConfig

var solveCmd = &cobra.Command{
	Use:   "solve <city-file> <restarts>",
	Short: "Search for a short tour and draw it",
	Long: `Loads a city file, prints the unplotted city map, runs <restarts> random
restarts of local search, then prints the map with the best tour, its total
distance and the visiting order.

Strategies:
  sweep   destructive swap walk; swaps are never undone (default)
  swap    reverting swap hill climb; a different, usually shorter, result
  mayfly  random-key search driven by the mayfly optimizer`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.Int64Var(&solveFlags.seed, "seed", 0, "Random seed (0 = seed from the clock)")
	f.StringVar(&solveFlags.strategy, "strategy", search.StrategySweep, "Local search: sweep, swap, mayfly")
	f.IntVar(&solveFlags.width, "width", render.DefaultWidth, "Map width in characters")
	f.IntVar(&solveFlags.height, "height", render.DefaultHeight, "Map height in characters")
	f.IntVar(&solveFlags.patience, "patience", 0, "Stop after N restarts without improvement (0 = run all)")
	f.StringVar(&solveFlags.pngPath, "png", "", "Also write the tour map as an image")
	f.IntVar(&solveFlags.pngScale, "png-scale", 8, "Pixels per map cell in the image")
	f.StringVar(&solveFlags.xlsxPath, "xlsx", "", "Also write a spreadsheet report")
	f.StringVar(&solveFlags.tracePath, "trace", "", "Write per-restart distances as JSON lines")
	f.StringVar(&solveFlags.saveDir, "save-dir", "", "Store the result under this directory")
	f.BoolVar(&solveFlags.view, "view", false, "Show the tour map in a terminal view after solving")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	restarts, err := parsePositive("number of random solutions", args[1])
	if err != nil {
		return err
	}

	cfg := solveFlags
	cfg.cityFile = args[0]
	cfg.restarts = restarts
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}

	return solve(cmd.OutOrStdout(), cfg)
}

func solve(out io.Writer, cfg solveConfig) error {
	if cfg.width <= 0 || cfg.height <= 0 {
		return fmt.Errorf("map size must be positive, got %dx%d", cfg.width, cfg.height)
	}

	cities, err := tour.LoadCities(cfg.cityFile)
	if err != nil {
		return err
	}

	opts := search.DefaultOptions(cfg.restarts)
	opts.Strategy = cfg.strategy
	opts.Patience = cfg.patience

	var trace []store.TraceEntry
	opts.OnRestart = func(info search.RestartInfo) {
		trace = append(trace, store.TraceEntry{
			Restart:   info.Restart,
			Distance:  info.Answer.Distance,
			Best:      info.Best.Distance,
			Timestamp: time.Now(),
		})
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	renderer := render.NewASCIIRenderer(out, cfg.width, cfg.height)
	if err := renderer.Render(cities, nil); err != nil {
		return err
	}

	start := time.Now()
	res, err := search.Solve(cities, search.NewRand(cfg.seed), opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	best := res.Best
	distance := best.Distance
	if !best.Found() {
		// Too few cities for any swap; report the tour that was generated.
		distance = tour.TotalDistance(cities, best.Route)
		slog.Warn("Local search recorded no tour, reporting the starting route",
			"cities", len(cities),
			"distance", distance,
		)
	}

	if err := renderer.Render(cities, best.Route); err != nil {
		return err
	}
	fmt.Fprintf(out, "total distance = %f\n", distance)
	fmt.Fprintln(out, tour.VisitOrder(best.Route))

	slog.Info("Solve complete",
		"elapsed", elapsed,
		"restarts", res.Restarts,
		"initial_distance", res.InitialDistance,
		"distance", distance,
		"seed", cfg.seed,
	)

	result := store.NewResult(store.RunConfig{
		CityFile:  cfg.cityFile,
		CityCount: len(cities),
		Restarts:  cfg.restarts,
		Strategy:  cfg.strategy,
		Seed:      cfg.seed,
	}, tour.Answer{Route: best.Route, Distance: distance}, res.InitialDistance, res.Restarts)
	result.Found = best.Found()
	result.Converged = res.Converged
	result.Elapsed = elapsed

	return writeArtifacts(cfg, cities, result, trace)
}

// writeArtifacts saves the optional outputs requested by flags
func writeArtifacts(cfg solveConfig, cities []tour.City, result *store.Result, trace []store.TraceEntry) error {
	canvas := render.Draw(cfg.width, cfg.height, cities, result.Route)

	if cfg.pngPath != "" {
		if err := render.SavePNG(cfg.pngPath, canvas, cfg.pngScale); err != nil {
			return err
		}
		slog.Info("Wrote map image", "path", cfg.pngPath)
	}

	if cfg.tracePath != "" {
		if err := writeTrace(cfg.tracePath, trace); err != nil {
			return err
		}
	}

	if cfg.saveDir != "" {
		fs, err := store.NewFSStore(cfg.saveDir)
		if err != nil {
			return fmt.Errorf("failed to create result store: %w", err)
		}
		if err := fs.SaveResult(result); err != nil {
			return err
		}
		if err := writeTrace(fs.TracePath(result.ID), trace); err != nil {
			return err
		}
		slog.Info("Saved result", "id", result.ID, "dir", cfg.saveDir)
	}

	if cfg.xlsxPath != "" {
		if err := store.WriteReport(cfg.xlsxPath, result, cities, trace); err != nil {
			return err
		}
		slog.Info("Wrote report", "path", cfg.xlsxPath)
	}

	if cfg.view {
		return viewCanvas(canvas)
	}
	return nil
}

func writeTrace(path string, trace []store.TraceEntry) error {
	tw, err := store.NewTraceWriter(path)
	if err != nil {
		return err
	}
	for _, e := range trace {
		if err := tw.Write(e); err != nil {
			tw.Close()
			return err
		}
	}
	return tw.Close()
}

func viewCanvas(canvas *render.Canvas) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	render.View(screen, canvas)
	return nil
}
