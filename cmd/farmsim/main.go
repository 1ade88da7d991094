package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"

	"github.com/appengine-ltd/eco-farm/internal/farmsim"
	"github.com/appengine-ltd/eco-farm/internal/game"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		quiet       bool
		asJSON      bool
		gridSize    int
		days        int
		seed        int64
		cropName    string
		irrigation  string
		tuningPath  string
		comparePath string
		logLevel    string
	)

	env := loadEnv()

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&quiet, "quiet", false, "only print the final result")
	flag.BoolVar(&asJSON, "json", false, "print the final game state as JSON")
	flag.IntVar(&gridSize, "grid", env.Grid, "grid size (plots per side)")
	flag.IntVar(&days, "days", env.Days, "days to simulate")
	flag.Int64Var(&seed, "seed", env.Seed, "game seed (0 picks one from the clock)")
	flag.StringVar(&cropName, "crop", "", "plant this crop everywhere (default: best crop per soil)")
	flag.StringVar(&irrigation, "irrigation", "drip", "irrigation method used when plots run dry")
	flag.StringVar(&tuningPath, "tuning", env.Tuning, "tuning YAML file")
	flag.StringVar(&comparePath, "compare", "", "second tuning YAML to run against the same seed")
	flag.StringVar(&logLevel, "log-level", env.LogLevel, "debug, info, warn or error")
	flag.Parse()

	if showVersion {
		fmt.Printf("farmsim %s (%s) %s\n", version, commit, date)
		return
	}

	var level slog.LevelVar
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		die(fmt.Errorf("log-level: %w", err))
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &level}))

	opts := farmsim.Options{GridSize: gridSize, Seed: seed, Days: days}
	if cropName != "" {
		crop, err := game.ParseCropType(cropName)
		if err != nil {
			die(err)
		}
		opts.Crop = crop
	}
	kind, err := game.ParseIrrigationType(irrigation)
	if err != nil {
		die(err)
	}
	opts.Irrigation = kind

	if !quiet && !asJSON {
		opts.OnDay = func(state game.GameState, report game.DayReport) {
			line := state.Summary()
			if report.PestAttack {
				line += fmt.Sprintf(" · pests hit %d", len(report.PlotsDamaged))
			}
			fmt.Println(line)
		}
	}

	sim, err := newSimulator(tuningPath, logger)
	if err != nil {
		die(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if comparePath == "" {
		res, err := farmsim.Run(ctx, sim, opts)
		if err != nil {
			die(err)
		}
		report(res, asJSON)
		return
	}

	other, err := newSimulator(comparePath, logger)
	if err != nil {
		die(err)
	}
	opts.OnDay = nil
	a, b, err := farmsim.Compare(ctx, sim, other, opts)
	if err != nil {
		die(err)
	}
	fmt.Printf("baseline: %s\n", outcome(a))
	fmt.Printf("compare:  %s\n", outcome(b))
}

func newSimulator(tuningPath string, logger *slog.Logger) (*game.Simulator, error) {
	opts := []game.Option{game.WithLogger(logger)}
	if tuningPath != "" {
		t, err := game.LoadTuning(tuningPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, game.WithTuning(t))
	}
	return game.NewSimulator(opts...)
}

func report(res farmsim.Result, asJSON bool) {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Final); err != nil {
			die(err)
		}
		return
	}
	fmt.Println(outcome(res))
}

func outcome(res farmsim.Result) string {
	return fmt.Sprintf("seed=%d days=%d planted=%s harvests=%s irrigations=%d pesticides=%d pest_attacks=%d · %s",
		res.Final.Seed,
		res.Days,
		humanize.Comma(int64(res.Planted)),
		humanize.Comma(int64(res.Harvests)),
		res.Irrigations,
		res.Pesticides,
		res.PestAttacks,
		res.Final.Summary(),
	)
}

func die(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
