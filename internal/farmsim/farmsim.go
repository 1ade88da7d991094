// Package farmsim plays whole seasons with a fixed farming policy. It is
// used to balance tuning values without a UI.
package farmsim

import (
	"context"
	"fmt"

	"github.com/appengine-ltd/eco-farm/internal/game"
)

type Options struct {
	GridSize int
	Seed     int64
	Days     int
	// Crop is planted everywhere. Empty picks the first crop that prefers
	// each plot's soil.
	Crop       game.CropType
	Irrigation game.IrrigationType
	// OnDay is called after every tick.
	OnDay func(game.GameState, game.DayReport)
}

type Result struct {
	Final       game.GameState
	Days        int
	Planted     int
	Harvests    int
	Irrigations int
	Pesticides  int
	PestAttacks int
}

func Run(ctx context.Context, sim *game.Simulator, opts Options) (Result, error) {
	if opts.Days <= 0 {
		opts.Days = 30
	}
	if opts.Irrigation == "" {
		opts.Irrigation = game.IrrigationDrip
	}
	if opts.Crop != "" && !opts.Crop.Valid() {
		return Result{}, fmt.Errorf("%w: %q", game.ErrUnknownCrop, opts.Crop)
	}
	if !opts.Irrigation.Valid() {
		return Result{}, fmt.Errorf("%w: %q", game.ErrUnknownIrrigation, opts.Irrigation)
	}

	state, err := sim.NewGame(game.GameConfig{GridSize: opts.GridSize, Seed: opts.Seed})
	if err != nil {
		return Result{}, err
	}

	res := Result{}
	var report game.DayReport
	for day := 0; day < opts.Days; day++ {
		if err := ctx.Err(); err != nil {
			res.Final = state
			return res, err
		}

		state, err = tend(sim, state, opts, report, &res)
		if err != nil {
			res.Final = state
			return res, err
		}

		state, report = sim.AdvanceDayReport(state)
		res.Days++
		if report.PestAttack {
			res.PestAttacks++
		}
		if opts.OnDay != nil {
			opts.OnDay(state, report)
		}
	}
	res.Final = state
	return res, nil
}

// tend runs one day of farm work: harvest, replant, then queue water and
// pesticide for tomorrow when the last report calls for it.
func tend(sim *game.Simulator, state game.GameState, opts Options, last game.DayReport, res *Result) (game.GameState, error) {
	var err error
	for y := range state.Plots {
		for x := range state.Plots[y] {
			if state.Plots[y][x].HarvestReady {
				if state, err = sim.Harvest(state, x, y); err != nil {
					return state, err
				}
				res.Harvests++
			}
			if !state.Plots[y][x].HasCrop() {
				if state, err = sim.Plant(state, x, y, cropFor(opts.Crop, state.Plots[y][x].Soil)); err != nil {
					return state, err
				}
				res.Planted++
			}
		}
	}

	tomorrow := state.CurrentDay + 1
	if needsWater(state, sim.Tuning().Growth) && !irrigationQueued(state, tomorrow) {
		if state, err = sim.ScheduleIrrigation(state, tomorrow, opts.Irrigation); err != nil {
			return state, err
		}
		res.Irrigations++
	}
	if len(last.PlotsDamaged) > 0 && !treatmentQueued(state, tomorrow, game.TreatmentPesticide) {
		if state, err = sim.ScheduleTreatment(state, tomorrow, game.TreatmentPesticide); err != nil {
			return state, err
		}
		res.Pesticides++
	}
	return state, nil
}

func cropFor(fixed game.CropType, soil game.SoilType) game.CropType {
	if fixed != "" {
		return fixed
	}
	if crops := game.CropsForSoil(soil); len(crops) > 0 {
		return crops[0]
	}
	return game.CropWheat
}

// needsWater reports whether any planted plot would drop below its crop's
// water threshold after one more day of use.
func needsWater(state game.GameState, g game.GrowthTuning) bool {
	for _, row := range state.Plots {
		for _, plot := range row {
			crop, ok := game.Crop(plot.Crop)
			if !ok {
				continue
			}
			need := float64(crop.WaterNeeds)
			if plot.WaterLevel-need*g.WaterUseFactor < need*g.WaterOKFactor {
				return true
			}
		}
	}
	return false
}

func irrigationQueued(state game.GameState, day int) bool {
	for _, entry := range state.ScheduledIrrigations {
		if entry.Day == day {
			return true
		}
	}
	return false
}

func treatmentQueued(state game.GameState, day int, kind game.TreatmentType) bool {
	for _, entry := range state.ScheduledTreatments {
		if entry.Day == day && entry.Type == kind {
			return true
		}
	}
	return false
}

// Compare plays the same seed under two simulators, for A/B tuning
// passes. A zero seed is resolved by the first run and reused.
func Compare(ctx context.Context, a, b *game.Simulator, opts Options) (Result, Result, error) {
	ra, err := Run(ctx, a, opts)
	if err != nil {
		return ra, Result{}, err
	}
	opts.Seed = ra.Final.Seed
	rb, err := Run(ctx, b, opts)
	return ra, rb, err
}
