package game

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewGameDefaults(t *testing.T) {
	sim := testSimulator(t)
	state := newTestGame(t, sim, 4, 42)

	if state.CurrentDay != 1 {
		t.Fatalf("expected day 1, got %d", state.CurrentDay)
	}
	if state.Weather.Day != 1 || state.Weather.Condition == "" {
		t.Fatalf("expected initialized day-1 weather, got %+v", state.Weather)
	}
	if len(state.Plots) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(state.Plots))
	}
	for y, row := range state.Plots {
		if len(row) != 4 {
			t.Fatalf("expected 4 plots in row %d, got %d", y, len(row))
		}
		for x, plot := range row {
			if plot.ID != (PlotID{X: x, Y: y}) {
				t.Fatalf("expected plot id %d-%d, got %s", x, y, plot.ID)
			}
			if plot.WaterLevel != 50 || plot.Health != 100 {
				t.Fatalf("expected default water/health on %s, got %.0f/%.0f", plot.ID, plot.WaterLevel, plot.Health)
			}
			if plot.HasCrop() || plot.HarvestReady || plot.GrowthStage != 0 {
				t.Fatalf("expected empty plot at %s, got %+v", plot.ID, plot)
			}
			if !plot.Soil.Valid() {
				t.Fatalf("expected valid soil at %s, got %q", plot.ID, plot.Soil)
			}
		}
	}
	if len(state.Tips) != 1 {
		t.Fatalf("expected one initial tip, got %d", len(state.Tips))
	}
	if state.EcoScore != InitialEcoScore {
		t.Fatalf("expected initial eco score, got %+v", state.EcoScore)
	}
	if state.ID != gameID(42) {
		t.Fatalf("expected seed-derived game id, got %s", state.ID)
	}
}

func TestNewGameIsDeterministicForSeed(t *testing.T) {
	sim := testSimulator(t)
	a := newTestGame(t, sim, 6, 7)
	b := newTestGame(t, sim, 6, 7)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical games for the same seed")
	}
	c := newTestGame(t, sim, 6, 8)
	if a.ID == c.ID {
		t.Fatalf("expected different ids for different seeds")
	}
}

func TestNewGameRandomSoilUsesSeveralTypes(t *testing.T) {
	sim := testSimulator(t)
	state := newTestGame(t, sim, 12, 99)
	seen := map[SoilType]bool{}
	for _, row := range state.Plots {
		for _, plot := range row {
			seen[plot.Soil] = true
		}
	}
	if len(seen) < 2 {
		t.Fatalf("expected a mix of soils on a 12x12 grid, got %v", seen)
	}
}

func TestNewGamePatchLayoutDeterministic(t *testing.T) {
	tuning := DefaultTuning()
	tuning.SoilLayout = SoilLayoutPatches
	sim := testSimulator(t, WithTuning(tuning))

	a := newTestGame(t, sim, 10, 5)
	b := newTestGame(t, sim, 10, 5)
	for y := range a.Plots {
		for x := range a.Plots[y] {
			if a.Plots[y][x].Soil != b.Plots[y][x].Soil {
				t.Fatalf("expected same patch soil at %d-%d", x, y)
			}
		}
	}
}

func TestSoilBucketClamps(t *testing.T) {
	tests := []struct {
		v    float64
		want int
	}{
		{v: -0.1, want: 0},
		{v: 0, want: 0},
		{v: 0.26, want: 1},
		{v: 0.99, want: 3},
		{v: 1, want: 3},
	}
	for _, tc := range tests {
		if got := soilBucket(tc.v, 4); got != tc.want {
			t.Fatalf("soilBucket(%v)=%d want=%d", tc.v, got, tc.want)
		}
	}
}

func TestNewGameRejectsGridSize(t *testing.T) {
	sim := testSimulator(t)
	for _, size := range []int{0, -1, 13} {
		if _, err := sim.NewGame(GameConfig{GridSize: size, Seed: 1}); !errors.Is(err, ErrInvalidGridSize) {
			t.Fatalf("expected invalid grid size error for %d, got %v", size, err)
		}
	}
}

func TestNewGameZeroSeedIsReplaced(t *testing.T) {
	sim := testSimulator(t)
	state := newTestGame(t, sim, 2, 0)
	if state.Seed == 0 {
		t.Fatalf("expected zero seed to be replaced")
	}
}

func TestCloneSharesNothing(t *testing.T) {
	sim := testSimulator(t)
	state := newTestGame(t, sim, 3, 11)
	state, err := sim.ScheduleIrrigation(state, 2, IrrigationDrip)
	if err != nil {
		t.Fatalf("schedule irrigation: %v", err)
	}
	state, err = sim.ScheduleTreatment(state, 2, TreatmentPesticide)
	if err != nil {
		t.Fatalf("schedule treatment: %v", err)
	}

	clone := state.Clone()
	clone.Plots[1][1].Health = -1
	clone.ScheduledIrrigations[0].PlotIDs[0] = PlotID{X: 99, Y: 99}
	clone.ScheduledTreatments[0].Day = 99
	clone.Tips[0] = "changed"

	if state.Plots[1][1].Health == -1 {
		t.Fatalf("expected plot grid to be copied")
	}
	if state.ScheduledIrrigations[0].PlotIDs[0] == (PlotID{X: 99, Y: 99}) {
		t.Fatalf("expected schedule plot ids to be copied")
	}
	if state.ScheduledTreatments[0].Day == 99 {
		t.Fatalf("expected treatments to be copied")
	}
	if state.Tips[0] == "changed" {
		t.Fatalf("expected tips to be copied")
	}
}

func TestPlotLookupBounds(t *testing.T) {
	sim := testSimulator(t)
	state := newTestGame(t, sim, 3, 1)

	if _, err := state.Plot(2, 2); err != nil {
		t.Fatalf("expected in-grid lookup to succeed, got %v", err)
	}
	_, err := state.Plot(3, 0)
	if !errors.Is(err, ErrCoordinateOutOfRange) {
		t.Fatalf("expected coordinate error, got %v", err)
	}
	var coordErr *CoordinateError
	if !errors.As(err, &coordErr) || coordErr.X != 3 || coordErr.GridSize != 3 {
		t.Fatalf("expected CoordinateError with position, got %#v", err)
	}
}

func TestUpcomingSchedulesSortedAndLimited(t *testing.T) {
	sim := testSimulator(t)
	state := newTestGame(t, sim, 2, 1)
	for _, day := range []int{5, 2, 4, 3} {
		var err error
		state, err = sim.ScheduleIrrigation(state, day, IrrigationFlood)
		if err != nil {
			t.Fatalf("schedule day %d: %v", day, err)
		}
		state, err = sim.ScheduleTreatment(state, day, TreatmentFertilizer)
		if err != nil {
			t.Fatalf("schedule day %d: %v", day, err)
		}
	}

	irrigations := state.UpcomingIrrigations(3)
	if len(irrigations) != 3 || irrigations[0].Day != 2 || irrigations[2].Day != 4 {
		t.Fatalf("expected days 2,3,4, got %+v", irrigations)
	}
	treatments := state.UpcomingTreatments(0)
	if len(treatments) != 4 || treatments[3].Day != 5 {
		t.Fatalf("expected all four treatments sorted, got %+v", treatments)
	}
}

func TestAverageHealthAndCounts(t *testing.T) {
	sim := testSimulator(t)
	state := newTestGame(t, sim, 2, 3)
	state.Plots[0][0].Health = 60
	if got := state.AverageHealth(); got != 90 {
		t.Fatalf("expected average health 90, got %v", got)
	}
	if state.PlotCount() != 4 || len(state.PlotIDs()) != 4 {
		t.Fatalf("expected 4 plots, got %d", state.PlotCount())
	}
	if (GameState{}).AverageHealth() != 0 {
		t.Fatalf("expected zero average health for an empty state")
	}
}
