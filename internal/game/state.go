package game

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type PlotID struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (id PlotID) String() string {
	return fmt.Sprintf("%d-%d", id.X, id.Y)
}

type Plot struct {
	ID            PlotID   `json:"id"`
	Crop          CropType `json:"crop,omitempty"`
	PlantedDay    int      `json:"planted_day,omitempty"`
	GrowthStage   float64  `json:"growth_stage"`
	WaterLevel    float64  `json:"water_level"`
	Soil          SoilType `json:"soil"`
	Health        float64  `json:"health"`
	HarvestReady  bool     `json:"harvest_ready"`
	HasProtection bool     `json:"has_protection"`
	Fertilized    bool     `json:"fertilized"`
	PestDamage    float64  `json:"pest_damage"`
}

func (p Plot) HasCrop() bool {
	return p.Crop != ""
}

type ScheduledIrrigation struct {
	Day     int            `json:"day"`
	Type    IrrigationType `json:"type"`
	PlotIDs []PlotID       `json:"plot_ids"`
}

type ScheduledTreatment struct {
	Day     int           `json:"day"`
	Type    TreatmentType `json:"type"`
	PlotIDs []PlotID      `json:"plot_ids"`
}

// GameState is an immutable snapshot. Every Simulator operation returns a
// new value that shares no slices with its input.
type GameState struct {
	ID                   uuid.UUID             `json:"id"`
	Seed                 int64                 `json:"seed"`
	GridSize             int                   `json:"grid_size"`
	Plots                [][]Plot              `json:"plots"`
	CurrentDay           int                   `json:"current_day"`
	Weather              Weather               `json:"weather"`
	ScheduledIrrigations []ScheduledIrrigation `json:"scheduled_irrigations,omitempty"`
	ScheduledTreatments  []ScheduledTreatment  `json:"scheduled_treatments,omitempty"`
	EcoScore             EcoScore              `json:"eco_score"`
	TotalWaterUsed       float64               `json:"total_water_used"`
	TotalCropsHarvested  int                   `json:"total_crops_harvested"`
	Tips                 []string              `json:"tips"`
}

// gameNamespace scopes the name-based game ids.
var gameNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("eco-farm"))

func gameID(seed int64) uuid.UUID {
	return uuid.NewSHA1(gameNamespace, []byte(strconv.FormatInt(seed, 10)))
}

// NewGame builds a fresh farm. A zero seed is replaced by the clock.
func (s *Simulator) NewGame(config GameConfig) (GameState, error) {
	resolved := config
	if err := resolved.Validate(s.tuning.MaxGridSize); err != nil {
		return GameState{}, err
	}
	if resolved.Seed == 0 {
		resolved.Seed = time.Now().UnixNano()
	}

	rng := seededRNG(resolved.Seed)
	soils := layoutSoils(s.tuning, resolved.GridSize, resolved.Seed, rng)

	plots := make([][]Plot, resolved.GridSize)
	for y := range plots {
		row := make([]Plot, resolved.GridSize)
		for x := range row {
			row[x] = Plot{
				ID:         PlotID{X: x, Y: y},
				WaterLevel: s.tuning.InitialWaterLevel,
				Soil:       soils[y][x],
				Health:     s.tuning.InitialHealth,
			}
		}
		plots[y] = row
	}

	state := GameState{
		ID:         gameID(resolved.Seed),
		Seed:       resolved.Seed,
		GridSize:   resolved.GridSize,
		Plots:      plots,
		CurrentDay: 1,
		Weather:    GenerateWeather(1, rng),
		EcoScore:   InitialEcoScore,
		Tips:       []string{dailyTip(rng)},
	}

	s.logger.Info("game created",
		"game_id", state.ID,
		"seed", state.Seed,
		"grid_size", state.GridSize,
		"soil_layout", s.tuning.SoilLayout,
	)
	return state, nil
}

// Clone deep-copies the snapshot.
func (s GameState) Clone() GameState {
	out := s
	if s.Plots != nil {
		out.Plots = make([][]Plot, len(s.Plots))
		for y, row := range s.Plots {
			out.Plots[y] = slices.Clone(row)
		}
	}
	if s.ScheduledIrrigations != nil {
		out.ScheduledIrrigations = make([]ScheduledIrrigation, len(s.ScheduledIrrigations))
		for i, entry := range s.ScheduledIrrigations {
			entry.PlotIDs = slices.Clone(entry.PlotIDs)
			out.ScheduledIrrigations[i] = entry
		}
	}
	if s.ScheduledTreatments != nil {
		out.ScheduledTreatments = make([]ScheduledTreatment, len(s.ScheduledTreatments))
		for i, entry := range s.ScheduledTreatments {
			entry.PlotIDs = slices.Clone(entry.PlotIDs)
			out.ScheduledTreatments[i] = entry
		}
	}
	out.Tips = slices.Clone(s.Tips)
	return out
}

func (s GameState) InBounds(x, y int) bool {
	return y >= 0 && y < len(s.Plots) && x >= 0 && x < len(s.Plots[y])
}

func (s GameState) checkBounds(x, y int) error {
	if !s.InBounds(x, y) {
		return &CoordinateError{X: x, Y: y, GridSize: s.GridSize}
	}
	return nil
}

func (s GameState) Plot(x, y int) (Plot, error) {
	if err := s.checkBounds(x, y); err != nil {
		return Plot{}, err
	}
	return s.Plots[y][x], nil
}

func (s GameState) PlotIDs() []PlotID {
	ids := make([]PlotID, 0, s.PlotCount())
	for _, row := range s.Plots {
		for _, plot := range row {
			ids = append(ids, plot.ID)
		}
	}
	return ids
}

func (s GameState) PlotCount() int {
	n := 0
	for _, row := range s.Plots {
		n += len(row)
	}
	return n
}

func (s GameState) AverageHealth() float64 {
	n := s.PlotCount()
	if n == 0 {
		return 0
	}
	var sum float64
	for _, row := range s.Plots {
		for _, plot := range row {
			sum += plot.Health
		}
	}
	return sum / float64(n)
}

// UpcomingIrrigations returns pending irrigations after the current day,
// earliest first. limit <= 0 returns all of them.
func (s GameState) UpcomingIrrigations(limit int) []ScheduledIrrigation {
	var out []ScheduledIrrigation
	for _, entry := range s.ScheduledIrrigations {
		if entry.Day > s.CurrentDay {
			entry.PlotIDs = slices.Clone(entry.PlotIDs)
			out = append(out, entry)
		}
	}
	slices.SortStableFunc(out, func(a, b ScheduledIrrigation) int { return a.Day - b.Day })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s GameState) UpcomingTreatments(limit int) []ScheduledTreatment {
	var out []ScheduledTreatment
	for _, entry := range s.ScheduledTreatments {
		if entry.Day > s.CurrentDay {
			entry.PlotIDs = slices.Clone(entry.PlotIDs)
			out = append(out, entry)
		}
	}
	slices.SortStableFunc(out, func(a, b ScheduledTreatment) int { return a.Day - b.Day })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s GameState) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("game_id", s.ID.String()),
		slog.Int("day", s.CurrentDay),
		slog.Float64("eco_overall", s.EcoScore.Overall),
	)
}
