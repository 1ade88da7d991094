package game

import (
	"fmt"
	"math"
)

// Plant puts a crop on an empty plot. On error the input snapshot is
// returned unchanged.
func (s *Simulator) Plant(state GameState, x, y int, crop CropType) (GameState, error) {
	if err := state.checkBounds(x, y); err != nil {
		return s.reject(state, "plant", err)
	}
	if !crop.Valid() {
		return s.reject(state, "plant", fmt.Errorf("%w: %q", ErrUnknownCrop, crop))
	}
	if state.Plots[y][x].HasCrop() {
		return s.reject(state, "plant", fmt.Errorf("plot %s: %w", state.Plots[y][x].ID, ErrPlotOccupied))
	}

	next := state.Clone()
	plot := &next.Plots[y][x]
	plot.Crop = crop
	plot.PlantedDay = next.CurrentDay
	plot.GrowthStage = 0
	plot.HarvestReady = false
	next.Tips = appendTip(next.Tips, PlantTip(crop))

	s.logger.Debug("crop planted", "game_id", next.ID, "plot", plot.ID.String(), "crop", crop, "day", next.CurrentDay)
	return next, nil
}

// Harvest collects a ready crop, depletes the soil and rescores the farm.
func (s *Simulator) Harvest(state GameState, x, y int) (GameState, error) {
	if err := state.checkBounds(x, y); err != nil {
		return s.reject(state, "harvest", err)
	}
	current := state.Plots[y][x]
	crop, ok := Crop(current.Crop)
	if !current.HarvestReady || !ok {
		return s.reject(state, "harvest", fmt.Errorf("plot %s: %w", current.ID, ErrNotHarvestReady))
	}

	next := state.Clone()
	plot := &next.Plots[y][x]
	plot.Crop = ""
	plot.PlantedDay = 0
	plot.GrowthStage = 0
	plot.HarvestReady = false
	plot.Health = math.Max(s.tuning.Harvest.HealthFloor, plot.Health-s.tuning.Harvest.SoilDepletion)

	next.TotalCropsHarvested += crop.YieldPerPlot
	next.EcoScore = CalculateEcoScore(next)
	next.Tips = appendTip(next.Tips, TipHarvestReady)

	s.logger.Info("crop harvested",
		"game_id", next.ID,
		"plot", plot.ID.String(),
		"crop", crop.Type,
		"yield", crop.YieldPerPlot,
		"total_harvested", next.TotalCropsHarvested,
	)
	return next, nil
}

// ScheduleIrrigation queues an irrigation for a future day. The entry
// records every plot id but is applied grid-wide.
func (s *Simulator) ScheduleIrrigation(state GameState, day int, kind IrrigationType) (GameState, error) {
	if !kind.Valid() {
		return s.reject(state, "schedule irrigation", fmt.Errorf("%w: %q", ErrUnknownIrrigation, kind))
	}
	if day <= state.CurrentDay {
		return s.reject(state, "schedule irrigation", fmt.Errorf("day %d (today is %d): %w", day, state.CurrentDay, ErrScheduleNotInFuture))
	}

	next := state.Clone()
	next.ScheduledIrrigations = append(next.ScheduledIrrigations, ScheduledIrrigation{
		Day:     day,
		Type:    kind,
		PlotIDs: next.PlotIDs(),
	})
	next.Tips = appendTip(next.Tips, IrrigationTip(kind))

	s.logger.Debug("irrigation scheduled", "game_id", next.ID, "type", kind, "day", day)
	return next, nil
}

func (s *Simulator) ScheduleTreatment(state GameState, day int, kind TreatmentType) (GameState, error) {
	if !kind.Valid() {
		return s.reject(state, "schedule treatment", fmt.Errorf("%w: %q", ErrUnknownTreatment, kind))
	}
	if day <= state.CurrentDay {
		return s.reject(state, "schedule treatment", fmt.Errorf("day %d (today is %d): %w", day, state.CurrentDay, ErrScheduleNotInFuture))
	}

	next := state.Clone()
	next.ScheduledTreatments = append(next.ScheduledTreatments, ScheduledTreatment{
		Day:     day,
		Type:    kind,
		PlotIDs: next.PlotIDs(),
	})
	next.Tips = appendTip(next.Tips, TreatmentTip(kind))

	s.logger.Debug("treatment scheduled", "game_id", next.ID, "type", kind, "day", day)
	return next, nil
}

// ChangeSoilType overwrites a plot's soil. Growth state is left alone.
func (s *Simulator) ChangeSoilType(state GameState, x, y int, soil SoilType) (GameState, error) {
	if err := state.checkBounds(x, y); err != nil {
		return s.reject(state, "change soil", err)
	}
	if !soil.Valid() {
		return s.reject(state, "change soil", fmt.Errorf("%w: %q", ErrUnknownSoil, soil))
	}

	next := state.Clone()
	next.Plots[y][x].Soil = soil

	s.logger.Debug("soil changed", "game_id", next.ID, "plot", next.Plots[y][x].ID.String(), "soil", soil)
	return next, nil
}

func (s *Simulator) reject(state GameState, action string, err error) (GameState, error) {
	s.logger.Debug("action rejected", "game_id", state.ID, "action", action, "error", err)
	return state, err
}
