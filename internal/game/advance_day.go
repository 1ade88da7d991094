package game

// DayReport describes what happened during one tick. The UI turns it into
// notices; the simulator logs it.
type DayReport struct {
	Day                int              `json:"day"`
	Weather            Weather          `json:"weather"`
	WaterUsed          float64          `json:"water_used"`
	IrrigationsApplied []IrrigationType `json:"irrigations_applied,omitempty"`
	TreatmentsApplied  []TreatmentType  `json:"treatments_applied,omitempty"`
	PestAttack         bool             `json:"pest_attack"`
	PlotsDamaged       []PlotID         `json:"plots_damaged,omitempty"`
	NewlyReady         []PlotID         `json:"newly_ready,omitempty"`
	WaterStressed      []PlotID         `json:"water_stressed,omitempty"`
	OptimalPlots       []PlotID         `json:"optimal_plots,omitempty"`
	LowSoilHealth      bool             `json:"low_soil_health"`
}

// AdvanceDay moves the farm to the next day. Randomness comes from the
// game seed and the new day number, so the same snapshot always advances
// to the same result.
func (s *Simulator) AdvanceDay(state GameState) GameState {
	next, _ := s.AdvanceDayReport(state)
	return next
}

func (s *Simulator) AdvanceDayReport(state GameState) (GameState, DayReport) {
	return s.advanceDay(state, dayRNG(state.Seed, state.CurrentDay+1))
}

// AdvanceDayWithRand is AdvanceDay with an explicit random source.
func (s *Simulator) AdvanceDayWithRand(state GameState, rng Rand) (GameState, DayReport) {
	return s.advanceDay(state, rng)
}

func (s *Simulator) advanceDay(prev GameState, rng Rand) (GameState, DayReport) {
	next := prev.Clone()
	next.CurrentDay = prev.CurrentDay + 1
	next.Weather = GenerateWeather(next.CurrentDay, rng)

	report := DayReport{
		Day:     next.CurrentDay,
		Weather: next.Weather,
	}

	dueIrrigations, futureIrrigations := partitionIrrigations(next.ScheduledIrrigations, next.CurrentDay)
	dueTreatments, futureTreatments := partitionTreatments(next.ScheduledTreatments, next.CurrentDay)

	plotCount := float64(next.PlotCount())
	for _, irrigation := range dueIrrigations {
		info, ok := Irrigation(irrigation.Type)
		if !ok {
			continue
		}
		report.WaterUsed += info.WaterAmount * plotCount
		report.IrrigationsApplied = append(report.IrrigationsApplied, irrigation.Type)
		forEachPlot(next.Plots, func(p *Plot) {
			addWater(p, info.WaterAmount)
		})
	}

	for _, treatment := range dueTreatments {
		if !treatment.Type.Valid() {
			continue
		}
		report.TreatmentsApplied = append(report.TreatmentsApplied, treatment.Type)
		forEachPlot(next.Plots, func(p *Plot) {
			if p.HasCrop() {
				applyTreatment(p, treatment.Type, s.tuning.Treatments)
			}
		})
	}

	if chance(rng, s.tuning.Pests.AttackChance) {
		report.PestAttack = true
		forEachPlot(next.Plots, func(p *Plot) {
			if !p.HasCrop() || p.HasProtection {
				return
			}
			if chance(rng, s.tuning.Pests.PlotChance) {
				applyPestDamage(p, s.tuning.Pests)
				report.PlotsDamaged = append(report.PlotsDamaged, p.ID)
			}
		})
	}

	forEachPlot(next.Plots, func(p *Plot) {
		if p.HasCrop() {
			decayTreatments(p, rng, s.tuning.Treatments)
		}
	})

	rain := float64(next.Weather.Rainfall)
	forEachPlot(next.Plots, func(p *Plot) {
		addWater(p, rain)
	})

	forEachPlot(next.Plots, func(p *Plot) {
		if !p.HasCrop() {
			return
		}
		crop, ok := Crop(p.Crop)
		if !ok {
			return
		}
		outcome := grow(p, crop, next.Weather, s.tuning.Growth)
		if outcome.becameReady {
			report.NewlyReady = append(report.NewlyReady, p.ID)
		}
		if outcome.waterStress {
			report.WaterStressed = append(report.WaterStressed, p.ID)
		}
		if outcome.conditions.Optimal() {
			report.OptimalPlots = append(report.OptimalPlots, p.ID)
		}
	})

	next.TotalWaterUsed = prev.TotalWaterUsed + report.WaterUsed
	next.Tips = append(next.Tips, dailyTip(rng))
	next.EcoScore = CalculateEcoScore(next)
	next.ScheduledIrrigations = futureIrrigations
	next.ScheduledTreatments = futureTreatments

	if next.AverageHealth() < s.tuning.LowHealthThreshold {
		report.LowSoilHealth = true
		next.Tips = appendTip(next.Tips, TipLowSoilHealth)
	}

	s.logger.Debug("day advanced",
		"game_id", next.ID,
		"day", next.CurrentDay,
		"condition", next.Weather.Condition,
		"temperature", next.Weather.Temperature,
		"rainfall", next.Weather.Rainfall,
		"water_used", report.WaterUsed,
		"pest_attack", report.PestAttack,
		"plots_damaged", len(report.PlotsDamaged),
		"newly_ready", len(report.NewlyReady),
		"eco_overall", next.EcoScore.Overall,
	)
	return next, report
}

// partitionIrrigations returns the entries due today and those still in
// the future. Entries for earlier days are dropped without firing.
func partitionIrrigations(entries []ScheduledIrrigation, today int) (due, future []ScheduledIrrigation) {
	for _, entry := range entries {
		switch {
		case entry.Day == today:
			due = append(due, entry)
		case entry.Day > today:
			future = append(future, entry)
		}
	}
	return due, future
}

func partitionTreatments(entries []ScheduledTreatment, today int) (due, future []ScheduledTreatment) {
	for _, entry := range entries {
		switch {
		case entry.Day == today:
			due = append(due, entry)
		case entry.Day > today:
			future = append(future, entry)
		}
	}
	return due, future
}

// forEachPlot visits plots row-major. Only call it on a cloned grid.
func forEachPlot(plots [][]Plot, fn func(p *Plot)) {
	for y := range plots {
		for x := range plots[y] {
			fn(&plots[y][x])
		}
	}
}
