package game

import "math"

// GrowthConditions are the four checks a planted plot is graded on each day.
type GrowthConditions struct {
	TempOK     bool `json:"temp_ok"`
	HumidityOK bool `json:"humidity_ok"`
	WaterOK    bool `json:"water_ok"`
	SoilOK     bool `json:"soil_ok"`
}

func (c GrowthConditions) Optimal() bool {
	return c.TempOK && c.HumidityOK && c.WaterOK && c.SoilOK
}

func EvaluateConditions(plot Plot, crop CropInfo, weather Weather, g GrowthTuning) GrowthConditions {
	return GrowthConditions{
		TempOK:     crop.OptimalTemp.Contains(float64(weather.Temperature)),
		HumidityOK: crop.OptimalHumidity.Contains(float64(weather.Humidity)),
		WaterOK:    plot.WaterLevel >= float64(crop.WaterNeeds)*g.WaterOKFactor,
		SoilOK:     crop.PrefersSoil(plot.Soil),
	}
}

// GrowthRate compounds the condition penalties, the fertilizer boost and the
// pest penalty, in that order.
func GrowthRate(cond GrowthConditions, plot Plot, g GrowthTuning) float64 {
	rate := 1.0
	if !cond.TempOK {
		rate *= g.TempPenalty
	}
	if !cond.HumidityOK {
		rate *= g.HumidityPenalty
	}
	if !cond.WaterOK {
		rate *= g.WaterPenalty
	}
	if !cond.SoilOK {
		rate *= g.SoilPenalty
	}
	if plot.Fertilized {
		rate *= g.FertilizerBoost
	}
	if plot.PestDamage > g.PestPenaltyThreshold {
		rate *= g.PestPenalty
	}
	return rate
}

func addWater(p *Plot, amount float64) {
	p.WaterLevel = math.Min(100, p.WaterLevel+amount)
}

func applyTreatment(p *Plot, treatment TreatmentType, t TreatmentTuning) {
	switch treatment {
	case TreatmentPesticide:
		p.HasProtection = true
		p.PestDamage = math.Max(0, p.PestDamage-t.PesticideReduction)
	case TreatmentFertilizer:
		p.Fertilized = true
		p.Health = math.Min(100, p.Health+t.FertilizerHealthBoost)
	}
}

func applyPestDamage(p *Plot, t PestTuning) {
	p.PestDamage = math.Min(100, p.PestDamage+t.Damage)
	p.Health = math.Max(0, p.Health-t.HealthPenalty)
}

// decayTreatments draws protection first, then fertilizer.
func decayTreatments(p *Plot, rng Rand, t TreatmentTuning) {
	if p.HasProtection && chance(rng, t.ProtectionDecayChance) {
		p.HasProtection = false
	}
	if p.Fertilized && chance(rng, t.FertilizerDecayChance) {
		p.Fertilized = false
	}
}

type growthOutcome struct {
	conditions  GrowthConditions
	rate        float64
	becameReady bool
	waterStress bool
}

// grow runs the condition check, growth, health and water steps for one
// planted plot. Rain and irrigation must already be applied.
func grow(p *Plot, crop CropInfo, weather Weather, g GrowthTuning) growthOutcome {
	cond := EvaluateConditions(*p, crop, weather, g)
	rate := GrowthRate(cond, *p, g)

	wasReady := p.HarvestReady
	days := float64(crop.GrowthDays)
	p.GrowthStage = math.Min(days, p.GrowthStage+rate)
	p.HarvestReady = p.GrowthStage >= days

	switch {
	case !cond.WaterOK:
		p.Health = math.Max(0, p.Health-g.DroughtHealthLoss)
	case p.PestDamage == 0:
		p.Health = math.Min(100, p.Health+g.RecoveryHealthGain)
	}

	p.WaterLevel = math.Max(0, p.WaterLevel-float64(crop.WaterNeeds)*g.WaterUseFactor)

	return growthOutcome{
		conditions:  cond,
		rate:        rate,
		becameReady: p.HarvestReady && !wasReady,
		waterStress: !cond.WaterOK,
	}
}
