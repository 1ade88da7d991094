package game

import "math"

// EcoScore sub-scores read "higher is better": WaterUsage and CarbonFootprint
// fall as water use grows.
type EcoScore struct {
	SoilHealth      float64 `json:"soil_health"`
	WaterUsage      float64 `json:"water_usage"`
	CropYield       float64 `json:"crop_yield"`
	CarbonFootprint float64 `json:"carbon_footprint"`
	Overall         float64 `json:"overall"`
}

// InitialEcoScore is shown before the first tick or harvest.
var InitialEcoScore = EcoScore{
	SoilHealth:      75,
	WaterUsage:      100,
	CropYield:       0,
	CarbonFootprint: 100,
	Overall:         68.75,
}

func CalculateEcoScore(state GameState) EcoScore {
	var healthSum float64
	plots := 0
	for _, row := range state.Plots {
		for _, plot := range row {
			healthSum += plot.Health
			plots++
		}
	}

	soilHealth := 0.0
	if plots > 0 {
		soilHealth = healthSum / float64(plots)
	}

	day := state.CurrentDay
	if day < 1 {
		day = 1
	}

	waterUsage := math.Max(0, 100-(state.TotalWaterUsed/(float64(day)*50)))
	cropYield := math.Min(100, float64(state.TotalCropsHarvested)*20)
	carbon := math.Max(0, 100-(state.TotalWaterUsed*0.01))

	return EcoScore{
		SoilHealth:      soilHealth,
		WaterUsage:      waterUsage,
		CropYield:       cropYield,
		CarbonFootprint: carbon,
		Overall:         (soilHealth + waterUsage + cropYield + carbon) / 4,
	}
}
