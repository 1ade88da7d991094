package game

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Summary is the one-line status shown above the grid and in logs.
func (s GameState) Summary() string {
	return fmt.Sprintf("%s day · %s %d°C · %s water used · %s harvested · eco %.1f",
		humanize.Ordinal(s.CurrentDay),
		s.Weather.Condition,
		s.Weather.Temperature,
		humanize.Commaf(s.TotalWaterUsed),
		humanize.Comma(int64(s.TotalCropsHarvested)),
		s.EcoScore.Overall,
	)
}

// Describe summarises one plot for a tooltip.
func (p Plot) Describe() string {
	if !p.HasCrop() {
		return fmt.Sprintf("plot %s · %s · empty · water %.0f%% · health %.0f%%", p.ID, p.Soil, p.WaterLevel, p.Health)
	}
	status := "growing"
	if p.HarvestReady {
		status = "ready"
	}
	return fmt.Sprintf("plot %s · %s · %s %s (stage %.1f) · water %.0f%% · health %.0f%%",
		p.ID, p.Soil, p.Crop, status, p.GrowthStage, p.WaterLevel, p.Health)
}
