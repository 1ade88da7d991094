package game

import "strings"

type TipTrigger string

const (
	TipLowSoilHealth     TipTrigger = "low_soil_health"
	TipOptimalConditions TipTrigger = "optimal_conditions"
	TipWaterStress       TipTrigger = "water_stress"
	TipHarvestReady      TipTrigger = "harvest_ready"

	dailyTipPrefix = "daily_tip"
)

type Tip struct {
	Trigger TipTrigger `json:"trigger"`
	Message string     `json:"message"`
}

func PlantTip(c CropType) TipTrigger             { return TipTrigger("plant_" + string(c)) }
func IrrigationTip(i IrrigationType) TipTrigger { return TipTrigger("irrigation_" + string(i)) }
func TreatmentTip(t TreatmentType) TipTrigger   { return TipTrigger("treatment_" + string(t)) }

var tipLibrary = []Tip{
	{Trigger: "plant_corn", Message: "🌽 Corn requires moderate water. Consider drip irrigation for efficiency!"},
	{Trigger: "plant_wheat", Message: "🌾 Wheat is drought-tolerant! It uses less water than most crops."},
	{Trigger: "plant_rice", Message: "🌾 Rice needs lots of water. Try rainwater harvesting to reduce environmental impact!"},
	{Trigger: "plant_coconut", Message: "🥥 Coconuts are carbon-efficient! They absorb CO2 while growing."},
	{Trigger: "irrigation_drip", Message: "💧 Drip irrigation saves 30-50% water compared to flood irrigation!"},
	{Trigger: "irrigation_rainwater", Message: "🌧️ Rainwater harvesting is the most eco-friendly irrigation method!"},
	{Trigger: "irrigation_flood", Message: "💦 Flood irrigation uses more water but can enrich soil nutrients."},
	{Trigger: "treatment_pesticide", Message: "🐛 Pesticide shields crops for a few days. Reapply after heavy pest pressure."},
	{Trigger: "treatment_fertilizer", Message: "🍃 Fertilizer speeds growth and restores soil health while it lasts."},
	{Trigger: TipLowSoilHealth, Message: "🌱 Rotate crops to improve soil health naturally!"},
	{Trigger: TipOptimalConditions, Message: "✨ Perfect conditions! Your crops will grow faster and healthier."},
	{Trigger: TipWaterStress, Message: "⚠️ Crops are thirsty! Schedule irrigation to prevent yield loss."},
	{Trigger: TipHarvestReady, Message: "🎉 Time to harvest! Well-maintained crops yield more produce."},
	{Trigger: "daily_tip_1", Message: "🌍 Sustainable farming preserves soil for future generations!"},
	{Trigger: "daily_tip_2", Message: "📊 Monitor your eco-score to track environmental impact."},
	{Trigger: "daily_tip_3", Message: "🔄 Crop rotation prevents soil depletion and pest buildup."},
	{Trigger: "daily_tip_4", Message: "☀️ Plant according to weather forecasts for optimal growth."},
}

func TipLibrary() []Tip {
	return append([]Tip(nil), tipLibrary...)
}

func TipFor(trigger TipTrigger) (string, bool) {
	for _, tip := range tipLibrary {
		if tip.Trigger == trigger {
			return tip.Message, true
		}
	}
	return "", false
}

func DailyTips() []string {
	var out []string
	for _, tip := range tipLibrary {
		if strings.HasPrefix(string(tip.Trigger), dailyTipPrefix) {
			out = append(out, tip.Message)
		}
	}
	return out
}

func dailyTip(rng Rand) string {
	tips := DailyTips()
	return tips[rng.IntN(len(tips))]
}

// appendTip is a no-op for triggers with no message.
func appendTip(tips []string, trigger TipTrigger) []string {
	msg, ok := TipFor(trigger)
	if !ok {
		return tips
	}
	return append(tips, msg)
}
