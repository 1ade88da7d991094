package game

import "slices"

type CropType string

const (
	CropCorn    CropType = "corn"
	CropWheat   CropType = "wheat"
	CropRice    CropType = "rice"
	CropCoconut CropType = "coconut"
)

type SoilType string

const (
	SoilClay  SoilType = "clay"
	SoilLoam  SoilType = "loam"
	SoilSandy SoilType = "sandy"
	SoilSilt  SoilType = "silt"
)

type IrrigationType string

const (
	IrrigationDrip      IrrigationType = "drip"
	IrrigationRainwater IrrigationType = "rainwater"
	IrrigationFlood     IrrigationType = "flood"
)

type TreatmentType string

const (
	TreatmentPesticide  TreatmentType = "pesticide"
	TreatmentFertilizer TreatmentType = "fertilizer"
)

// Range is an inclusive band of acceptable values.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

type CropInfo struct {
	Type            CropType   `json:"type"`
	Name            string     `json:"name"`
	GrowthDays      int        `json:"growth_days"`
	WaterNeeds      int        `json:"water_needs"`
	OptimalTemp     Range      `json:"optimal_temp"`
	OptimalHumidity Range      `json:"optimal_humidity"`
	PreferredSoil   []SoilType `json:"preferred_soil"`
	YieldPerPlot    int        `json:"yield_per_plot"`
	CarbonFootprint float64    `json:"carbon_footprint"`
}

func (c CropInfo) PrefersSoil(soil SoilType) bool {
	return slices.Contains(c.PreferredSoil, soil)
}

type SoilInfo struct {
	Type        SoilType `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

type IrrigationInfo struct {
	Type            IrrigationType `json:"type"`
	Name            string         `json:"name"`
	WaterAmount     float64        `json:"water_amount"`
	CarbonFootprint float64        `json:"carbon_footprint"`
}

type TreatmentInfo struct {
	Type        TreatmentType `json:"type"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
}

var cropCatalog = map[CropType]CropInfo{
	CropCorn: {
		Type:            CropCorn,
		Name:            "Corn",
		GrowthDays:      5,
		WaterNeeds:      3,
		OptimalTemp:     Range{Min: 20, Max: 30},
		OptimalHumidity: Range{Min: 50, Max: 70},
		PreferredSoil:   []SoilType{SoilLoam, SoilSilt},
		YieldPerPlot:    8,
		CarbonFootprint: 2,
	},
	CropWheat: {
		Type:            CropWheat,
		Name:            "Wheat",
		GrowthDays:      4,
		WaterNeeds:      2,
		OptimalTemp:     Range{Min: 15, Max: 25},
		OptimalHumidity: Range{Min: 40, Max: 60},
		PreferredSoil:   []SoilType{SoilLoam, SoilClay},
		YieldPerPlot:    6,
		CarbonFootprint: 1.5,
	},
	CropRice: {
		Type:            CropRice,
		Name:            "Rice",
		GrowthDays:      6,
		WaterNeeds:      5,
		OptimalTemp:     Range{Min: 25, Max: 35},
		OptimalHumidity: Range{Min: 70, Max: 90},
		PreferredSoil:   []SoilType{SoilClay, SoilSilt},
		YieldPerPlot:    10,
		CarbonFootprint: 3,
	},
	CropCoconut: {
		Type:            CropCoconut,
		Name:            "Coconut",
		GrowthDays:      8,
		WaterNeeds:      4,
		OptimalTemp:     Range{Min: 25, Max: 35},
		OptimalHumidity: Range{Min: 60, Max: 80},
		PreferredSoil:   []SoilType{SoilSandy, SoilLoam},
		YieldPerPlot:    4,
		CarbonFootprint: 1,
	},
}

var soilCatalog = map[SoilType]SoilInfo{
	SoilClay:  {Type: SoilClay, Name: "Clay Soil", Description: "High water retention, good for rice"},
	SoilLoam:  {Type: SoilLoam, Name: "Loam Soil", Description: "Balanced nutrients, ideal for most crops"},
	SoilSandy: {Type: SoilSandy, Name: "Sandy Soil", Description: "Good drainage, perfect for coconuts"},
	SoilSilt:  {Type: SoilSilt, Name: "Silt Soil", Description: "Fertile and moisture-retentive"},
}

var irrigationCatalog = map[IrrigationType]IrrigationInfo{
	IrrigationDrip:      {Type: IrrigationDrip, Name: "Drip Irrigation", WaterAmount: 20, CarbonFootprint: 0.5},
	IrrigationRainwater: {Type: IrrigationRainwater, Name: "Rainwater Harvesting", WaterAmount: 30, CarbonFootprint: 0.1},
	IrrigationFlood:     {Type: IrrigationFlood, Name: "Flood Irrigation", WaterAmount: 50, CarbonFootprint: 1.5},
}

var treatmentCatalog = map[TreatmentType]TreatmentInfo{
	TreatmentPesticide:  {Type: TreatmentPesticide, Name: "Pesticide", Description: "Protects crops from pest damage"},
	TreatmentFertilizer: {Type: TreatmentFertilizer, Name: "Fertilizer", Description: "Boosts crop growth and soil health"},
}

func AllCropTypes() []CropType {
	return []CropType{CropCorn, CropWheat, CropRice, CropCoconut}
}

func AllSoilTypes() []SoilType {
	return []SoilType{SoilClay, SoilLoam, SoilSandy, SoilSilt}
}

func AllIrrigationTypes() []IrrigationType {
	return []IrrigationType{IrrigationDrip, IrrigationRainwater, IrrigationFlood}
}

func AllTreatmentTypes() []TreatmentType {
	return []TreatmentType{TreatmentPesticide, TreatmentFertilizer}
}

func (c CropType) Valid() bool {
	_, ok := cropCatalog[c]
	return ok
}

func (s SoilType) Valid() bool {
	_, ok := soilCatalog[s]
	return ok
}

func (i IrrigationType) Valid() bool {
	_, ok := irrigationCatalog[i]
	return ok
}

func (t TreatmentType) Valid() bool {
	_, ok := treatmentCatalog[t]
	return ok
}

func (c CropType) String() string       { return string(c) }
func (s SoilType) String() string       { return string(s) }
func (i IrrigationType) String() string { return string(i) }
func (t TreatmentType) String() string  { return string(t) }

func Crop(t CropType) (CropInfo, bool) {
	info, ok := cropCatalog[t]
	if !ok {
		return CropInfo{}, false
	}
	info.PreferredSoil = slices.Clone(info.PreferredSoil)
	return info, true
}

func Soil(t SoilType) (SoilInfo, bool) {
	info, ok := soilCatalog[t]
	return info, ok
}

func Irrigation(t IrrigationType) (IrrigationInfo, bool) {
	info, ok := irrigationCatalog[t]
	return info, ok
}

func Treatment(t TreatmentType) (TreatmentInfo, bool) {
	info, ok := treatmentCatalog[t]
	return info, ok
}

// CropCatalog returns every crop in declaration order.
func CropCatalog() []CropInfo {
	out := make([]CropInfo, 0, len(cropCatalog))
	for _, t := range AllCropTypes() {
		info, _ := Crop(t)
		out = append(out, info)
	}
	return out
}

func SoilCatalog() []SoilInfo {
	out := make([]SoilInfo, 0, len(soilCatalog))
	for _, t := range AllSoilTypes() {
		out = append(out, soilCatalog[t])
	}
	return out
}

func IrrigationCatalog() []IrrigationInfo {
	out := make([]IrrigationInfo, 0, len(irrigationCatalog))
	for _, t := range AllIrrigationTypes() {
		out = append(out, irrigationCatalog[t])
	}
	return out
}

func TreatmentCatalog() []TreatmentInfo {
	out := make([]TreatmentInfo, 0, len(treatmentCatalog))
	for _, t := range AllTreatmentTypes() {
		out = append(out, treatmentCatalog[t])
	}
	return out
}

// CropsForSoil lists the crops that count the soil as preferred.
func CropsForSoil(soil SoilType) []CropType {
	var out []CropType
	for _, t := range AllCropTypes() {
		if cropCatalog[t].PrefersSoil(soil) {
			out = append(out, t)
		}
	}
	return out
}

// RecommendedSoil rotates through the soils one per day.
func RecommendedSoil(day int) SoilType {
	soils := AllSoilTypes()
	idx := day % len(soils)
	if idx < 0 {
		idx += len(soils)
	}
	return soils[idx]
}
