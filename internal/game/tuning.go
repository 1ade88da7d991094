package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type SoilLayout string

const (
	SoilLayoutRandom  SoilLayout = "random"
	SoilLayoutPatches SoilLayout = "patches"
)

// Tuning holds every simulation constant that a game designer may want to
// adjust without touching code. DefaultTuning matches the shipped game.
type Tuning struct {
	MaxGridSize        int        `yaml:"max_grid_size"`
	InitialWaterLevel  float64    `yaml:"initial_water_level"`
	InitialHealth      float64    `yaml:"initial_health"`
	SoilLayout         SoilLayout `yaml:"soil_layout"`
	SoilNoiseFrequency float64    `yaml:"soil_noise_frequency"`
	LowHealthThreshold float64    `yaml:"low_health_threshold"`

	Pests      PestTuning      `yaml:"pests"`
	Treatments TreatmentTuning `yaml:"treatments"`
	Growth     GrowthTuning    `yaml:"growth"`
	Harvest    HarvestTuning   `yaml:"harvest"`
}

type PestTuning struct {
	AttackChance  float64 `yaml:"attack_chance"`
	PlotChance    float64 `yaml:"plot_chance"`
	Damage        float64 `yaml:"damage"`
	HealthPenalty float64 `yaml:"health_penalty"`
}

type TreatmentTuning struct {
	PesticideReduction    float64 `yaml:"pesticide_reduction"`
	FertilizerHealthBoost float64 `yaml:"fertilizer_health_boost"`
	ProtectionDecayChance float64 `yaml:"protection_decay_chance"`
	FertilizerDecayChance float64 `yaml:"fertilizer_decay_chance"`
}

type GrowthTuning struct {
	TempPenalty          float64 `yaml:"temp_penalty"`
	HumidityPenalty      float64 `yaml:"humidity_penalty"`
	WaterPenalty         float64 `yaml:"water_penalty"`
	SoilPenalty          float64 `yaml:"soil_penalty"`
	FertilizerBoost      float64 `yaml:"fertilizer_boost"`
	PestPenalty          float64 `yaml:"pest_penalty"`
	PestPenaltyThreshold float64 `yaml:"pest_penalty_threshold"`
	WaterOKFactor        float64 `yaml:"water_ok_factor"`
	WaterUseFactor       float64 `yaml:"water_use_factor"`
	DroughtHealthLoss    float64 `yaml:"drought_health_loss"`
	RecoveryHealthGain   float64 `yaml:"recovery_health_gain"`
}

type HarvestTuning struct {
	SoilDepletion float64 `yaml:"soil_depletion"`
	HealthFloor   float64 `yaml:"health_floor"`
}

func DefaultTuning() Tuning {
	return Tuning{
		MaxGridSize:        12,
		InitialWaterLevel:  50,
		InitialHealth:      100,
		SoilLayout:         SoilLayoutRandom,
		SoilNoiseFrequency: 0.35,
		LowHealthThreshold: 50,
		Pests: PestTuning{
			AttackChance:  0.30,
			PlotChance:    0.50,
			Damage:        25,
			HealthPenalty: 15,
		},
		Treatments: TreatmentTuning{
			PesticideReduction:    30,
			FertilizerHealthBoost: 20,
			ProtectionDecayChance: 0.30,
			FertilizerDecayChance: 0.20,
		},
		Growth: GrowthTuning{
			TempPenalty:          0.5,
			HumidityPenalty:      0.7,
			WaterPenalty:         0.3,
			SoilPenalty:          0.8,
			FertilizerBoost:      1.3,
			PestPenalty:          0.5,
			PestPenaltyThreshold: 50,
			WaterOKFactor:        15,
			WaterUseFactor:       5,
			DroughtHealthLoss:    5,
			RecoveryHealthGain:   1,
		},
		Harvest: HarvestTuning{
			SoilDepletion: 10,
			HealthFloor:   20,
		},
	}
}

// ParseTuning decodes YAML over DefaultTuning, so a file only needs to name
// the values it changes. Unknown keys are rejected.
func ParseTuning(raw []byte) (Tuning, error) {
	t := DefaultTuning()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

func LoadTuning(path string) (Tuning, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, err
	}
	t, err := ParseTuning(raw)
	if err != nil {
		return Tuning{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (t Tuning) Validate() error {
	if t.MaxGridSize < 1 {
		return fmt.Errorf("%w: max_grid_size must be at least 1, got %d", ErrInvalidTuning, t.MaxGridSize)
	}
	switch t.SoilLayout {
	case SoilLayoutRandom:
	case SoilLayoutPatches:
		if t.SoilNoiseFrequency <= 0 {
			return fmt.Errorf("%w: soil_noise_frequency must be positive, got %g", ErrInvalidTuning, t.SoilNoiseFrequency)
		}
	default:
		return fmt.Errorf("%w: unknown soil_layout %q", ErrInvalidTuning, t.SoilLayout)
	}
	if err := checkBand("initial_water_level", t.InitialWaterLevel, 0, 100); err != nil {
		return err
	}
	if err := checkBand("initial_health", t.InitialHealth, 0, 100); err != nil {
		return err
	}

	probabilities := []struct {
		name string
		v    float64
	}{
		{"pests.attack_chance", t.Pests.AttackChance},
		{"pests.plot_chance", t.Pests.PlotChance},
		{"treatments.protection_decay_chance", t.Treatments.ProtectionDecayChance},
		{"treatments.fertilizer_decay_chance", t.Treatments.FertilizerDecayChance},
	}
	for _, p := range probabilities {
		if err := checkBand(p.name, p.v, 0, 1); err != nil {
			return err
		}
	}

	multipliers := []struct {
		name string
		v    float64
	}{
		{"growth.temp_penalty", t.Growth.TempPenalty},
		{"growth.humidity_penalty", t.Growth.HumidityPenalty},
		{"growth.water_penalty", t.Growth.WaterPenalty},
		{"growth.soil_penalty", t.Growth.SoilPenalty},
		{"growth.fertilizer_boost", t.Growth.FertilizerBoost},
		{"growth.pest_penalty", t.Growth.PestPenalty},
	}
	for _, m := range multipliers {
		if m.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidTuning, m.name, m.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"pests.damage", t.Pests.Damage},
		{"pests.health_penalty", t.Pests.HealthPenalty},
		{"treatments.pesticide_reduction", t.Treatments.PesticideReduction},
		{"treatments.fertilizer_health_boost", t.Treatments.FertilizerHealthBoost},
		{"growth.water_ok_factor", t.Growth.WaterOKFactor},
		{"growth.water_use_factor", t.Growth.WaterUseFactor},
		{"growth.drought_health_loss", t.Growth.DroughtHealthLoss},
		{"growth.recovery_health_gain", t.Growth.RecoveryHealthGain},
		{"harvest.soil_depletion", t.Harvest.SoilDepletion},
		{"harvest.health_floor", t.Harvest.HealthFloor},
		{"low_health_threshold", t.LowHealthThreshold},
	}
	for _, n := range nonNegative {
		if n.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %g", ErrInvalidTuning, n.name, n.v)
		}
	}
	return nil
}

func checkBand(name string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s must be within [%g, %g], got %g", ErrInvalidTuning, name, lo, hi, v)
	}
	return nil
}
