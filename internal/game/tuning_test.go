package game

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseTuningEmptyIsDefault(t *testing.T) {
	for _, raw := range []string{"", "\n"} {
		got, err := ParseTuning([]byte(raw))
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if !reflect.DeepEqual(got, DefaultTuning()) {
			t.Fatalf("expected defaults for %q, got %+v", raw, got)
		}
	}
}

func TestParseTuningPartialOverride(t *testing.T) {
	raw := `
max_grid_size: 8
soil_layout: patches
pests:
  attack_chance: 1
`
	got, err := ParseTuning([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := DefaultTuning()
	want.MaxGridSize = 8
	want.SoilLayout = SoilLayoutPatches
	want.Pests.AttackChance = 1
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tuning:\n got=%+v\nwant=%+v", got, want)
	}
}

func TestParseTuningRejectsUnknownKey(t *testing.T) {
	if _, err := ParseTuning([]byte("pests:\n  swarm_size: 3\n")); err == nil || !strings.Contains(err.Error(), "swarm_size") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestParseTuningRejectsInvalidValues(t *testing.T) {
	tests := []string{
		"max_grid_size: 0",
		"initial_water_level: 120",
		"soil_layout: spiral",
		"soil_layout: patches\nsoil_noise_frequency: 0",
		"pests:\n  plot_chance: -0.1",
		"treatments:\n  fertilizer_decay_chance: 2",
		"growth:\n  fertilizer_boost: 0",
		"harvest:\n  soil_depletion: -1",
	}
	for _, raw := range tests {
		if _, err := ParseTuning([]byte(raw)); !errors.Is(err, ErrInvalidTuning) {
			t.Fatalf("expected invalid tuning for %q, got %v", raw, err)
		}
	}
}

func TestLoadTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("low_health_threshold: 40\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.LowHealthThreshold != 40 {
		t.Fatalf("expected override, got %v", got.LowHealthThreshold)
	}

	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestShippedTuningMatchesDefaults(t *testing.T) {
	got, err := LoadTuning(filepath.Join("..", "..", "configs", "tuning.yaml"))
	if err != nil {
		t.Fatalf("load shipped tuning: %v", err)
	}
	if !reflect.DeepEqual(got, DefaultTuning()) {
		t.Fatalf("configs/tuning.yaml drifted from DefaultTuning:\n got=%+v\nwant=%+v", got, DefaultTuning())
	}
}
