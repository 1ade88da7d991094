package game

import (
	"math"
	"testing"
)

func TestGrowthRate(t *testing.T) {
	g := DefaultTuning().Growth
	allOK := GrowthConditions{TempOK: true, HumidityOK: true, WaterOK: true, SoilOK: true}

	tests := []struct {
		name string
		cond GrowthConditions
		plot Plot
		want float64
	}{
		{name: "optimal", cond: allOK, want: 1},
		{name: "cold", cond: GrowthConditions{HumidityOK: true, WaterOK: true, SoilOK: true}, want: 0.5},
		{name: "dry air", cond: GrowthConditions{TempOK: true, WaterOK: true, SoilOK: true}, want: 0.7},
		{name: "thirsty", cond: GrowthConditions{TempOK: true, HumidityOK: true, SoilOK: true}, want: 0.3},
		{name: "wrong soil", cond: GrowthConditions{TempOK: true, HumidityOK: true, WaterOK: true}, want: 0.8},
		{name: "fertilized", cond: allOK, plot: Plot{Fertilized: true}, want: 1.3},
		{name: "pest at threshold", cond: allOK, plot: Plot{PestDamage: 50}, want: 1},
		{name: "pest over threshold", cond: allOK, plot: Plot{PestDamage: 75}, want: 0.5},
		{name: "everything wrong", plot: Plot{Fertilized: true, PestDamage: 100}, want: 0.5 * 0.7 * 0.3 * 0.8 * 1.3 * 0.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := GrowthRate(tc.cond, tc.plot, g)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("GrowthRate=%v want=%v", got, tc.want)
			}
		})
	}
}

func TestEvaluateConditions(t *testing.T) {
	g := DefaultTuning().Growth
	rice, _ := Crop(CropRice)
	weather := Weather{Temperature: 35, Humidity: 70}

	cond := EvaluateConditions(Plot{WaterLevel: 75, Soil: SoilClay}, rice, weather, g)
	if !cond.Optimal() {
		t.Fatalf("expected inclusive bands to pass, got %+v", cond)
	}

	cond = EvaluateConditions(Plot{WaterLevel: 74, Soil: SoilSandy}, rice, Weather{Temperature: 36, Humidity: 69}, g)
	if cond.TempOK || cond.HumidityOK || cond.WaterOK || cond.SoilOK {
		t.Fatalf("expected every check to fail, got %+v", cond)
	}
}

func TestGrowHealthAndWater(t *testing.T) {
	g := DefaultTuning().Growth
	corn, _ := Crop(CropCorn)
	weather := Weather{Temperature: 25, Humidity: 60}

	t.Run("drought", func(t *testing.T) {
		p := Plot{Crop: CropCorn, WaterLevel: 10, Soil: SoilLoam, Health: 50}
		out := grow(&p, corn, weather, g)
		if !out.waterStress || p.Health != 45 || p.WaterLevel != 0 {
			t.Fatalf("unexpected drought result %+v plot=%+v", out, p)
		}
		if math.Abs(p.GrowthStage-0.3) > 1e-9 {
			t.Fatalf("expected stage 0.3, got %v", p.GrowthStage)
		}
	})

	t.Run("recovery", func(t *testing.T) {
		p := Plot{Crop: CropCorn, WaterLevel: 60, Soil: SoilLoam, Health: 99.5}
		grow(&p, corn, weather, g)
		if p.Health != 100 || p.WaterLevel != 45 {
			t.Fatalf("expected capped recovery and water 45, got %+v", p)
		}
	})

	t.Run("pest damage blocks recovery", func(t *testing.T) {
		p := Plot{Crop: CropCorn, WaterLevel: 60, Soil: SoilLoam, Health: 70, PestDamage: 10}
		grow(&p, corn, weather, g)
		if p.Health != 70 {
			t.Fatalf("expected health unchanged, got %v", p.Health)
		}
	})

	t.Run("stage caps at growth days", func(t *testing.T) {
		p := Plot{Crop: CropCorn, WaterLevel: 60, Soil: SoilLoam, Health: 70, GrowthStage: 4.5, Fertilized: true}
		out := grow(&p, corn, weather, g)
		if p.GrowthStage != 5 || !p.HarvestReady || !out.becameReady {
			t.Fatalf("expected capped ready crop, got %+v", p)
		}
		out = grow(&p, corn, weather, g)
		if out.becameReady {
			t.Fatalf("expected ready to be reported once")
		}
	})
}

func TestTreatmentsAndPests(t *testing.T) {
	tt := DefaultTuning().Treatments

	p := Plot{Health: 90, PestDamage: 20}
	applyTreatment(&p, TreatmentPesticide, tt)
	if !p.HasProtection || p.PestDamage != 0 {
		t.Fatalf("expected protection and floored pest damage, got %+v", p)
	}
	applyTreatment(&p, TreatmentFertilizer, tt)
	if !p.Fertilized || p.Health != 100 {
		t.Fatalf("expected fertilized and capped health, got %+v", p)
	}

	decayTreatments(&p, fixedRand{f: 0.25}, tt)
	if !p.Fertilized || p.HasProtection {
		t.Fatalf("expected protection to decay at 0.25 and fertilizer to hold, got %+v", p)
	}

	q := Plot{Health: 10, PestDamage: 90}
	applyPestDamage(&q, DefaultTuning().Pests)
	if q.PestDamage != 100 || q.Health != 0 {
		t.Fatalf("expected clamped pest damage, got %+v", q)
	}
}
