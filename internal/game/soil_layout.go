package game

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// layoutSoils assigns a soil to every plot, row-major. The random layout
// draws uniformly from rng; the patch layout buckets opensimplex noise so
// neighbouring plots tend to share a soil.
func layoutSoils(t Tuning, gridSize int, seed int64, rng Rand) [][]SoilType {
	soils := AllSoilTypes()
	out := make([][]SoilType, gridSize)

	var noise opensimplex.Noise
	if t.SoilLayout == SoilLayoutPatches {
		noise = opensimplex.NewNormalized(seed)
	}

	for y := 0; y < gridSize; y++ {
		out[y] = make([]SoilType, gridSize)
		for x := 0; x < gridSize; x++ {
			if noise == nil {
				out[y][x] = soils[rng.IntN(len(soils))]
				continue
			}
			v := noise.Eval2(float64(x)*t.SoilNoiseFrequency, float64(y)*t.SoilNoiseFrequency)
			out[y][x] = soils[soilBucket(v, len(soils))]
		}
	}
	return out
}

func soilBucket(v float64, n int) int {
	idx := int(v * float64(n))
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
