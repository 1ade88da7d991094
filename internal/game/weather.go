package game

import "math"

type WeatherCondition string

const (
	WeatherSunny  WeatherCondition = "sunny"
	WeatherCloudy WeatherCondition = "cloudy"
	WeatherRainy  WeatherCondition = "rainy"
	WeatherStormy WeatherCondition = "stormy"
)

func AllWeatherConditions() []WeatherCondition {
	return []WeatherCondition{WeatherSunny, WeatherCloudy, WeatherRainy, WeatherStormy}
}

func (c WeatherCondition) String() string { return string(c) }

type Weather struct {
	Day         int              `json:"day"`
	Temperature int              `json:"temperature"`
	Humidity    int              `json:"humidity"`
	Rainfall    int              `json:"rainfall"`
	Condition   WeatherCondition `json:"condition"`
}

// seasonLengthDays is the period of the temperature/humidity wave.
const seasonLengthDays = 30

func seasonalBias(day int) float64 {
	return math.Sin(float64(day)/seasonLengthDays*math.Pi*2) * 0.3
}

// GenerateWeather draws temperature, humidity, the condition roll and then
// rainfall, in that order. Values are not clamped to any crop band.
func GenerateWeather(day int, rng Rand) Weather {
	bias := seasonalBias(day)

	temperature := roundHalfUp(22 + bias*10 + (rng.Float64()-0.5)*8)
	humidity := roundHalfUp(60 + bias*20 + (rng.Float64()-0.5)*30)

	w := Weather{
		Day:         day,
		Temperature: temperature,
		Humidity:    humidity,
	}

	roll := rng.Float64()
	switch {
	case roll < 0.40:
		w.Condition = WeatherSunny
	case roll < 0.60:
		w.Condition = WeatherCloudy
	case roll < 0.85:
		w.Condition = WeatherRainy
		w.Rainfall = roundHalfUp(10 + rng.Float64()*20)
	default:
		w.Condition = WeatherStormy
		w.Rainfall = roundHalfUp(30 + rng.Float64()*30)
	}
	return w
}

// roundHalfUp rounds .5 towards positive infinity, so -2.5 becomes -2.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
