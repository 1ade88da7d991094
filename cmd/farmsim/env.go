package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// envConfig holds flag defaults read from ECOFARM_* variables, after an
// optional .env in the working directory.
type envConfig struct {
	Tuning   string
	LogLevel string
	Grid     int
	Days     int
	Seed     int64
}

func loadEnv() envConfig {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "farmsim: .env: %v\n", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		v, err := strconv.Atoi(get(k, ""))
		if err != nil {
			return def
		}
		return v
	}

	seed, err := strconv.ParseInt(get("ECOFARM_SEED", "0"), 10, 64)
	if err != nil {
		seed = 0
	}
	return envConfig{
		Tuning:   get("ECOFARM_TUNING", ""),
		LogLevel: get("ECOFARM_LOG_LEVEL", "warn"),
		Grid:     getInt("ECOFARM_GRID", 6),
		Days:     getInt("ECOFARM_DAYS", 30),
		Seed:     seed,
	}
}
