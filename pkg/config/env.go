// pkg/config/env.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnvironmentOverrides
const (
	EnvFieldWidth   = "ASTEROIDS_FIELD_WIDTH"
	EnvFieldHeight  = "ASTEROIDS_FIELD_HEIGHT"
	EnvDeltaT       = "ASTEROIDS_DELTA_T"
	EnvSpeedLimit   = "ASTEROIDS_SPEED_LIMIT"
	EnvInitialLives = "ASTEROIDS_INITIAL_LIVES"
	EnvSeed         = "ASTEROIDS_SEED"
)

// ApplyEnvironmentOverrides replaces config values with any ASTEROIDS_*
// variables that are set. Unparseable values are reported, not ignored.
func ApplyEnvironmentOverrides(config *Config) error {
	var errs []error

	floats := []struct {
		key    string
		target *float64
	}{
		{EnvFieldWidth, &config.Physics.FieldSize.X},
		{EnvFieldHeight, &config.Physics.FieldSize.Y},
		{EnvDeltaT, &config.Physics.DeltaT},
		{EnvSpeedLimit, &config.Physics.SpeedLimit},
	}
	for _, f := range floats {
		v, ok, err := lookupFloat(f.key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			*f.target = v
		}
	}

	if v, ok, err := lookupUint(EnvInitialLives); err != nil {
		errs = append(errs, err)
	} else if ok {
		config.Rules.InitialLives = v
	}

	if v, ok, err := lookupUint(EnvSeed); err != nil {
		errs = append(errs, err)
	} else if ok {
		config.Seed = &v
	}

	return errors.Join(errs...)
}

func lookupFloat(key string) (float64, bool, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", key, err)
	}
	return v, true, nil
}

func lookupUint(key string) (uint64, bool, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", key, err)
	}
	return v, true, nil
}
