// Package config loads galaxy.Config from layered sources.
//
// Loading order (lowest to highest priority):
//  1. galaxy.DefaultConfig()
//  2. a YAML file (optional; unknown keys are rejected)
//  3. GALAXY_* environment variables
//
// The result is validated; every failure wraps galaxy.ErrInvalidConfig.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eointolster/VoroniGalaxy/galaxy"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GALAXY_"

// Load builds a configuration from path (skipped when empty) and the
// environment.
func Load(path string) (galaxy.Config, error) {
	cfg := galaxy.DefaultConfig()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return galaxy.Config{}, fmt.Errorf("%w: %v", galaxy.ErrInvalidConfig, err)
		}
		defer f.Close()
		if err := decodeInto(f, &cfg); err != nil {
			return galaxy.Config{}, fmt.Errorf("%w: %s: %v", galaxy.ErrInvalidConfig, path, err)
		}
	}
	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return galaxy.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return galaxy.Config{}, err
	}

	return cfg, nil
}

// Parse reads a YAML document over the defaults and validates the result.
// The environment is not consulted.
func Parse(r io.Reader) (galaxy.Config, error) {
	cfg := galaxy.DefaultConfig()
	if err := decodeInto(r, &cfg); err != nil {
		return galaxy.Config{}, fmt.Errorf("%w: %v", galaxy.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return galaxy.Config{}, err
	}

	return cfg, nil
}

func decodeInto(r io.Reader, cfg *galaxy.Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

type envField struct {
	key string
	set func(cfg *galaxy.Config, val string) error
}

func floatField(key string, dst func(*galaxy.Config) *float64) envField {
	return envField{key: key, set: func(cfg *galaxy.Config, val string) error {
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return err
		}
		*dst(cfg) = v
		return nil
	}}
}

func intField(key string, dst func(*galaxy.Config) *int) envField {
	return envField{key: key, set: func(cfg *galaxy.Config, val string) error {
		v, err := strconv.Atoi(val)
		if err != nil {
			return err
		}
		*dst(cfg) = v
		return nil
	}}
}

func stringField(key string, dst func(*galaxy.Config) *string) envField {
	return envField{key: key, set: func(cfg *galaxy.Config, val string) error {
		*dst(cfg) = strings.ToLower(val)
		return nil
	}}
}

var envFields = []envField{
	floatField("WIDTH", func(c *galaxy.Config) *float64 { return &c.Width }),
	floatField("HEIGHT", func(c *galaxy.Config) *float64 { return &c.Height }),
	floatField("SEGMENT_SIZE", func(c *galaxy.Config) *float64 { return &c.SegmentSize }),
	floatField("MAX_CONNECTION_DISTANCE", func(c *galaxy.Config) *float64 { return &c.MaxConnectionDistance }),
	floatField("MIN_DISTANCE", func(c *galaxy.Config) *float64 { return &c.MinDistance }),
	floatField("NEIGHBORHOOD_FACTOR", func(c *galaxy.Config) *float64 { return &c.NeighborhoodFactor }),
	floatField("ACCEPTANCE_DIVISOR", func(c *galaxy.Config) *float64 { return &c.AcceptanceDivisor }),
	intField("TOTAL_STARS", func(c *galaxy.Config) *int { return &c.TotalStars }),
	intField("VIRTUAL_COLUMNS", func(c *galaxy.Config) *int { return &c.VirtualColumns }),
	intField("MAX_CROSSINGS", func(c *galaxy.Config) *int { return &c.MaxCrossings }),
	intField("ATTEMPT_FACTOR", func(c *galaxy.Config) *int { return &c.AttemptFactor }),
	stringField("MST_METHOD", func(c *galaxy.Config) *string { return &c.MSTMethod }),
	stringField("BRIDGE_POLICY", func(c *galaxy.Config) *string { return &c.BridgePolicy }),
	{key: "SEED", set: func(cfg *galaxy.Config, val string) error {
		v, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return err
		}
		cfg.Seed = v
		return nil
	}},
}

// ApplyEnv overlays GALAXY_* variables found by lookup onto cfg. Empty
// values are ignored; unparsable ones fail with galaxy.ErrInvalidConfig.
func ApplyEnv(cfg *galaxy.Config, lookup LookupFunc) error {
	for _, f := range envFields {
		key := EnvPrefix + f.key
		val, ok := lookup(key)
		if !ok || strings.TrimSpace(val) == "" {
			continue
		}
		if err := f.set(cfg, strings.TrimSpace(val)); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", galaxy.ErrInvalidConfig, key, val, err)
		}
	}

	return nil
}
