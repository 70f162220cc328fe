package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/kurasim/internal/sim"
)

// Config is the yaml-backed on-disk configuration. It mirrors
// sim.Parameters plus run-shaping knobs for the CLI.
type Config struct {
	Count    int     `yaml:"count"`
	Coupling float64 `yaml:"coupling"`
	Dt       float64 `yaml:"dt"`
	FreqMin  float64 `yaml:"freq_min"`
	FreqMax  float64 `yaml:"freq_max"`
	Speed    float64 `yaml:"speed"`
	Seed     int64   `yaml:"seed"`
	Steps    int     `yaml:"steps"`
	Runs     int     `yaml:"runs"`
}

const (
	DefaultSteps = 1000
	DefaultRuns  = 1
)

func DefaultConfig() *Config {
	return &Config{
		Count:    sim.DefaultCount,
		Coupling: sim.DefaultCoupling,
		Dt:       sim.DefaultDt,
		FreqMin:  sim.DefaultFreqMin,
		FreqMax:  sim.DefaultFreqMax,
		Speed:    sim.DefaultSpeed,
		Steps:    DefaultSteps,
		Runs:     DefaultRuns,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Parameters converts to the validated simulation parameter value. The
// returned error carries the first domain violation, and nothing is
// adopted on failure.
func (c *Config) Parameters() (sim.Parameters, error) {
	p := sim.Parameters{
		Count:    c.Count,
		Coupling: c.Coupling,
		Dt:       c.Dt,
		FreqMin:  c.FreqMin,
		FreqMax:  c.FreqMax,
		Speed:    c.Speed,
		Seed:     c.Seed,
	}
	if err := p.Validate(); err != nil {
		return sim.Parameters{}, err
	}
	return p, nil
}
