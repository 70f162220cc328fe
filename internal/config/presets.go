package config

// Presets are ready-made configurations for exploring the regimes of the
// coupled-oscillator model.
var Presets = map[string]*Config{
	"default": {
		Count: 20, Coupling: 2.0, Dt: 0.01, FreqMin: -1.0, FreqMax: 1.0,
		Speed: 1.0, Steps: 1000, Runs: 1,
	},
	"incoherent": {
		// below the critical coupling the population never locks
		Count: 50, Coupling: 0.5, Dt: 0.01, FreqMin: -1.0, FreqMax: 1.0,
		Speed: 1.0, Steps: 2000, Runs: 1,
	},
	"critical": {
		// near Kc = 4/π for frequencies uniform on [-1, 1]
		Count: 100, Coupling: 1.3, Dt: 0.01, FreqMin: -1.0, FreqMax: 1.0,
		Speed: 1.0, Steps: 5000, Runs: 1,
	},
	"locked": {
		Count: 50, Coupling: 6.0, Dt: 0.01, FreqMin: -1.0, FreqMax: 1.0,
		Speed: 1.0, Steps: 1000, Runs: 1,
	},
	"crowd": {
		Count: 500, Coupling: 3.0, Dt: 0.01, FreqMin: -2.0, FreqMax: 2.0,
		Speed: 2.0, Steps: 2000, Runs: 1,
	},
	"solo": {
		Count: 1, Coupling: 2.0, Dt: 0.01, FreqMin: -1.0, FreqMax: 1.0,
		Speed: 1.0, Steps: 500, Runs: 1,
	},
	"unstable": {
		// deliberately large K·dt: the Euler step overshoots and the
		// resonance trace jumps around instead of settling
		Count: 10, Coupling: 10.0, Dt: 0.5, FreqMin: -1.0, FreqMax: 1.0,
		Speed: 1.0, Steps: 200, Runs: 1,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
