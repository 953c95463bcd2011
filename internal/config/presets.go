package config

var Presets = map[string]*Config{
	// The standard configuration: exact iteration count with a
	// wall-time floor, millisecond display.
	"default": {
		Iterations: 10000, MinTime: 0.1, Repetitions: 1, Unit: "ms",
	},
	// Fast sanity run for development machines.
	"quick": {
		Iterations: 500, MinTime: 0.1, Repetitions: 1, Unit: "ms",
	},
	// Time-bounded run repeated enough to see variance between
	// repetitions; pairs with the plot command.
	"soak": {
		Iterations: 0, MinTime: 2.0, Repetitions: 5, Unit: "ms",
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
