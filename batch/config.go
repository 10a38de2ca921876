package batch

const (
	DEFAULT_FLOOR   = 64   // Minimum per-lane strand capacity.
	DEFAULT_CEILING = 4096 // Maximum per-lane strand capacity.
)

// Config sizes the per-lane buffers.
type Config struct {
	Floor     int `mapstructure:"floor"`     // Minimum strand capacity.
	Ceiling   int `mapstructure:"ceiling"`   // Maximum strand capacity.
	Fragments int `mapstructure:"fragments"` // Fragment slots per lane, 0 for the longest program length.
}

// DefaultConfig returns the default capacities.
func DefaultConfig() Config {
	return Config{
		Floor:   DEFAULT_FLOOR,
		Ceiling: DEFAULT_CEILING,
	}
}

// Capacity returns the strand capacity for the longest target and program.
func (cfg Config) Capacity(target int, program int) int {
	floor := cfg.Floor
	if floor <= 0 {
		floor = DEFAULT_FLOOR
	}
	ceiling := cfg.Ceiling
	if ceiling <= 0 {
		ceiling = DEFAULT_CEILING
	}

	return max(1, min(max(target+program, floor), ceiling))
}

// Slots returns the fragment slots per lane for the longest program.
func (cfg Config) Slots(program int) int {
	if cfg.Fragments > 0 {
		return cfg.Fragments
	}
	return program
}
