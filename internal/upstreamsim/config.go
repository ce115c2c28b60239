package upstreamsim

// Default simulator configuration.
const (
	DefaultAddr          = ":9081"
	DefaultPages         = 5
	DefaultLevelsPerPage = 10
	DefaultHofRows       = 8
)

// Config controls the shape of the simulated upstream.
type Config struct {
	// Addr is the listen address for the simulator.
	Addr string

	// Pages is how many level-listing pages exist. Pages before the last
	// carry the pagination flag.
	Pages int

	// LevelsPerPage is how many level records each page holds.
	LevelsPerPage int

	// HofRows is how many hall-of-fame rows to generate.
	HofRows int
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		Addr:          DefaultAddr,
		Pages:         DefaultPages,
		LevelsPerPage: DefaultLevelsPerPage,
		HofRows:       DefaultHofRows,
	}
}
