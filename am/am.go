package am

// Config represents the argx configuration
type Config struct {
	Solver   SolverConfig   `mapstructure:"solver" toml:"solver" json:"solver" yaml:"solver"`
	Output   OutputConfig   `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database" yaml:"database"`
	Log      LogConfig      `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// SolverConfig configures the extension search.
// Workers 0 means one per CPU; TimeoutSeconds 0 means no limit.
type SolverConfig struct {
	Workers                int `mapstructure:"workers" toml:"workers" json:"workers" yaml:"workers"`
	TimeoutSeconds         int `mapstructure:"timeout_seconds" toml:"timeout_seconds" json:"timeout_seconds" yaml:"timeout_seconds"`
	ProgressIntervalMillis int `mapstructure:"progress_interval_ms" toml:"progress_interval_ms" json:"progress_interval_ms" yaml:"progress_interval_ms"`
}

// OutputConfig controls where results go
type OutputConfig struct {
	Dir   string `mapstructure:"dir" toml:"dir" json:"dir" yaml:"dir"`
	Write bool   `mapstructure:"write" toml:"write" json:"write" yaml:"write"` // write <name>_<problem>.txt files
	JSON  bool   `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
}

// DatabaseConfig configures the SQLite run history
type DatabaseConfig struct {
	Path   string `mapstructure:"path" toml:"path" json:"path" yaml:"path"`
	Record bool   `mapstructure:"record" toml:"record" json:"record" yaml:"record"` // store every solve in history
}

// LogConfig configures console logging
type LogConfig struct {
	Theme string `mapstructure:"theme" toml:"theme" json:"theme" yaml:"theme"` // everforest, gruvbox
	JSON  bool   `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
}

// Default values
const (
	DefaultOutputDir        = "outputs/results"
	DefaultDatabaseFile     = "history.db"
	DefaultLogTheme         = "everforest"
	DefaultProgressInterval = 2000 // milliseconds
)

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)

// EnvPrefix is the prefix of environment overrides (ARGX_SOLVER_WORKERS, ...).
const EnvPrefix = "ARGX"
