package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xyproto/env/v2"

	"asmopt/internal/trace"
)

// Config is the merged asmopt configuration: defaults, then asmopt.toml,
// then ASMOPT_* environment variables. Command-line flags are applied on
// top by the caller.
type Config struct {
	Disambiguate Disambiguate `toml:"disambiguate"`
	Driver       Driver       `toml:"driver"`
	Trace        Trace        `toml:"trace"`

	// Path of the file that was loaded, empty when none was found.
	Path string `toml:"-"`
}

type Disambiguate struct {
	Separator string   `toml:"separator"`
	Reserved  []string `toml:"reserved"`
}

type Driver struct {
	Jobs           int  `toml:"jobs"` // 0 = GOMAXPROCS
	Cache          bool `toml:"cache"`
	MaxDiagnostics int  `toml:"max_diagnostics"`
}

type Trace struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
}

// Environment variables consulted by Load.
const (
	EnvJobs       = "ASMOPT_JOBS"
	EnvNoCache    = "ASMOPT_NO_CACHE"
	EnvTraceLevel = "ASMOPT_TRACE_LEVEL"
	EnvTrace      = "ASMOPT_TRACE"
	EnvSeparator  = "ASMOPT_SEPARATOR"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Disambiguate: Disambiguate{Separator: "_"},
		Driver: Driver{
			Cache:          true,
			MaxDiagnostics: 100,
		},
		Trace: Trace{Level: "off"},
	}
}

// Load finds asmopt.toml upward from startDir (if any), decodes it over the
// defaults and applies environment overrides.
func Load(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		cfg := Default()
		applyEnv(&cfg)
		return cfg, cfg.Validate()
	}
	return LoadFile(path)
}

// LoadFile decodes path over the defaults and applies environment overrides.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	// env кэширует окружение при первом обращении; перечитываем на каждую загрузку
	env.Load()
	if env.Has(EnvJobs) {
		cfg.Driver.Jobs = env.Int(EnvJobs, cfg.Driver.Jobs)
	}
	if env.Has(EnvNoCache) && env.Bool(EnvNoCache) {
		cfg.Driver.Cache = false
	}
	if env.Has(EnvTraceLevel) {
		cfg.Trace.Level = env.Str(EnvTraceLevel, cfg.Trace.Level)
	}
	if env.Has(EnvTrace) {
		cfg.Trace.Output = env.Str(EnvTrace, cfg.Trace.Output)
	}
	if env.Has(EnvSeparator) {
		cfg.Disambiguate.Separator = env.Str(EnvSeparator, cfg.Disambiguate.Separator)
	}
}

// Validate checks value ranges; it does not touch the filesystem.
func (c *Config) Validate() error {
	if c.Disambiguate.Separator == "" {
		return fmt.Errorf("[disambiguate].separator must not be empty")
	}
	if strings.ContainsAny(c.Disambiguate.Separator, " \t\r\n") {
		return fmt.Errorf("[disambiguate].separator %q contains whitespace", c.Disambiguate.Separator)
	}
	for _, name := range c.Disambiguate.Reserved {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("[disambiguate].reserved contains an empty name")
		}
	}
	if c.Driver.Jobs < 0 {
		return fmt.Errorf("[driver].jobs must be >= 0, got %d", c.Driver.Jobs)
	}
	if c.Driver.MaxDiagnostics < 0 {
		return fmt.Errorf("[driver].max_diagnostics must be >= 0, got %d", c.Driver.MaxDiagnostics)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	return nil
}
