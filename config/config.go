// Package config loads permutation generator settings from INI files.
//
// Example file:
//
//	[Generator]
//	Strategy = bitscatter
//	Period   = 52
//	Seed     = 0xDEADBEEF
//	Cycles   = 4
//	Streams  = 2
package config

import (
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/lanrat/fastperm"
)

// SectionName is the INI section holding generator settings.
const SectionName = "Generator"

// MaxStreams bounds the number of concurrent streams.
const MaxStreams = 1024

// MaxCycles bounds the number of permutations printed per stream.
const MaxCycles = 1 << 24

const (
	defaultStrategy = fastperm.StrategyBitScatter
	defaultPeriod   = fastperm.MaxPeriod
	defaultCycles   = 1
	defaultStreams  = 1
)

var (
	// ErrMissingSection is returned when the config has no generator section.
	ErrMissingSection = errors.NewKind("config has no [%s] section")
	// ErrInvalidPeriod is returned for periods outside [1, fastperm.MaxPeriod].
	ErrInvalidPeriod = errors.NewKind("invalid period %d: must be between 1 and %d")
	// ErrInvalidCycles is returned for cycle counts outside [1, MaxCycles].
	ErrInvalidCycles = errors.NewKind("invalid cycle count %d: must be between 1 and %d")
	// ErrInvalidStreams is returned for stream counts outside [1, MaxStreams].
	ErrInvalidStreams = errors.NewKind("invalid stream count %d: must be between 1 and %d")
	// ErrInvalidSeed is returned when the seed is not an unsigned integer.
	ErrInvalidSeed = errors.NewKind("invalid seed %q")
)

// Config describes what the generator produces.
type Config struct {
	Strategy fastperm.Strategy
	Period   int
	// Seed for stream 0; stream i is seeded with Seed+i. Only meaningful
	// when HasSeed is set, otherwise the caller picks a seed.
	Seed    uint64
	HasSeed bool
	Cycles  int
	Streams int
}

// Default returns the settings used for keys a config file omits.
func Default() Config {
	return Config{
		Strategy: defaultStrategy,
		Period:   defaultPeriod,
		Cycles:   defaultCycles,
		Streams:  defaultStreams,
	}
}

// Validate checks every field of c.
func (c *Config) Validate() error {
	if c.Period < 1 || c.Period > fastperm.MaxPeriod {
		return ErrInvalidPeriod.New(c.Period, fastperm.MaxPeriod)
	}
	if c.Cycles < 1 || c.Cycles > MaxCycles {
		return ErrInvalidCycles.New(c.Cycles, MaxCycles)
	}
	if c.Streams < 1 || c.Streams > MaxStreams {
		return ErrInvalidStreams.New(c.Streams, MaxStreams)
	}
	return nil
}

// GeneratorIni is the raw form of the generator section.
type GeneratorIni struct {
	Strategy string
	Period   int
	Seed     string
	Cycles   int
	Streams  int
}

func (g *GeneratorIni) toConfig() (Config, error) {
	var c Config
	var err error
	c.Strategy, err = fastperm.ParseStrategy(g.Strategy)
	if err != nil {
		return c, err
	}
	c.Seed, err = ParseSeed(g.Seed)
	if err != nil {
		return c, err
	}
	// an empty key counts as unset, an explicit 0 does not
	c.HasSeed = strings.TrimSpace(g.Seed) != ""
	c.Period = g.Period
	c.Cycles = g.Cycles
	c.Streams = g.Streams
	return c, c.Validate()
}

// ParseSeed parses a decimal, hex (0x), octal (0o) or binary (0b) seed.
// An empty string is seed 0.
func ParseSeed(s string) (uint64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	if s == "" {
		return 0, nil
	}
	seed, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, ErrInvalidSeed.Wrap(err, s)
	}
	return seed, nil
}

// Parse loads a config from source, which is a file path or a []byte of
// INI data, as accepted by ini.Load. Keys are case insensitive.
func Parse(source any) (*Config, error) {
	iniOpt := ini.LoadOptions{
		Insensitive: true,
	}
	iniCfg, err := ini.LoadSources(iniOpt, source)
	if err != nil {
		return nil, err
	}

	section, err := iniCfg.GetSection(SectionName)
	if err != nil {
		return nil, ErrMissingSection.Wrap(err, SectionName)
	}

	def := Default()
	generatorIni := &GeneratorIni{
		Strategy: def.Strategy.String(),
		Period:   def.Period,
		Cycles:   def.Cycles,
		Streams:  def.Streams,
	}
	err = section.MapTo(generatorIni)
	if err != nil {
		return nil, err
	}

	cfg, err := generatorIni.toConfig()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
