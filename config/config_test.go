package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lanrat/fastperm"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
[generator]
STRATEGY = shuffle-array
period   = 52
Seed     = 0xDEAD_BEEF
cycles   = 4
streams  = 3
`))
	require.NoError(t, err)
	require.Equal(t, &Config{
		Strategy: fastperm.StrategyShuffleArray,
		Period:   52,
		Seed:     0xDEADBEEF,
		HasSeed:  true,
		Cycles:   4,
		Streams:  3,
	}, cfg)
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("[Generator]\n"))
	require.NoError(t, err)
	want := Default()
	require.Equal(t, &want, cfg)
	require.Equal(t, fastperm.StrategyBitScatter, cfg.Strategy)
	require.Equal(t, fastperm.MaxPeriod, cfg.Period)
	require.False(t, cfg.HasSeed)
}

func TestParse_ExplicitZeroSeed(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("[Generator]\nSeed = 0\n"))
	require.NoError(t, err)
	require.True(t, cfg.HasSeed)
	require.Equal(t, uint64(0), cfg.Seed)

	cfg, err = Parse([]byte("[Generator]\nSeed =\n"))
	require.NoError(t, err)
	require.False(t, cfg.HasSeed)
}

func TestParse_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fastperm.ini")
	require.NoError(t, os.WriteFile(path, []byte("[Generator]\nPeriod = 8\nSeed = 42\n"), 0o600))

	cfg, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Period)
	require.Equal(t, uint64(42), cfg.Seed)
	require.True(t, cfg.HasSeed)

	_, err = Parse(filepath.Join(t.TempDir(), "missing.ini"))
	require.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		is    func(error) bool
	}{
		{"no section", "[Other]\nPeriod = 3\n", ErrMissingSection.Is},
		{"zero period", "[Generator]\nPeriod = 0\n", ErrInvalidPeriod.Is},
		{"large period", "[Generator]\nPeriod = 65\n", ErrInvalidPeriod.Is},
		{"zero cycles", "[Generator]\nCycles = 0\n", ErrInvalidCycles.Is},
		{"too many cycles", "[Generator]\nCycles = 16777217\n", ErrInvalidCycles.Is},
		{"too many streams", "[Generator]\nStreams = 5000\n", ErrInvalidStreams.Is},
		{"negative streams", "[Generator]\nStreams = -1\n", ErrInvalidStreams.Is},
		{"bad seed", "[Generator]\nSeed = banana\n", ErrInvalidSeed.Is},
		{"bad strategy", "[Generator]\nStrategy = bogosort\n", fastperm.ErrUnknownStrategy.Is},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tc.input))
			require.Error(t, err)
			require.True(t, tc.is(err), "unexpected error kind: %v", err)
		})
	}
}

func TestParseSeed(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want uint64
	}{
		{"", 0},
		{"  ", 0},
		{"42", 42},
		{"0x2A", 42},
		{"0b101010", 42},
		{"0o52", 42},
		{"18_446_744_073_709_551_615", 1<<64 - 1},
	}
	for _, tc := range testCases {
		got, err := ParseSeed(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseSeed("-1")
	require.True(t, ErrInvalidSeed.Is(err))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	c := Default()
	require.NoError(t, c.Validate())

	c.Period = 1
	require.NoError(t, c.Validate())

	c.Streams = MaxStreams
	require.NoError(t, c.Validate())

	c.Cycles = MaxCycles
	require.NoError(t, c.Validate())

	c.Cycles = MaxCycles + 1
	require.True(t, ErrInvalidCycles.Is(c.Validate()))

	c.Cycles = -3
	require.True(t, ErrInvalidCycles.Is(c.Validate()))
}
