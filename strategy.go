package fastperm

import (
	"strconv"
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.NewKind("unknown permutation strategy %q")

// Strategy names one of the Permutation implementations.
type Strategy uint8

// Available strategies.
const (
	StrategyShuffle Strategy = iota
	StrategyShuffleArray
	StrategyShuffleArrayIncremental
	StrategyBitScatter
)

var strategyNames = [...]string{
	StrategyShuffle:                 "shuffle",
	StrategyShuffleArray:            "shuffle-array",
	StrategyShuffleArrayIncremental: "shuffle-array-incremental",
	StrategyBitScatter:              "bitscatter",
}

// Strategies returns every available strategy.
func Strategies() []Strategy {
	return []Strategy{
		StrategyShuffle,
		StrategyShuffleArray,
		StrategyShuffleArrayIncremental,
		StrategyBitScatter,
	}
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return "Strategy(" + strconv.Itoa(int(s)) + ")"
}

// ParseStrategy returns the strategy with the given name. Matching ignores
// case, and underscores may be used in place of dashes.
func ParseStrategy(name string) (Strategy, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range strategyNames {
		if n == norm {
			return Strategy(i), nil
		}
	}
	return 0, ErrUnknownStrategy.New(name)
}

// New constructs a generator of strategy s over [0, n) drawing from src.
// It panics if n is out of range or s is not a known strategy.
func (s Strategy) New(src Source, n uint8) Permutation {
	switch s {
	case StrategyShuffle:
		return NewShuffle(src, n)
	case StrategyShuffleArray:
		return NewShuffleArray(src, n)
	case StrategyShuffleArrayIncremental:
		return NewShuffleArrayIncremental(src, n)
	case StrategyBitScatter:
		return NewBitScatter(src, n)
	}
	panic("fastperm: unknown strategy " + s.String())
}
