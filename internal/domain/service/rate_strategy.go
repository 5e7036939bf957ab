package service

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// RateStrategy selects the simulated annual rate a lender would quote. The
// strategy is injected so batch generation is deterministic under test.
type RateStrategy interface {
	AnnualRatePercent(lenderKey string) decimal.Decimal
}

// RateStrategyFunc adapts a plain function to the RateStrategy interface.
type RateStrategyFunc func(lenderKey string) decimal.Decimal

func (f RateStrategyFunc) AnnualRatePercent(lenderKey string) decimal.Decimal {
	return f(lenderKey)
}

// RandomRateStrategy samples annual rates uniformly from 1.000% to 20.000%
// in 0.001 steps. The caller supplies the seeded source.
type RandomRateStrategy struct {
	rng *rand.Rand
}

// NewRandomRateStrategy builds a strategy around the given random source.
func NewRandomRateStrategy(rng *rand.Rand) *RandomRateStrategy {
	return &RandomRateStrategy{rng: rng}
}

func (s *RandomRateStrategy) AnnualRatePercent(string) decimal.Decimal {
	// 1000..20000 thousandths of a percent.
	return decimal.New(int64(1000+s.rng.Intn(19001)), -3)
}
