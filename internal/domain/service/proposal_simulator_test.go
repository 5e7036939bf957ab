package service_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biglittle/lending/internal/domain/service"
)

var simTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestProposalSimulator_OneProposalPerLender(t *testing.T) {
	strategy := service.RateStrategyFunc(func(lenderKey string) decimal.Decimal {
		if lenderKey == "lender-1" {
			return decimal.NewFromInt(5)
		}
		return decimal.NewFromInt(10)
	})
	sim := service.NewProposalSimulator(strategy)

	proposals, err := sim.SimulateProposals(
		decimal.NewFromInt(50000), 36, "USD", "borrower-1",
		[]service.Counterparty{
			{Key: "lender-1", Name: "First Lender", Business: "retail"},
			{Key: "lender-2", Name: "Second Lender", Business: "commercial"},
		},
		simTime,
	)
	require.NoError(t, err)
	require.Len(t, proposals, 2)

	cheap, ok := proposals["lender-1"]
	require.True(t, ok)
	dear, ok := proposals["lender-2"]
	require.True(t, ok)

	assert.Equal(t, "borrower-1", cheap.BorrowerKey())
	assert.Equal(t, "First Lender", cheap.LenderName())
	assert.True(t, decimal.NewFromInt(5).Equal(cheap.Info().AnnualRatePercent))
	assert.True(t, decimal.NewFromInt(10).Equal(dear.Info().AnnualRatePercent))
	assert.True(t, cheap.Info().MonthlyPayment.LessThan(dear.Info().MonthlyPayment))

	// Proposals differ only in rate-derived fields.
	assert.True(t, cheap.Info().Principal.Equal(dear.Info().Principal))
	assert.Equal(t, cheap.Info().NumPayments, dear.Info().NumPayments)
}

func TestProposalSimulator_IndependentSchedules(t *testing.T) {
	strategy := service.RateStrategyFunc(func(string) decimal.Decimal {
		return decimal.NewFromInt(5)
	})
	sim := service.NewProposalSimulator(strategy)

	proposals, err := sim.SimulateProposals(
		decimal.NewFromInt(1200), 12, "USD", "borrower-1",
		[]service.Counterparty{{Key: "lender-1"}, {Key: "lender-2"}},
		simTime,
	)
	require.NoError(t, err)

	first := proposals["lender-1"].Payments()
	first[0].AmountPaid = decimal.NewFromInt(999)

	assert.True(t, proposals["lender-2"].Payments()[0].AmountPaid.IsZero())
}

func TestProposalSimulator_PropagatesInvalidTerms(t *testing.T) {
	strategy := service.RateStrategyFunc(func(string) decimal.Decimal {
		return decimal.NewFromInt(5)
	})
	sim := service.NewProposalSimulator(strategy)

	_, err := sim.SimulateProposals(
		decimal.Zero, 12, "USD", "borrower-1",
		[]service.Counterparty{{Key: "lender-1"}},
		simTime,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lender-1")
}

func TestRandomRateStrategy_Range(t *testing.T) {
	strategy := service.NewRandomRateStrategy(rand.New(rand.NewSource(42)))

	min := decimal.NewFromInt(1)
	max := decimal.NewFromInt(20)
	for i := 0; i < 1000; i++ {
		rate := strategy.AnnualRatePercent("lender-1")
		assert.True(t, rate.GreaterThanOrEqual(min), "rate %s below 1.000", rate)
		assert.True(t, rate.LessThanOrEqual(max), "rate %s above 20.000", rate)
		assert.True(t, rate.Mul(decimal.NewFromInt(1000)).IsInteger(), "rate %s not a 0.001 step", rate)
	}
}

func TestRandomRateStrategy_SeededDeterminism(t *testing.T) {
	a := service.NewRandomRateStrategy(rand.New(rand.NewSource(7)))
	b := service.NewRandomRateStrategy(rand.New(rand.NewSource(7)))

	for i := 0; i < 100; i++ {
		assert.True(t, a.AnnualRatePercent("x").Equal(b.AnnualRatePercent("x")))
	}
}
