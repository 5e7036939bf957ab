package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biglittle/lending/internal/application/dto"
	"github.com/biglittle/lending/internal/application/usecase"
	"github.com/biglittle/lending/internal/domain/service"
)

func TestSimulateProposals_Execute(t *testing.T) {
	fixedRates := map[string]decimal.Decimal{
		"lender-1": decimal.NewFromInt(5),
		"lender-2": decimal.NewFromInt(10),
	}
	strategy := service.RateStrategyFunc(func(lenderKey string) decimal.Decimal {
		return fixedRates[lenderKey]
	})

	t.Run("returns one proposal per lender", func(t *testing.T) {
		uc := usecase.NewSimulateProposalsUseCase(service.NewProposalSimulator(strategy))

		resp, err := uc.Execute(context.Background(), dto.SimulateProposalsRequest{
			Principal:   decimal.NewFromInt(50000),
			NumPayments: 36,
			Currency:    "USD",
			BorrowerKey: "borrower-1",
			Lenders: []dto.CounterpartyRequest{
				{Key: "lender-1", Name: "First Lender", Business: "retail"},
				{Key: "lender-2", Name: "Second Lender", Business: "commercial"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "borrower-1", resp.BorrowerKey)
		require.Len(t, resp.Proposals, 2)

		cheap := resp.Proposals["lender-1"]
		dear := resp.Proposals["lender-2"]
		assert.True(t, decimal.NewFromInt(5).Equal(cheap.AnnualRatePercent))
		assert.True(t, decimal.NewFromInt(10).Equal(dear.AnnualRatePercent))
		assert.True(t, cheap.MonthlyPayment.LessThan(dear.MonthlyPayment))
		assert.Len(t, cheap.Payments, 36)
		assert.Empty(t, cheap.LoanKey)
	})

	t.Run("is deterministic for a fixed strategy", func(t *testing.T) {
		uc := usecase.NewSimulateProposalsUseCase(service.NewProposalSimulator(strategy))

		req := dto.SimulateProposalsRequest{
			Principal:   decimal.NewFromInt(50000),
			NumPayments: 36,
			Currency:    "USD",
			BorrowerKey: "borrower-1",
			Lenders:     []dto.CounterpartyRequest{{Key: "lender-1", Name: "First Lender", Business: "retail"}},
		}
		first, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.True(t, first.Proposals["lender-1"].MonthlyPayment.Equal(second.Proposals["lender-1"].MonthlyPayment))
	})

	t.Run("fails when any lender's proposal is invalid", func(t *testing.T) {
		uc := usecase.NewSimulateProposalsUseCase(service.NewProposalSimulator(strategy))

		_, err := uc.Execute(context.Background(), dto.SimulateProposalsRequest{
			Principal:   decimal.NewFromInt(-1),
			NumPayments: 36,
			Currency:    "USD",
			BorrowerKey: "borrower-1",
			Lenders:     []dto.CounterpartyRequest{{Key: "lender-1"}},
		})

		require.Error(t, err)
	})

	t.Run("returns an empty map for no lenders", func(t *testing.T) {
		uc := usecase.NewSimulateProposalsUseCase(service.NewProposalSimulator(strategy))

		resp, err := uc.Execute(context.Background(), dto.SimulateProposalsRequest{
			Principal:   decimal.NewFromInt(50000),
			NumPayments: 36,
			Currency:    "USD",
			BorrowerKey: "borrower-1",
		})

		require.NoError(t, err)
		assert.Empty(t, resp.Proposals)
	})
}
