package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biglittle/lending/internal/application/dto"
	"github.com/biglittle/lending/internal/application/usecase"
	"github.com/biglittle/lending/internal/domain/event"
	"github.com/biglittle/lending/internal/domain/model"
)

func validOpenLoanRequest() dto.OpenLoanRequest {
	return dto.OpenLoanRequest{
		Principal:         decimal.NewFromInt(10000),
		NumPayments:       12,
		AnnualRatePercent: decimal.NewFromInt(12),
		Currency:          "USD",
		BorrowerKey:       "borrower-1",
		LenderKey:         "lender-1",
		LenderName:        "First Lender",
		LenderBusiness:    "retail",
	}
}

func TestOpenLoan_Execute(t *testing.T) {
	t.Run("keys and inserts an accepted proposal", func(t *testing.T) {
		repo := &mockLoanRepository{}
		publisher := &mockEventPublisher{}

		uc := usecase.NewOpenLoanUseCase(repo, publisher, testLogger())

		resp, err := uc.Execute(context.Background(), validOpenLoanRequest())

		require.NoError(t, err)
		today := time.Now().UTC().Format("20060102")
		assert.Equal(t, "borrower-1_lender-1_"+today, resp.LoanKey)
		assert.Len(t, resp.Payments, 12)
		assert.False(t, resp.Settled)

		require.NotNil(t, repo.insertedLoan)
		assert.Equal(t, resp.LoanKey, repo.insertedLoan.LoanKey())

		assert.Eventually(t, func() bool {
			return len(publisher.events()) == 1
		}, time.Second, 10*time.Millisecond)
		assert.Equal(t, "LOAN_OPENED", publisher.events()[0].EventType())
	})

	t.Run("fails on invalid proposal terms", func(t *testing.T) {
		repo := &mockLoanRepository{}
		publisher := &mockEventPublisher{}

		uc := usecase.NewOpenLoanUseCase(repo, publisher, testLogger())

		req := validOpenLoanRequest()
		req.Principal = decimal.Zero
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidProposalInput)
		assert.Nil(t, repo.insertedLoan)
		assert.Empty(t, publisher.events())
	})

	t.Run("fails when the insert fails", func(t *testing.T) {
		repo := &mockLoanRepository{
			insertFunc: func(_ context.Context, _ model.Loan) error {
				return fmt.Errorf("database unavailable")
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewOpenLoanUseCase(repo, publisher, testLogger())

		_, err := uc.Execute(context.Background(), validOpenLoanRequest())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "database unavailable")
		assert.Empty(t, publisher.events())
	})

	t.Run("succeeds even when publishing fails", func(t *testing.T) {
		repo := &mockLoanRepository{}
		publisher := &mockEventPublisher{
			publishFunc: func(_ context.Context, _ ...event.DomainEvent) error {
				return fmt.Errorf("kafka unavailable")
			},
		}

		uc := usecase.NewOpenLoanUseCase(repo, publisher, testLogger())

		resp, err := uc.Execute(context.Background(), validOpenLoanRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, resp.LoanKey)
		require.NotNil(t, repo.insertedLoan)
	})
}
