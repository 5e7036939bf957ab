package usecase_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biglittle/lending/internal/application/dto"
	"github.com/biglittle/lending/internal/application/usecase"
	"github.com/biglittle/lending/internal/domain/event"
	"github.com/biglittle/lending/internal/domain/model"
	"github.com/biglittle/lending/internal/domain/port"
)

// --- Mock implementations ---

type mockLoanRepository struct {
	insertedLoan *model.Loan
	replacedLoan *model.Loan
	insertFunc   func(ctx context.Context, loan model.Loan) error
	findFunc     func(ctx context.Context, borrowerKey string) (model.Loan, error)
	replaceFunc  func(ctx context.Context, loan model.Loan) error
}

func (m *mockLoanRepository) Insert(ctx context.Context, loan model.Loan) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, loan)
	}
	m.insertedLoan = &loan
	return nil
}

func (m *mockLoanRepository) FindByBorrowerKey(ctx context.Context, borrowerKey string) (model.Loan, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, borrowerKey)
	}
	return model.Loan{}, port.ErrLoanNotFound
}

func (m *mockLoanRepository) ReplaceIfUnchanged(ctx context.Context, loan model.Loan) error {
	if m.replaceFunc != nil {
		return m.replaceFunc(ctx, loan)
	}
	m.replacedLoan = &loan
	return nil
}

// mockEventPublisher is safe for concurrent use; publishing happens on a
// background goroutine after the write is confirmed.
type mockEventPublisher struct {
	mu              sync.Mutex
	publishedEvents []event.DomainEvent
	publishFunc     func(ctx context.Context, evts ...event.DomainEvent) error
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

func (m *mockEventPublisher) events() []event.DomainEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]event.DomainEvent, len(m.publishedEvents))
	copy(out, m.publishedEvents)
	return out
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// openTestLoan builds a persisted-looking loan with a zero rate so amounts
// stay round: 1200 over 12 payments of 100.
func openTestLoan(t *testing.T) model.Loan {
	t.Helper()
	loan, err := model.NewProposal(
		decimal.NewFromInt(1200), 12, decimal.Zero, "USD",
		"borrower-1", "lender-1", "First Lender", "retail",
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	loan, err = loan.AssignKey(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return loan.ClearEvents()
}

func settledTestLoan(t *testing.T) model.Loan {
	t.Helper()
	loan := openTestLoan(t)
	for i := 0; i < 12; i++ {
		var err error
		loan, _, err = loan.ApplyPayment(decimal.NewFromInt(100), time.Now().UTC())
		require.NoError(t, err)
	}
	return loan.ClearEvents()
}

// --- Tests ---

func TestProcessPayment_Execute(t *testing.T) {
	t.Run("applies an exact payment to the first pending installment", func(t *testing.T) {
		loan := openTestLoan(t)
		repo := &mockLoanRepository{
			findFunc: func(_ context.Context, _ string) (model.Loan, error) {
				return loan, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewProcessPaymentUseCase(repo, publisher, testLogger())

		resp, err := uc.Execute(context.Background(), dto.ProcessPaymentRequest{
			BorrowerKey: "borrower-1",
			Amount:      decimal.NewFromInt(100),
		})

		require.NoError(t, err)
		assert.Equal(t, "APPLIED", resp.Outcome)
		assert.Equal(t, "borrower-1", resp.BorrowerKey)
		assert.True(t, resp.OverpaymentBalance.IsZero())
		assert.False(t, resp.Settled)

		require.NotNil(t, repo.replacedLoan)
		payments := repo.replacedLoan.Payments()
		assert.Equal(t, "RECEIVED", payments[0].Status.String())
		assert.True(t, decimal.NewFromInt(100).Equal(payments[0].AmountPaid))
		assert.Equal(t, "PENDING", payments[1].Status.String())

		assert.Eventually(t, func() bool {
			return len(publisher.events()) == 1
		}, time.Second, 10*time.Millisecond)
		assert.Equal(t, "LOAN_PAYMENT_APPLIED", publisher.events()[0].EventType())
	})

	t.Run("banks an overpayment surplus as credit", func(t *testing.T) {
		loan := openTestLoan(t)
		repo := &mockLoanRepository{
			findFunc: func(_ context.Context, _ string) (model.Loan, error) {
				return loan, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewProcessPaymentUseCase(repo, publisher, testLogger())

		resp, err := uc.Execute(context.Background(), dto.ProcessPaymentRequest{
			BorrowerKey: "borrower-1",
			Amount:      decimal.NewFromInt(150),
		})

		require.NoError(t, err)
		assert.Equal(t, "APPLIED", resp.Outcome)
		assert.True(t, decimal.NewFromInt(50).Equal(resp.OverpaymentBalance))

		require.NotNil(t, repo.replacedLoan)
		// The installment settles for exactly its due amount.
		assert.True(t, decimal.NewFromInt(100).Equal(repo.replacedLoan.Payments()[0].AmountPaid))
	})

	t.Run("defers an underpayment and leaves the installment pending", func(t *testing.T) {
		loan := openTestLoan(t)
		repo := &mockLoanRepository{
			findFunc: func(_ context.Context, _ string) (model.Loan, error) {
				return loan, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewProcessPaymentUseCase(repo, publisher, testLogger())

		resp, err := uc.Execute(context.Background(), dto.ProcessPaymentRequest{
			BorrowerKey: "borrower-1",
			Amount:      decimal.NewFromInt(40),
		})

		require.NoError(t, err)
		assert.Equal(t, "DEFERRED", resp.Outcome)
		assert.True(t, decimal.NewFromInt(40).Equal(resp.OverpaymentBalance))

		require.NotNil(t, repo.replacedLoan)
		payments := repo.replacedLoan.Payments()
		assert.Equal(t, "PENDING", payments[0].Status.String())
		assert.True(t, payments[0].AmountPaid.IsZero())

		assert.Eventually(t, func() bool {
			return len(publisher.events()) == 1
		}, time.Second, 10*time.Millisecond)
		assert.Equal(t, "LOAN_PAYMENT_DEFERRED", publisher.events()[0].EventType())
	})

	t.Run("reports a settled loan without writing or publishing", func(t *testing.T) {
		loan := settledTestLoan(t)
		repo := &mockLoanRepository{
			findFunc: func(_ context.Context, _ string) (model.Loan, error) {
				return loan, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewProcessPaymentUseCase(repo, publisher, testLogger())

		resp, err := uc.Execute(context.Background(), dto.ProcessPaymentRequest{
			BorrowerKey: "borrower-1",
			Amount:      decimal.NewFromInt(100),
		})

		require.NoError(t, err)
		assert.Equal(t, "NO_PENDING_INSTALLMENT", resp.Outcome)
		assert.True(t, resp.Settled)
		assert.Nil(t, repo.replacedLoan)
		assert.Empty(t, publisher.events())
	})

	t.Run("publishes the settled event on the final payment", func(t *testing.T) {
		loan := openTestLoan(t)
		for i := 0; i < 11; i++ {
			var err error
			loan, _, err = loan.ApplyPayment(decimal.NewFromInt(100), time.Now().UTC())
			require.NoError(t, err)
		}
		loan = loan.ClearEvents()

		repo := &mockLoanRepository{
			findFunc: func(_ context.Context, _ string) (model.Loan, error) {
				return loan, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewProcessPaymentUseCase(repo, publisher, testLogger())

		resp, err := uc.Execute(context.Background(), dto.ProcessPaymentRequest{
			BorrowerKey: "borrower-1",
			Amount:      decimal.NewFromInt(100),
		})

		require.NoError(t, err)
		assert.Equal(t, "APPLIED", resp.Outcome)
		assert.True(t, resp.Settled)

		assert.Eventually(t, func() bool {
			return len(publisher.events()) == 2
		}, time.Second, 10*time.Millisecond)
		evts := publisher.events()
		assert.Equal(t, "LOAN_PAYMENT_APPLIED", evts[0].EventType())
		assert.Equal(t, "LOAN_SETTLED", evts[1].EventType())
	})

	t.Run("retries once on a version conflict and succeeds", func(t *testing.T) {
		loan := openTestLoan(t)
		repo := &mockLoanRepository{
			findFunc: func(_ context.Context, _ string) (model.Loan, error) {
				return loan, nil
			},
		}
		replaceCalls := 0
		repo.replaceFunc = func(_ context.Context, l model.Loan) error {
			replaceCalls++
			if replaceCalls == 1 {
				return port.ErrVersionConflict
			}
			repo.replacedLoan = &l
			return nil
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewProcessPaymentUseCase(repo, publisher, testLogger())

		resp, err := uc.Execute(context.Background(), dto.ProcessPaymentRequest{
			BorrowerKey: "borrower-1",
			Amount:      decimal.NewFromInt(100),
		})

		require.NoError(t, err)
		assert.Equal(t, "APPLIED", resp.Outcome)
		assert.Equal(t, 2, replaceCalls)
		require.NotNil(t, repo.replacedLoan)
	})

	t.Run("gives up after exhausting conflict retries", func(t *testing.T) {
		loan := openTestLoan(t)
		repo := &mockLoanRepository{
			findFunc: func(_ context.Context, _ string) (model.Loan, error) {
				return loan, nil
			},
			replaceFunc: func(_ context.Context, _ model.Loan) error {
				return port.ErrVersionConflict
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewProcessPaymentUseCase(repo, publisher, testLogger())

		_, err := uc.Execute(context.Background(), dto.ProcessPaymentRequest{
			BorrowerKey: "borrower-1",
			Amount:      decimal.NewFromInt(100),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, port.ErrVersionConflict)
		assert.Contains(t, err.Error(), "attempts exhausted")
		assert.Empty(t, publisher.events())
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		loan := openTestLoan(t)
		repo := &mockLoanRepository{
			findFunc: func(_ context.Context, _ string) (model.Loan, error) {
				return loan, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewProcessPaymentUseCase(repo, publisher, testLogger())

		_, err := uc.Execute(context.Background(), dto.ProcessPaymentRequest{
			BorrowerKey: "borrower-1",
			Amount:      decimal.Zero,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidPaymentAmount)
		assert.Nil(t, repo.replacedLoan)
	})

	t.Run("fails when the borrower has no loan", func(t *testing.T) {
		repo := &mockLoanRepository{}
		publisher := &mockEventPublisher{}

		uc := usecase.NewProcessPaymentUseCase(repo, publisher, testLogger())

		_, err := uc.Execute(context.Background(), dto.ProcessPaymentRequest{
			BorrowerKey: "nobody",
			Amount:      decimal.NewFromInt(100),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, port.ErrLoanNotFound)
	})

	t.Run("fails on a non-conflict replace error without retrying", func(t *testing.T) {
		loan := openTestLoan(t)
		replaceCalls := 0
		repo := &mockLoanRepository{
			findFunc: func(_ context.Context, _ string) (model.Loan, error) {
				return loan, nil
			},
			replaceFunc: func(_ context.Context, _ model.Loan) error {
				replaceCalls++
				return fmt.Errorf("database unavailable")
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewProcessPaymentUseCase(repo, publisher, testLogger())

		_, err := uc.Execute(context.Background(), dto.ProcessPaymentRequest{
			BorrowerKey: "borrower-1",
			Amount:      decimal.NewFromInt(100),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "database unavailable")
		assert.Equal(t, 1, replaceCalls)
	})
}
