package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/biglittle/lending/internal/application/dto"
	"github.com/biglittle/lending/internal/domain/port"
	"github.com/biglittle/lending/internal/domain/valueobject"
)

// maxReplaceAttempts bounds the read-mutate-write retry loop on concurrent
// payments for the same borrower.
const maxReplaceAttempts = 3

// ProcessPaymentUseCase applies an incoming payment to the borrower's loan.
//
// The ledger itself is pure; each attempt re-reads the loan, re-runs the
// ledger against the fresh copy, and replaces the document only if its
// version is unchanged since the read. A version conflict discards the
// in-memory mutation and retries the whole cycle. Notifications go out only
// after a confirmed write.
type ProcessPaymentUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewProcessPaymentUseCase wires dependencies.
func NewProcessPaymentUseCase(
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *ProcessPaymentUseCase {
	return &ProcessPaymentUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute processes one payment against the borrower's schedule.
func (uc *ProcessPaymentUseCase) Execute(
	ctx context.Context,
	req dto.ProcessPaymentRequest,
) (dto.PaymentResponse, error) {
	var lastErr error

	for attempt := 1; attempt <= maxReplaceAttempts; attempt++ {
		loan, err := uc.loanRepo.FindByBorrowerKey(ctx, req.BorrowerKey)
		if err != nil {
			return dto.PaymentResponse{}, fmt.Errorf("find loan for borrower %s: %w", req.BorrowerKey, err)
		}

		updated, outcome, err := loan.ApplyPayment(req.Amount, time.Now().UTC())
		if err != nil {
			return dto.PaymentResponse{}, fmt.Errorf("apply payment of %s for borrower %s: %w", req.Amount, req.BorrowerKey, err)
		}

		if outcome.Equal(valueobject.LedgerOutcomeNoPendingInstallment) {
			// Already settled: nothing written, nothing announced.
			return dto.PaymentResponse{
				BorrowerKey:        loan.BorrowerKey(),
				LoanKey:            loan.LoanKey(),
				Outcome:            outcome.String(),
				AmountPaid:         req.Amount,
				OverpaymentBalance: loan.OverpaymentBalance(),
				Settled:            true,
			}, nil
		}

		if err := uc.loanRepo.ReplaceIfUnchanged(ctx, updated); err != nil {
			if errors.Is(err, port.ErrVersionConflict) {
				lastErr = err
				uc.logger.Info("concurrent update detected, retrying payment",
					"borrower_key", req.BorrowerKey,
					"attempt", attempt,
				)
				continue
			}
			return dto.PaymentResponse{}, fmt.Errorf("replace loan for borrower %s: %w", req.BorrowerKey, err)
		}

		publishBestEffort(ctx, uc.publisher, uc.logger, updated.DomainEvents())

		return dto.PaymentResponse{
			BorrowerKey:        updated.BorrowerKey(),
			LoanKey:            updated.LoanKey(),
			Outcome:            outcome.String(),
			AmountPaid:         req.Amount,
			OverpaymentBalance: updated.OverpaymentBalance(),
			Settled:            updated.Settled(),
		}, nil
	}

	return dto.PaymentResponse{}, fmt.Errorf(
		"process payment for borrower %s: %d attempts exhausted: %w",
		req.BorrowerKey, maxReplaceAttempts, lastErr,
	)
}
