package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/biglittle/lending/internal/application/dto"
	"github.com/biglittle/lending/internal/domain/model"
	"github.com/biglittle/lending/internal/domain/port"
)

// OpenLoanUseCase turns an accepted proposal into an active loan: the loan
// key is derived, the document inserted, and LOAN_OPENED announced.
type OpenLoanUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewOpenLoanUseCase wires dependencies.
func NewOpenLoanUseCase(
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *OpenLoanUseCase {
	return &OpenLoanUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute rebuilds the proposal from the accepted terms, keys it and persists it.
func (uc *OpenLoanUseCase) Execute(
	ctx context.Context,
	req dto.OpenLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	loan, err := model.NewProposal(
		req.Principal, req.NumPayments, req.AnnualRatePercent, req.Currency,
		req.BorrowerKey, req.LenderKey, req.LenderName, req.LenderBusiness,
		now,
	)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("build proposal for borrower %s: %w", req.BorrowerKey, err)
	}

	loan, err = loan.AssignKey(now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("assign loan key: %w", err)
	}

	if err := uc.loanRepo.Insert(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("insert loan %s: %w", loan.LoanKey(), err)
	}

	publishBestEffort(ctx, uc.publisher, uc.logger, loan.DomainEvents())

	return toLoanResponse(loan), nil
}
