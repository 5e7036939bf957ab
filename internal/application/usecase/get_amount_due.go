package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/biglittle/lending/internal/application/dto"
	"github.com/biglittle/lending/internal/domain/port"
)

// GetAmountDueUseCase answers the recurring monthly amount a borrower owes.
// Results are served from the cache when present; on a miss the loan is
// loaded and the amount written back best-effort.
type GetAmountDueUseCase struct {
	loanRepo port.LoanRepository
	cache    port.AmountDueCache
	logger   *slog.Logger
}

// NewGetAmountDueUseCase wires dependencies.
func NewGetAmountDueUseCase(
	loanRepo port.LoanRepository,
	cache port.AmountDueCache,
	logger *slog.Logger,
) *GetAmountDueUseCase {
	return &GetAmountDueUseCase{loanRepo: loanRepo, cache: cache, logger: logger}
}

// Execute returns the borrower's monthly payment, or zero when the borrower
// has no loan on file.
func (uc *GetAmountDueUseCase) Execute(
	ctx context.Context,
	req dto.GetAmountDueRequest,
) (dto.AmountDueResponse, error) {
	if uc.cache != nil {
		if amount, ok := uc.cache.Get(ctx, req.BorrowerKey); ok {
			return dto.AmountDueResponse{
				BorrowerKey: req.BorrowerKey,
				AmountDue:   amount,
			}, nil
		}
	}

	loan, err := uc.loanRepo.FindByBorrowerKey(ctx, req.BorrowerKey)
	if err != nil {
		if errors.Is(err, port.ErrLoanNotFound) {
			return dto.AmountDueResponse{
				BorrowerKey: req.BorrowerKey,
				AmountDue:   decimal.Zero,
			}, nil
		}
		return dto.AmountDueResponse{}, fmt.Errorf("find loan for borrower %s: %w", req.BorrowerKey, err)
	}

	amount := loan.Info().MonthlyPayment
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, req.BorrowerKey, amount); err != nil {
			uc.logger.WarnContext(ctx, "failed to cache amount due",
				slog.String("borrower_key", req.BorrowerKey),
				slog.Any("error", err))
		}
	}

	return dto.AmountDueResponse{
		BorrowerKey: req.BorrowerKey,
		AmountDue:   amount,
	}, nil
}
