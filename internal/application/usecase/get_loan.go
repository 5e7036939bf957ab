package usecase

import (
	"context"
	"fmt"

	"github.com/biglittle/lending/internal/application/dto"
	"github.com/biglittle/lending/internal/domain/port"
)

// GetLoanUseCase retrieves a borrower's loan.
type GetLoanUseCase struct {
	loanRepo port.LoanRepository
}

// NewGetLoanUseCase wires dependencies.
func NewGetLoanUseCase(loanRepo port.LoanRepository) *GetLoanUseCase {
	return &GetLoanUseCase{loanRepo: loanRepo}
}

// Execute returns the loan for the given borrower key.
func (uc *GetLoanUseCase) Execute(
	ctx context.Context,
	req dto.GetLoanRequest,
) (dto.LoanResponse, error) {
	loan, err := uc.loanRepo.FindByBorrowerKey(ctx, req.BorrowerKey)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan for borrower %s: %w", req.BorrowerKey, err)
	}
	return toLoanResponse(loan), nil
}
