package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/biglittle/lending/internal/application/dto"
	"github.com/biglittle/lending/internal/domain/model"
)

// ProposeLoanUseCase computes a single amortization proposal. The proposal is
// not persisted; the borrower accepts it through OpenLoanUseCase.
type ProposeLoanUseCase struct{}

// NewProposeLoanUseCase wires dependencies.
func NewProposeLoanUseCase() *ProposeLoanUseCase {
	return &ProposeLoanUseCase{}
}

// Execute derives the effective rate and fixed monthly payment and returns
// the proposal with its full pending schedule.
func (uc *ProposeLoanUseCase) Execute(
	_ context.Context,
	req dto.ProposeLoanRequest,
) (dto.LoanResponse, error) {
	loan, err := model.NewProposal(
		req.Principal, req.NumPayments, req.AnnualRatePercent, req.Currency,
		req.BorrowerKey, req.LenderKey, req.LenderName, req.LenderBusiness,
		time.Now().UTC(),
	)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("propose loan for borrower %s: %w", req.BorrowerKey, err)
	}

	return toLoanResponse(loan), nil
}

func toLoanResponse(loan model.Loan) dto.LoanResponse {
	sched := loan.Payments()
	entries := make([]dto.PaymentEntryResponse, len(sched))
	for i, p := range sched {
		entries[i] = dto.PaymentEntryResponse{
			Period:     p.Period,
			AmountDue:  p.AmountDue,
			AmountPaid: p.AmountPaid,
			Status:     p.Status.String(),
			ReceivedAt: p.ReceivedAt,
		}
	}

	info := loan.Info()
	return dto.LoanResponse{
		BorrowerKey:        loan.BorrowerKey(),
		LenderKey:          loan.LenderKey(),
		LenderName:         loan.LenderName(),
		LenderBusiness:     loan.LenderBusiness(),
		LoanKey:            loan.LoanKey(),
		Principal:          info.Principal,
		NumPayments:        info.NumPayments,
		AnnualRatePercent:  info.AnnualRatePercent,
		EffectiveRate:      info.EffectiveRate,
		Currency:           info.Currency,
		MonthlyPayment:     info.MonthlyPayment,
		OverpaymentBalance: loan.OverpaymentBalance(),
		Settled:            loan.Settled(),
		Payments:           entries,
		CreatedAt:          loan.CreatedAt(),
		UpdatedAt:          loan.UpdatedAt(),
	}
}
