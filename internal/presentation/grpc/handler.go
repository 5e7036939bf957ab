package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/biglittle/lending/internal/application/dto"
	"github.com/biglittle/lending/internal/application/usecase"
	"github.com/biglittle/lending/internal/domain/model"
	"github.com/biglittle/lending/internal/domain/port"
)

// LoanHandler implements LoanServiceServer on top of the application
// use cases. Decimal strings are parsed here; everything past this boundary
// operates on exact decimals.
type LoanHandler struct {
	UnimplementedLoanServiceServer

	propose      *usecase.ProposeLoanUseCase
	simulate     *usecase.SimulateProposalsUseCase
	open         *usecase.OpenLoanUseCase
	payment      *usecase.ProcessPaymentUseCase
	getLoan      *usecase.GetLoanUseCase
	getAmountDue *usecase.GetAmountDueUseCase
}

// NewLoanHandler creates a new handler with all use-case dependencies.
func NewLoanHandler(
	propose *usecase.ProposeLoanUseCase,
	simulate *usecase.SimulateProposalsUseCase,
	open *usecase.OpenLoanUseCase,
	payment *usecase.ProcessPaymentUseCase,
	getLoan *usecase.GetLoanUseCase,
	getAmountDue *usecase.GetAmountDueUseCase,
) *LoanHandler {
	return &LoanHandler{
		propose:      propose,
		simulate:     simulate,
		open:         open,
		payment:      payment,
		getLoan:      getLoan,
		getAmountDue: getAmountDue,
	}
}

// ProposeLoan computes a single amortization proposal.
func (h *LoanHandler) ProposeLoan(ctx context.Context, req *ProposeLoanRequest) (*ProposeLoanResponse, error) {
	principal, err := decimal.NewFromString(req.Principal)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid principal: %v", err)
	}
	rate, err := decimal.NewFromString(req.AnnualRatePercent)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid annual rate: %v", err)
	}

	resp, err := h.propose.Execute(ctx, dto.ProposeLoanRequest{
		Principal:         principal,
		NumPayments:       req.NumPayments,
		AnnualRatePercent: rate,
		Currency:          req.Currency,
		BorrowerKey:       req.BorrowerKey,
		LenderKey:         req.LenderKey,
		LenderName:        req.LenderName,
		LenderBusiness:    req.LenderBusiness,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ProposeLoanResponse{Loan: toWireLoan(resp)}, nil
}

// SimulateProposals produces one competing proposal per lender.
func (h *LoanHandler) SimulateProposals(ctx context.Context, req *SimulateProposalsRequest) (*SimulateProposalsResponse, error) {
	principal, err := decimal.NewFromString(req.Principal)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid principal: %v", err)
	}

	lenders := make([]dto.CounterpartyRequest, len(req.Lenders))
	for i, l := range req.Lenders {
		lenders[i] = dto.CounterpartyRequest{Key: l.Key, Name: l.Name, Business: l.Business}
	}

	resp, err := h.simulate.Execute(ctx, dto.SimulateProposalsRequest{
		Principal:   principal,
		NumPayments: req.NumPayments,
		Currency:    req.Currency,
		BorrowerKey: req.BorrowerKey,
		Lenders:     lenders,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	proposals := make(map[string]*Loan, len(resp.Proposals))
	for key, loan := range resp.Proposals {
		proposals[key] = toWireLoan(loan)
	}
	return &SimulateProposalsResponse{
		BorrowerKey: resp.BorrowerKey,
		Proposals:   proposals,
	}, nil
}

// OpenLoan persists an accepted proposal.
func (h *LoanHandler) OpenLoan(ctx context.Context, req *OpenLoanRequest) (*OpenLoanResponse, error) {
	principal, err := decimal.NewFromString(req.Principal)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid principal: %v", err)
	}
	rate, err := decimal.NewFromString(req.AnnualRatePercent)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid annual rate: %v", err)
	}

	resp, err := h.open.Execute(ctx, dto.OpenLoanRequest{
		Principal:         principal,
		NumPayments:       req.NumPayments,
		AnnualRatePercent: rate,
		Currency:          req.Currency,
		BorrowerKey:       req.BorrowerKey,
		LenderKey:         req.LenderKey,
		LenderName:        req.LenderName,
		LenderBusiness:    req.LenderBusiness,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &OpenLoanResponse{Loan: toWireLoan(resp)}, nil
}

// ProcessPayment applies one payment to the borrower's loan.
func (h *LoanHandler) ProcessPayment(ctx context.Context, req *ProcessPaymentRequest) (*ProcessPaymentResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount: %v", err)
	}

	resp, err := h.payment.Execute(ctx, dto.ProcessPaymentRequest{
		BorrowerKey: req.BorrowerKey,
		Amount:      amount,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ProcessPaymentResponse{
		BorrowerKey:        resp.BorrowerKey,
		LoanKey:            resp.LoanKey,
		Outcome:            resp.Outcome,
		AmountPaid:         resp.AmountPaid.String(),
		OverpaymentBalance: resp.OverpaymentBalance.String(),
		Settled:            resp.Settled,
	}, nil
}

// GetLoan retrieves the borrower's loan.
func (h *LoanHandler) GetLoan(ctx context.Context, req *GetLoanRequest) (*GetLoanResponse, error) {
	resp, err := h.getLoan.Execute(ctx, dto.GetLoanRequest{BorrowerKey: req.BorrowerKey})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &GetLoanResponse{Loan: toWireLoan(resp)}, nil
}

// GetAmountDue projects the borrower's recurring monthly amount.
func (h *LoanHandler) GetAmountDue(ctx context.Context, req *GetAmountDueRequest) (*GetAmountDueResponse, error) {
	resp, err := h.getAmountDue.Execute(ctx, dto.GetAmountDueRequest{BorrowerKey: req.BorrowerKey})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &GetAmountDueResponse{
		BorrowerKey: resp.BorrowerKey,
		AmountDue:   resp.AmountDue.String(),
	}, nil
}

func toWireLoan(resp dto.LoanResponse) *Loan {
	payments := make([]PaymentEntry, len(resp.Payments))
	for i, p := range resp.Payments {
		entry := PaymentEntry{
			Period:     p.Period,
			AmountDue:  p.AmountDue.String(),
			AmountPaid: p.AmountPaid.String(),
			Status:     p.Status,
		}
		if p.ReceivedAt != nil {
			entry.ReceivedAt = p.ReceivedAt.Format(time.RFC3339)
		}
		payments[i] = entry
	}

	return &Loan{
		BorrowerKey:        resp.BorrowerKey,
		LenderKey:          resp.LenderKey,
		LenderName:         resp.LenderName,
		LenderBusiness:     resp.LenderBusiness,
		LoanKey:            resp.LoanKey,
		Principal:          resp.Principal.String(),
		NumPayments:        resp.NumPayments,
		AnnualRatePercent:  resp.AnnualRatePercent.String(),
		EffectiveRate:      resp.EffectiveRate.String(),
		Currency:           resp.Currency,
		MonthlyPayment:     resp.MonthlyPayment.String(),
		OverpaymentBalance: resp.OverpaymentBalance.String(),
		Settled:            resp.Settled,
		Payments:           payments,
	}
}

func toStatusError(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidProposalInput), errors.Is(err, model.ErrInvalidPaymentAmount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrLoanKeyAssigned):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, port.ErrLoanNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, port.ErrVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
