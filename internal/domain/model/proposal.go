package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/biglittle/lending/internal/domain/valueobject"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// NewProposal builds a loan proposal from principal, term and annual rate.
//
// The fixed monthly payment follows the standard amortization formula
//
//	J = annualRatePercent / 100 / 12
//	M = P * J * (1+J)^N / ((1+J)^N - 1)
//
// computed entirely in exact decimal arithmetic; the exponent is an integer
// so no floating-point power is involved. A zero annual rate takes the
// simple-interest branch M = P / N, where the formula above is undefined.
//
// Every installment is created PENDING with amountDue equal to the monthly
// payment. For zero-rate loans the final installment absorbs the division
// remainder so the schedule sums exactly to the principal; rated loans keep
// all installments equal to the full-precision fixed payment.
//
// The proposal has no loan key yet; AssignKey sets it before first insert.
func NewProposal(
	principal decimal.Decimal,
	numPayments int,
	annualRatePercent decimal.Decimal,
	currency, borrowerKey, lenderKey, lenderName, lenderBusiness string,
	now time.Time,
) (Loan, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return Loan{}, fmt.Errorf("%w: principal %s must be positive", ErrInvalidProposalInput, principal)
	}
	if numPayments < 1 {
		return Loan{}, fmt.Errorf("%w: number of payments %d must be at least 1", ErrInvalidProposalInput, numPayments)
	}
	if annualRatePercent.IsNegative() {
		return Loan{}, fmt.Errorf("%w: annual rate %s must not be negative", ErrInvalidProposalInput, annualRatePercent)
	}
	if currency == "" {
		return Loan{}, fmt.Errorf("%w: currency is required", ErrInvalidProposalInput)
	}
	if borrowerKey == "" {
		return Loan{}, fmt.Errorf("%w: borrower key is required", ErrInvalidProposalInput)
	}
	if lenderKey == "" {
		return Loan{}, fmt.Errorf("%w: lender key is required", ErrInvalidProposalInput)
	}

	n := decimal.NewFromInt(int64(numPayments))
	effectiveRate := annualRatePercent.Div(hundred).Div(twelve)

	var monthly decimal.Decimal
	if annualRatePercent.IsZero() {
		monthly = principal.Div(n)
	} else {
		pow := one.Add(effectiveRate).Pow(n)
		monthly = principal.Mul(effectiveRate).Mul(pow).Div(pow.Sub(one))
	}

	payments := make([]Payment, numPayments)
	for i := range payments {
		payments[i] = Payment{
			Period:     i + 1,
			AmountDue:  monthly,
			AmountPaid: decimal.Zero,
			Status:     valueobject.PaymentStatusPending,
		}
	}
	if annualRatePercent.IsZero() && numPayments > 1 {
		settled := monthly.Mul(decimal.NewFromInt(int64(numPayments - 1)))
		payments[numPayments-1].AmountDue = principal.Sub(settled)
	}

	created := now.UTC()
	return Loan{
		borrowerKey:    borrowerKey,
		lenderKey:      lenderKey,
		lenderName:     lenderName,
		lenderBusiness: lenderBusiness,
		info: LoanInfo{
			Principal:         principal,
			NumPayments:       numPayments,
			AnnualRatePercent: annualRatePercent,
			EffectiveRate:     effectiveRate,
			Currency:          currency,
			MonthlyPayment:    monthly,
		},
		payments:    payments,
		overpayment: decimal.Zero,
		version:     1,
		createdAt:   created,
		updatedAt:   created,
	}, nil
}
