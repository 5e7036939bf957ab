package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/biglittle/lending/internal/domain/event"
	"github.com/biglittle/lending/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Loan aggregate root
// ---------------------------------------------------------------------------

// LoanInfo holds the immutable-once-created terms of a loan. EffectiveRate is
// the exact periodic rate; MonthlyPayment is derived at proposal time and
// never recomputed.
type LoanInfo struct {
	Principal         decimal.Decimal
	NumPayments       int
	AnnualRatePercent decimal.Decimal
	EffectiveRate     decimal.Decimal
	Currency          string
	MonthlyPayment    decimal.Decimal
}

// Loan is an immutable aggregate. Mutations return a new copy.
type Loan struct {
	borrowerKey    string
	lenderKey      string
	lenderName     string
	lenderBusiness string
	loanKey        string
	info           LoanInfo
	payments       []Payment
	overpayment    decimal.Decimal
	version        int
	createdAt      time.Time
	updatedAt      time.Time
	domainEvents   []event.DomainEvent
}

// ReconstructLoan rebuilds a Loan aggregate from persistence.
func ReconstructLoan(
	borrowerKey, lenderKey, lenderName, lenderBusiness, loanKey string,
	info LoanInfo,
	payments []Payment,
	overpayment decimal.Decimal,
	version int,
	createdAt, updatedAt time.Time,
) Loan {
	return Loan{
		borrowerKey:    borrowerKey,
		lenderKey:      lenderKey,
		lenderName:     lenderName,
		lenderBusiness: lenderBusiness,
		loanKey:        loanKey,
		info:           info,
		payments:       payments,
		overpayment:    overpayment,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// LoanKeyFor derives the storage key for a borrower/lender pair. The result
// is deterministic for the same inputs on the same UTC day.
func LoanKeyFor(borrowerKey, lenderKey string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s", borrowerKey, lenderKey, now.UTC().Format("20060102"))
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// AssignKey derives and sets the loan key, once, before first persistence.
func (l Loan) AssignKey(now time.Time) (Loan, error) {
	if l.loanKey != "" {
		return l, ErrLoanKeyAssigned
	}
	next := l
	next.loanKey = LoanKeyFor(l.borrowerKey, l.lenderKey, now)
	next.updatedAt = now.UTC()
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanOpened(
		l.borrowerKey, next.loanKey, l.lenderKey, l.lenderName, l.info.Currency,
		l.info.Principal, l.info.NumPayments, l.info.AnnualRatePercent, l.info.MonthlyPayment,
	))
	return next, nil
}

// ApplyPayment runs the payment ledger state machine against the schedule.
//
// The first pending installment (and only that one) is eligible. A payment
// below the amount due is banked whole into the overpayment balance and the
// installment stays pending; the banked credit is never automatically
// combined with later payments. This mirrors the inherited servicing policy
// and is deliberately preserved. A payment at or above the amount due settles
// the installment for exactly its due amount and banks the excess.
//
// The receiver is never mutated; callers persist the returned copy. With no
// pending installment the loan is returned unchanged alongside
// LedgerOutcomeNoPendingInstallment.
func (l Loan) ApplyPayment(amountPaid decimal.Decimal, now time.Time) (Loan, valueobject.LedgerOutcome, error) {
	if amountPaid.LessThanOrEqual(decimal.Zero) {
		return l, valueobject.LedgerOutcome{}, fmt.Errorf(
			"%w: amount %s for borrower %s must be positive",
			ErrInvalidPaymentAmount, amountPaid, l.borrowerKey,
		)
	}

	idx := -1
	for i, p := range l.payments {
		if p.Pending() {
			idx = i
			break
		}
	}
	if idx == -1 {
		return l, valueobject.LedgerOutcomeNoPendingInstallment, nil
	}

	next := l
	next.payments = make([]Payment, len(l.payments))
	copy(next.payments, l.payments)
	next.updatedAt = now.UTC()
	next.domainEvents = copyEvents(l.domainEvents)

	due := next.payments[idx].AmountDue

	if amountPaid.LessThan(due) {
		next.overpayment = l.overpayment.Add(amountPaid)
		next.domainEvents = append(next.domainEvents, event.NewLoanPaymentDeferred(
			l.borrowerKey, l.loanKey, l.lenderKey, l.info.Currency,
			next.payments[idx].Period, amountPaid, due, next.overpayment,
		))
		return next, valueobject.LedgerOutcomeDeferred, nil
	}

	received := now.UTC()
	next.overpayment = l.overpayment.Add(amountPaid.Sub(due))
	next.payments[idx].AmountPaid = due
	next.payments[idx].Status = valueobject.PaymentStatusReceived
	next.payments[idx].ReceivedAt = &received

	next.domainEvents = append(next.domainEvents, event.NewLoanPaymentApplied(
		l.borrowerKey, l.loanKey, l.lenderKey, l.info.Currency,
		next.payments[idx].Period, amountPaid, due, next.overpayment,
	))

	if next.Settled() {
		next.domainEvents = append(next.domainEvents, event.NewLoanSettled(l.borrowerKey, l.loanKey))
	}

	return next, valueobject.LedgerOutcomeApplied, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) BorrowerKey() string                  { return l.borrowerKey }
func (l Loan) LenderKey() string                    { return l.lenderKey }
func (l Loan) LenderName() string                   { return l.lenderName }
func (l Loan) LenderBusiness() string               { return l.lenderBusiness }
func (l Loan) LoanKey() string                      { return l.loanKey }
func (l Loan) Info() LoanInfo                       { return l.info }
func (l Loan) OverpaymentBalance() decimal.Decimal  { return l.overpayment }
func (l Loan) Version() int                         { return l.version }
func (l Loan) CreatedAt() time.Time                 { return l.createdAt }
func (l Loan) UpdatedAt() time.Time                 { return l.updatedAt }
func (l Loan) DomainEvents() []event.DomainEvent    { return l.domainEvents }

// Payments returns a defensive copy of the schedule.
func (l Loan) Payments() []Payment {
	if l.payments == nil {
		return nil
	}
	out := make([]Payment, len(l.payments))
	copy(out, l.payments)
	return out
}

// Settled reports whether every installment has been received.
func (l Loan) Settled() bool {
	for _, p := range l.payments {
		if p.Pending() {
			return false
		}
	}
	return true
}

// ClearEvents returns a copy with an empty event list.
func (l Loan) ClearEvents() Loan {
	next := l
	next.domainEvents = nil
	return next
}

func copyEvents(evts []event.DomainEvent) []event.DomainEvent {
	if evts == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(evts))
	copy(out, evts)
	return out
}
