package event

import (
	"github.com/shopspring/decimal"

	"github.com/biglittle/lending/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// Event kinds published to the notification topic. Aggregate IDs are borrower
// keys: a borrower has at most one active loan and downstream consumers
// subscribe per borrower.
const (
	KindLoanOpened          = "LOAN_OPENED"
	KindLoanPaymentApplied  = "LOAN_PAYMENT_APPLIED"
	KindLoanPaymentDeferred = "LOAN_PAYMENT_DEFERRED"
	KindLoanSettled         = "LOAN_SETTLED"
)

// LoanOpened is raised when an accepted proposal is keyed and persisted.
type LoanOpened struct {
	events.BaseEvent
	LoanKey           string          `json:"loan_key"`
	LenderKey         string          `json:"lender_key"`
	LenderName        string          `json:"lender_name"`
	Currency          string          `json:"currency"`
	Principal         decimal.Decimal `json:"principal"`
	NumPayments       int             `json:"num_payments"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
}

func NewLoanOpened(
	borrowerKey, loanKey, lenderKey, lenderName, currency string,
	principal decimal.Decimal, numPayments int,
	annualRatePercent, monthlyPayment decimal.Decimal,
) LoanOpened {
	return LoanOpened{
		BaseEvent:         events.NewBaseEvent(KindLoanOpened, borrowerKey, "Loan"),
		LoanKey:           loanKey,
		LenderKey:         lenderKey,
		LenderName:        lenderName,
		Currency:          currency,
		Principal:         principal,
		NumPayments:       numPayments,
		AnnualRatePercent: annualRatePercent,
		MonthlyPayment:    monthlyPayment,
	}
}

// LoanPaymentApplied is raised when a payment settles an installment.
// All monetary fields are exact decimals.
type LoanPaymentApplied struct {
	events.BaseEvent
	LoanKey            string          `json:"loan_key"`
	LenderKey          string          `json:"lender_key"`
	Currency           string          `json:"currency"`
	Period             int             `json:"period"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	AmountDue          decimal.Decimal `json:"amount_due"`
	OverpaymentBalance decimal.Decimal `json:"overpayment_balance"`
}

func NewLoanPaymentApplied(
	borrowerKey, loanKey, lenderKey, currency string,
	period int,
	amountPaid, amountDue, overpaymentBalance decimal.Decimal,
) LoanPaymentApplied {
	return LoanPaymentApplied{
		BaseEvent:          events.NewBaseEvent(KindLoanPaymentApplied, borrowerKey, "Loan"),
		LoanKey:            loanKey,
		LenderKey:          lenderKey,
		Currency:           currency,
		Period:             period,
		AmountPaid:         amountPaid,
		AmountDue:          amountDue,
		OverpaymentBalance: overpaymentBalance,
	}
}

// LoanPaymentDeferred is raised when an underpayment is banked as credit
// without settling the targeted installment.
type LoanPaymentDeferred struct {
	events.BaseEvent
	LoanKey            string          `json:"loan_key"`
	LenderKey          string          `json:"lender_key"`
	Currency           string          `json:"currency"`
	Period             int             `json:"period"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	AmountDue          decimal.Decimal `json:"amount_due"`
	OverpaymentBalance decimal.Decimal `json:"overpayment_balance"`
}

func NewLoanPaymentDeferred(
	borrowerKey, loanKey, lenderKey, currency string,
	period int,
	amountPaid, amountDue, overpaymentBalance decimal.Decimal,
) LoanPaymentDeferred {
	return LoanPaymentDeferred{
		BaseEvent:          events.NewBaseEvent(KindLoanPaymentDeferred, borrowerKey, "Loan"),
		LoanKey:            loanKey,
		LenderKey:          lenderKey,
		Currency:           currency,
		Period:             period,
		AmountPaid:         amountPaid,
		AmountDue:          amountDue,
		OverpaymentBalance: overpaymentBalance,
	}
}

// LoanSettled is raised when the final installment reaches RECEIVED.
type LoanSettled struct {
	events.BaseEvent
	LoanKey string `json:"loan_key"`
}

func NewLoanSettled(borrowerKey, loanKey string) LoanSettled {
	return LoanSettled{
		BaseEvent: events.NewBaseEvent(KindLoanSettled, borrowerKey, "Loan"),
		LoanKey:   loanKey,
	}
}
