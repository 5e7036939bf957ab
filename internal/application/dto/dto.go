package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// ProposeLoanRequest carries the terms for a single loan proposal.
type ProposeLoanRequest struct {
	Principal         decimal.Decimal `json:"principal"`
	NumPayments       int             `json:"num_payments"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	Currency          string          `json:"currency"`
	BorrowerKey       string          `json:"borrower_key"`
	LenderKey         string          `json:"lender_key"`
	LenderName        string          `json:"lender_name"`
	LenderBusiness    string          `json:"lender_business"`
}

// CounterpartyRequest identifies one lender in a simulation request.
type CounterpartyRequest struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Business string `json:"business"`
}

// SimulateProposalsRequest fans a borrower request out across lenders.
type SimulateProposalsRequest struct {
	Principal   decimal.Decimal       `json:"principal"`
	NumPayments int                   `json:"num_payments"`
	Currency    string                `json:"currency"`
	BorrowerKey string                `json:"borrower_key"`
	Lenders     []CounterpartyRequest `json:"lenders"`
}

// OpenLoanRequest persists an accepted proposal.
type OpenLoanRequest struct {
	Principal         decimal.Decimal `json:"principal"`
	NumPayments       int             `json:"num_payments"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	Currency          string          `json:"currency"`
	BorrowerKey       string          `json:"borrower_key"`
	LenderKey         string          `json:"lender_key"`
	LenderName        string          `json:"lender_name"`
	LenderBusiness    string          `json:"lender_business"`
}

// ProcessPaymentRequest applies an incoming payment to the borrower's loan.
type ProcessPaymentRequest struct {
	BorrowerKey string          `json:"borrower_key"`
	Amount      decimal.Decimal `json:"amount"`
}

// GetLoanRequest identifies a loan to retrieve.
type GetLoanRequest struct {
	BorrowerKey string `json:"borrower_key"`
}

// GetAmountDueRequest identifies the borrower whose amount due is projected.
type GetAmountDueRequest struct {
	BorrowerKey string `json:"borrower_key"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// PaymentEntryResponse represents one installment in a loan schedule.
type PaymentEntryResponse struct {
	Period     int             `json:"period"`
	AmountDue  decimal.Decimal `json:"amount_due"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	Status     string          `json:"status"`
	ReceivedAt *time.Time      `json:"received_at,omitempty"`
}

// LoanResponse is the external representation of a loan or proposal.
type LoanResponse struct {
	BorrowerKey        string                 `json:"borrower_key"`
	LenderKey          string                 `json:"lender_key"`
	LenderName         string                 `json:"lender_name"`
	LenderBusiness     string                 `json:"lender_business"`
	LoanKey            string                 `json:"loan_key,omitempty"`
	Principal          decimal.Decimal        `json:"principal"`
	NumPayments        int                    `json:"num_payments"`
	AnnualRatePercent  decimal.Decimal        `json:"annual_rate_percent"`
	EffectiveRate      decimal.Decimal        `json:"effective_rate"`
	Currency           string                 `json:"currency"`
	MonthlyPayment     decimal.Decimal        `json:"monthly_payment"`
	OverpaymentBalance decimal.Decimal        `json:"overpayment_balance"`
	Settled            bool                   `json:"settled"`
	Payments           []PaymentEntryResponse `json:"payments"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

// SimulateProposalsResponse maps lender keys to their proposals.
type SimulateProposalsResponse struct {
	BorrowerKey string                  `json:"borrower_key"`
	Proposals   map[string]LoanResponse `json:"proposals"`
}

// PaymentResponse reports the ledger outcome for one payment.
type PaymentResponse struct {
	BorrowerKey        string          `json:"borrower_key"`
	LoanKey            string          `json:"loan_key"`
	Outcome            string          `json:"outcome"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	OverpaymentBalance decimal.Decimal `json:"overpayment_balance"`
	Settled            bool            `json:"settled"`
}

// AmountDueResponse is the amount-due projection for a borrower. AmountDue is
// zero when the borrower has no loan.
type AmountDueResponse struct {
	BorrowerKey string          `json:"borrower_key"`
	AmountDue   decimal.Decimal `json:"amount_due"`
}
