package grpc

// messages.go defines the wire messages for biglittle/lending/v1/loan.proto.
// Monetary values travel as decimal strings so no precision is lost at the
// boundary. This file serves as a stand-in for buf-generated code; once
// `buf generate` is run, replace it with the import from
// github.com/biglittle/lending/api/gen/go/biglittle/lending/v1.

// Counterparty identifies one lender in a simulation request.
type Counterparty struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Business string `json:"business"`
}

// PaymentEntry is one installment in a loan schedule.
type PaymentEntry struct {
	Period     int    `json:"period"`
	AmountDue  string `json:"amount_due"`
	AmountPaid string `json:"amount_paid"`
	Status     string `json:"status"`
	ReceivedAt string `json:"received_at,omitempty"`
}

// Loan is the wire representation of a loan or proposal.
type Loan struct {
	BorrowerKey        string         `json:"borrower_key"`
	LenderKey          string         `json:"lender_key"`
	LenderName         string         `json:"lender_name"`
	LenderBusiness     string         `json:"lender_business"`
	LoanKey            string         `json:"loan_key,omitempty"`
	Principal          string         `json:"principal"`
	NumPayments        int            `json:"num_payments"`
	AnnualRatePercent  string         `json:"annual_rate_percent"`
	EffectiveRate      string         `json:"effective_rate"`
	Currency           string         `json:"currency"`
	MonthlyPayment     string         `json:"monthly_payment"`
	OverpaymentBalance string         `json:"overpayment_balance"`
	Settled            bool           `json:"settled"`
	Payments           []PaymentEntry `json:"payments"`
}

type ProposeLoanRequest struct {
	Principal         string `json:"principal"`
	NumPayments       int    `json:"num_payments"`
	AnnualRatePercent string `json:"annual_rate_percent"`
	Currency          string `json:"currency"`
	BorrowerKey       string `json:"borrower_key"`
	LenderKey         string `json:"lender_key"`
	LenderName        string `json:"lender_name"`
	LenderBusiness    string `json:"lender_business"`
}

type ProposeLoanResponse struct {
	Loan *Loan `json:"loan"`
}

type SimulateProposalsRequest struct {
	Principal   string         `json:"principal"`
	NumPayments int            `json:"num_payments"`
	Currency    string         `json:"currency"`
	BorrowerKey string         `json:"borrower_key"`
	Lenders     []Counterparty `json:"lenders"`
}

type SimulateProposalsResponse struct {
	BorrowerKey string           `json:"borrower_key"`
	Proposals   map[string]*Loan `json:"proposals"`
}

type OpenLoanRequest struct {
	Principal         string `json:"principal"`
	NumPayments       int    `json:"num_payments"`
	AnnualRatePercent string `json:"annual_rate_percent"`
	Currency          string `json:"currency"`
	BorrowerKey       string `json:"borrower_key"`
	LenderKey         string `json:"lender_key"`
	LenderName        string `json:"lender_name"`
	LenderBusiness    string `json:"lender_business"`
}

type OpenLoanResponse struct {
	Loan *Loan `json:"loan"`
}

type ProcessPaymentRequest struct {
	BorrowerKey string `json:"borrower_key"`
	Amount      string `json:"amount"`
}

type ProcessPaymentResponse struct {
	BorrowerKey        string `json:"borrower_key"`
	LoanKey            string `json:"loan_key"`
	Outcome            string `json:"outcome"`
	AmountPaid         string `json:"amount_paid"`
	OverpaymentBalance string `json:"overpayment_balance"`
	Settled            bool   `json:"settled"`
}

type GetLoanRequest struct {
	BorrowerKey string `json:"borrower_key"`
}

type GetLoanResponse struct {
	Loan *Loan `json:"loan"`
}

type GetAmountDueRequest struct {
	BorrowerKey string `json:"borrower_key"`
}

type GetAmountDueResponse struct {
	BorrowerKey string `json:"borrower_key"`
	AmountDue   string `json:"amount_due"`
}
