package model

import "errors"

var (
	// ErrInvalidProposalInput rejects proposal parameters before any part of
	// a Loan is constructed.
	ErrInvalidProposalInput = errors.New("invalid proposal input")

	// ErrInvalidPaymentAmount rejects a non-positive payment before the
	// ledger touches the schedule.
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")

	// ErrLoanKeyAssigned guards against re-keying a persisted loan.
	ErrLoanKeyAssigned = errors.New("loan key already assigned")
)
