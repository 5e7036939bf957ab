package port

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/biglittle/lending/internal/domain/event"
	"github.com/biglittle/lending/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

var (
	// ErrLoanNotFound: no loan exists for the borrower key.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrVersionConflict: the document changed between read and replace.
	// Recoverable; the caller re-runs the read-mutate-write cycle.
	ErrVersionConflict = errors.New("loan version conflict")
)

// LoanRepository persists and retrieves loans. A borrower holds at most one
// loan at a time, so the borrower key is the lookup key.
type LoanRepository interface {
	// Insert stores a freshly keyed loan.
	Insert(ctx context.Context, loan model.Loan) error

	// FindByBorrowerKey returns the borrower's loan or ErrLoanNotFound.
	FindByBorrowerKey(ctx context.Context, borrowerKey string) (model.Loan, error)

	// ReplaceIfUnchanged writes the mutated loan only if the stored version
	// still matches loan.Version(); otherwise it returns ErrVersionConflict
	// and writes nothing.
	ReplaceIfUnchanged(ctx context.Context, loan model.Loan) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// Read-model cache port
// ---------------------------------------------------------------------------

// AmountDueCache caches the amount-due projection per borrower. The monthly
// payment is fixed for the life of a loan, so entries never go stale.
type AmountDueCache interface {
	Get(ctx context.Context, borrowerKey string) (decimal.Decimal, bool)
	Set(ctx context.Context, borrowerKey string, amount decimal.Decimal) error
}
