package valueobject

// ---------------------------------------------------------------------------
// LedgerOutcome – immutable value object
// ---------------------------------------------------------------------------

// LedgerOutcome classifies the result of applying a payment to a loan.
type LedgerOutcome struct {
	value string
}

var (
	// LedgerOutcomeApplied: the first pending installment was settled.
	LedgerOutcomeApplied = LedgerOutcome{value: "APPLIED"}
	// LedgerOutcomeDeferred: the payment was insufficient and was banked
	// whole as overpayment credit; the installment stays pending.
	LedgerOutcomeDeferred = LedgerOutcome{value: "DEFERRED"}
	// LedgerOutcomeNoPendingInstallment: the schedule is fully settled;
	// nothing was mutated. A terminal condition, not an error.
	LedgerOutcomeNoPendingInstallment = LedgerOutcome{value: "NO_PENDING_INSTALLMENT"}
)

// String returns the string representation of the outcome.
func (o LedgerOutcome) String() string { return o.value }

// Equal returns true when both outcomes carry the same value.
func (o LedgerOutcome) Equal(other LedgerOutcome) bool { return o.value == other.value }
