package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// PaymentStatus – immutable value object
// ---------------------------------------------------------------------------

// PaymentStatus represents the state of one scheduled installment.
type PaymentStatus struct {
	value string
}

const (
	paymentStatusPending  = "PENDING"
	paymentStatusReceived = "RECEIVED"
)

var (
	PaymentStatusPending  = PaymentStatus{value: paymentStatusPending}
	PaymentStatusReceived = PaymentStatus{value: paymentStatusReceived}
)

var validPaymentStatuses = map[string]PaymentStatus{
	paymentStatusPending:  PaymentStatusPending,
	paymentStatusReceived: PaymentStatusReceived,
}

// NewPaymentStatus creates a PaymentStatus from a raw string.
func NewPaymentStatus(s string) (PaymentStatus, error) {
	v, ok := validPaymentStatuses[s]
	if !ok {
		return PaymentStatus{}, fmt.Errorf("invalid payment status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s PaymentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s PaymentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s PaymentStatus) Equal(other PaymentStatus) bool { return s.value == other.value }
