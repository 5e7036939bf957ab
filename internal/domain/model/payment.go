package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/biglittle/lending/internal/domain/valueobject"
)

// Payment is one scheduled installment in a loan's payment schedule.
// Insertion order is due-date order.
type Payment struct {
	ReceivedAt *time.Time
	AmountDue  decimal.Decimal
	AmountPaid decimal.Decimal
	Status     valueobject.PaymentStatus
	Period     int
}

// Pending reports whether the installment has not been settled yet.
func (p Payment) Pending() bool {
	return p.Status.Equal(valueobject.PaymentStatusPending)
}
