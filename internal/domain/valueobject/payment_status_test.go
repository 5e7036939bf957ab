package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biglittle/lending/internal/domain/valueobject"
)

func TestNewPaymentStatus(t *testing.T) {
	pending, err := valueobject.NewPaymentStatus("PENDING")
	require.NoError(t, err)
	assert.True(t, pending.Equal(valueobject.PaymentStatusPending))

	received, err := valueobject.NewPaymentStatus("RECEIVED")
	require.NoError(t, err)
	assert.True(t, received.Equal(valueobject.PaymentStatusReceived))
	assert.False(t, received.Equal(pending))
}

func TestNewPaymentStatus_Invalid(t *testing.T) {
	for _, s := range []string{"", "pending", "PAID", "RECEIVED "} {
		_, err := valueobject.NewPaymentStatus(s)
		assert.Error(t, err, "status %q should be rejected", s)
	}
}

func TestPaymentStatus_IsZero(t *testing.T) {
	var s valueobject.PaymentStatus
	assert.True(t, s.IsZero())
	assert.False(t, valueobject.PaymentStatusPending.IsZero())
}

func TestLedgerOutcome_String(t *testing.T) {
	assert.Equal(t, "APPLIED", valueobject.LedgerOutcomeApplied.String())
	assert.Equal(t, "DEFERRED", valueobject.LedgerOutcomeDeferred.String())
	assert.Equal(t, "NO_PENDING_INSTALLMENT", valueobject.LedgerOutcomeNoPendingInstallment.String())
}
