package numeric_test

import (
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biglittle/lending/pkg/numeric"
)

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"0",
		"1",
		"-1",
		"100.00",
		"1066.1855464140100488",
		"0.001",
		"-0.000000000000000001",
		"99999999999999999999999999999999.99",
		"12.543",
	}

	for _, s := range cases {
		t.Run(s, func(t *testing.T) {
			d, err := decimal.NewFromString(s)
			require.NoError(t, err)

			got, err := numeric.FromStorage(numeric.ToStorage(d))
			require.NoError(t, err)
			assert.True(t, d.Equal(got), "round trip of %s gave %s", d, got)
			assert.Equal(t, d.Exponent(), got.Exponent(), "scale must survive the round trip")
		})
	}
}

func TestToStorage_DoesNotAliasCoefficient(t *testing.T) {
	d := decimal.RequireFromString("123.45")
	n := numeric.ToStorage(d)

	n.Int.SetInt64(999)

	again := numeric.ToStorage(d)
	assert.Equal(t, "12345", again.Int.String())
}

func TestFromStorage_Malformed(t *testing.T) {
	t.Run("null value", func(t *testing.T) {
		_, err := numeric.FromStorage(pgtype.Numeric{})
		require.ErrorIs(t, err, numeric.ErrMalformedNumeric)
	})

	t.Run("nil coefficient", func(t *testing.T) {
		_, err := numeric.FromStorage(pgtype.Numeric{Valid: true})
		require.ErrorIs(t, err, numeric.ErrMalformedNumeric)
	})

	t.Run("NaN", func(t *testing.T) {
		_, err := numeric.FromStorage(pgtype.Numeric{Int: big.NewInt(0), NaN: true, Valid: true})
		require.ErrorIs(t, err, numeric.ErrMalformedNumeric)
	})

	t.Run("infinity", func(t *testing.T) {
		_, err := numeric.FromStorage(pgtype.Numeric{
			Int:              big.NewInt(1),
			InfinityModifier: pgtype.Infinity,
			Valid:            true,
		})
		require.ErrorIs(t, err, numeric.ErrMalformedNumeric)
	})

	t.Run("never defaults to zero", func(t *testing.T) {
		d, err := numeric.FromStorage(pgtype.Numeric{})
		require.Error(t, err)
		assert.False(t, d.Equal(decimal.Zero) && err == nil)
	})
}
