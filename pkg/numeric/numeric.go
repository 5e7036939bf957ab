// Package numeric converts between the exact decimal values used by the
// domain and the storage numeric form persisted by PostgreSQL. Both
// representations are base-10 coefficient-and-exponent, so the conversion is
// lossless in either direction and never passes through binary floating point.
package numeric

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// ErrMalformedNumeric is returned when a persisted numeric field cannot be
// decoded into an exact decimal. Callers must treat this as a data integrity
// failure for the record, never substitute a default.
var ErrMalformedNumeric = errors.New("malformed numeric value")

// ToStorage encodes an exact decimal into the storage numeric form.
func ToStorage(d decimal.Decimal) pgtype.Numeric {
	coeff := new(big.Int).Set(d.Coefficient())
	return pgtype.Numeric{
		Int:   coeff,
		Exp:   d.Exponent(),
		Valid: true,
	}
}

// FromStorage decodes a storage numeric back into an exact decimal.
// Null, NaN and infinite values are malformed: every monetary field in the
// schema is NOT NULL and finite, so anything else means a corrupt record.
func FromStorage(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid || n.Int == nil {
		return decimal.Decimal{}, fmt.Errorf("%w: null coefficient", ErrMalformedNumeric)
	}
	if n.NaN {
		return decimal.Decimal{}, fmt.Errorf("%w: NaN", ErrMalformedNumeric)
	}
	if n.InfinityModifier != pgtype.Finite {
		return decimal.Decimal{}, fmt.Errorf("%w: infinite value", ErrMalformedNumeric)
	}
	return decimal.NewFromBigInt(new(big.Int).Set(n.Int), n.Exp), nil
}
