package units

import (
	"context"
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

type apdContextKey struct{}

// We keep 34 digits (roughly Decimal128) by default so conversions
// between far-apart prefixes do not silently lose precision.
const defaultDecimalPrecision = 34

var defaultAPDContext = apd.BaseContext.WithPrecision(defaultDecimalPrecision)

// WithAPDContext sets the apd.Context used for decimal unit conversions.
//
// The apd.Context controls the precision and rounding behavior of the
// numeric rescaling performed by ConvertDecimal.
//
// Example:
//
//	ctx = units.WithAPDContext(ctx, apd.BaseContext.WithPrecision(10))
func WithAPDContext(ctx context.Context, apdContext *apd.Context) context.Context {
	return context.WithValue(ctx, apdContextKey{}, apdContext)
}

func apdContext(ctx context.Context) *apd.Context {
	if ctx != nil {
		if c, ok := ctx.Value(apdContextKey{}).(*apd.Context); ok && c != nil {
			return c
		}
	}
	return defaultAPDContext
}

// ConvertDecimal rescales the numeric value v, expressed in unit from,
// into unit to. The units must be convertible (same dimension vector);
// scales and offsets may differ. The affine rule is
//
//	result = (v*scale(from) + offset(from) - offset(to)) / scale(to)
//
// computed with the apd.Context carried by ctx (see WithAPDContext).
func ConvertDecimal(ctx context.Context, v *apd.Decimal, from, to Unit) (*apd.Decimal, error) {
	if !from.Convertible(to) {
		return nil, fmt.Errorf("unit %s is not convertible to %s", from, to)
	}
	c := apdContext(ctx)

	sf, err := ratDecimal(c, from.Scale())
	if err != nil {
		return nil, err
	}
	st, err := ratDecimal(c, to.Scale())
	if err != nil {
		return nil, err
	}
	of, err := ratDecimal(c, from.Offset())
	if err != nil {
		return nil, err
	}
	ot, err := ratDecimal(c, to.Offset())
	if err != nil {
		return nil, err
	}

	var res apd.Decimal
	if _, err := c.Mul(&res, v, sf); err != nil {
		return nil, err
	}
	if _, err := c.Add(&res, &res, of); err != nil {
		return nil, err
	}
	if _, err := c.Sub(&res, &res, ot); err != nil {
		return nil, err
	}
	if _, err := c.Quo(&res, &res, st); err != nil {
		return nil, err
	}
	return &res, nil
}

func ratDecimal(c *apd.Context, r *big.Rat) (*apd.Decimal, error) {
	num, _, err := apd.NewFromString(r.Num().String())
	if err != nil {
		return nil, err
	}
	if r.IsInt() {
		return num, nil
	}
	den, _, err := apd.NewFromString(r.Denom().String())
	if err != nil {
		return nil, err
	}
	var res apd.Decimal
	if _, err := c.Quo(&res, num, den); err != nil {
		return nil, err
	}
	return &res, nil
}

// Rat converts a finite apd decimal into the exact rational it denotes.
// It reports false for NaN and infinities.
func Rat(d *apd.Decimal) (*big.Rat, bool) {
	if d == nil || d.Form != apd.Finite {
		return nil, false
	}
	r := new(big.Rat).SetInt(d.Coeff.MathBigInt())
	if d.Negative {
		r.Neg(r)
	}
	if d.Exponent != 0 {
		p := new(big.Int).Exp(big.NewInt(10), big.NewInt(abs64(int64(d.Exponent))), nil)
		if d.Exponent > 0 {
			r.Mul(r, new(big.Rat).SetInt(p))
		} else {
			r.Quo(r, new(big.Rat).SetInt(p))
		}
	}
	return r, true
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
