// Package units implements the algebra of physical units used by the
// unit inference engine: seven-dimensional rational exponent vectors
// with a rational scale and offset, the combinators on them, and the
// equivalence/convertibility relations.
//
// All values are immutable; operations return fresh units and never
// mutate their receivers. Exact rational arithmetic is used throughout
// so that equivalence is decidable (e.g. "kN" is equivalent to
// "W.s/mm", exactly).
package units

//go:generate go run github.com/modelic/unit-toolbox-go/internal/cmd/generate

import (
	"fmt"
	"math/big"
	"strings"
)

// The base dimensions, in canonical print order.
// Mass is carried in kilograms: "kg" has scale 1, "g" has scale 1/1000.
const (
	dimMass = iota
	dimLength
	dimTime
	dimCurrent
	dimTemperature
	dimAmount
	dimLuminosity
	numDimensions
)

var dimSymbols = [numDimensions]string{"kg", "m", "s", "A", "K", "mol", "cd"}

// Unit is a well-formed physical unit: a vector of rational exponents
// over the seven SI base dimensions, a rational scale factor relative
// to the coherent SI unit of that dimension vector, and a rational
// offset for affine units such as degC.
//
// The zero value is the dimensionless unit "1".
type Unit struct {
	dims   [numDimensions]*big.Rat
	scale  *big.Rat
	offset *big.Rat
}

var (
	ratZero = big.NewRat(0, 1)
	ratOne  = big.NewRat(1, 1)
)

func nonNil(r *big.Rat) *big.Rat {
	if r == nil {
		return ratZero
	}
	return r
}

func (u Unit) dim(i int) *big.Rat { return nonNil(u.dims[i]) }

// Scale returns the scale factor relative to the coherent SI unit.
func (u Unit) Scale() *big.Rat {
	if u.scale == nil {
		return ratOne
	}
	return u.scale
}

// Offset returns the affine offset, zero for all but temperature-like units.
func (u Unit) Offset() *big.Rat { return nonNil(u.offset) }

// One returns the dimensionless unit "1".
func One() Unit { return Unit{} }

// unitDef builds a unit from rational strings and integer dimension
// exponents. It is the construction primitive used by the generated
// named-unit table; malformed inputs panic because they can only come
// from the generator itself.
func unitDef(scale, offset string, kg, m, s, a, k, mol, cd int64) Unit {
	sc, ok := new(big.Rat).SetString(scale)
	if !ok {
		panic(fmt.Sprintf("units: bad scale %q", scale))
	}
	of, ok := new(big.Rat).SetString(offset)
	if !ok {
		panic(fmt.Sprintf("units: bad offset %q", offset))
	}
	var u Unit
	u.scale = sc
	u.offset = of
	for i, e := range []int64{kg, m, s, a, k, mol, cd} {
		if e != 0 {
			u.dims[i] = big.NewRat(e, 1)
		}
	}
	return u
}

// IsOne reports whether u is exactly the dimensionless unit "1"
// (all exponents zero, scale one, offset zero).
func (u Unit) IsOne() bool {
	for i := range u.dims {
		if u.dim(i).Sign() != 0 {
			return false
		}
	}
	return u.Scale().Cmp(ratOne) == 0 && u.Offset().Sign() == 0
}

// Dimensionless reports whether all base-dimension exponents are zero,
// regardless of scale and offset.
func (u Unit) Dimensionless() bool {
	for i := range u.dims {
		if u.dim(i).Sign() != 0 {
			return false
		}
	}
	return true
}

// HasOffset reports whether u is an affine unit.
func (u Unit) HasOffset() bool { return u.Offset().Sign() != 0 }

// Mul returns the product of two units: exponent vectors added, scales
// multiplied. Offsets do not distribute over products; the result is
// offset-free unless one operand is exactly "1", in which case the
// other operand is returned unchanged.
func (u Unit) Mul(v Unit) Unit {
	if u.IsOne() {
		return v
	}
	if v.IsOne() {
		return u
	}
	var r Unit
	for i := range r.dims {
		r.dims[i] = new(big.Rat).Add(u.dim(i), v.dim(i))
	}
	r.scale = new(big.Rat).Mul(u.Scale(), v.Scale())
	r.offset = ratZero
	return r
}

// Pow raises u to the rational power e: exponents and scale are scaled
// by e. Affine units only admit e == 1. A non-integer e demands an
// exact rational root of the scale; if none exists, Pow fails rather
// than approximate (approximation would break exact equivalence).
func (u Unit) Pow(e *big.Rat) (Unit, error) {
	if u.HasOffset() {
		if e.Cmp(ratOne) == 0 {
			return u, nil
		}
		return Unit{}, fmt.Errorf("unit %s has an offset and can only be raised to power 1, got %s", u, e.RatString())
	}
	var r Unit
	for i := range r.dims {
		r.dims[i] = new(big.Rat).Mul(u.dim(i), e)
	}
	scale, err := ratPow(u.Scale(), e)
	if err != nil {
		return Unit{}, fmt.Errorf("cannot raise unit %s to power %s: %v", u, e.RatString(), err)
	}
	r.scale = scale
	r.offset = ratZero
	return r, nil
}

// Equivalent reports whether u and v are the same unit: equal exponent
// vectors, scale, and offset.
func (u Unit) Equivalent(v Unit) bool {
	if !u.Convertible(v) {
		return false
	}
	return u.Scale().Cmp(v.Scale()) == 0 && u.Offset().Cmp(v.Offset()) == 0
}

// Convertible reports whether u and v share a dimension vector,
// regardless of scale and offset ("K" is convertible to "degC").
func (u Unit) Convertible(v Unit) bool {
	for i := range u.dims {
		if u.dim(i).Cmp(v.dim(i)) != 0 {
			return false
		}
	}
	return true
}

// ratPow computes b**e exactly. Integer exponents always succeed;
// fractional exponents succeed only when the exact rational root exists.
func ratPow(b *big.Rat, e *big.Rat) (*big.Rat, error) {
	if e.Sign() == 0 {
		return new(big.Rat).Set(ratOne), nil
	}
	if b.Cmp(ratOne) == 0 {
		return new(big.Rat).Set(ratOne), nil
	}
	num := e.Num()
	den := e.Denom()
	if b.Sign() <= 0 {
		return nil, fmt.Errorf("non-positive scale %s", b.RatString())
	}

	r := b
	if !den.IsInt64() || den.Int64() != 1 {
		n, err := ratRoot(b, den)
		if err != nil {
			return nil, err
		}
		r = n
	}

	abs := new(big.Int).Abs(num)
	if !abs.IsInt64() {
		return nil, fmt.Errorf("exponent %s out of range", e.RatString())
	}
	p := new(big.Rat).Set(ratOne)
	for i := int64(0); i < abs.Int64(); i++ {
		p.Mul(p, r)
	}
	if num.Sign() < 0 {
		p.Inv(p)
	}
	return p, nil
}

// ratRoot computes the exact n-th root of r, failing if it is irrational.
func ratRoot(r *big.Rat, n *big.Int) (*big.Rat, error) {
	if !n.IsInt64() {
		return nil, fmt.Errorf("root degree %s out of range", n)
	}
	num, ok := intRoot(r.Num(), n.Int64())
	if !ok {
		return nil, fmt.Errorf("%s has no exact %s-th root", r.RatString(), n)
	}
	den, ok := intRoot(r.Denom(), n.Int64())
	if !ok {
		return nil, fmt.Errorf("%s has no exact %s-th root", r.RatString(), n)
	}
	return new(big.Rat).SetFrac(num, den), nil
}

// intRoot computes the integer n-th root of x by binary search and
// reports whether it is exact.
func intRoot(x *big.Int, n int64) (*big.Int, bool) {
	if x.Sign() < 0 {
		return nil, false
	}
	one := big.NewInt(1)
	lo := new(big.Int).Set(one)
	hi := new(big.Int).Add(x, one)
	for lo.Cmp(hi) < 0 {
		mid := new(big.Int).Add(lo, hi)
		mid.Rsh(mid, 1)
		p := new(big.Int).Exp(mid, big.NewInt(n), nil)
		switch p.Cmp(x) {
		case 0:
			return mid, true
		case -1:
			lo.Add(mid, one)
		default:
			hi.Set(mid)
		}
	}
	root := new(big.Int).Sub(lo, one)
	p := new(big.Int).Exp(root, big.NewInt(n), nil)
	return root, p.Cmp(x) == 0
}

// String returns the canonical textual form of the unit. Named units
// print as their symbol ("N", "degC"); everything else is constructed
// from the dimension vector, with a leading rational factor when the
// scale is not one.
func (u Unit) String() string {
	if u.IsOne() {
		return "1"
	}
	for _, sym := range canonicalOrder {
		if u.Equivalent(namedUnits[sym]) {
			return sym
		}
	}

	var num, den []string
	for i := 0; i < numDimensions; i++ {
		e := u.dim(i)
		switch e.Sign() {
		case 1:
			num = append(num, dimSymbols[i]+expString(e))
		case -1:
			den = append(den, dimSymbols[i]+expString(new(big.Rat).Neg(e)))
		}
	}

	var b strings.Builder
	if u.Scale().Cmp(ratOne) != 0 {
		b.WriteString(u.Scale().RatString())
		if len(num) > 0 {
			b.WriteString(".")
		}
	}
	if b.Len() == 0 && len(num) == 0 {
		b.WriteString("1")
	}
	b.WriteString(strings.Join(num, "."))
	if len(den) > 0 {
		b.WriteString("/")
		if len(den) > 1 {
			b.WriteString("(" + strings.Join(den, ".") + ")")
		} else {
			b.WriteString(den[0])
		}
	}
	if u.HasOffset() {
		fmt.Fprintf(&b, "(+%s)", u.Offset().RatString())
	}
	return b.String()
}

func expString(e *big.Rat) string {
	if e.Cmp(ratOne) == 0 {
		return ""
	}
	if e.IsInt() {
		return e.Num().String()
	}
	return "^(" + e.RatString() + ")"
}
