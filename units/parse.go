package units

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// SI prefixes, longest symbol first so "da" wins over "d".
var prefixes = []struct {
	sym    string
	factor *big.Rat
}{
	{"da", big.NewRat(10, 1)},
	{"h", big.NewRat(100, 1)},
	{"k", big.NewRat(1_000, 1)},
	{"M", big.NewRat(1_000_000, 1)},
	{"G", big.NewRat(1_000_000_000, 1)},
	{"T", big.NewRat(1_000_000_000_000, 1)},
	{"P", big.NewRat(1_000_000_000_000_000, 1)},
	{"E", big.NewRat(1_000_000_000_000_000_000, 1)},
	{"d", big.NewRat(1, 10)},
	{"c", big.NewRat(1, 100)},
	{"m", big.NewRat(1, 1_000)},
	{"u", big.NewRat(1, 1_000_000)},
	{"n", big.NewRat(1, 1_000_000_000)},
	{"p", big.NewRat(1, 1_000_000_000_000)},
	{"f", big.NewRat(1, 1_000_000_000_000_000)},
	{"a", big.NewRat(1, 1_000_000_000_000_000_000)},
}

// Parse parses a Modelica-style unit literal: factors joined by "." and
// "/", each factor a possibly-prefixed unit symbol with an optional
// signed integer exponent. "1" is the neutral factor.
//
// Examples:
//
//	units.Parse("m/s2")     // metre per second squared
//	units.Parse("kg.m/s2")  // newton, spelled out
//	units.Parse("W.s/mm")   // equivalent to kN
//	units.Parse("degC")     // affine temperature unit
func Parse(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unit{}, fmt.Errorf("cannot parse empty unit literal")
	}
	u := One()
	rest := s
	div := false
	for {
		i := strings.IndexAny(rest, "./")
		tok := rest
		if i >= 0 {
			tok = rest[:i]
		}
		f, err := parseFactor(tok)
		if err != nil {
			return Unit{}, fmt.Errorf("cannot parse unit %q: %v", s, err)
		}
		if div {
			f, err = f.Pow(big.NewRat(-1, 1))
			if err != nil {
				return Unit{}, fmt.Errorf("cannot parse unit %q: %v", s, err)
			}
		}
		u = u.Mul(f)
		if i < 0 {
			return u, nil
		}
		div = rest[i] == '/'
		rest = rest[i+1:]
	}
}

// MustParse is like Parse but panics on malformed literals. Useful for
// hardcoded units in tests and tables.
func MustParse(s string) Unit {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

func parseFactor(tok string) (Unit, error) {
	if tok == "" {
		return Unit{}, fmt.Errorf("empty unit factor")
	}
	if tok == "1" {
		return One(), nil
	}

	base := tok
	exp := int64(1)
	i := len(tok)
	for i > 0 && tok[i-1] >= '0' && tok[i-1] <= '9' {
		i--
	}
	if i < len(tok) && i > 0 {
		j := i
		if j > 0 && (tok[j-1] == '-' || tok[j-1] == '+') {
			j--
		}
		if j > 0 {
			e, err := strconv.ParseInt(tok[j:], 10, 32)
			if err != nil {
				return Unit{}, fmt.Errorf("bad exponent in %q: %v", tok, err)
			}
			base = tok[:j]
			exp = e
		}
	}

	u, err := resolveSymbol(base)
	if err != nil {
		return Unit{}, err
	}
	if exp != 1 {
		u, err = u.Pow(big.NewRat(exp, 1))
		if err != nil {
			return Unit{}, err
		}
	}
	return u, nil
}

func resolveSymbol(sym string) (Unit, error) {
	if u, ok := namedUnits[sym]; ok {
		return u, nil
	}
	for _, p := range prefixes {
		if !strings.HasPrefix(sym, p.sym) || len(sym) <= len(p.sym) {
			continue
		}
		rest := sym[len(p.sym):]
		u, ok := namedUnits[rest]
		if !ok || !prefixableUnits[rest] {
			continue
		}
		u.scale = new(big.Rat).Mul(u.Scale(), p.factor)
		return u, nil
	}
	return Unit{}, fmt.Errorf("unknown unit symbol %q", sym)
}
