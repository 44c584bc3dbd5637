// Package unitcheck infers the physical units of the variables of a
// flattened model. It collects equivalence constraints over a unit
// meta-expression algebra and resolves them by unification, yielding a
// per-variable unit (or "unknown") and a batch of unit errors.
//
// The pass never aborts on the first inconsistency: all independently
// detectable errors are collected and returned together, and a variable
// whose unit cannot be pinned silently resolves to unknown — units are
// opt-in, not mandatory.
package unitcheck

import (
	"fmt"
	"math/big"

	"github.com/modelic/unit-toolbox-go/units"
)

// varID identifies one unit unknown. Model variables and solver-fresh
// temporaries share the same space.
type varID int

// Value is a unit meta-expression: the unit of a modeled expression,
// possibly still containing unknowns.
type Value interface {
	fmt.Stringer
	isValue()
}

// WellFormed is a definite unit.
type WellFormed struct {
	Unit units.Unit
}

// Empty is the identity-like unit of literals; it combines
// transparently with any unit.
type Empty struct{}

// Undefined is the absorbing unit of unspecified cases.
type Undefined struct{}

// Variable is an unresolved unit unknown.
type Variable struct {
	id   varID
	name string // model variable name; empty for fresh temporaries
}

// Product is the unevaluated product of two unit meta-expressions.
type Product struct {
	Left  Value
	Right Value
}

// Power is an unevaluated rational power of a unit meta-expression.
type Power struct {
	Base Value
	Exp  *big.Rat
}

// Derivative is the unevaluated unit of a time derivative. It is kept
// symbolic until its argument is known: differentiating an Empty unit
// yields Empty, never introducing the time unit into a unit-less model.
type Derivative struct {
	Arg Value
}

func (WellFormed) isValue() {}
func (Empty) isValue()      {}
func (Undefined) isValue()  {}
func (Variable) isValue()   {}
func (Product) isValue()    {}
func (Power) isValue()      {}
func (Derivative) isValue() {}

func (v WellFormed) String() string { return v.Unit.String() }
func (Empty) String() string        { return "<empty>" }
func (Undefined) String() string    { return "<undefined>" }
func (v Variable) String() string {
	if v.name != "" {
		return "unit(" + v.name + ")"
	}
	return fmt.Sprintf("'t%d", v.id)
}
func (v Product) String() string { return fmt.Sprintf("(%s.%s)", v.Left, v.Right) }
func (v Power) String() string   { return fmt.Sprintf("%s^%s", v.Base, v.Exp.RatString()) }
func (v Derivative) String() string {
	return fmt.Sprintf("der(%s)", v.Arg)
}

var (
	ratOne      = big.NewRat(1, 1)
	ratMinusOne = big.NewRat(-1, 1)
	ratHalf     = big.NewRat(1, 2)
	perSecond   = Power{Base: WellFormed{units.Second()}, Exp: ratMinusOne}
)

// evaluate reduces a meta-expression to normal form: combinator nodes
// are folded bottom-up, Undefined absorbs, Empty is the multiplicative
// identity and survives differentiation unchanged. Afterwards the
// result is Empty, Undefined, or a tree whose leaves are only
// WellFormed and Variable nodes.
//
// Power applied to a concrete unit can fail (offset unit raised to a
// power other than one, inexact scale root); the failure is recorded as
// an InvalidExponent error against origin and the node reduces to
// Undefined.
func (c *checker) evaluate(v Value, origin string) Value {
	switch v := v.(type) {
	case Product:
		l := c.evaluate(v.Left, origin)
		r := c.evaluate(v.Right, origin)
		if isUndefined(l) || isUndefined(r) {
			return Undefined{}
		}
		if isEmpty(l) {
			return r
		}
		if isEmpty(r) {
			return l
		}
		lw, lok := l.(WellFormed)
		rw, rok := r.(WellFormed)
		if lok && rok {
			return WellFormed{lw.Unit.Mul(rw.Unit)}
		}
		return Product{l, r}
	case Power:
		b := c.evaluate(v.Base, origin)
		switch b := b.(type) {
		case Undefined:
			return Undefined{}
		case Empty:
			return Empty{}
		case WellFormed:
			u, err := b.Unit.Pow(v.Exp)
			if err != nil {
				c.errorf(InvalidExponent, b.Unit, units.One(), origin)
				return Undefined{}
			}
			return WellFormed{u}
		case Power:
			return Power{b.Base, new(big.Rat).Mul(b.Exp, v.Exp)}
		}
		if v.Exp.Cmp(ratOne) == 0 {
			return b
		}
		return Power{b, v.Exp}
	case Derivative:
		a := c.evaluate(v.Arg, origin)
		switch a.(type) {
		case Undefined:
			return Undefined{}
		case Empty:
			return Empty{}
		case WellFormed:
			return c.evaluate(Product{a, perSecond}, origin)
		}
		return Derivative{a}
	default:
		return v
	}
}

func isEmpty(v Value) bool {
	_, ok := v.(Empty)
	return ok
}

func isUndefined(v Value) bool {
	_, ok := v.(Undefined)
	return ok
}

// occurs reports whether the unknown id appears anywhere in v.
func occurs(v Value, id varID) bool {
	switch v := v.(type) {
	case Variable:
		return v.id == id
	case Product:
		return occurs(v.Left, id) || occurs(v.Right, id)
	case Power:
		return occurs(v.Base, id)
	case Derivative:
		return occurs(v.Arg, id)
	default:
		return false
	}
}

// freeVars counts the occurrences of every unknown in v.
func freeVars(v Value, counts map[varID]int) {
	switch v := v.(type) {
	case Variable:
		counts[v.id]++
	case Product:
		freeVars(v.Left, counts)
		freeVars(v.Right, counts)
	case Power:
		freeVars(v.Base, counts)
	case Derivative:
		freeVars(v.Arg, counts)
	}
}

// substituteVar replaces every occurrence of id in v with repl.
func substituteVar(v Value, id varID, repl Value) Value {
	switch v := v.(type) {
	case Variable:
		if v.id == id {
			return repl
		}
		return v
	case Product:
		return Product{substituteVar(v.Left, id, repl), substituteVar(v.Right, id, repl)}
	case Power:
		return Power{substituteVar(v.Base, id, repl), v.Exp}
	case Derivative:
		return Derivative{substituteVar(v.Arg, id, repl)}
	default:
		return v
	}
}
