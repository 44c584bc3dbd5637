package unitcheck

import (
	"math/big"
	"slices"

	"golang.org/x/exp/maps"
)

// substitution maps unknowns to their resolved meta-expressions. The
// map is kept composed: no key occurs, transitively, inside any value
// (the occurs-check invariant), so one lookup suffices at resolution.
type substitution map[varID]Value

// applySubst rewrites every bound unknown in v to its substitute.
func applySubst(v Value, s substitution) Value {
	switch v := v.(type) {
	case Variable:
		if repl, ok := s[v.id]; ok {
			return repl
		}
		return v
	case Product:
		return Product{applySubst(v.Left, s), applySubst(v.Right, s)}
	case Power:
		return Power{applySubst(v.Base, s), v.Exp}
	case Derivative:
		return Derivative{applySubst(v.Arg, s)}
	default:
		return v
	}
}

// solve runs the unification loop over the collected constraints and
// returns the finalized substitution. Irreconcilable well-formed
// equivalences are recorded as errors; constraints that cannot be
// simplified or isolated are eventually discarded, deliberately leaving
// their unknowns unresolved.
func (c *checker) solve() substitution {
	subst := substitution{}

	// Evaluate both sides and all conditions once, up front; drop what
	// is trivially satisfied or statically voided.
	var work []constraint
	for _, con := range c.constraints {
		if hasFalse(con.conds) {
			c.trace("drop", "void condition: "+con.String())
			continue
		}
		l := c.evaluate(con.left, con.origin)
		r := c.evaluate(con.right, con.origin)
		if isEmpty(l) || isUndefined(l) || isEmpty(r) || isUndefined(r) {
			c.trace("drop", "trivial: "+con.String())
			continue
		}
		work = append(work, constraint{left: l, right: r, origin: con.origin})
	}

	for changed := true; changed; {
		changed = false
		var remaining []constraint
		for _, con := range work {
			l := c.evaluate(applySubst(con.left, subst), con.origin)
			r := c.evaluate(applySubst(con.right, subst), con.origin)

			if isEmpty(l) || isUndefined(l) || isEmpty(r) || isUndefined(r) {
				changed = true
				continue
			}

			lw, lok := l.(WellFormed)
			rw, rok := r.(WellFormed)
			if lok && rok {
				if !lw.Unit.Equivalent(rw.Unit) {
					c.errorf(EquivalenceMismatch, lw.Unit, rw.Unit, con.origin)
				}
				changed = true
				continue
			}

			if id, repl, ok := c.isolate(l, r); ok {
				c.bind(subst, id, repl, con.origin)
				changed = true
				continue
			}

			remaining = append(remaining, constraint{left: l, right: r, origin: con.origin})
		}
		work = remaining
	}

	for _, con := range work {
		c.trace("drop", "unsolvable shape: "+con.String())
	}
	return subst
}

// isolate rewrites the constraint l ~ r into the canonical form
// v ~ value, for some unknown v occurring exactly once across both
// sides, by peeling products and powers off the side containing it.
// Derivative nodes block peeling: der is not invertible on a unit that
// may still turn out Empty.
func (c *checker) isolate(l, r Value) (varID, Value, bool) {
	counts := map[varID]int{}
	freeVars(l, counts)
	freeVars(r, counts)

	ids := maps.Keys(counts)
	slices.Sort(ids)
	for _, id := range ids {
		if counts[id] != 1 {
			continue
		}
		if occurs(l, id) {
			if repl, ok := peel(l, r, id); ok {
				return id, repl, true
			}
		} else {
			if repl, ok := peel(r, l, id); ok {
				return id, repl, true
			}
		}
	}
	return 0, nil, false
}

// peel unwraps target down to the unknown id, accumulating the inverse
// of everything peeled off onto acc: from v.x ~ u it derives
// v ~ u.x^-1, from v^e ~ u it derives v ~ u^(1/e).
func peel(target, acc Value, id varID) (Value, bool) {
	for {
		switch t := target.(type) {
		case Variable:
			if t.id == id {
				return acc, true
			}
			return nil, false
		case Product:
			if occurs(t.Left, id) {
				acc = Product{acc, Power{Base: t.Right, Exp: ratMinusOne}}
				target = t.Left
			} else {
				acc = Product{acc, Power{Base: t.Left, Exp: ratMinusOne}}
				target = t.Right
			}
		case Power:
			if t.Exp.Sign() == 0 {
				return nil, false
			}
			acc = Power{Base: acc, Exp: new(big.Rat).Inv(t.Exp)}
			target = t.Base
		default:
			return nil, false
		}
	}
}

// bind records id -> repl, composing it into the existing substitution
// while maintaining acyclicity: repl is first rewritten by the current
// substitution, then every recorded value is rewritten by the new entry.
func (c *checker) bind(s substitution, id varID, repl Value, origin string) {
	repl = c.evaluate(applySubst(repl, s), origin)
	if occurs(repl, id) {
		c.trace("drop", "occurs check: "+Variable{id: id, name: c.names[id]}.String()+" in "+repl.String())
		return
	}
	for k, v := range s {
		s[k] = c.evaluate(substituteVar(v, id, repl), origin)
	}
	s[id] = repl
	c.trace("substitute", Variable{id: id, name: c.names[id]}.String()+" -> "+repl.String())
}
