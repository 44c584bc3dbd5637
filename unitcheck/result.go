package unitcheck

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/modelic/unit-toolbox-go/model"
	"github.com/modelic/unit-toolbox-go/units"
)

// Result is the outcome of one inference pass: the units that could be
// pinned, and the unit errors found along the way. Variables with no
// entry are unknown — silently, by design.
type Result struct {
	units map[string]units.Unit
	order []string
	errs  []Error
}

// Unit returns the resolved unit of a variable, if it has one.
func (r *Result) Unit(name string) (units.Unit, bool) {
	u, ok := r.units[name]
	return u, ok
}

// Errors returns the collected unit errors in detection order.
func (r *Result) Errors() []Error {
	return r.errs
}

// OK reports whether the pass found no unit errors. Unknown units alone
// do not constitute failure.
func (r *Result) OK() bool {
	return len(r.errs) == 0
}

// String renders a diagnostic report: one line per variable in
// declaration order, followed by the errors.
func (r *Result) String() string {
	var b strings.Builder
	for _, name := range r.order {
		if u, ok := r.units[name]; ok {
			fmt.Fprintf(&b, "%s: %s\n", name, u)
		} else {
			fmt.Fprintf(&b, "%s: unknown\n", name)
		}
	}
	for _, e := range r.errs {
		fmt.Fprintf(&b, "error: %s\n", e.Error())
	}
	return b.String()
}

// Check infers the unit of every variable of the flattened model m.
//
// The returned error reports violations of the input contract
// (malformed unit literals and the like); unit inconsistencies are
// never Go errors — they are collected in the Result so that one pass
// reports every independently detectable conflict.
//
// The context configures the pass: WithTracer, and
// WithDimensionlessExponents.
func Check(ctx context.Context, m *model.Model) (*Result, error) {
	if m == nil {
		return nil, fmt.Errorf("unitcheck: nil model")
	}

	c := newChecker(m)
	c.tracer = tracerFrom(ctx)
	c.dimlessExponents = dimensionlessExponents(ctx)

	c.declare()
	c.buildBindings()
	c.buildEquations()
	if len(c.contract) > 0 {
		return nil, errors.Join(c.contract...)
	}

	subst := c.solve()
	c.runDeferred(subst)
	return c.resolve(subst), nil
}

// runDeferred performs the post-resolution dimensionless checks: each
// deferred value that resolved to a well-formed unit must be
// equivalent to "1".
func (c *checker) runDeferred(subst substitution) {
	for _, d := range c.deferred {
		if hasFalse(d.conds) {
			continue
		}
		v := c.evaluate(applySubst(d.value, subst), d.origin)
		if wf, ok := v.(WellFormed); ok && !wf.Unit.Equivalent(units.One()) {
			c.errs = append(c.errs, Error{
				Kind:    EquivalenceMismatch,
				Left:    wf.Unit,
				Right:   units.One(),
				Context: d.origin,
			})
		}
	}
}

// resolve walks the finalized substitution and produces the
// per-variable results. It only reads the substitution; running it
// again over the same substitution yields the same Result.
func (c *checker) resolve(subst substitution) *Result {
	res := &Result{
		units: map[string]units.Unit{},
		order: make([]string, 0, len(c.model.Variables)),
	}
	for _, v := range c.model.Variables {
		res.order = append(res.order, v.Name)
		id, ok := c.vars[v.Name]
		if !ok {
			continue
		}
		val, ok := subst[id]
		if !ok {
			continue
		}
		if wf, ok := c.evaluate(applySubst(val, subst), v.Name).(WellFormed); ok {
			res.units[v.Name] = wf.Unit
		}
	}
	if c.tracer != nil {
		ids := maps.Keys(subst)
		slices.Sort(ids)
		for _, id := range ids {
			c.trace("solved", Variable{id: id, name: c.names[id]}.String()+" -> "+subst[id].String())
		}
	}
	res.errs = c.errs
	return res
}
