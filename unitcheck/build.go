package unitcheck

import (
	"fmt"

	"github.com/modelic/unit-toolbox-go/model"
	"github.com/modelic/unit-toolbox-go/units"
)

// constraint demands that, once all conditions hold, left is equivalent
// to right. Constraints are produced once and consumed exactly once;
// substitution replaces them with fresh copies, never mutates them.
type constraint struct {
	left   Value
	right  Value
	conds  []model.Tristate
	origin string
}

func (c constraint) String() string {
	return fmt.Sprintf("%s ~ %s [%s]", c.left, c.right, c.origin)
}

// deferredCheck is a post-resolution dimensionless check: if value
// resolves to a well-formed unit it must be equivalent to "1".
// Deferring instead of constraining eagerly avoids introducing "1"
// into the model before solving (which would pin otherwise-unitless
// expressions and cause spurious mismatches).
type deferredCheck struct {
	value  Value
	conds  []model.Tristate
	origin string
}

// functions whose single argument must resolve dimensionless.
var dimensionlessFunctions = map[string]bool{
	"sin": true, "cos": true, "tan": true,
	"asin": true, "acos": true, "atan": true,
	"sinh": true, "cosh": true, "tanh": true,
	"exp": true, "log": true, "log10": true,
}

type checker struct {
	model *model.Model

	vars  map[string]varID
	names map[varID]string
	next  varID

	conds       []model.Tristate // conditions governing the construct being built
	constraints []constraint
	deferred    []deferredCheck

	errs     []Error
	contract []error // input-contract violations: malformed unit literals etc.

	dimlessExponents bool
	tracer           Tracer
}

func newChecker(m *model.Model) *checker {
	return &checker{
		model: m,
		vars:  map[string]varID{},
		names: map[varID]string{},
	}
}

func (c *checker) trace(step, detail string) {
	if c.tracer != nil {
		_ = c.tracer.Log(step, detail)
	}
}

func (c *checker) varFor(name string) Variable {
	id, ok := c.vars[name]
	if !ok {
		id = c.next
		c.next++
		c.vars[name] = id
		c.names[id] = name
	}
	return Variable{id: id, name: name}
}

func (c *checker) fresh() Variable {
	id := c.next
	c.next++
	return Variable{id: id}
}

func hasFalse(conds []model.Tristate) bool {
	for _, t := range conds {
		if t == model.False {
			return true
		}
	}
	return false
}

func (c *checker) constrain(left, right Value, origin string) {
	con := constraint{
		left:   left,
		right:  right,
		conds:  append([]model.Tristate(nil), c.conds...),
		origin: origin,
	}
	c.trace("constraint", con.String())
	c.constraints = append(c.constraints, con)
}

func (c *checker) deferDimensionless(v Value, origin string) {
	c.deferred = append(c.deferred, deferredCheck{
		value:  v,
		conds:  append([]model.Tristate(nil), c.conds...),
		origin: origin,
	})
}

// errorf records a unit error unless the construct being built is
// governed by a statically false condition (elided model parts produce
// no diagnostics).
func (c *checker) errorf(kind ErrorKind, left, right units.Unit, origin string) {
	if hasFalse(c.conds) {
		return
	}
	e := Error{Kind: kind, Left: left, Right: right, Context: origin}
	c.trace("conflict", e.Error())
	c.errs = append(c.errs, e)
}

// parseUnit resolves a unit literal from the input model. Malformed
// literals are contract violations, not unit errors: the surrounding
// pipeline promised evaluated, well-formed attributes.
func (c *checker) parseUnit(s, where string) (units.Unit, bool) {
	u, err := units.Parse(s)
	if err != nil {
		c.contract = append(c.contract, fmt.Errorf("%s: %v", where, err))
		return units.Unit{}, false
	}
	return u, true
}

// declare emits the declared-unit-attribute constraints for every
// variable, before any equation is visited.
func (c *checker) declare() {
	for _, v := range c.model.Variables {
		if v.Unit == "" {
			continue
		}
		u, ok := c.parseUnit(v.Unit, "variable "+v.Name)
		if !ok {
			continue
		}
		c.constrain(c.varFor(v.Name), WellFormed{u}, fmt.Sprintf("%s(unit=%q)", v.Name, v.Unit))
	}
}

// buildBindings treats each binding as the equation "v = expr".
func (c *checker) buildBindings() {
	for _, v := range c.model.Variables {
		if v.Binding == nil {
			continue
		}
		origin := fmt.Sprintf("%s = %s", v.Name, v.Binding)
		rhs := c.build(v.Binding, origin)
		c.constrain(c.refValue(v.Name), rhs, origin)
	}
}

func (c *checker) buildEquations() {
	for _, eq := range c.model.Equations {
		origin := eq.String()
		saved := len(c.conds)
		c.conds = append(c.conds, eq.Conditions...)
		l := c.build(eq.Left, origin)
		r := c.build(eq.Right, origin)
		c.constrain(l, r, origin)
		c.conds = c.conds[:saved]
	}
}

// refValue is the meta-expression of a variable reference: literal-like
// constants without a declared unit are Empty, everything else is the
// variable's unknown.
func (c *checker) refValue(name string) Value {
	v, ok := c.model.Variable(name)
	if !ok {
		return Undefined{}
	}
	if v.Variability == model.Constant && v.Unit == "" {
		return Empty{}
	}
	return c.varFor(name)
}

// build produces the unit meta-expression of one expression node,
// emitting constraints along the way.
func (c *checker) build(e model.Expression, origin string) Value {
	switch e := e.(type) {
	case model.Ref:
		return c.refValue(e.Name)

	case model.Literal:
		return Empty{}

	case model.Negate:
		return c.build(e.Arg, origin)

	case model.Binary:
		return c.buildBinary(e, origin)

	case model.Call:
		return c.buildCall(e, origin)

	case model.Der:
		return Derivative{c.build(e.Arg, origin)}

	case model.If:
		v := c.fresh()
		thenCond, elseCond := model.True, model.False
		switch e.Condition {
		case model.False:
			thenCond, elseCond = model.False, model.True
		case model.Unknown:
			thenCond, elseCond = model.Unknown, model.Unknown
		}
		c.buildBranch(e.Then, thenCond, v, origin)
		c.buildBranch(e.Else, elseCond, v, origin)
		return v

	case model.WithUnit:
		arg := c.build(e.Arg, origin)
		u, ok := c.parseUnit(e.Unit, origin)
		if !ok {
			return Undefined{}
		}
		if wf, ok := c.evaluate(arg, origin).(WellFormed); ok {
			c.errorf(ConversionPrecondition, wf.Unit, u, origin)
		}
		return WellFormed{u}

	case model.WithoutUnit:
		arg := c.build(e.Arg, origin)
		u, ok := c.parseUnit(e.Unit, origin)
		if !ok {
			return Undefined{}
		}
		c.checkConvertible(arg, u, origin)
		return Empty{}

	case model.InUnit:
		arg := c.build(e.Arg, origin)
		u, ok := c.parseUnit(e.Unit, origin)
		if !ok {
			return Undefined{}
		}
		c.checkConvertible(arg, u, origin)
		return WellFormed{u}

	default:
		panic(fmt.Sprintf("unexpected expression %T", e))
	}
}

// checkConvertible enforces the withoutUnit/inUnit precondition as far
// as it is decidable at build time: a concrete source unit must be
// convertible to the target, and Empty is convertible to nothing, not
// even itself. A still-unknown source passes unverified.
func (c *checker) checkConvertible(arg Value, u units.Unit, origin string) {
	switch v := c.evaluate(arg, origin).(type) {
	case WellFormed:
		if !v.Unit.Convertible(u) {
			c.errorf(ConversionPrecondition, v.Unit, u, origin)
		}
	case Empty:
		c.errorf(ConversionPrecondition, units.One(), u, origin)
	}
}

// buildBranch builds one branch of an if-expression under the given
// condition. Constraints emitted inside an elided (false) branch are
// collected but voided by their condition rather than solved.
func (c *checker) buildBranch(branch model.Expression, cond model.Tristate, v Variable, origin string) {
	saved := len(c.conds)
	c.conds = append(c.conds, cond)
	val := c.build(branch, origin)
	c.constrain(v, val, origin)
	c.conds = c.conds[:saved]
}

func (c *checker) buildBinary(e model.Binary, origin string) Value {
	if e.Op.Relational() {
		l := c.build(e.Left, origin)
		r := c.build(e.Right, origin)
		c.constrain(l, r, origin)
		return Empty{}
	}

	switch e.Op {
	case model.Add, model.Sub:
		// The fresh unknown permits unification when one operand's unit
		// is Empty: both constraints then collapse onto the other side.
		l := c.build(e.Left, origin)
		r := c.build(e.Right, origin)
		v := c.fresh()
		c.constrain(v, l, origin)
		c.constrain(v, r, origin)
		return v

	case model.Mul:
		return Product{c.build(e.Left, origin), c.build(e.Right, origin)}

	case model.Div:
		l := c.build(e.Left, origin)
		r := c.build(e.Right, origin)
		return Product{l, Power{Base: r, Exp: ratMinusOne}}

	case model.Pow:
		base := c.build(e.Left, origin)
		v := c.fresh()
		if lit, ok := e.Right.(model.Literal); ok {
			if exp, ok := units.Rat(lit.Value); ok {
				c.constrain(v, Power{Base: base, Exp: exp}, origin)
				return v
			}
		}
		// Exponent is not a compile-time rational constant: the base
		// must resolve dimensionless, checked after resolution.
		expv := c.build(e.Right, origin)
		c.deferDimensionless(base, origin)
		if c.dimlessExponents {
			c.deferDimensionless(expv, origin)
		}
		return v

	default:
		panic(fmt.Sprintf("unexpected binary operator %v", e.Op))
	}
}

func (c *checker) buildCall(e model.Call, origin string) Value {
	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		args[i] = c.build(a, origin)
	}

	if dimensionlessFunctions[e.Name] && len(args) == 1 {
		// The call's unit equals the argument's unit; whether that unit
		// is in fact "1" is checked only after resolution, so an
		// Empty-united model stays Empty-united.
		c.deferDimensionless(args[0], origin)
		return args[0]
	}

	switch {
	case e.Name == "sqrt" && len(args) == 1:
		v := c.fresh()
		c.constrain(v, Power{Base: args[0], Exp: ratHalf}, origin)
		return v

	case e.Name == "sign" && len(args) == 1:
		c.deferDimensionless(args[0], origin)
		if isEmpty(c.evaluate(args[0], origin)) {
			return Empty{}
		}
		return WellFormed{units.One()}

	case e.Name == "atan2" && len(args) == 2:
		c.constrain(args[0], args[1], origin)
		if isEmpty(c.evaluate(args[0], origin)) && isEmpty(c.evaluate(args[1], origin)) {
			return Empty{}
		}
		return WellFormed{units.One()}

	case e.Name == "abs" && len(args) == 1:
		return args[0]

	case (e.Name == "min" || e.Name == "max") && len(args) == 2:
		v := c.fresh()
		c.constrain(v, args[0], origin)
		c.constrain(v, args[1], origin)
		return v

	case e.Name == "der" && len(args) == 1:
		return Derivative{args[0]}
	}

	fn, ok := c.model.Function(e.Name)
	if !ok {
		return Undefined{}
	}
	for i, in := range fn.Inputs {
		if i >= len(args) || in.Unit == "" {
			continue
		}
		u, ok := c.parseUnit(in.Unit, fmt.Sprintf("function %s input %s", fn.Name, in.Name))
		if !ok {
			continue
		}
		c.constrain(args[i], WellFormed{u}, origin)
	}
	if fn.Output.Unit == "" {
		return Undefined{}
	}
	u, ok := c.parseUnit(fn.Output.Unit, fmt.Sprintf("function %s output", fn.Name))
	if !ok {
		return Undefined{}
	}
	return WellFormed{u}
}
