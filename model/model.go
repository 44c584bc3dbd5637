// Package model defines the input contract of the unit inference
// engine: a flattened expression/equation tree in which every
// compile-time-evaluable parameter has already been reduced to a value
// and every governing condition has been resolved to a truth value or
// marked as not evaluated.
//
// The package carries no behavior beyond printing; it is produced by
// the flattening and evaluation stages of a larger model-processing
// pipeline and consumed by the unitcheck package.
package model

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Tristate is the evaluated truth value of a condition expression.
// Unknown means the condition could not be evaluated at compile time.
type Tristate uint8

const (
	Unknown Tristate = iota
	True
	False
)

func (t Tristate) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

// Variability is the component variability classification of a variable.
type Variability uint8

const (
	Continuous Variability = iota
	Discrete
	Parameter
	Constant
)

func (v Variability) String() string {
	switch v {
	case Discrete:
		return "discrete"
	case Parameter:
		return "parameter"
	case Constant:
		return "constant"
	default:
		return "continuous"
	}
}

// BinaryOp enumerates the flattened binary expression operators.
type BinaryOp uint8

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Pow
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
)

var binaryOpSymbols = [...]string{"+", "-", "*", "/", "^", "==", "<>", "<", "<=", ">", ">="}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpSymbols) {
		return binaryOpSymbols[op]
	}
	return "?"
}

// Relational reports whether the operator compares rather than computes.
func (op BinaryOp) Relational() bool { return op >= Eq }

// Expression is a node of the flattened expression tree.
type Expression interface {
	fmt.Stringer
	isExpression()
}

// Ref is a reference to a declared variable.
type Ref struct {
	Name string
}

// Literal is a numeric constant, or an already-evaluated parameter value.
type Literal struct {
	Value *apd.Decimal
}

// Num builds a Literal from its decimal text. It panics on malformed
// input; it exists for hardcoded expressions in tests and examples.
func Num(s string) Literal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return Literal{Value: d}
}

// Binary applies op to two operands.
type Binary struct {
	Op    BinaryOp
	Left  Expression
	Right Expression
}

// Negate is unary minus.
type Negate struct {
	Arg Expression
}

// Call invokes a declared or builtin function.
type Call struct {
	Name string
	Args []Expression
}

// Der is the time derivative operator.
type Der struct {
	Arg Expression
}

// If selects between two branches. Condition carries the evaluated
// truth value of the governing expression; Unknown means both branches
// are live.
type If struct {
	Condition Tristate
	Then      Expression
	Else      Expression
}

// WithUnit stamps a unit onto a unit-less value.
type WithUnit struct {
	Arg  Expression
	Unit string
}

// WithoutUnit strips the unit from a value, rescaling it into Unit.
type WithoutUnit struct {
	Arg  Expression
	Unit string
}

// InUnit rescales a value into Unit, keeping Unit as the result unit.
type InUnit struct {
	Arg  Expression
	Unit string
}

func (Ref) isExpression()         {}
func (Literal) isExpression()     {}
func (Binary) isExpression()      {}
func (Negate) isExpression()      {}
func (Call) isExpression()        {}
func (Der) isExpression()         {}
func (If) isExpression()          {}
func (WithUnit) isExpression()    {}
func (WithoutUnit) isExpression() {}
func (InUnit) isExpression()      {}

func (e Ref) String() string     { return e.Name }
func (e Literal) String() string { return e.Value.String() }
func (e Binary) String() string {
	return fmt.Sprintf("%s %s %s", e.Left, e.Op, e.Right)
}
func (e Negate) String() string { return fmt.Sprintf("-%s", e.Arg) }
func (e Call) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", e.Name, strings.Join(args, ", "))
}
func (e Der) String() string { return fmt.Sprintf("der(%s)", e.Arg) }
func (e If) String() string {
	return fmt.Sprintf("if <%s> then %s else %s", e.Condition, e.Then, e.Else)
}
func (e WithUnit) String() string {
	return fmt.Sprintf("withUnit(%s, %q)", e.Arg, e.Unit)
}
func (e WithoutUnit) String() string {
	return fmt.Sprintf("withoutUnit(%s, %q)", e.Arg, e.Unit)
}
func (e InUnit) String() string {
	return fmt.Sprintf("inUnit(%s, %q)", e.Arg, e.Unit)
}

// Variable is a declared model variable and its unit-relevant attributes.
type Variable struct {
	Name string
	// Unit is the declared unit attribute; empty means undeclared.
	Unit        string
	Variability Variability
	// Binding is the variable's binding equation, if any.
	Binding Expression
}

// Param is a function formal parameter with its declared unit
// (empty means undeclared).
type Param struct {
	Name string
	Unit string
}

// Function is a function signature. Unit inference never looks at
// function bodies; units are taken from the declaration only.
type Function struct {
	Name   string
	Inputs []Param
	Output Param
}

// Equation equates two expressions. Conditions are the evaluated guard
// conditions of enclosing conditional structure: if any is False the
// equation belongs to an elided part of the model.
type Equation struct {
	Left       Expression
	Right      Expression
	Conditions []Tristate
}

func (e Equation) String() string {
	return fmt.Sprintf("%s = %s", e.Left, e.Right)
}

// Model is one flattened model instance: a closed set of variables,
// function signatures, and equations.
type Model struct {
	Variables []Variable
	Functions []Function
	Equations []Equation
}

// Variable looks up a declared variable by name.
func (m *Model) Variable(name string) (*Variable, bool) {
	for i := range m.Variables {
		if m.Variables[i].Name == name {
			return &m.Variables[i], true
		}
	}
	return nil, false
}

// Function looks up a function signature by name.
func (m *Model) Function(name string) (*Function, bool) {
	for i := range m.Functions {
		if m.Functions[i].Name == name {
			return &m.Functions[i], true
		}
	}
	return nil, false
}
