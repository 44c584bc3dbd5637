package unitcheck

import (
	"fmt"

	"github.com/modelic/unit-toolbox-go/units"
)

// ErrorKind classifies a collected unit error.
type ErrorKind uint8

const (
	// EquivalenceMismatch: two well-formed units required to be
	// equivalent are not. Includes declared-attribute mismatches and
	// the deferred "argument must be dimensionless" checks.
	EquivalenceMismatch ErrorKind = iota
	// ConversionPrecondition: a withUnit/withoutUnit/inUnit operand
	// violated the operator's unit precondition.
	ConversionPrecondition
	// InvalidExponent: an offset unit raised to a power other than one,
	// or a power whose exact result does not exist.
	InvalidExponent
)

func (k ErrorKind) String() string {
	switch k {
	case ConversionPrecondition:
		return "conversion precondition violated"
	case InvalidExponent:
		return "invalid exponent"
	default:
		return "unit mismatch"
	}
}

// Error records one irreconcilable unit conflict. Errors are collected
// across the whole pass and returned in batch; they never abort solving.
type Error struct {
	Kind    ErrorKind
	Left    units.Unit
	Right   units.Unit
	Context string
}

func (e Error) Error() string {
	switch e.Kind {
	case InvalidExponent:
		return fmt.Sprintf("%s: unit %s in %q", e.Kind, e.Left, e.Context)
	default:
		return fmt.Sprintf("%s: %s vs %s in %q", e.Kind, e.Left, e.Right, e.Context)
	}
}
