package unitcheck

import (
	"context"
	"fmt"
	"os"
)

// Tracer receives solver step notifications when installed via WithTracer.
type Tracer interface {
	// Log logs one solver step with a human-readable detail string.
	Log(step string, detail string) error
}

// StdoutTracer writes trace messages to os.Stdout.
type StdoutTracer struct{}

func (StdoutTracer) Log(step string, detail string) error {
	_, err := fmt.Fprintf(os.Stdout, "unitcheck %s: %s\n", step, detail)
	return err
}

type tracerKey struct{}

// WithTracer installs a Tracer that observes the solver's constraint
// processing: constraint intake, substitutions, drops, and conflicts.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	return context.WithValue(ctx, tracerKey{}, t)
}

func tracerFrom(ctx context.Context) Tracer {
	if ctx == nil {
		return nil
	}
	t, _ := ctx.Value(tracerKey{}).(Tracer)
	return t
}

type dimlessExpKey struct{}

// WithDimensionlessExponents enables the policy that a non-evaluated
// Real exponent's own unit must resolve to "1", analogous to the
// argument of a transcendental function. The default leaves the
// exponent's unit unconstrained.
func WithDimensionlessExponents(ctx context.Context) context.Context {
	return context.WithValue(ctx, dimlessExpKey{}, true)
}

func dimensionlessExponents(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	v, _ := ctx.Value(dimlessExpKey{}).(bool)
	return v
}
