package unitcheck

import (
	"math/big"
	"testing"

	"github.com/modelic/unit-toolbox-go/model"
	"github.com/modelic/unit-toolbox-go/units"
)

func TestEvaluate(t *testing.T) {
	meter := WellFormed{units.Meter()}
	second := WellFormed{units.Second()}

	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"product of units", Product{meter, second}, "m.s"},
		{"empty is left identity", Product{Empty{}, meter}, "m"},
		{"empty is right identity", Product{meter, Empty{}}, "m"},
		{"empty times empty", Product{Empty{}, Empty{}}, "<empty>"},
		{"undefined absorbs", Product{Undefined{}, meter}, "<undefined>"},
		{"undefined beats empty", Product{Undefined{}, Empty{}}, "<undefined>"},
		{"power folds", Power{meter, big.NewRat(2, 1)}, "m2"},
		{"power of empty", Power{Empty{}, big.NewRat(2, 1)}, "<empty>"},
		{"power of undefined", Power{Undefined{}, big.NewRat(2, 1)}, "<undefined>"},
		{"root of square", Power{WellFormed{units.MustParse("m2")}, ratHalf}, "m"},
		{"derivative of unit", Derivative{meter}, "m/s"},
		{"derivative of empty", Derivative{Empty{}}, "<empty>"},
		{"derivative of undefined", Derivative{Undefined{}}, "<undefined>"},
		{"nested product folds", Product{Product{meter, second}, Power{second, ratMinusOne}}, "m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newChecker(&model.Model{})
			got := c.evaluate(tt.in, "test")
			if got.String() != tt.want {
				t.Errorf("evaluate(%s) = %s, want %s", tt.in, got, tt.want)
			}
			if len(c.errs) != 0 {
				t.Errorf("unexpected errors: %v", c.errs)
			}
		})
	}
}

func TestEvaluateSymbolic(t *testing.T) {
	c := newChecker(&model.Model{})
	x := c.varFor("x")

	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"variable stays", x, "unit(x)"},
		{"product keeps unknown", Product{WellFormed{units.Meter()}, x}, "(m.unit(x))"},
		{"power of power multiplies", Power{Power{x, big.NewRat(2, 1)}, ratHalf}, "unit(x)^1"},
		{"power one collapses", Power{x, big.NewRat(1, 1)}, "unit(x)"},
		{"derivative stays symbolic", Derivative{x}, "der(unit(x))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.evaluate(tt.in, "test"); got.String() != tt.want {
				t.Errorf("evaluate(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestEvaluateInvalidExponent(t *testing.T) {
	tests := []struct {
		name string
		in   Value
	}{
		{"offset unit squared", Power{WellFormed{units.DegC()}, big.NewRat(2, 1)}},
		{"inexact scale root", Power{WellFormed{units.MustParse("kN")}, ratHalf}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newChecker(&model.Model{})
			got := c.evaluate(tt.in, "test")
			if !isUndefined(got) {
				t.Errorf("evaluate(%s) = %s, want <undefined>", tt.in, got)
			}
			if len(c.errs) != 1 || c.errs[0].Kind != InvalidExponent {
				t.Errorf("errors = %v, want one InvalidExponent", c.errs)
			}
		})
	}
}

func TestOccursAndSubstitute(t *testing.T) {
	c := newChecker(&model.Model{})
	x := c.varFor("x")
	y := c.varFor("y")

	v := Product{Power{x, big.NewRat(2, 1)}, Derivative{y}}
	if !occurs(v, x.id) || !occurs(v, y.id) {
		t.Error("occurs missed a present unknown")
	}
	if occurs(v, varID(99)) {
		t.Error("occurs reported an absent unknown")
	}

	counts := map[varID]int{}
	freeVars(Product{x, Product{x, y}}, counts)
	if counts[x.id] != 2 || counts[y.id] != 1 {
		t.Errorf("freeVars = %v, want x:2 y:1", counts)
	}

	got := substituteVar(v, y.id, WellFormed{units.Meter()})
	if occurs(got, y.id) {
		t.Errorf("substituteVar left %s behind in %s", y, got)
	}
	if !occurs(got, x.id) {
		t.Errorf("substituteVar removed %s from %s", x, got)
	}
}

func TestIsolate(t *testing.T) {
	newVars := func() (*checker, Variable, Variable) {
		c := newChecker(&model.Model{})
		return c, c.varFor("x"), c.varFor("y")
	}

	t.Run("peel product", func(t *testing.T) {
		c, x, _ := newVars()
		// x.s ~ m  =>  x ~ m/s
		l := Product{x, WellFormed{units.Second()}}
		r := WellFormed{units.Meter()}
		id, repl, ok := c.isolate(l, r)
		if !ok || id != x.id {
			t.Fatalf("isolate failed: id=%d ok=%v", id, ok)
		}
		got := c.evaluate(repl, "test")
		if wf, ok := got.(WellFormed); !ok || !wf.Unit.Equivalent(units.MustParse("m/s")) {
			t.Errorf("repl = %s, want m/s", got)
		}
	})

	t.Run("peel power", func(t *testing.T) {
		c, x, _ := newVars()
		// x^2 ~ m2  =>  x ~ m
		l := Power{x, big.NewRat(2, 1)}
		r := WellFormed{units.MustParse("m2")}
		id, repl, ok := c.isolate(l, r)
		if !ok || id != x.id {
			t.Fatalf("isolate failed: id=%d ok=%v", id, ok)
		}
		got := c.evaluate(repl, "test")
		if wf, ok := got.(WellFormed); !ok || !wf.Unit.Equivalent(units.Meter()) {
			t.Errorf("repl = %s, want m", got)
		}
	})

	t.Run("derivative blocks", func(t *testing.T) {
		c, x, _ := newVars()
		if _, _, ok := c.isolate(Derivative{x}, WellFormed{units.Meter()}); ok {
			t.Error("isolated through a derivative")
		}
	})

	t.Run("repeated unknown blocks", func(t *testing.T) {
		c, x, _ := newVars()
		if _, _, ok := c.isolate(Product{x, x}, WellFormed{units.MustParse("m2")}); ok {
			t.Error("isolated an unknown occurring twice")
		}
	})

	t.Run("prefers lowest id", func(t *testing.T) {
		c, x, y := newVars()
		id, _, ok := c.isolate(Product{y, x}, WellFormed{units.Meter()})
		if !ok || id != x.id {
			t.Errorf("isolate picked id %d, want %d", id, x.id)
		}
	})
}

func TestBindOccursCheck(t *testing.T) {
	c := newChecker(&model.Model{})
	x := c.varFor("x")
	s := substitution{}
	c.bind(s, x.id, Product{x, WellFormed{units.Meter()}}, "test")
	if _, ok := s[x.id]; ok {
		t.Error("bind recorded a cyclic substitution")
	}
}
