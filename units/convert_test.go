package units_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/cockroachdb/apd/v3"

	"github.com/modelic/unit-toolbox-go/units"
)

func mustDecimal(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestConvertDecimal(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		from, to string
		want     string
	}{
		{"identity", "42", "m", "m", "42"},
		{"second to millisecond", "2", "s", "ms", "2000"},
		{"millisecond to second", "1500", "ms", "s", "1.5"},
		{"kelvin to celsius", "300", "K", "degC", "26.85"},
		{"celsius to kelvin", "26.85", "degC", "K", "300"},
		{"newton to kilonewton", "2500", "N", "kN", "2.5"},
		{"minute to second", "3", "min", "s", "180"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := units.ConvertDecimal(context.Background(),
				mustDecimal(t, tt.value),
				units.MustParse(tt.from), units.MustParse(tt.to))
			if err != nil {
				t.Fatal(err)
			}
			if want := mustDecimal(t, tt.want); got.Cmp(want) != 0 {
				t.Errorf("ConvertDecimal(%s, %s, %s) = %s, want %s",
					tt.value, tt.from, tt.to, got, want)
			}
		})
	}
}

func TestConvertDecimalNotConvertible(t *testing.T) {
	_, err := units.ConvertDecimal(context.Background(),
		mustDecimal(t, "1"), units.Meter(), units.Second())
	if err == nil {
		t.Error("converting m to s succeeded, want error")
	}
}

func TestConvertDecimalAPDContext(t *testing.T) {
	ctx := units.WithAPDContext(context.Background(), apd.BaseContext.WithPrecision(3))
	got, err := units.ConvertDecimal(ctx,
		mustDecimal(t, "123456"), units.MustParse("mm"), units.Meter())
	if err != nil {
		t.Fatal(err)
	}
	// Three significant digits survive the rescale.
	if want := mustDecimal(t, "123"); got.Cmp(want) != 0 {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestRat(t *testing.T) {
	tests := []struct {
		in   string
		want *big.Rat
	}{
		{"3", big.NewRat(3, 1)},
		{"-3", big.NewRat(-3, 1)},
		{"0.5", big.NewRat(1, 2)},
		{"2E2", big.NewRat(200, 1)},
		{"0.1", big.NewRat(1, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := units.Rat(mustDecimal(t, tt.in))
			if !ok {
				t.Fatalf("Rat(%s) not finite", tt.in)
			}
			if got.Cmp(tt.want) != 0 {
				t.Errorf("Rat(%s) = %s, want %s", tt.in, got.RatString(), tt.want.RatString())
			}
		})
	}

	t.Run("infinity", func(t *testing.T) {
		d := &apd.Decimal{Form: apd.Infinite}
		if _, ok := units.Rat(d); ok {
			t.Error("Rat(Inf) reported ok")
		}
	})
}
