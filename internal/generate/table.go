// Package generate emits the named-unit table of the units package
// from the declarative definitions below.
package generate

import (
	"fmt"

	"github.com/iancoleman/strcase"

	. "github.com/dave/jennifer/jen"
)

// UnitDef describes one named unit. Dims are the rational base-dimension
// exponents in kg, m, s, A, K, mol, cd order; Scale and Offset are
// rational strings understood by big.Rat.
type UnitDef struct {
	Symbol string
	Name   string // snake_case constructor name; empty = alias, no constructor
	Doc    string
	Scale  string
	Offset string
	Dims   [7]int
	// NoPrefix excludes the symbol from SI-prefix resolution (kg, min, ...).
	NoPrefix bool
	// NoCanon excludes the symbol from reverse lookup in Unit.String,
	// used for units that alias another definition (Bq vs Hz, Sv vs Gy).
	NoCanon bool
}

var Units = []UnitDef{
	{Symbol: "m", Name: "meter", Doc: "the SI unit of length", Scale: "1", Offset: "0", Dims: [7]int{0, 1, 0, 0, 0, 0, 0}},
	{Symbol: "kg", Name: "kilogram", Doc: "the SI unit of mass", Scale: "1", Offset: "0", Dims: [7]int{1, 0, 0, 0, 0, 0, 0}, NoPrefix: true},
	{Symbol: "s", Name: "second", Doc: "the SI unit of time", Scale: "1", Offset: "0", Dims: [7]int{0, 0, 1, 0, 0, 0, 0}},
	{Symbol: "A", Name: "ampere", Doc: "the SI unit of electric current", Scale: "1", Offset: "0", Dims: [7]int{0, 0, 0, 1, 0, 0, 0}},
	{Symbol: "K", Name: "kelvin", Doc: "the SI unit of thermodynamic temperature", Scale: "1", Offset: "0", Dims: [7]int{0, 0, 0, 0, 1, 0, 0}},
	{Symbol: "mol", Name: "mole", Doc: "the SI unit of amount of substance", Scale: "1", Offset: "0", Dims: [7]int{0, 0, 0, 0, 0, 1, 0}},
	{Symbol: "cd", Name: "candela", Doc: "the SI unit of luminous intensity", Scale: "1", Offset: "0", Dims: [7]int{0, 0, 0, 0, 0, 0, 1}},
	{Symbol: "g", Name: "gram", Doc: "one thousandth of a kilogram, the prefixable mass symbol", Scale: "1/1000", Offset: "0", Dims: [7]int{1, 0, 0, 0, 0, 0, 0}},
	{Symbol: "N", Name: "newton", Doc: "the SI unit of force", Scale: "1", Offset: "0", Dims: [7]int{1, 1, -2, 0, 0, 0, 0}},
	{Symbol: "Pa", Name: "pascal", Doc: "the SI unit of pressure", Scale: "1", Offset: "0", Dims: [7]int{1, -1, -2, 0, 0, 0, 0}},
	{Symbol: "J", Name: "joule", Doc: "the SI unit of energy", Scale: "1", Offset: "0", Dims: [7]int{1, 2, -2, 0, 0, 0, 0}},
	{Symbol: "W", Name: "watt", Doc: "the SI unit of power", Scale: "1", Offset: "0", Dims: [7]int{1, 2, -3, 0, 0, 0, 0}},
	{Symbol: "Hz", Name: "hertz", Doc: "the SI unit of frequency", Scale: "1", Offset: "0", Dims: [7]int{0, 0, -1, 0, 0, 0, 0}},
	{Symbol: "C", Name: "coulomb", Doc: "the SI unit of electric charge", Scale: "1", Offset: "0", Dims: [7]int{0, 0, 1, 1, 0, 0, 0}},
	{Symbol: "V", Name: "volt", Doc: "the SI unit of electric potential", Scale: "1", Offset: "0", Dims: [7]int{1, 2, -3, -1, 0, 0, 0}},
	{Symbol: "F", Name: "farad", Doc: "the SI unit of capacitance", Scale: "1", Offset: "0", Dims: [7]int{-1, -2, 4, 2, 0, 0, 0}},
	{Symbol: "Ohm", Name: "ohm", Doc: "the SI unit of electric resistance", Scale: "1", Offset: "0", Dims: [7]int{1, 2, -3, -2, 0, 0, 0}},
	{Symbol: "S", Name: "siemens", Doc: "the SI unit of electric conductance", Scale: "1", Offset: "0", Dims: [7]int{-1, -2, 3, 2, 0, 0, 0}},
	{Symbol: "Wb", Name: "weber", Doc: "the SI unit of magnetic flux", Scale: "1", Offset: "0", Dims: [7]int{1, 2, -2, -1, 0, 0, 0}},
	{Symbol: "T", Name: "tesla", Doc: "the SI unit of magnetic flux density", Scale: "1", Offset: "0", Dims: [7]int{1, 0, -2, -1, 0, 0, 0}},
	{Symbol: "H", Name: "henry", Doc: "the SI unit of inductance", Scale: "1", Offset: "0", Dims: [7]int{1, 2, -2, -2, 0, 0, 0}},
	{Symbol: "lx", Name: "lux", Doc: "the SI unit of illuminance", Scale: "1", Offset: "0", Dims: [7]int{0, -2, 0, 0, 0, 0, 1}},
	{Symbol: "Gy", Name: "gray", Doc: "the SI unit of absorbed dose", Scale: "1", Offset: "0", Dims: [7]int{0, 2, -2, 0, 0, 0, 0}},
	{Symbol: "kat", Name: "katal", Doc: "the SI unit of catalytic activity", Scale: "1", Offset: "0", Dims: [7]int{0, 0, -1, 0, 0, 1, 0}},
	{Symbol: "min", Name: "minute", Doc: "sixty seconds", Scale: "60", Offset: "0", Dims: [7]int{0, 0, 1, 0, 0, 0, 0}, NoPrefix: true},
	{Symbol: "h", Name: "hour", Doc: "sixty minutes", Scale: "3600", Offset: "0", Dims: [7]int{0, 0, 1, 0, 0, 0, 0}, NoPrefix: true},
	{Symbol: "d", Name: "day", Doc: "twenty-four hours", Scale: "86400", Offset: "0", Dims: [7]int{0, 0, 1, 0, 0, 0, 0}, NoPrefix: true},
	{Symbol: "l", Name: "litre", Doc: "one cubic decimetre", Scale: "1/1000", Offset: "0", Dims: [7]int{0, 3, 0, 0, 0, 0, 0}},
	{Symbol: "bar", Name: "bar", Doc: "one hundred kilopascal", Scale: "100000", Offset: "0", Dims: [7]int{1, -1, -2, 0, 0, 0, 0}},
	{Symbol: "t", Name: "tonne", Doc: "one thousand kilograms", Scale: "1000", Offset: "0", Dims: [7]int{1, 0, 0, 0, 0, 0, 0}, NoPrefix: true},
	{Symbol: "degC", Name: "deg_c", Doc: "degree Celsius, affine to kelvin", Scale: "1", Offset: "5463/20", Dims: [7]int{0, 0, 0, 0, 1, 0, 0}, NoPrefix: true},
	{Symbol: "degF", Name: "deg_f", Doc: "degree Fahrenheit, affine to kelvin", Scale: "5/9", Offset: "45967/180", Dims: [7]int{0, 0, 0, 0, 1, 0, 0}, NoPrefix: true},
	{Symbol: "rad", Name: "radian", Doc: "the SI unit of plane angle, dimensionless", Scale: "1", Offset: "0", NoCanon: true},
	{Symbol: "sr", Name: "steradian", Doc: "the SI unit of solid angle, dimensionless", Scale: "1", Offset: "0", NoCanon: true},
	{Symbol: "lm", Name: "lumen", Doc: "the SI unit of luminous flux", Scale: "1", Offset: "0", Dims: [7]int{0, 0, 0, 0, 0, 0, 1}, NoCanon: true},
	{Symbol: "Bq", Name: "becquerel", Doc: "the SI unit of radioactivity", Scale: "1", Offset: "0", Dims: [7]int{0, 0, -1, 0, 0, 0, 0}, NoCanon: true},
	{Symbol: "Sv", Name: "sievert", Doc: "the SI unit of dose equivalent", Scale: "1", Offset: "0", Dims: [7]int{0, 2, -2, 0, 0, 0, 0}, NoCanon: true},
	{Symbol: "L", Doc: "alias for litre", Scale: "1/1000", Offset: "0", Dims: [7]int{0, 3, 0, 0, 0, 0, 0}, NoCanon: true},
}

// Table renders the units table file.
func Table() *File {
	f := NewFile("units")
	f.HeaderComment("Code generated by github.com/modelic/unit-toolbox-go/internal/cmd/generate. DO NOT EDIT.")

	for _, d := range Units {
		if d.Name == "" {
			continue
		}
		ctor := strcase.ToCamel(d.Name)
		f.Comment(fmt.Sprintf("%s returns %s (%q).", ctor, d.Doc, d.Symbol))
		f.Func().Id(ctor).Params().Id("Unit").Block(
			Return(Id("namedUnits").Index(Lit(d.Symbol))),
		)
	}

	f.Comment("namedUnits maps unit symbols to their definitions.")
	f.Var().Id("namedUnits").Op("=").Map(String()).Id("Unit").Values(DictFunc(func(m Dict) {
		for _, d := range Units {
			args := []Code{Lit(d.Scale), Lit(d.Offset)}
			for _, e := range d.Dims {
				args = append(args, Lit(e))
			}
			m[Lit(d.Symbol)] = Id("unitDef").Call(args...)
		}
	}))

	f.Comment("prefixableUnits marks symbols that accept SI prefixes.")
	f.Var().Id("prefixableUnits").Op("=").Map(String()).Bool().Values(DictFunc(func(m Dict) {
		for _, d := range Units {
			if !d.NoPrefix {
				m[Lit(d.Symbol)] = True()
			}
		}
	}))

	f.Comment("canonicalOrder lists symbols in reverse-lookup preference order.")
	f.Var().Id("canonicalOrder").Op("=").Index().String().ValuesFunc(func(g *Group) {
		for _, d := range Units {
			if !d.NoCanon {
				g.Lit(d.Symbol)
			}
		}
	})

	return f
}
