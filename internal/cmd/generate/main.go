// Command generate regenerates the named-unit table. It is meant to be
// run through go:generate from the units package directory.
package main

import (
	"flag"
	"log"

	"github.com/modelic/unit-toolbox-go/internal/generate"
)

func main() {
	out := flag.String("out", "table_gen.go", "output file")
	flag.Parse()

	if err := generate.Table().Save(*out); err != nil {
		log.Fatal(err)
	}
}
