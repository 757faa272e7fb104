//go:build avogen
// +build avogen

// Command avogen emits AVX2 assembly for the movemask primitives of
// internal/polyfill's Mover interface; the Mover backends themselves are
// portable Go and do not call it. It is not part of the upack build; run it with
// `go run -tags avogen .` from this directory and commit the generated
// file, the way go:generate directives normally work for avo-based
// codegen.
package main

import (
	"flag"
	"strings"

	. "github.com/mmcloughlin/avo/build"
)

var component = flag.String("component", "all", "component to generate")

// main emits the movemask family so go:generate stays a single invocation.
func main() {
	flag.Parse()

	comp := strings.ToLower(*component)

	Package("github.com/lnx-search/upack-go/internal/polyfill")
	ConstraintExpr("amd64")
	ConstraintExpr("!noasm")

	if comp == "movemask" || comp == "all" {
		genMovemaskKernel()
		genMovemaskInverseKernel()
	}

	Generate()
}
