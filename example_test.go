// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd_test

import (
	"fmt"

	rudd "github.com/matejpavlik/cudd-3val"
)

// This example shows the basic usage of the package: create a BDD, combine a
// few variables with the bounded apply operators and inspect the result.
func Example_basic() {
	bdd, _ := rudd.New(3)
	// f == x0 & x1
	f, _ := bdd.AndReduced(bdd.Ithvar(0), bdd.Ithvar(1), rudd.NoLimit, nil)
	fmt.Printf("f(1,1,0) = %d\n", bdd.Eval(f, []int{1, 1, 0}))
	fmt.Printf("f(1,0,0) = %d\n", bdd.Eval(f, []int{1, 0, 0}))
	fmt.Printf("nodes in f: %d\n", bdd.NodeCount(f))
	// Output:
	// f(1,1,0) = 1
	// f(1,0,0) = 0
	// nodes in f: 2
}

// This example shows ReduceByValuation collapsing a BDD to ⊥ when restricted
// by a valuation that is itself entirely undefined: with nothing left in
// val's domain, the restriction carries no information about f.
func Example_valuation() {
	bdd, _ := rudd.New(2)
	f, _ := bdd.XorReduced(bdd.Ithvar(0), bdd.Ithvar(1), rudd.NoLimit, nil)
	res, _ := bdd.ReduceByValuation(f, bdd.Unknown())
	fmt.Printf("unknown everywhere: %v\n", bdd.IsUnknown(res))
	// Output:
	// unknown everywhere: true
}

// This example shows that ReduceByNodeLimit with an unbounded budget leaves
// an already-reduced diagram untouched, regardless of which heuristic picks
// the traversal order.
func Example_budget() {
	bdd, _ := rudd.New(3)
	f, _ := bdd.AndReduced(bdd.Ithvar(0), bdd.Ithvar(1), rudd.NoLimit, nil)
	g, _ := bdd.ReduceByNodeLimit(f, rudd.NoLimit, rudd.GreedyOneStep)
	fmt.Printf("equal: %v\n", bdd.Equal(f, g))
	// Output:
	// equal: true
}
