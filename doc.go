// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package rudd defines a concrete type for three-valued Binary Decision
Diagrams (BDD), a data structure used to represent Boolean functions that may
also be undefined on part of their domain. Every function value is one of 0
(false), 1 (true) or ⊥ (unknown); ⊥ is a genuine terminal of the diagram, not
an error code.

Basics

Each BDD has a fixed number of variables, Varnum, declared when it is
initialized (using the method New) and each variable is represented by an
(integer) index in the interval [0..Varnum). The depth of a variable in the
diagram, its level, is governed by a permutation set at creation time (or
with the VarOrder option): Ithvar(i) always denotes variable i, but two BDDs built
with different orders are not directly comparable node-for-node. The three
terminals sit below every variable level, with ⊥ given a pseudo-level deeper
than the one shared by 0 and 1, so a level comparison never mistakes it for
an internal node.

Unlike a classical (two-valued) BDD package, nodes in this library carry a
complement edge: the constant False is represented as the complemented edge
to True, and negating an arbitrary node is a constant-time bit flip instead
of a recursive traversal. ⊥ is its own complement: flipping an edge that
points to ⊥ is the identity. This is the single place complementation is
implemented (notIfNotUnknown); every other operation that needs to negate an
edge, including the canonical-form rule used when building a node, goes
through it.

Bounded computation

The operations that combine BDDs (AndReduced, XorReduced, IteReduced) and the
one that prunes a diagram outright (ReduceByNodeLimit) all accept a node
budget. When a computation would need more internal nodes than the budget
allows, the engine substitutes ⊥ for the part of the result it could not
afford to build, rather than running out of memory or failing outright. Each
of these operations is parameterized by a Heuristic, a pluggable function
that decides which branch of a Shannon split to explore first; the choice
only affects which part of an over-budget result ends up as ⊥, never the
result when the budget is not exceeded.

Automatic memory management

The library is written in pure Go, without the need for CGo or any other
dependencies. We piggyback on the garbage collection mechanism offered by the
host language: "external" references to BDD nodes made by user code (values
of type Node) are automatically reclaimed by the Go runtime through
runtime.SetFinalizer, and the unique table is swept with a mark-and-sweep
pass whenever it runs out of room. There is no variable reordering: the
permutation chosen at New time is fixed for the lifetime of the BDD, and the
library is meant to be driven from a single goroutine at a time.
*/
package rudd
