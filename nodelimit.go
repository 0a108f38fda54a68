// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

// NoLimit is a node budget large enough that it is not reached in practice
// (the unique table would need more than a billion nodes to reach it).
// Passing it to ReduceByNodeLimit, AndReduced, XorReduced or IteReduced gives
// the exact, unbounded result, which is how this package builds ordinary
// (unbounded) BDDs without needing a second, separate construction API.
const NoLimit = 1<<30 - 1

// sub0 is subtraction saturating at zero. The recursive node-budget
// bookkeeping in this file and in apply.go repeatedly computes
// "limit - 1 - consumed", and a naive subtraction can go negative once a
// branch has already spent more than its share of the budget; every such
// subtraction in this package goes through sub0 so that a negative remainder
// is turned into "no budget left" rather than silently propagating a
// negative number (which, in a fixed-width or unsigned counter, would
// underflow into an enormous budget instead).
func sub0(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

// ReduceByNodeLimit returns a BDD refining f (in the three-valued sense: it
// agrees with f everywhere the result is not ⊥) that never uses more than limit
// internal nodes, substituting ⊥ for whatever part of f would not fit. h
// chooses, at each Shannon split, which branch to explore first; if h is nil,
// the BDD's default heuristic (set with DefaultHeuristic, GreedyOneStep
// unless configured otherwise) is used. Passing NoLimit returns f unchanged.
func (b *BDD) ReduceByNodeLimit(f Node, limit int, h Heuristic) (Node, error) {
	if f == nil {
		b.seterror("nil node passed to ReduceByNodeLimit")
		return nil, b.error
	}
	if h == nil {
		h = b.heuristic
	}
	res, _, _, err := b.reduceByLimit(*f, h, limit)
	if err != nil {
		b.seterror("ReduceByNodeLimit: %s", err)
		return nil, b.error
	}
	b.clearBilled(res)
	return b.retnode(res), nil
}

// reduceByLimit is the recursive core of ReduceByNodeLimit. It returns the
// reduced edge, how many new nodes were billed against limit while computing
// it, whether ⊥ had to be substituted anywhere in the result (the
// "reduced_flag" of the design notes), and an error if the unique table could
// not be grown to hold a needed node.
func (b *BDD) reduceByLimit(e edge, h Heuristic, limit int) (edge, int, bool, error) {
	if e.isConst() {
		return e, 0, false, nil
	}
	idx := e.target()
	if b.nodes[idx].billed() {
		// Already visited (and billed) earlier in this same call: sharing
		// within the result is free.
		return e, 0, false, nil
	}
	if limit <= 0 {
		return botEdge, 0, true, nil
	}
	top := b.level(e)
	lo, hi := b.cofactors(e, top)
	thenFirst := h(b, e, noEdge, noEdge) < 0
	first, second := lo, hi
	if thenFirst {
		first, second = hi, lo
	}
	r1, c1, red1, err := b.reduceByLimit(first, h, limit-1)
	if err != nil {
		return 0, 0, false, err
	}
	b.pushref(r1)
	r2, c2, red2, err := b.reduceByLimit(second, h, sub0(limit-1, c1))
	b.popref(1)
	if err != nil {
		return 0, 0, false, err
	}
	then, els := r2, r1
	if thenFirst {
		then, els = r1, r2
	}
	res, err := b.makenode(top, then, els)
	if err != nil {
		return 0, 0, false, err
	}
	consumed := c1 + c2
	if !res.isConst() && !b.nodes[res.target()].billed() {
		b.nodes[res.target()].bill()
		consumed++
	}
	return res, consumed, red1 || red2, nil
}

// clearBilled undoes the billing done by reduceByLimit (and by the C4
// combinators in apply.go) across the sub-DAG rooted at e. Every non-terminal
// node reachable from a billed node through low/high was itself billed by the
// same top-level call (the recursive functions always bill bottom-up before
// a parent can reference a child), so it is enough to stop the walk as soon
// as an unbilled node is reached.
func (b *BDD) clearBilled(e edge) {
	if e.isConst() {
		return
	}
	idx := e.target()
	if !b.nodes[idx].billed() {
		return
	}
	b.nodes[idx].unbill()
	b.clearBilled(b.nodes[idx].low)
	b.clearBilled(b.nodes[idx].high)
}
