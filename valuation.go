// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

// ReduceByValuation restricts f by val, a three-valued BDD representing a
// partial assignment over the same variable order: wherever val is 1 the
// corresponding point of f passes through unchanged, wherever val is 0 the
// point becomes ⊥, and wherever val is itself ⊥ (no further constraint is
// ever going to resolve it) the result is ⊥ outright, since a valuation with
// no in-domain point left carries no information to restrict f with. One
// exception: when val is a single-variable node whose variable lies above the
// top variable of f, f is returned unchanged, so the points where val is 0
// do not become ⊥ in that case.
func (b *BDD) ReduceByValuation(f, val Node) (Node, error) {
	if f == nil || val == nil {
		b.seterror("nil node passed to ReduceByValuation")
		return nil, b.error
	}
	res, err := b.valRec(*f, *val)
	if err != nil {
		b.seterror("ReduceByValuation: %s", err)
		return nil, b.error
	}
	return b.retnode(res), nil
}

// valRec is the recursive core of ReduceByValuation, implementing the
// descent rules: val's terminals short-circuit immediately, a constant bdd
// passes through unchanged, and a valuation whose variable does not occur in
// bdd (bdd's top variable is deeper than val's, and val is a
// single-variable node) leaves bdd untouched. Otherwise both operands are
// cofactored on whichever variable is shallower and recombined.
//
// An "on-the-fly forgetting" refinement is possible here — collapsing a
// branch to ⊥ and re-rooting the result at val's own variable level when
// val's variable does not actually occur in bdd's then/else cofactors — but
// it is a pure optimization (refinement only requires the result to refine
// bdd, not to forget maximally) and is intentionally not implemented: it
// restructures which variable governs the resulting node, and getting that
// rebuild wrong would threaten the canonicity invariants (no useless ⊥
// split, reducedness) for no semantic gain. See DESIGN.md.
func (b *BDD) valRec(bdd, val edge) (edge, error) {
	if val.isOne() {
		return bdd, nil
	}
	if val.isZero() {
		return botEdge, nil
	}
	if val.isBot() {
		return botEdge, nil
	}
	if bdd.isConst() {
		return bdd, nil
	}
	topb := b.level(bdd)
	topv := b.level(val)
	if topb > topv && b.isSingleVarNode(val) {
		return bdd, nil
	}
	top := topb
	if topv < top {
		top = topv
	}
	blo, bhi := b.cofactors(bdd, top)
	vlo, vhi := b.cofactors(val, top)
	e, err := b.valRec(blo, vlo)
	if err != nil {
		return 0, err
	}
	b.pushref(e)
	t, err := b.valRec(bhi, vhi)
	b.popref(1)
	if err != nil {
		return 0, err
	}
	return b.makenode(top, t, e)
}

// isSingleVarNode reports whether e is governed by exactly one variable,
// i.e. both of its cofactors are terminals. Every Ithvar/NIthvar node has
// this shape, as does any valuation node produced by combining only
// terminals for a single variable.
func (b *BDD) isSingleVarNode(e edge) bool {
	if e.isConst() {
		return false
	}
	n := &b.nodes[e.target()]
	return n.low.isConst() && n.high.isConst()
}
