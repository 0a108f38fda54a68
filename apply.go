// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

// AndReduced, XorReduced and IteReduced are the three bounded apply
// primitives (C4 of the design notes): ordinary Shannon-expansion apply,
// each parameterized by a node budget and a traversal heuristic, rewriting
// to ⊥ wherever the budget would otherwise be exceeded. Passing NoLimit
// recovers the exact, unbounded operator. Derived operators (OrReduced,
// NandReduced, NorReduced, XnorReduced) are thin compositions over these
// three, following the identities Or(f,g) = ¬And(¬f,¬g), Nand(f,g) =
// ¬And(f,g), Nor(f,g) = And(¬f,¬g), Xnor(f,g) = ¬Xor(f,g).

// refcountNotOne reports whether e's target has an external reference count
// other than 1. Terminals are always "shared enough" to be worth caching,
// since they are pinned at _MAXREFCOUNT.
func (b *BDD) refcountNotOne(e edge) bool {
	if e.isConst() {
		return true
	}
	return b.nodes[e.target()].refcou&_MAXREFCOUNT != 1
}

// billOrBot bills res (if it is a genuinely new, not-yet-billed internal
// node) against the remaining budget, or substitutes ⊥ if doing so would
// bill more than limit nodes on this path. This is the "budget exhaustion at
// the combining step" rule: unlike ReduceByNodeLimit's per-branch threading,
// here the check happens only once a specific combined node has actually
// been constructed.
//
// r1 and r2 are the two branch edges that were combined into res. When the
// budget is exhausted and ⊥ is substituted, res is dropped and r1/r2 become
// unreachable from the returned edge even though their own sub-DAGs may
// already carry billed marks from this same top-level call (set either by a
// nested reduceByLimit or by a nested call to this function). Since the
// top-level sweep (clearBilled) only walks nodes reachable from the final
// result, those marks would otherwise survive the call and corrupt later
// billing decisions; release them here, on the spot, before returning.
func (b *BDD) billOrBot(res, r1, r2 edge, consumed, limit int) (edge, int, bool) {
	if res.isConst() || b.nodes[res.target()].billed() {
		return res, consumed, false
	}
	if consumed >= limit {
		b.clearBilled(r1)
		b.clearBilled(r2)
		return botEdge, consumed, true
	}
	b.nodes[res.target()].bill()
	return res, consumed + 1, false
}

// andRec is the recursive core of AndReduced.
func (b *BDD) andRec(f, g edge, h Heuristic, limit int) (edge, int, bool, error) {
	if f > g {
		f, g = g, f
	}
	switch {
	case f == g:
		return b.reduceByLimit(f, h, limit)
	case f == notIfNotUnknown(g):
		return zeroEdge, 0, false, nil
	case f.isOne():
		return b.reduceByLimit(g, h, limit)
	case g.isOne():
		return b.reduceByLimit(f, h, limit)
	case f.isZero() || g.isZero():
		return zeroEdge, 0, false, nil
	case f.isBot() && g.isBot():
		return botEdge, 0, false, nil
	}

	useCache := b.refcountNotOne(f) && b.refcountNotOne(g)
	if useCache {
		if res, ok := b.andCache.lookup(f, g); ok {
			return b.reduceByLimit(res, h, limit)
		}
	}

	top := b.topLevel(f, g)
	flo, fhi := b.cofactors(f, top)
	glo, ghi := b.cofactors(g, top)
	thenFirst := h(b, f, g, noEdge) < 0
	f1, g1, f2, g2 := flo, glo, fhi, ghi
	if thenFirst {
		f1, g1, f2, g2 = fhi, ghi, flo, glo
	}
	r1, c1, red1, err := b.andRec(f1, g1, h, limit-1)
	if err != nil {
		return 0, 0, false, err
	}
	b.pushref(r1)
	r2, c2, red2, err := b.andRec(f2, g2, h, sub0(limit-1, c1))
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
	res, consumed, exhausted := b.billOrBot(res, r1, r2, consumed, limit)
	reduced := red1 || red2 || exhausted
	if useCache && !reduced {
		b.andCache.set(f, g, res)
	}
	return res, consumed, reduced, nil
}

// AndReduced computes f ∧ g, using at most limit internal nodes and breaking
// ties in traversal order with h (the BDD's default heuristic if h is nil).
func (b *BDD) AndReduced(f, g Node, limit int, h Heuristic) (Node, error) {
	if f == nil || g == nil {
		b.seterror("nil node passed to AndReduced")
		return nil, b.error
	}
	if h == nil {
		h = b.heuristic
	}
	res, _, _, err := b.andRec(*f, *g, h, limit)
	if err != nil {
		b.seterror("AndReduced: %s", err)
		return nil, b.error
	}
	b.clearBilled(res)
	return b.retnode(res), nil
}

// xorRec is the recursive core of XorReduced.
func (b *BDD) xorRec(f, g edge, h Heuristic, limit int) (edge, int, bool, error) {
	if f > g {
		f, g = g, f
	}
	switch {
	case f.isBot() || g.isBot():
		return botEdge, 0, false, nil
	case f == g:
		return zeroEdge, 0, false, nil
	case f == notIfNotUnknown(g):
		return oneEdge, 0, false, nil
	case f.isZero():
		return b.reduceByLimit(g, h, limit)
	case g.isZero():
		return b.reduceByLimit(f, h, limit)
	case f.isOne():
		return b.reduceByLimit(notIfNotUnknown(g), h, limit)
	case g.isOne():
		return b.reduceByLimit(notIfNotUnknown(f), h, limit)
	}

	useCache := b.refcountNotOne(f) && b.refcountNotOne(g)
	if useCache {
		if res, ok := b.xorCache.lookup(f, g); ok {
			return b.reduceByLimit(res, h, limit)
		}
	}

	top := b.topLevel(f, g)
	flo, fhi := b.cofactors(f, top)
	glo, ghi := b.cofactors(g, top)
	thenFirst := h(b, f, g, noEdge) < 0
	f1, g1, f2, g2 := flo, glo, fhi, ghi
	if thenFirst {
		f1, g1, f2, g2 = fhi, ghi, flo, glo
	}
	r1, c1, red1, err := b.xorRec(f1, g1, h, limit-1)
	if err != nil {
		return 0, 0, false, err
	}
	b.pushref(r1)
	r2, c2, red2, err := b.xorRec(f2, g2, h, sub0(limit-1, c1))
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
	res, consumed, exhausted := b.billOrBot(res, r1, r2, consumed, limit)
	reduced := red1 || red2 || exhausted
	if useCache && !reduced {
		b.xorCache.set(f, g, res)
	}
	return res, consumed, reduced, nil
}

// XorReduced computes f ⊕ g under the same budget/heuristic discipline as
// AndReduced.
func (b *BDD) XorReduced(f, g Node, limit int, h Heuristic) (Node, error) {
	if f == nil || g == nil {
		b.seterror("nil node passed to XorReduced")
		return nil, b.error
	}
	if h == nil {
		h = b.heuristic
	}
	res, _, _, err := b.xorRec(*f, *g, h, limit)
	if err != nil {
		b.seterror("XorReduced: %s", err)
		return nil, b.error
	}
	b.clearBilled(res)
	return b.retnode(res), nil
}

// orRec computes f ∨ g as ¬(¬f ∧ ¬g), reusing andRec directly so that Or
// shares AndReduced's cache, terminal rules and budget accounting.
func (b *BDD) orRec(f, g edge, h Heuristic, limit int) (edge, int, bool, error) {
	res, c, red, err := b.andRec(notIfNotUnknown(f), notIfNotUnknown(g), h, limit)
	return notIfNotUnknown(res), c, red, err
}

// iteRec is the recursive core of IteReduced. It first tries the algebraic
// identities from the design notes (in the order given there), then the
// ⊥-specific collapse rules, and only then falls back to a Shannon
// expansion of all three operands, after normalizing (f,g,h) to the
// standard polarity used for the cache (f and g regular, h possibly
// complemented, with a final complement flag applied to the result).
func (b *BDD) iteRec(f, g, h edge, heur Heuristic, limit int) (edge, int, bool, error) {
	switch {
	case f.isOne():
		return b.reduceByLimit(g, heur, limit)
	case f.isZero():
		return b.reduceByLimit(h, heur, limit)
	case g == h:
		return b.reduceByLimit(g, heur, limit)
	case g.isOne() && h.isZero():
		return b.reduceByLimit(f, heur, limit)
	case g.isZero() && h.isOne():
		return b.reduceByLimit(notIfNotUnknown(f), heur, limit)
	case h == notIfNotUnknown(g):
		return b.xorRec(f, h, heur, limit)
	case f == g:
		return b.orRec(f, h, heur, limit)
	case f == notIfNotUnknown(g):
		return b.andRec(notIfNotUnknown(f), h, heur, limit)
	}

	botCount := 0
	for _, e := range [3]edge{f, g, h} {
		if e.isBot() {
			botCount++
		}
	}
	if botCount >= 2 || (f.isBot() && g == notIfNotUnknown(h)) {
		return botEdge, 0, false, nil
	}

	compFlag := false
	if f.isComplement() {
		f = f.regular()
		g, h = h, g
	}
	if g.isComplement() {
		g = notIfNotUnknown(g)
		h = notIfNotUnknown(h)
		compFlag = true
	}

	useCache := b.refcountNotOne(f) && b.refcountNotOne(g) && b.refcountNotOne(h)
	if useCache {
		if res, ok := b.iteCache.lookup(f, g, h); ok {
			red, c, reduced, err := b.reduceByLimitFlag(res, heur, limit, compFlag)
			return red, c, reduced, err
		}
	}

	top := b.topLevel(f, g, h)
	flo, fhi := b.cofactors(f, top)
	glo, ghi := b.cofactors(g, top)
	hlo, hhi := b.cofactors(h, top)
	thenFirst := heur(b, f, g, h) < 0
	f1, g1, h1, f2, g2, h2 := flo, glo, hlo, fhi, ghi, hhi
	if thenFirst {
		f1, g1, h1, f2, g2, h2 = fhi, ghi, hhi, flo, glo, hlo
	}
	r1, c1, red1, err := b.iteRec(f1, g1, h1, heur, limit-1)
	if err != nil {
		return 0, 0, false, err
	}
	b.pushref(r1)
	r2, c2, red2, err := b.iteRec(f2, g2, h2, heur, sub0(limit-1, c1))
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
	res, consumed, exhausted := b.billOrBot(res, r1, r2, consumed, limit)
	reduced := red1 || red2 || exhausted
	if useCache && !reduced {
		b.iteCache.set(f, g, h, res)
	}
	if compFlag {
		res = notIfNotUnknown(res)
	}
	return res, consumed, reduced, nil
}

// reduceByLimitFlag is reduceByLimit with an extra polarity flip applied to
// the result, used to honor an ITE cache hit's compFlag: a cache hit is not a
// free ride, since the caller's budget must still be honored, and a tight
// budget can still force ⊥ into a cached result on re-reduction.
func (b *BDD) reduceByLimitFlag(res edge, h Heuristic, limit int, compFlag bool) (edge, int, bool, error) {
	red, c, reduced, err := b.reduceByLimit(res, h, limit)
	if err != nil {
		return 0, 0, false, err
	}
	if compFlag {
		red = notIfNotUnknown(red)
	}
	return red, c, reduced, nil
}

// IteReduced computes if-then-else(f,g,h) under the same budget/heuristic
// discipline as AndReduced and XorReduced.
func (b *BDD) IteReduced(f, g, h Node, limit int, heur Heuristic) (Node, error) {
	if f == nil || g == nil || h == nil {
		b.seterror("nil node passed to IteReduced")
		return nil, b.error
	}
	if heur == nil {
		heur = b.heuristic
	}
	res, _, _, err := b.iteRec(*f, *g, *h, heur, limit)
	if err != nil {
		b.seterror("IteReduced: %s", err)
		return nil, b.error
	}
	b.clearBilled(res)
	return b.retnode(res), nil
}

// OrReduced computes f ∨ g as ¬And(¬f, ¬g, limit, h).
func (b *BDD) OrReduced(f, g Node, limit int, h Heuristic) (Node, error) {
	if f == nil || g == nil {
		b.seterror("nil node passed to OrReduced")
		return nil, b.error
	}
	nf, err := b.AndReduced(b.Not(f), b.Not(g), limit, h)
	if err != nil {
		return nil, err
	}
	return b.Not(nf), nil
}

// NandReduced computes ¬(f ∧ g).
func (b *BDD) NandReduced(f, g Node, limit int, h Heuristic) (Node, error) {
	res, err := b.AndReduced(f, g, limit, h)
	if err != nil {
		return nil, err
	}
	return b.Not(res), nil
}

// NorReduced computes ¬f ∧ ¬g.
func (b *BDD) NorReduced(f, g Node, limit int, h Heuristic) (Node, error) {
	if f == nil || g == nil {
		b.seterror("nil node passed to NorReduced")
		return nil, b.error
	}
	return b.AndReduced(b.Not(f), b.Not(g), limit, h)
}

// XnorReduced computes ¬(f ⊕ g).
func (b *BDD) XnorReduced(f, g Node, limit int, h Heuristic) (Node, error) {
	res, err := b.XorReduced(f, g, limit, h)
	if err != nil {
		return nil, err
	}
	return b.Not(res), nil
}
