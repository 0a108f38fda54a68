// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

// intern returns the (regular) edge to the unique node for (level, low,
// high), building it if it does not already exist. It assumes low != high
// and that high is never a complement edge pointing to the same target as
// low would make invalid (that check belongs to makenode, not here); intern
// is purely the hash-consing half of node construction, equivalent to the
// teacher's own makenode in hkernel.go/hudd.go.
func (b *BDD) intern(level int32, low, high edge) (edge, error) {
	if _DEBUG {
		b.uniqueAccess++
	}
	if pos, ok := b.nodehash(level, low, high); ok {
		if _DEBUG {
			b.uniqueHit++
		}
		return mkedge(pos, false), nil
	}
	if _DEBUG {
		b.uniqueMiss++
	}
	if b.freepos == 0 {
		b.gbc()
		err := errReset
		if (b.freenum*100)/len(b.nodes) <= b.minfreenodes {
			err = b.noderesize()
			if err != errResize {
				return 0, errMemory
			}
		}
		if b.freepos == 0 {
			return 0, errMemory
		}
		_ = err
	}
	b.produced++
	return mkedge(b.setnode(level, low, high), false), nil
}

// makenode builds the canonical representation of an internal BDD node with
// else branch els and then branch then, both living at level. It implements
// the construction rule described for this three-valued extension:
//
//   - if then == els, the node is redundant: return that edge unchanged
//     (no node is built).
//   - otherwise, whenever the proposed else branch carries a complement bit,
//     we cannot store it as-is (the else branch of an interned node is never
//     complemented, except when it is the edge to ⊥, which has no polarity).
//     We instead build the node with both branches complemented (pushing the
//     complement through notIfNotUnknown, which leaves ⊥ alone) and hand back
//     the complement of that node, so the denoted function is unchanged.
//   - in every other case the proposed branches are interned as given.
//
// This is the single place new internal nodes are created; by construction
// it maintains every invariant of the data model: hash-consing (via intern),
// reducedness (the then==els check), no complemented else-edge except to ⊥,
// and ⊥'s self-complementary status (through notIfNotUnknown).
func (b *BDD) makenode(level int32, then, els edge) (edge, error) {
	if then == els {
		return then, nil
	}
	if els.isComplement() {
		reg, err := b.intern(level, notIfNotUnknown(els), notIfNotUnknown(then))
		if err != nil {
			return 0, err
		}
		return notIfNotUnknown(reg), nil
	}
	return b.intern(level, els, then)
}

// cofactors returns the else/then branches of e with respect to the variable
// at level top. If e is not governed by that variable (its target lives at a
// deeper level), both cofactors are e itself, as is standard for BDDs with a
// fixed variable order. If e is complemented, the complement is pushed onto
// both branches through notIfNotUnknown, which is what keeps the invariant
// "else branch is never complemented, except to ⊥" from leaking into the
// cofactors of an already-built, possibly complemented, edge.
func (b *BDD) cofactors(e edge, top int32) (lo, hi edge) {
	if b.level(e) != top {
		return e, e
	}
	n := &b.nodes[e.target()]
	lo, hi = n.low, n.high
	if e.isComplement() {
		lo = notIfNotUnknown(lo)
		hi = notIfNotUnknown(hi)
	}
	return
}

// topLevel returns the shallowest (smallest) level among the targets of the
// given edges, ignoring edges that denote the ⊥ terminal or one of the two
// other constants (they never govern a Shannon split).
func (b *BDD) topLevel(es ...edge) int32 {
	top := botLevel
	for _, e := range es {
		if l := b.level(e); l < top {
			top = l
		}
	}
	return top
}
