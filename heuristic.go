// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

// noEdge is passed in place of an operand a heuristic does not need (for
// instance the third argument of a binary operation), so that every
// Heuristic has the same three-operand signature regardless of how many
// operands the caller is actually combining.
const noEdge edge = -1

// Heuristic chooses which branch of a Shannon split to explore first when a
// node budget may not be enough to build the whole result. It is given the
// BDD (so it can inspect levels and cofactors), the operands of the current
// step (f is always present; g and h are noEdge when unused) and must return
// a negative number to recurse into the then-branch first, or a non-negative
// number to recurse into the else-branch first. This is the single function
// pointer used throughout C3/C4 to decide traversal order; callers are
// expected to supply one of RandomHeuristic, GreedyOneStep or GreedyTwoStep,
// or write their own with the same shape.
type Heuristic func(b *BDD, f, g, h edge) int

// RandomHeuristic picks a traversal order uniformly at random. It is a
// reasonable baseline when nothing is known about which branch is more
// likely to be small, and it is the cheapest of the three to evaluate.
func RandomHeuristic(b *BDD, f, g, h edge) int {
	if b.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// splitOperand looks at operand e, restricted to the variable at level top,
// and returns the cofactor reached on the else side and on the then side.
func (b *BDD) splitOperand(e edge, top int32) (lo, hi edge) {
	return b.cofactors(e, top)
}

// GreedyOneStep looks one Shannon step ahead on each side of the split: for
// every present operand, it cofactors at the top variable and tallies, for
// the then side and the else side separately, how many of those cofactors
// are already terminals (constCount) versus the sum of the levels of the
// ones that are not (score). The side with the higher constCount is explored
// first, on the reasoning that reaching a terminal sooner bounds the size of
// that branch of the recursion; ties are broken by the smaller score (the
// side whose non-terminal cofactors sit closer to the root), and remaining
// ties are broken at random.
func GreedyOneStep(b *BDD, f, g, h edge) int {
	top := b.topLevel(operandsOf(f, g, h)...)
	thenConst, thenScore := tallyOneStep(b, top, true, f, g, h)
	elseConst, elseScore := tallyOneStep(b, top, false, f, g, h)
	switch {
	case thenConst != elseConst:
		if thenConst > elseConst {
			return -1
		}
		return 1
	case thenScore != elseScore:
		if thenScore < elseScore {
			return -1
		}
		return 1
	default:
		return RandomHeuristic(b, f, g, h)
	}
}

func operandsOf(f, g, h edge) []edge {
	ops := []edge{f}
	if g != noEdge {
		ops = append(ops, g)
	}
	if h != noEdge {
		ops = append(ops, h)
	}
	return ops
}

func tallyOneStep(b *BDD, top int32, then bool, f, g, h edge) (constCount int, score int32) {
	for _, e := range operandsOf(f, g, h) {
		lo, hi := b.splitOperand(e, top)
		c := lo
		if then {
			c = hi
		}
		if c.isConst() {
			constCount++
		} else {
			score += b.level(c)
		}
	}
	return
}

// GreedyTwoStep is GreedyOneStep's deeper sibling: it looks two Shannon steps
// ahead instead of one. For each operand, it cofactors at the top variable
// (as GreedyOneStep does) and then, for the cofactor on the side under
// consideration, cofactors once more if that cofactor is not itself a
// terminal. A cofactor that is already terminal after only the first step
// contributes a bonus of 8 to the const accumulator (rewarding the shallower
// win); grandchildren that are terminals each contribute a plain 1, and
// non-terminal grandchildren contribute their level to the score accumulator,
// exactly as in GreedyOneStep. Ties are resolved the same way.
func GreedyTwoStep(b *BDD, f, g, h edge) int {
	top := b.topLevel(operandsOf(f, g, h)...)
	thenConst, thenScore := tallyTwoStep(b, top, true, f, g, h)
	elseConst, elseScore := tallyTwoStep(b, top, false, f, g, h)
	switch {
	case thenConst != elseConst:
		if thenConst > elseConst {
			return -1
		}
		return 1
	case thenScore != elseScore:
		if thenScore < elseScore {
			return -1
		}
		return 1
	default:
		return RandomHeuristic(b, f, g, h)
	}
}

func tallyTwoStep(b *BDD, top int32, then bool, f, g, h edge) (constCount int, score int32) {
	for _, e := range operandsOf(f, g, h) {
		lo, hi := b.splitOperand(e, top)
		c := lo
		if then {
			c = hi
		}
		if c.isConst() {
			constCount += 8
			continue
		}
		gtop := b.level(c)
		glo, ghi := b.cofactors(c, gtop)
		for _, gc := range []edge{glo, ghi} {
			if gc.isConst() {
				constCount++
			} else {
				score += b.level(gc)
			}
		}
	}
	return
}
