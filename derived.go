// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

// ForgetZeros, ForgetOnes and MergeInterval are one-line compositions over
// the bounded apply engine (C4), always run with NoLimit since they exist to
// massage an already-built diagram, not to bound its size.

// ForgetZeros returns f ∨ ⊥: every point where f is 0 becomes ⊥, points
// where f is 1 or ⊥ are unchanged.
func (b *BDD) ForgetZeros(f Node) (Node, error) {
	return b.OrReduced(f, b.Unknown(), NoLimit, nil)
}

// ForgetOnes returns f ∧ ⊥: every point where f is 1 becomes ⊥, points where
// f is 0 or ⊥ are unchanged.
func (b *BDD) ForgetOnes(f Node) (Node, error) {
	return b.AndReduced(f, b.Unknown(), NoLimit, nil)
}

// MergeInterval returns (under ∨ ⊥) ∧ over, combining an under-approximation
// and an over-approximation of the same target function into a single
// three-valued diagram that forgets wherever the two disagree.
func (b *BDD) MergeInterval(under, over Node) (Node, error) {
	forgotten, err := b.ForgetZeros(under)
	if err != nil {
		return nil, err
	}
	return b.AndReduced(forgotten, over, NoLimit, nil)
}
