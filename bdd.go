// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

import "log"

// Varnum returns the number of variables declared for this BDD.
func (b *BDD) Varnum() int {
	return int(b.varnum)
}

// SetVarnum increases the number of BDD variables. It may be called more than
// once, but only to grow the number of variables; this library has no notion
// of removing a variable, and no support for dynamic variable reordering, so
// every variable added this way is appended after the existing ones in the
// level order.
func (b *BDD) SetVarnum(num int) error {
	oldvarnum := b.varnum
	inum := int32(num)
	if inum < 1 || inum > _MAXVAR {
		b.seterror("bad number of variables (%d) in SetVarnum", inum)
		return b.error
	}
	if inum < b.varnum {
		b.seterror("cannot decrease the number of variables in SetVarnum (from %d to %d)", b.varnum, inum)
		return b.error
	}
	if inum == b.varnum {
		return nil
	}
	tmp := b.varset
	b.varset = make([][2]edge, inum)
	copy(b.varset, tmp)
	b.nodes[oneIndex].level = inum
	for ; b.varnum < inum; b.varnum++ {
		lit, err := b.makenode(b.varnum, oneEdge, zeroEdge)
		if err != nil {
			b.varnum = oldvarnum
			b.seterror("cannot allocate variable %d in SetVarnum: %s", b.varnum, err)
			return b.error
		}
		b.nodes[lit.target()].refcou = _MAXREFCOUNT
		b.varset[b.varnum] = [2]edge{lit, notIfNotUnknown(lit)}
	}
	if _LOGLEVEL > 0 {
		log.Printf("set varnum to %d\n", b.varnum)
	}
	return nil
}

// True returns the Node for the constant 1.
func (b *BDD) True() Node { return bddone }

// False returns the Node for the constant 0.
func (b *BDD) False() Node { return bddzero }

// Unknown returns the Node for ⊥.
func (b *BDD) Unknown() Node { return bddunknown }

// From returns a constant Node from a Go bool.
func (b *BDD) From(v bool) Node {
	if v {
		return bddone
	}
	return bddzero
}

// Ithvar returns the Node for variable i, in its positive form. i must be in
// [0..Varnum).
func (b *BDD) Ithvar(i int) Node {
	if i < 0 || i >= int(b.varnum) {
		b.seterror("unknown variable %d in Ithvar", i)
		return nil
	}
	return b.retnode(b.varset[i][0])
}

// NIthvar returns the Node for the negation of variable i. i must be in
// [0..Varnum).
func (b *BDD) NIthvar(i int) Node {
	if i < 0 || i >= int(b.varnum) {
		b.seterror("unknown variable %d in NIthvar", i)
		return nil
	}
	return b.retnode(b.varset[i][1])
}

// Not returns the negation of n. Because every node carries a complement
// edge, this is a constant-time operation: no traversal of the diagram is
// needed, and it never creates a new internal node.
func (b *BDD) Not(n Node) Node {
	if n == nil {
		return nil
	}
	return b.retnode(notIfNotUnknown(*n))
}

// Low returns the else branch (the cofactor at x=0) of n, or nil if n is one
// of the three terminals.
func (b *BDD) Low(n Node) Node {
	if n == nil || (*n).isConst() {
		return nil
	}
	e := *n
	lo := b.nodes[e.target()].low
	if e.isComplement() {
		lo = notIfNotUnknown(lo)
	}
	return b.retnode(lo)
}

// High returns the then branch (the cofactor at x=1) of n, or nil if n is one
// of the three terminals.
func (b *BDD) High(n Node) Node {
	if n == nil || (*n).isConst() {
		return nil
	}
	e := *n
	hi := b.nodes[e.target()].high
	if e.isComplement() {
		hi = notIfNotUnknown(hi)
	}
	return b.retnode(hi)
}

// Level returns the level assigned to the variable governing n. For the
// terminals 0 and 1 it returns Varnum; for ⊥ (and for a nil n) it returns the
// pseudo-level of ⊥, deeper than every other level.
func (b *BDD) Level(n Node) int32 {
	if n == nil {
		return botLevel
	}
	return b.level(*n)
}

// IsConst reports whether n denotes one of the three terminals (0, 1 or ⊥).
func (b *BDD) IsConst(n Node) bool {
	return n != nil && (*n).isConst()
}

// IsUnknown reports whether n denotes ⊥.
func (b *BDD) IsUnknown(n Node) bool {
	return n != nil && (*n).isBot()
}

// IsZero reports whether n denotes the constant 0.
func (b *BDD) IsZero(n Node) bool {
	return n != nil && (*n).isZero()
}

// IsOne reports whether n denotes the constant 1.
func (b *BDD) IsOne(n Node) bool {
	return n != nil && (*n).isOne()
}

// Build constructs the internal node (variable, then, els) directly, applying
// the same canonical-form rule used throughout the engine (see makenode). It
// is the public face of the "build a node" primitive from the data model;
// most callers will reach a node through AndReduced/XorReduced/IteReduced
// instead, but the primitive is exposed since substrates built on top of this
// package (for instance a parser feeding in an already-structured diagram)
// need direct access to it.
func (b *BDD) Build(variable int, then, els Node) (Node, error) {
	if variable < 0 || variable >= int(b.varnum) {
		b.seterror("unknown variable %d in Build", variable)
		return nil, b.error
	}
	if then == nil || els == nil {
		b.seterror("nil branch passed to Build")
		return nil, b.error
	}
	level := b.level(b.varset[variable][0])
	e, err := b.makenode(level, *then, *els)
	if err != nil {
		b.seterror("cannot build node for variable %d: %s", variable, err)
		return nil, b.error
	}
	return b.retnode(e), nil
}

// Equal reports whether low and high denote the same node of the BDD (the
// same target and the same polarity).
func (b *BDD) Equal(low, high Node) bool {
	if low == high {
		return true
	}
	if low == nil || high == nil {
		return false
	}
	return *low == *high
}

// Makeset returns the node corresponding to the conjunction (the cube) of the
// variables in varset, each taken in its positive form. It is such that
// Scanset(Makeset(a)) == a. It returns nil if one of the variables is outside
// the scope of the BDD.
func (b *BDD) Makeset(varset []int) Node {
	res := b.True()
	for i := len(varset) - 1; i >= 0; i-- {
		v := b.Ithvar(varset[i])
		if v == nil {
			return nil
		}
		n, err := b.IteReduced(v, res, b.False(), NoLimit, nil)
		if err != nil {
			b.seterror("cannot build cube in Makeset: %s", err)
			return nil
		}
		res = n
	}
	return res
}

// Scanset returns the set of variables found by following the then branch of
// n down to the 1 terminal. It is the dual of Makeset.
func (b *BDD) Scanset(n Node) []int {
	if n == nil {
		return nil
	}
	var res []int
	cur := *n
	for !cur.isConst() {
		res = append(res, b.varIndex(b.level(cur)))
		hi := b.nodes[cur.target()].high
		if cur.isComplement() {
			hi = notIfNotUnknown(hi)
		}
		cur = hi
	}
	return res
}

// varIndex does a linear search for the variable whose level is lvl. Varnum
// is typically small enough (a few hundred to a few thousand variables) that
// this is not worth indexing.
func (b *BDD) varIndex(lvl int32) int {
	for i, v := range b.varset {
		if b.level(v[0]) == lvl {
			return i
		}
	}
	return -1
}
