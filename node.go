// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

// node is an entry of the unique table. low/high are the else/then branches
// (the cofactors at x=0 and x=1 respectively), stored as edges so that they
// may themselves be complemented. A free slot has low == -1 and high set to
// the index of the next free slot (0 if it is the last one), mirroring the
// free list used by the teacher's hash-based unique table.
type node struct {
	level  int32 // order of the variable in the BDD, or botLevel for the ⊥ terminal
	low    edge  // else branch
	high   edge  // then branch
	refcou int32 // external reference count (bits 0-9), GC mark (bit 21) and node-budget mark (bit 10)
}

func (n *node) free() bool {
	return n.low == -1
}

// Garbage-collector reachability mark. Lives in the same word as the external
// reference count, at bit 21 (_GCMARKBIT), well above the _MAXREFCOUNT range
// and the node-budget mark, as in the
// teacher's hashmap-based unique table.
func (n *node) ismarked() bool {
	return n.refcou&_GCMARKBIT != 0
}

func (n *node) mark() {
	n.refcou |= _GCMARKBIT
}

func (n *node) unmark() {
	n.refcou &^= _GCMARKBIT
}

// Node-budget ("MAXREF") mark, used by ReduceByNodeLimit/AndReduced/
// XorReduced/IteReduced to recognize a node that has already been billed
// against the current call's budget, and cleared again by a sweep once that
// call returns.
func (n *node) billed() bool {
	return n.refcou&_MAXREFBIT != 0
}

func (n *node) bill() {
	n.refcou |= _MAXREFBIT
}

func (n *node) unbill() {
	n.refcou &^= _MAXREFBIT
}
