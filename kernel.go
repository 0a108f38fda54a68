// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

import "errors"

// number of bytes in a int (adapted from uintSize in the math/bits package)
const huddsize = (2*(32<<(^uint(0)>>32&1)) + 32) / 8 // 12 (32 bits) or 20 (64 bits)

// _MINFREENODES is the minimal number of nodes (%) that has to be left after a
// garbage collect unless a resize should be done.
const _MINFREENODES int = 20

// _MAXVAR is the maximal number of levels in the BDD. We use only the first 21
// bits of a node's level field for encoding levels (so also the max number of
// variables); the garbage collector's mark (0x200000) is kept in the
// reference-count word instead (see _GCMARKBIT). We make sure to always use
// int32 to avoid problems when we change architecture.
const _MAXVAR int32 = 0x1FFFFF

// botLevel is the pseudo-level assigned to the ⊥ terminal. It sits below
// every possible variable level (and below the level shared by the 0/1
// terminals, which is varnum) so that a plain numeric comparison is enough to
// tell that we have reached it during a cofactor computation.
const botLevel int32 = 1 << 30

// _MAXREFCOUNT is the maximal value of the reference counter (refcou), also
// used to stick nodes (like constants and variables) in the node list. It is
// equal to 1023 (10 bits).
const _MAXREFCOUNT int32 = 0x3FF

// _MAXREFBIT flags a node that has already been billed against the node
// budget of the current ReduceByNodeLimit/AndReduced/XorReduced/IteReduced
// call. It lives in the same word as the reference count (bit 10, just above
// the 10 bits used by _MAXREFCOUNT) and is cleared again by a sweep once the
// top-level call returns, exactly as the garbage-collector mark bit
// (0x200000) is cleared by a sweep once a gbc pass finishes.
const _MAXREFBIT int32 = 0x400

// _GCMARKBIT is the bit used by the mark-and-sweep garbage collector to flag
// a node as reachable from a root (an entry of the refstack or a node with a
// positive external reference count).
const _GCMARKBIT int32 = 0x200000

// _DEFAULTMAXNODEINC is the default value for the maximal increase in the
// number of nodes during a resize. It is approx. one million nodes (1 048 576)
// (could be interesting to change it to 1 << 23 = 8 388 608).
const _DEFAULTMAXNODEINC int = 1 << 20

var errMemory = errors.New("unable to free memory or resize BDD")
var errResize = errors.New("should cache resize") // when gbc and then noderesize
var errReset = errors.New("should cache reset")    // when gbc only, without resizing
