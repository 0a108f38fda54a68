// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

import (
	"fmt"
	"log"
	"math/rand"
	"sync/atomic"
	"unsafe"
)

// BDD is a three-valued Binary Decision Diagram: a fixed number of variables
// (Varnum), a unique table mapping (level, low, high) triplets to a single
// node, and the bookkeeping (caches, reference counts, garbage collector)
// needed to keep it small. A *BDD is the receiver of every exported
// operation in this package; there is no separate public interface type,
// since a single implementation is all this library ever had reason to
// support.
type BDD struct {
	varnum   int32
	varset   [][2]edge // varset[i] = {Ithvar(i), NIthvar(i)}
	refstack []int     // protects in-flight node indices from garbage collection
	error    error
	rng      *rand.Rand
	heuristic Heuristic

	nodes         []node
	unique        map[[huddsize]byte]int // unicity table: (level,low,high) -> index in nodes
	freenum       int                     // number of free slots in nodes
	freepos       int                     // first free slot
	produced      int                     // total number of nodes ever produced
	hbuff         [huddsize]byte          // scratch buffer for huddhash
	nodefinalizer interface{}
	uniqueAccess  int
	uniqueHit     int
	uniqueMiss    int
	gcstat
	configs

	andCache *pairCache
	xorCache *pairCache
	iteCache *tripleCache
}

// Node is a reference to an element of a BDD: the atomic unit of interaction
// between library and client. It wraps an edge (so it carries its own
// polarity) behind a pointer so that the Go garbage collector can tell us,
// through a finalizer, when the client is done with it.
type Node *edge

var bddzero = (Node)(&zeroEdge)
var bddone = (Node)(&oneEdge)
var bddunknown = (Node)(&botEdge)

// New returns a new, empty BDD with varnum variables. It is possible to set
// optional (configuration) parameters, such as the size of the initial node
// table (Nodesize), the size of the operation caches (Cachesize) or the
// default traversal heuristic (DefaultHeuristic), using configs functions.
func New(varnum int, options ...func(*configs)) (*BDD, error) {
	b := &BDD{}
	if varnum < 1 || varnum > int(_MAXVAR) {
		b.seterror("bad number of variables (%d)", varnum)
		return nil, b.error
	}
	config := makeconfigs(varnum)
	for _, f := range options {
		f(config)
	}
	b.varnum = int32(varnum)
	if _LOGLEVEL > 0 {
		log.Printf("set varnum to %d\n", b.varnum)
	}
	b.varset = make([][2]edge, varnum)
	b.refstack = make([]int, 0, 2*varnum+4)
	b.rng = rand.New(rand.NewSource(config.seed))
	b.heuristic = config.heuristic
	b.error = nil

	nodesize := primeGte(config.nodesize)
	b.nodes = make([]node, nodesize)
	for k := range b.nodes {
		b.nodes[k] = node{level: 0, low: -1, high: edge(k + 1), refcou: 0}
	}
	b.nodes[nodesize-1].high = 0
	b.unique = make(map[[huddsize]byte]int, nodesize)

	// The ⊥ terminal and the True terminal are never entered in the unique
	// table: they are permanently alive (refcou pinned at _MAXREFCOUNT), and
	// both low and high are self-loops so that any cofactor at a constant
	// stays at that constant.
	b.nodes[botIndex] = node{level: botLevel, low: botEdge, high: botEdge, refcou: _MAXREFCOUNT}
	b.nodes[oneIndex] = node{level: int32(varnum), low: oneEdge, high: oneEdge, refcou: _MAXREFCOUNT}
	b.freepos = 2
	b.freenum = len(b.nodes) - 2
	b.minfreenodes = config.minfreenodes
	b.maxnodeincrease = config.maxnodeincrease
	b.maxnodesize = config.maxnodesize

	for k := 0; k < varnum; k++ {
		level := int32(k)
		if config.order != nil && k < len(config.order) {
			level = config.order[k]
		}
		lit, err := b.makenode(level, oneEdge, zeroEdge)
		if err != nil {
			b.seterror("cannot allocate variable %d: %s", k, err)
			return nil, b.error
		}
		b.nodes[lit.target()].refcou = _MAXREFCOUNT
		b.varset[k] = [2]edge{lit, notIfNotUnknown(lit)}
	}

	b.gcstat.history = []gcpoint{}
	b.nodefinalizer = func(n *int) {
		if _DEBUG {
			atomic.AddUint64(&b.gcstat.calledfinalizers, 1)
			if _LOGLEVEL > 2 {
				log.Printf("dec refcou %d\n", *n)
			}
		}
		b.nodes[*n].refcou--
	}
	b.cacheinit(config)
	return b, nil
}

func (b *BDD) huddhash(level int32, low, high edge) {
	b.hbuff[0] = byte(level)
	b.hbuff[1] = byte(level >> 8)
	b.hbuff[2] = byte(level >> 16)
	b.hbuff[3] = byte(level >> 24)
	l, h := int(low), int(high)
	b.hbuff[4] = byte(l)
	b.hbuff[5] = byte(l >> 8)
	b.hbuff[6] = byte(l >> 16)
	b.hbuff[7] = byte(l >> 24)
	if huddsize == 20 {
		b.hbuff[8] = byte(l >> 32)
		b.hbuff[9] = byte(l >> 40)
		b.hbuff[10] = byte(l >> 48)
		b.hbuff[11] = byte(l >> 56)
		b.hbuff[12] = byte(h)
		b.hbuff[13] = byte(h >> 8)
		b.hbuff[14] = byte(h >> 16)
		b.hbuff[15] = byte(h >> 24)
		b.hbuff[16] = byte(h >> 32)
		b.hbuff[17] = byte(h >> 40)
		b.hbuff[18] = byte(h >> 48)
		b.hbuff[19] = byte(h >> 56)
		return
	}
	b.hbuff[8] = byte(h)
	b.hbuff[9] = byte(h >> 8)
	b.hbuff[10] = byte(h >> 16)
	b.hbuff[11] = byte(h >> 24)
}

func (b *BDD) nodehash(level int32, low, high edge) (int, bool) {
	b.huddhash(level, low, high)
	hn, ok := b.unique[b.hbuff]
	return hn, ok
}

// When a slot is unused in b.nodes, low is set to -1 and high holds the index
// of the next free slot (0 if it is the last one).

func (b *BDD) setnode(level int32, low, high edge) int {
	b.huddhash(level, low, high)
	b.freenum--
	b.unique[b.hbuff] = b.freepos
	res := b.freepos
	b.freepos = int(b.nodes[b.freepos].high)
	b.nodes[res] = node{level: level, low: low, high: high, refcou: 0}
	return res
}

func (b *BDD) delnode(n node) {
	b.huddhash(n.level, n.low, n.high)
	delete(b.unique, b.hbuff)
}

func (b *BDD) size() int {
	return len(b.nodes)
}

func (b *BDD) level(e edge) int32 {
	return b.nodes[e.target()].level
}

// allnodes iterates over every active node in the BDD (constants included) and
// calls f with its id, level, low and high branch. The three terminals get
// the ids botIndex (0) and oneIndex (1); False has no node of its own.
func (b *BDD) allnodes(f func(id int, level int32, low, high edge) error) error {
	for k, v := range b.nodes {
		if !v.free() {
			if err := f(k, v.level, v.low, v.high); err != nil {
				return err
			}
		}
	}
	return nil
}

// allnodesfrom is similar to allnodes but restricts the traversal to the
// nodes reachable from one of the given roots.
func (b *BDD) allnodesfrom(f func(id int, level int32, low, high edge) error, roots []Node) error {
	for _, r := range roots {
		b.markrec((*r).target())
	}
	for k := range b.nodes {
		if b.nodes[k].ismarked() {
			b.nodes[k].unmark()
			if err := f(k, b.nodes[k].level, b.nodes[k].low, b.nodes[k].high); err != nil {
				b.unmarkall()
				return err
			}
		}
	}
	return nil
}

// Stats returns a short, human-readable summary of the size of the unique
// table, how many nodes are currently in use, and (with the debug build tag)
// cache and garbage-collection counters.
func (b *BDD) Stats() string {
	res := "Impl.:      Hudd (three-valued)\n"
	res += fmt.Sprintf("Allocated:  %d (%s)\n", len(b.nodes), humanSize(len(b.nodes), unsafe.Sizeof(node{})))
	res += fmt.Sprintf("Produced:   %d\n", b.produced)
	r := (float64(b.freenum) / float64(len(b.nodes))) * 100
	res += fmt.Sprintf("Free:       %d (%.3g %%)\n", b.freenum, r)
	res += fmt.Sprintf("Used:       %d (%.3g %%)\n", len(b.nodes)-b.freenum, 100.0-r)
	res += "==============\n"
	res += fmt.Sprintf("# of GC:    %d\n", len(b.gcstat.history))
	if _DEBUG {
		allocated := int(b.gcstat.setfinalizers)
		reclaimed := int(b.gcstat.calledfinalizers)
		for _, g := range b.gcstat.history {
			allocated += g.setfinalizers
			reclaimed += g.calledfinalizers
		}
		res += fmt.Sprintf("Ext. refs:  %d\n", allocated)
		res += fmt.Sprintf("Reclaimed:  %d\n", reclaimed)
		res += "==============\n"
		res += fmt.Sprintf("Unique Access:  %d\n", b.uniqueAccess)
		res += fmt.Sprintf("Unique Hit:     %d\n", b.uniqueHit)
		res += fmt.Sprintf("Unique Miss:    %d\n", b.uniqueMiss)
	}
	return res
}

func humanSize(n int, sz uintptr) string {
	bytes := float64(n) * float64(sz)
	units := []string{"B", "KiB", "MiB", "GiB"}
	i := 0
	for bytes >= 1024 && i < len(units)-1 {
		bytes /= 1024
		i++
	}
	return fmt.Sprintf("%.3g %s", bytes, units[i])
}
