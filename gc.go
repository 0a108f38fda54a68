// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

import (
	"log"
	"math"
	"runtime"
)

// gcpoint records the state of the unique table at the time of a garbage
// collection, for diagnostics (see BDD.Stats).
type gcpoint struct {
	nodes            int
	freenodes        int
	setfinalizers    int
	calledfinalizers int
}

// gcstat accumulates garbage-collection history. setfinalizers and
// calledfinalizers are only maintained under the debug build tag.
type gcstat struct {
	history          []gcpoint
	setfinalizers    uint64
	calledfinalizers uint64
}

// retnode wraps an internal node index as an external Node, bumping its
// reference count and registering a finalizer so the Go garbage collector
// tells us when the client drops the last reference to it. The three
// terminals are pinned at _MAXREFCOUNT and shared through the bddzero/bddone/
// bddunknown package variables instead, since they never need collecting.
func (b *BDD) retnode(e edge) Node {
	idx := e.target()
	if idx < 0 || idx >= len(b.nodes) {
		if _DEBUG {
			log.Panicf("b.retnode(%d) not valid\n", idx)
		}
		return nil
	}
	if e.isBot() {
		return bddunknown
	}
	if idx == oneIndex {
		if e.isComplement() {
			return bddzero
		}
		return bddone
	}
	x := e
	if b.nodes[idx].refcou < _MAXREFCOUNT {
		b.nodes[idx].refcou++
		target := idx
		runtime.SetFinalizer(&x, func(*edge) { b.nodefinalizerFunc(target) })
		if _DEBUG {
			b.gcstat.setfinalizers++
		}
	}
	return &x
}

func (b *BDD) nodefinalizerFunc(idx int) {
	if _DEBUG {
		b.gcstat.calledfinalizers++
		if _LOGLEVEL > 2 {
			log.Printf("dec refcou %d\n", idx)
		}
	}
	b.nodes[idx].refcou--
}

// pushref protects a node still under construction from being reclaimed by a
// garbage collection triggered by a nested call to intern.
func (b *BDD) pushref(e edge) edge {
	b.refstack = append(b.refstack, e.target())
	return e
}

// popref discards the last n entries pushed with pushref.
func (b *BDD) popref(n int) {
	b.refstack = b.refstack[:len(b.refstack)-n]
}

func (b *BDD) initref() {
	b.refstack = b.refstack[:0]
}

// gbc runs a mark-and-sweep pass over the unique table: every node reachable
// from the refstack (nodes mid-construction) or with a positive external
// reference count is kept; everything else is returned to the free list.
func (b *BDD) gbc() {
	if _LOGLEVEL > 0 {
		log.Println("starting GC")
	}
	if _DEBUG {
		b.gcstat.history = append(b.gcstat.history, gcpoint{
			nodes:            len(b.nodes),
			freenodes:        b.freenum,
			setfinalizers:    int(b.gcstat.setfinalizers),
			calledfinalizers: int(b.gcstat.calledfinalizers),
		})
		b.gcstat.setfinalizers = 0
		b.gcstat.calledfinalizers = 0
	} else {
		b.gcstat.history = append(b.gcstat.history, gcpoint{nodes: len(b.nodes), freenodes: b.freenum})
	}
	for _, r := range b.refstack {
		b.markrec(r)
	}
	for k := range b.nodes {
		if b.nodes[k].refcou&_MAXREFCOUNT > 0 {
			b.markrec(k)
		}
	}
	b.freepos = 0
	b.freenum = 0
	for n := len(b.nodes) - 1; n > oneIndex; n-- {
		if b.nodes[n].ismarked() && !b.nodes[n].free() {
			b.nodes[n].unmark()
		} else {
			b.delnode(b.nodes[n])
			b.nodes[n].low = -1
			b.nodes[n].high = edge(b.freepos)
			b.freepos = n
			b.freenum++
		}
	}
	b.cachereset()
	if _LOGLEVEL > 0 {
		log.Printf("end GC; freenum: %d\n", b.freenum)
	}
}

func (b *BDD) markrec(n int) {
	if n <= oneIndex || b.nodes[n].ismarked() || b.nodes[n].free() {
		return
	}
	b.nodes[n].mark()
	b.markrec(b.nodes[n].low.target())
	b.markrec(b.nodes[n].high.target())
}

func (b *BDD) unmarkall() {
	for k := range b.nodes {
		if k <= oneIndex || !b.nodes[k].ismarked() || b.nodes[k].free() {
			continue
		}
		b.nodes[k].unmark()
	}
}

func (b *BDD) noderesize() error {
	if _LOGLEVEL > 0 {
		log.Printf("start resize: %d\n", len(b.nodes))
	}
	oldsize := len(b.nodes)
	nodesize := oldsize
	if oldsize >= b.maxnodesize && b.maxnodesize > 0 {
		return errMemory
	}
	if oldsize > (math.MaxInt32 >> 1) {
		nodesize = math.MaxInt32 - 1
	} else {
		nodesize = nodesize << 1
	}
	if b.maxnodeincrease > 0 && nodesize > oldsize+b.maxnodeincrease {
		nodesize = oldsize + b.maxnodeincrease
	}
	if nodesize > b.maxnodesize && b.maxnodesize > 0 {
		nodesize = b.maxnodesize
	}
	if nodesize <= oldsize {
		return errMemory
	}

	tmp := b.nodes
	b.nodes = make([]node, nodesize)
	copy(b.nodes, tmp)
	for n := oldsize; n < nodesize; n++ {
		b.nodes[n] = node{level: 0, low: -1, high: edge(n + 1), refcou: 0}
	}
	b.nodes[nodesize-1].high = edge(b.freepos)
	b.freepos = oldsize
	b.freenum += nodesize - oldsize

	b.cacheresize(nodesize)
	if _LOGLEVEL > 0 {
		log.Printf("end resize: %d\n", len(b.nodes))
	}
	return errResize
}

// AddRef increases the reference count on node n and returns n, so that calls
// can be easily chained together.
func (b *BDD) AddRef(n Node) Node {
	if n == nil {
		return nil
	}
	return b.retnode(*n)
}

// GC explicitly starts a garbage-collection pass over the unique table.
func (b *BDD) GC() {
	b.gbc()
}
