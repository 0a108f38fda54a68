// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

// pairEntry/pairCache and tripleEntry/tripleCache are direct-mapped caches
// used to memoize AndReduced/XorReduced (two operands) and IteReduced (three
// operands). They follow the same layout as the teacher's data4ncache: a
// fixed-size table indexed by a Cantor-pairing hash of the operands, with
// collisions simply overwriting the previous entry (no chaining). Arguments
// are ordered by edge identity before the lookup for AndReduced/XorReduced,
// since both operators are commutative, so that f op g and g op f always hit
// the same slot.
type pairEntry struct {
	a, b, res edge
}

func (e pairEntry) empty() bool { return e.a == -1 }

type pairCache struct {
	ratio int
	hit   int
	miss  int
	table []pairEntry
}

func (c *pairCache) init(size, ratio int) {
	size = primeGte(size)
	c.table = make([]pairEntry, size)
	c.ratio = ratio
	c.reset()
}

func (c *pairCache) reset() {
	for k := range c.table {
		c.table[k].a = -1
	}
}

func (c *pairCache) resize(nodesize int) {
	if c.ratio > 0 {
		size := primeGte((nodesize * c.ratio) / 100)
		c.table = make([]pairEntry, size)
	}
	c.reset()
}

func (c *pairCache) lookup(a, b edge) (edge, bool) {
	e := c.table[_PAIR(int(a), int(b), len(c.table))]
	if !e.empty() && e.a == a && e.b == b {
		if _DEBUG {
			c.hit++
		}
		return e.res, true
	}
	if _DEBUG {
		c.miss++
	}
	return 0, false
}

func (c *pairCache) set(a, b, res edge) {
	c.table[_PAIR(int(a), int(b), len(c.table))] = pairEntry{a: a, b: b, res: res}
}

type tripleEntry struct {
	a, b, c, res edge
}

func (e tripleEntry) empty() bool { return e.a == -1 }

type tripleCache struct {
	ratio int
	hit   int
	miss  int
	table []tripleEntry
}

func (c *tripleCache) init(size, ratio int) {
	size = primeGte(size)
	c.table = make([]tripleEntry, size)
	c.ratio = ratio
	c.reset()
}

func (c *tripleCache) reset() {
	for k := range c.table {
		c.table[k].a = -1
	}
}

func (c *tripleCache) resize(nodesize int) {
	if c.ratio > 0 {
		size := primeGte((nodesize * c.ratio) / 100)
		c.table = make([]tripleEntry, size)
	}
	c.reset()
}

func (c *tripleCache) lookup(a, b, d edge) (edge, bool) {
	e := c.table[_TRIPLE(int(a), int(b), int(d), len(c.table))]
	if !e.empty() && e.a == a && e.b == b && e.c == d {
		if _DEBUG {
			c.hit++
		}
		return e.res, true
	}
	if _DEBUG {
		c.miss++
	}
	return 0, false
}

func (c *tripleCache) set(a, b, d, res edge) {
	c.table[_TRIPLE(int(a), int(b), int(d), len(c.table))] = tripleEntry{a: a, b: b, c: d, res: res}
}

func (b *BDD) cacheinit(c *configs) {
	size := 10000
	if c.cachesize != 0 {
		size = c.cachesize
	}
	b.andCache = &pairCache{}
	b.andCache.init(size, c.cacheratio)
	b.xorCache = &pairCache{}
	b.xorCache.init(size, c.cacheratio)
	b.iteCache = &tripleCache{}
	b.iteCache.init(size, c.cacheratio)
}

func (b *BDD) cachereset() {
	b.andCache.reset()
	b.xorCache.reset()
	b.iteCache.reset()
}

func (b *BDD) cacheresize(nodesize int) {
	b.andCache.resize(nodesize)
	b.xorCache.resize(nodesize)
	b.iteCache.resize(nodesize)
}
