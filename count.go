// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

// NodeCount returns the number of distinct internal nodes reachable from n,
// not counting the terminals. It is mostly useful to check that a result of
// ReduceByNodeLimit/AndReduced/XorReduced/IteReduced actually stayed within
// its budget.
func (b *BDD) NodeCount(n Node) int {
	if n == nil {
		return 0
	}
	acc := 0
	err := b.allnodesfrom(func(id int, level int32, low, high edge) error {
		if id != botIndex && id != oneIndex {
			acc++
		}
		return nil
	}, []Node{n})
	if err != nil {
		return acc
	}
	return acc
}
