package rudd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rudd "github.com/matejpavlik/cudd-3val"
)

// chain builds x0 ∧ x1 ∧ ... ∧ x(n-1), a single-path diagram with exactly n
// internal nodes.
func chain(t *testing.T, bdd *rudd.BDD, n int) rudd.Node {
	t.Helper()
	res := bdd.True()
	for i := n - 1; i >= 0; i-- {
		next, err := bdd.AndReduced(bdd.Ithvar(i), res, rudd.NoLimit, nil)
		require.NoError(t, err)
		res = next
	}
	return res
}

// TestReduceByNodeLimit_StaysWithinBudget checks the node-count bound (P3).
func TestReduceByNodeLimit_StaysWithinBudget(t *testing.T) {
	bdd, err := rudd.New(10)
	require.NoError(t, err)

	full := chain(t, bdd, 10)
	require.Equal(t, 10, bdd.NodeCount(full))

	reduced, err := bdd.ReduceByNodeLimit(full, 4, rudd.GreedyOneStep)
	require.NoError(t, err)
	assert.LessOrEqual(t, bdd.NodeCount(reduced), 4)

	// The all-ones assignment must still be satisfied by a node that small
	// only if the heuristic kept that path; what must always hold is that
	// some assignment now evaluates to ⊥ where full was decided (since 10
	// nodes cannot fit in a 4-node budget without forgetting something).
	sawUnknown := false
	assignment := make([]int, 10)
	for i := range assignment {
		assignment[i] = 1
	}
	for i := 0; i < 10; i++ {
		assignment[i] = 0
		if bdd.Eval(reduced, assignment) == -1 {
			sawUnknown = true
		}
		assignment[i] = 1
	}
	assert.True(t, sawUnknown, "truncating a 10-node chain to 4 nodes must introduce ⊥ somewhere")
}

// TestReduceByNodeLimit_NoLimitIsIdentity checks that passing NoLimit leaves
// a diagram unchanged.
func TestReduceByNodeLimit_NoLimitIsIdentity(t *testing.T) {
	bdd, err := rudd.New(6)
	require.NoError(t, err)

	full := chain(t, bdd, 6)
	same, err := bdd.ReduceByNodeLimit(full, rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(full, same))
}

// TestReduceByNodeLimit_MarkHygiene checks that MAXREF bits never leak past a
// top-level call (P5): a second call on the same diagram must behave
// identically to the first.
func TestReduceByNodeLimit_MarkHygiene(t *testing.T) {
	bdd, err := rudd.New(8)
	require.NoError(t, err)

	full := chain(t, bdd, 8)
	first, err := bdd.ReduceByNodeLimit(full, 3, rudd.GreedyOneStep)
	require.NoError(t, err)
	second, err := bdd.ReduceByNodeLimit(full, 3, rudd.GreedyOneStep)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(first, second))
}
