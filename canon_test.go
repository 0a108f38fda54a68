package rudd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rudd "github.com/matejpavlik/cudd-3val"
)

// TestCanonicity_HashConsing checks that building the same node twice, from
// two different call sites, returns the exact same reference (property P1).
func TestCanonicity_HashConsing(t *testing.T) {
	bdd, err := rudd.New(4)
	require.NoError(t, err)

	a1 := bdd.Ithvar(0)
	a2 := bdd.Ithvar(0)
	assert.True(t, bdd.Equal(a1, a2))

	n1, err := bdd.AndReduced(bdd.Ithvar(1), bdd.Ithvar(2), rudd.NoLimit, nil)
	require.NoError(t, err)
	n2, err := bdd.AndReduced(bdd.Ithvar(1), bdd.Ithvar(2), rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(n1, n2))
}

// TestCanonicity_Reducedness checks that Build never creates a node whose
// then and else branches coincide: it returns that branch unchanged instead.
func TestCanonicity_Reducedness(t *testing.T) {
	bdd, err := rudd.New(2)
	require.NoError(t, err)

	same := bdd.True()
	n, err := bdd.Build(0, same, same)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(n, same))
}

// TestCanonicity_UnknownSelfComplement checks that ⊥ is its own complement
// and is never split into a node with both branches equal to ⊥.
func TestCanonicity_UnknownSelfComplement(t *testing.T) {
	bdd, err := rudd.New(2)
	require.NoError(t, err)

	u := bdd.Unknown()
	assert.True(t, bdd.Equal(bdd.Not(u), u))

	n, err := bdd.Build(0, u, u)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(n, u), "a node with both branches ⊥ must collapse to ⊥")
}

// TestCanonicity_NoComplementedElse checks, by direct evaluation, the node
// Build makes from then = x1 and else = ¬x1. A positive literal is a
// complement edge (see New), so here the then branch is complemented and the
// else branch is a regular edge, which makenode interns as given.
func TestCanonicity_NoComplementedElse(t *testing.T) {
	bdd, err := rudd.New(2)
	require.NoError(t, err)

	x0 := bdd.Ithvar(0)
	x1 := bdd.Ithvar(1)
	n, err := bdd.Build(0, x1, bdd.Not(x1))
	require.NoError(t, err)

	assert.Equal(t, 1, bdd.Eval(n, []int{1, 1}))
	assert.Equal(t, 1, bdd.Eval(n, []int{0, 0}))
	assert.Equal(t, 0, bdd.Eval(n, []int{1, 0}))
	assert.Equal(t, 0, bdd.Eval(n, []int{0, 1}))
	_ = x0
}
