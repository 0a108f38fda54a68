package rudd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rudd "github.com/matejpavlik/cudd-3val"
)

// TestForgetZeros matches scenario 1: ForgetZeros(x0) has truth table [⊥, 1].
func TestForgetZeros(t *testing.T) {
	bdd, err := rudd.New(1)
	require.NoError(t, err)

	x0 := bdd.Ithvar(0)
	f, err := bdd.ForgetZeros(x0)
	require.NoError(t, err)

	assert.Equal(t, -1, bdd.Eval(f, []int{0}))
	assert.Equal(t, 1, bdd.Eval(f, []int{1}))
}

// TestForgetZeros_Idempotent checks P6's first identity.
func TestForgetZeros_Idempotent(t *testing.T) {
	bdd, err := rudd.New(2)
	require.NoError(t, err)

	f, err := bdd.AndReduced(bdd.Ithvar(0), bdd.NIthvar(1), rudd.NoLimit, nil)
	require.NoError(t, err)

	once, err := bdd.ForgetZeros(f)
	require.NoError(t, err)
	twice, err := bdd.ForgetZeros(once)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(once, twice))
}

// TestForgetOnes matches scenario 2: ForgetOnes(x0 ∧ x1) has truth table
// [0, 0, 0, ⊥] over (x0, x1) in standard order.
func TestForgetOnes(t *testing.T) {
	bdd, err := rudd.New(2)
	require.NoError(t, err)

	conj, err := bdd.AndReduced(bdd.Ithvar(0), bdd.Ithvar(1), rudd.NoLimit, nil)
	require.NoError(t, err)
	f, err := bdd.ForgetOnes(conj)
	require.NoError(t, err)

	assert.Equal(t, 0, bdd.Eval(f, []int{0, 0}))
	assert.Equal(t, 0, bdd.Eval(f, []int{0, 1}))
	assert.Equal(t, 0, bdd.Eval(f, []int{1, 0}))
	assert.Equal(t, -1, bdd.Eval(f, []int{1, 1}))
}

// TestMergeInterval matches scenario 3: with u = x0∧x1, o = x0∨x1,
// MergeInterval(u, o) has truth table [0, ⊥, ⊥, 1].
func TestMergeInterval(t *testing.T) {
	bdd, err := rudd.New(2)
	require.NoError(t, err)

	x0, x1 := bdd.Ithvar(0), bdd.Ithvar(1)
	under, err := bdd.AndReduced(x0, x1, rudd.NoLimit, nil)
	require.NoError(t, err)
	over, err := bdd.OrReduced(x0, x1, rudd.NoLimit, nil)
	require.NoError(t, err)

	merged, err := bdd.MergeInterval(under, over)
	require.NoError(t, err)

	assert.Equal(t, 0, bdd.Eval(merged, []int{0, 0}))
	assert.Equal(t, -1, bdd.Eval(merged, []int{0, 1}))
	assert.Equal(t, -1, bdd.Eval(merged, []int{1, 0}))
	assert.Equal(t, 1, bdd.Eval(merged, []int{1, 1}))
}
