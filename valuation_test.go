package rudd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rudd "github.com/matejpavlik/cudd-3val"
)

// TestReduceByValuation_Forgets matches scenario 6: bdd = x0 ⊕ x1, val = ⊥ at
// x0 (a node (x0, ⊥, ⊥) collapsed to ⊥ by the canonical-form invariants), so
// ReduceByValuation(bdd, val) == ⊥.
func TestReduceByValuation_Forgets(t *testing.T) {
	bdd, err := rudd.New(2)
	require.NoError(t, err)

	f, err := bdd.XorReduced(bdd.Ithvar(0), bdd.Ithvar(1), rudd.NoLimit, nil)
	require.NoError(t, err)

	val := bdd.Unknown()
	res, err := bdd.ReduceByValuation(f, val)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(res, bdd.Unknown()))
}

// TestReduceByValuation_OneIsIdentity checks the val==1 descent rule.
func TestReduceByValuation_OneIsIdentity(t *testing.T) {
	bdd, err := rudd.New(2)
	require.NoError(t, err)

	f, err := bdd.AndReduced(bdd.Ithvar(0), bdd.NIthvar(1), rudd.NoLimit, nil)
	require.NoError(t, err)

	res, err := bdd.ReduceByValuation(f, bdd.True())
	require.NoError(t, err)
	assert.True(t, bdd.Equal(res, f))
}

// TestReduceByValuation_ZeroIsBot checks the val==0 descent rule.
func TestReduceByValuation_ZeroIsBot(t *testing.T) {
	bdd, err := rudd.New(2)
	require.NoError(t, err)

	f, err := bdd.AndReduced(bdd.Ithvar(0), bdd.NIthvar(1), rudd.NoLimit, nil)
	require.NoError(t, err)

	res, err := bdd.ReduceByValuation(f, bdd.False())
	require.NoError(t, err)
	assert.True(t, bdd.Equal(res, bdd.Unknown()))
}

// TestReduceByValuation_PartialDomain checks P7: where val is 1 the result
// agrees with bdd, where val is 0 the result is ⊥, variable by variable.
func TestReduceByValuation_PartialDomain(t *testing.T) {
	bdd, err := rudd.New(2)
	require.NoError(t, err)

	f, err := bdd.OrReduced(bdd.Ithvar(0), bdd.Ithvar(1), rudd.NoLimit, nil)
	require.NoError(t, err)

	// val restricts x0 to be in-domain only when x0 == 1; x1 is always in
	// domain. val = ITE(x0, 1, 0) ∧ 1 == x0 itself, used as a valuation.
	val := bdd.Ithvar(0)

	res, err := bdd.ReduceByValuation(f, val)
	require.NoError(t, err)

	// At x0=1 (val(σ)==1) the result must agree with f.
	assert.Equal(t, bdd.Eval(f, []int{1, 0}), bdd.Eval(res, []int{1, 0}))
	assert.Equal(t, bdd.Eval(f, []int{1, 1}), bdd.Eval(res, []int{1, 1}))
	// At x0=0 (val(σ)==0) the result must be ⊥.
	assert.Equal(t, -1, bdd.Eval(res, []int{0, 0}))
	assert.Equal(t, -1, bdd.Eval(res, []int{0, 1}))
}
