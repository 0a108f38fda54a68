package rudd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rudd "github.com/matejpavlik/cudd-3val"
)

// TestAndReduced_Terminals walks the terminal-case table: identity with 1,
// annihilation with 0, idempotence, complementation and ⊥ propagation.
func TestAndReduced_Terminals(t *testing.T) {
	bdd, err := rudd.New(3)
	require.NoError(t, err)

	x0 := bdd.Ithvar(0)
	one, zero, unk := bdd.True(), bdd.False(), bdd.Unknown()

	r, err := bdd.AndReduced(x0, one, rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r, x0))

	r, err = bdd.AndReduced(x0, zero, rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r, zero))

	r, err = bdd.AndReduced(x0, x0, rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r, x0))

	r, err = bdd.AndReduced(x0, bdd.Not(x0), rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r, zero))

	r, err = bdd.AndReduced(unk, unk, rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r, unk))

	// 0 dominates ⊥: x ∧ ⊥ where x == 0 must be 0, not ⊥.
	r, err = bdd.AndReduced(zero, unk, rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r, zero))

	// ⊥ ∧ 1 == ⊥.
	r, err = bdd.AndReduced(unk, one, rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r, unk))
}

// TestAndReduced_Commutative checks P8.
func TestAndReduced_Commutative(t *testing.T) {
	bdd, err := rudd.New(4)
	require.NoError(t, err)

	f := bdd.Ithvar(0)
	g, err := bdd.AndReduced(bdd.Ithvar(1), bdd.NIthvar(2), rudd.NoLimit, nil)
	require.NoError(t, err)

	r1, err := bdd.AndReduced(f, g, rudd.NoLimit, rudd.GreedyOneStep)
	require.NoError(t, err)
	r2, err := bdd.AndReduced(g, f, rudd.NoLimit, rudd.GreedyOneStep)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r1, r2))
}

// TestXorReduced_Terminals checks x⊕0=x, x⊕1=¬x, x⊕x=0, x⊕¬x=1, and ⊥
// propagation.
func TestXorReduced_Terminals(t *testing.T) {
	bdd, err := rudd.New(2)
	require.NoError(t, err)

	x0 := bdd.Ithvar(0)
	one, zero, unk := bdd.True(), bdd.False(), bdd.Unknown()

	r, err := bdd.XorReduced(x0, zero, rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r, x0))

	r, err = bdd.XorReduced(x0, one, rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r, bdd.Not(x0)))

	r, err = bdd.XorReduced(x0, x0, rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r, zero))

	r, err = bdd.XorReduced(x0, bdd.Not(x0), rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r, one))

	r, err = bdd.XorReduced(x0, unk, rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r, unk))
}

// TestIteReduced_Terminals checks a sample of the ITE identity table.
func TestIteReduced_Terminals(t *testing.T) {
	bdd, err := rudd.New(3)
	require.NoError(t, err)

	x0, x1 := bdd.Ithvar(0), bdd.Ithvar(1)
	one, zero, unk := bdd.True(), bdd.False(), bdd.Unknown()

	r, err := bdd.IteReduced(one, x0, x1, rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r, x0))

	r, err = bdd.IteReduced(zero, x0, x1, rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r, x1))

	r, err = bdd.IteReduced(x0, one, zero, rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r, x0))

	r, err = bdd.IteReduced(x0, zero, one, rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r, bdd.Not(x0)))

	r, err = bdd.IteReduced(x0, x1, x1, rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r, x1))

	// Two of three operands ⊥ collapses to ⊥.
	r, err = bdd.IteReduced(unk, x1, unk, rudd.NoLimit, nil)
	require.NoError(t, err)
	assert.True(t, bdd.Equal(r, unk))
}

// TestApply_ExactWithAmpleBudget checks scenario 5: with a generous budget,
// AndReduced matches classical three-valued AND pointwise, and never
// introduces ⊥ of its own.
func TestApply_ExactWithAmpleBudget(t *testing.T) {
	bdd, err := rudd.New(4)
	require.NoError(t, err)

	f, err := bdd.AndReduced(bdd.Ithvar(0), bdd.NIthvar(1), rudd.NoLimit, nil)
	require.NoError(t, err)
	g, err := bdd.AndReduced(bdd.Ithvar(2), bdd.Ithvar(3), rudd.NoLimit, nil)
	require.NoError(t, err)

	exact, err := bdd.AndReduced(f, g, rudd.NoLimit, nil)
	require.NoError(t, err)
	bounded, err := bdd.AndReduced(f, g, 1024, rudd.RandomHeuristic)
	require.NoError(t, err)

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for c := 0; c < 2; c++ {
				for d := 0; d < 2; d++ {
					assignment := []int{a, b, c, d}
					assert.Equal(t, bdd.Eval(exact, assignment), bdd.Eval(bounded, assignment))
				}
			}
		}
	}
}
