package rng_test

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/imggen/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Stream reproduction
//----------------------------------------------------------------------------//

// TestGenerator_FloatsReference checks the first draws of well-known seeds.
func TestGenerator_FloatsReference(t *testing.T) {
	cases := []struct {
		name string
		seed rng.Seed
		want []float64
	}{
		{"Int12345", rng.Int(12345), []float64{0.22733602246716966, 0.31675833970975287}},
		{"TextSpam", rng.Text("spam"), []float64{
			0.7160776826338933, 0.8791198026262255, 0.7709002756111393, 0.5833346068613591,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := rng.New(tc.seed)
			require.NoError(t, err)
			require.Equal(t, tc.want, g.Floats(len(tc.want)))
		})
	}
}

// TestGenerator_Uint64Zero pins the raw PCG64 output for the zero seed.
func TestGenerator_Uint64Zero(t *testing.T) {
	g, err := rng.New(rng.Int(0))
	require.NoError(t, err)

	src := g.Source()
	assert.Equal(t, uint64(0xa30febcfd9c2825f), src.Uint64())
	assert.Equal(t, uint64(0x4510bdf882d9d721), src.Uint64())
}

// TestGenerator_ShuffleReference checks a shuffled table against the
// reference permutation.
func TestGenerator_ShuffleReference(t *testing.T) {
	g, err := rng.New(rng.Text("spam"))
	require.NoError(t, err)

	table := []int{0, 1, 2, 3, 4, 5, 0, 1, 2, 3, 4, 5}
	g.ShuffleInts(table)
	require.Equal(t, []int{3, 1, 0, 2, 3, 5, 0, 2, 1, 5, 4, 4}, table)
}

// TestGenerator_Interval verifies draws stay inside the closed bound.
func TestGenerator_Interval(t *testing.T) {
	g, err := rng.New(rng.Int(7))
	require.NoError(t, err)

	require.Zero(t, g.Interval(0))
	for _, bound := range []uint64{1, 5, 255, 1 << 33, ^uint64(0) >> 1} {
		for i := 0; i < 200; i++ {
			require.LessOrEqual(t, g.Interval(bound), bound)
		}
	}
}

//----------------------------------------------------------------------------//
// Seeds
//----------------------------------------------------------------------------//

// TestSeed_FormsAgree verifies text, bytes and the equivalent integer seed
// drive the same stream.
func TestSeed_FormsAgree(t *testing.T) {
	seeds := []rng.Seed{
		rng.Text("spam"),
		rng.Bytes([]byte("spam")),
		rng.Int(1835102323),
		rng.BigInt(big.NewInt(1835102323)),
	}
	var want []float64
	for i, s := range seeds {
		g, err := rng.New(s)
		require.NoError(t, err)
		got := g.Floats(16)
		if i == 0 {
			want = got
			continue
		}
		require.Equal(t, want, got, "seed %s", s)
	}
}

// TestSeed_LongBytes covers entropy longer than the mixing pool.
func TestSeed_LongBytes(t *testing.T) {
	a, err := rng.New(rng.Text("a rather long seed that spans many words"))
	require.NoError(t, err)
	b, err := rng.New(rng.Text("a rather long seed that spans many words!"))
	require.NoError(t, err)
	require.NotEqual(t, a.Floats(8), b.Floats(8))
}

// TestSeed_Negative ensures negative integers are rejected.
func TestSeed_Negative(t *testing.T) {
	_, err := rng.New(rng.Int(-1))
	require.ErrorIs(t, err, rng.ErrNegativeSeed)
}

// TestSeed_Absent verifies unseeded generators diverge.
func TestSeed_Absent(t *testing.T) {
	a, err := rng.New(rng.NoSeed())
	require.NoError(t, err)
	b, err := rng.New(rng.NoSeed())
	require.NoError(t, err)
	require.NotEqual(t, a.Floats(8), b.Floats(8))
	require.True(t, rng.NoSeed().Absent())
}

// TestSeed_EqualAndString checks comparison and rendering per form.
func TestSeed_EqualAndString(t *testing.T) {
	assert.True(t, rng.Text("spam").Equal(rng.Text("spam")))
	assert.False(t, rng.Text("spam").Equal(rng.Bytes([]byte("spam"))))
	assert.False(t, rng.Int(1).Equal(rng.Int(2)))
	assert.True(t, rng.NoSeed().Equal(rng.Seed{}))

	assert.Equal(t, "'spam'", rng.Text("spam").String())
	assert.Equal(t, `b"spam"`, rng.Bytes([]byte("spam")).String())
	assert.Equal(t, "42", rng.Int(42).String())
	assert.Equal(t, "None", rng.NoSeed().String())
}

// TestSeed_Int64 folds seeds for int64-seeded libraries.
func TestSeed_Int64(t *testing.T) {
	assert.Equal(t, int64(1835102323), rng.Text("spam").Int64())
	assert.Equal(t, int64(9), rng.Int(9).Int64())
}

// TestPCG64_RandV2 plugs the bit generator into math/rand/v2.
func TestPCG64_RandV2(t *testing.T) {
	g, err := rng.New(rng.Int(3))
	require.NoError(t, err)
	r := rand.New(g.Source())
	for i := 0; i < 100; i++ {
		n := r.IntN(10)
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 10)
	}
}
