package binomial_test

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/binlat/binomial"
	"github.com/katalvlaran/binlat/iterable"
)

// TestExpectation_Antisymmetry checks E(n,k) == −E(n,n−k) for the odd
// payoff f(x) = 2x − N at every node up to the horizon.
func TestExpectation_Antisymmetry(t *testing.T) {
	const N = 10
	odd := func(x int) float64 { return float64(2*x - N) }
	E := binomial.Expectation(N, odd)

	for n := 0; n <= N; n++ {
		for k := 0; k <= n; k++ {
			x, err := E(n, k)
			require.NoError(t, err)
			y, err := E(n, n-k)
			require.NoError(t, err)
			assert.InDelta(t, 0, x+y, 1e-12, "n=%d k=%d", n, k)
		}
	}
}

// TestExpectation_WalkIsMartingale checks E[2K_N − N | (n,k)] = 2k − n.
func TestExpectation_WalkIsMartingale(t *testing.T) {
	const N = 20
	E := binomial.Expectation(N, func(x int) float64 { return float64(2*x - N) })

	for _, nd := range []binomial.Node{{N: 0, K: 0}, {N: 5, K: 1}, {N: 13, K: 9}, {N: 20, K: 7}} {
		v, err := E(nd.N, nd.K)
		require.NoError(t, err)
		assert.InDelta(t, float64(nd.Walk()), v, 1e-12, "node %v", nd)
	}
}

// TestExpectation_ApproxThreshold uses normal weights for long horizons.
func TestExpectation_ApproxThreshold(t *testing.T) {
	const N = 400
	one := func(int) float64 { return 1 }

	exact, err := binomial.Expectation(N, one)(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, exact, 1e-12)

	approx, err := binomial.Expectation(N, one, binomial.WithApproxThreshold(100))(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, approx, 1e-6)

	// Fourth moment of the walk: exact 3N² − 2N, normal limit 3N².
	fourth := func(x int) float64 { return math.Pow(float64(2*x-N), 4) }
	exact, err = binomial.Expectation(N, fourth)(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 3*N*N-2*N, exact, 1e-6)
	approx, err = binomial.Expectation(N, fourth, binomial.WithApproxThreshold(100))(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 3*N*N, approx, 1e-3)

	// Below the threshold the exact weights are used.
	near, err := binomial.Expectation(N, one, binomial.WithApproxThreshold(100))(350, 10)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, near, 1e-12)
}

// TestExpectation_Errors covers nil payoff, bad nodes and n past the horizon.
func TestExpectation_Errors(t *testing.T) {
	_, err := binomial.Expectation(4, nil)(0, 0)
	assert.ErrorIs(t, err, binomial.ErrNilFunc)

	_, err = binomial.Expectation(4, func(int) float64 { return 0 })(2, 3)
	assert.ErrorIs(t, err, binomial.ErrDomain)

	_, err = binomial.Expectation(4, func(int) float64 { return 0 })(5, 0)
	assert.ErrorIs(t, err, binomial.ErrDomain)
}

// TestSweep_FullLatticeMatchesExpectation compares every swept node with the
// per-node weighted sum.
func TestSweep_FullLatticeMatchesExpectation(t *testing.T) {
	const N = 12
	put := func(x int) float64 { return math.Max(float64(N-2*x), 0) }

	lat, err := binomial.Sweep(N, put)
	require.NoError(t, err)
	assert.Equal(t, N, lat.Horizon())
	assert.Equal(t, binomial.FullLattice, lat.Mode())

	E := binomial.Expectation(N, put)
	for n := 0; n <= N; n++ {
		for k := 0; k <= n; k++ {
			want, err := E(n, k)
			require.NoError(t, err)
			got, err := lat.At(n, k)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-12, "(%d,%d)", n, k)
		}
	}

	root, _ := E(0, 0)
	assert.InDelta(t, root, lat.Root(), 1e-12)
}

// TestSweep_TwoRows keeps only the root.
func TestSweep_TwoRows(t *testing.T) {
	const N = 15
	call := func(x int) float64 { return math.Max(float64(2*x-N)-1, 0) }

	full, err := binomial.Sweep(N, call)
	require.NoError(t, err)
	rolling, err := binomial.Sweep(N, call, binomial.WithMemoryMode(binomial.TwoRows))
	require.NoError(t, err)

	assert.Equal(t, full.Root(), rolling.Root(), "both modes run the same arithmetic")
	assert.Equal(t, "TwoRows", rolling.Mode().String())

	_, err = rolling.At(0, 0)
	assert.ErrorIs(t, err, binomial.ErrMemoryMode)
	_, err = rolling.Row(0)
	assert.ErrorIs(t, err, binomial.ErrMemoryMode)
}

// TestSweep_Row exposes a depth as a cursor over lattice storage.
func TestSweep_Row(t *testing.T) {
	lat, err := binomial.Sweep(4, func(x int) float64 { return float64(x) })
	require.NoError(t, err)

	row, err := lat.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, iterable.Collect[float64](row))

	// Mass-weighted row average recovers the root.
	var weighted float64
	lv := binomial.NewLevels(2)
	for r := iterable.Iterable[float64](row); r.HasNext(); r = r.Next() {
		weighted += r.Peek() * lv.Peek()
		lv = lv.Advance()
	}
	assert.InDelta(t, lat.Root(), weighted, 1e-15)

	_, err = lat.Row(5)
	assert.ErrorIs(t, err, binomial.ErrDomain)
}

// TestSweep_Edges covers the zero horizon and invalid input.
func TestSweep_Edges(t *testing.T) {
	lat, err := binomial.Sweep(0, func(int) float64 { return 7 })
	require.NoError(t, err)
	assert.Equal(t, 7.0, lat.Root())

	lat, err = binomial.Sweep(0, func(int) float64 { return 7 }, binomial.WithMemoryMode(binomial.TwoRows))
	require.NoError(t, err)
	assert.Equal(t, 7.0, lat.Root())

	_, err = binomial.Sweep(-1, func(int) float64 { return 0 })
	assert.ErrorIs(t, err, binomial.ErrDomain)
	_, err = binomial.Sweep(3, nil)
	assert.ErrorIs(t, err, binomial.ErrNilFunc)

	full, err := binomial.Sweep(3, func(int) float64 { return 0 })
	require.NoError(t, err)
	_, err = full.At(4, 0)
	assert.ErrorIs(t, err, binomial.ErrDomain)
	_, err = full.At(2, 3)
	assert.ErrorIs(t, err, binomial.ErrDomain)
}

// TestPrice rounds valuer output into a decimal.
func TestPrice(t *testing.T) {
	const N = 4
	call := binomial.Expectation(N, func(x int) float64 { return math.Max(float64(2*x-N), 0) })

	p, err := binomial.Price(call, 0, 0, 2)
	require.NoError(t, err)
	assert.True(t, p.Equal(decimal.RequireFromString("0.75")), "got %s", p)

	lat, err := binomial.Sweep(N, func(x int) float64 { return 100.0 / 3 })
	require.NoError(t, err)
	p, err = binomial.Price(lat.Valuer(), 2, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, "33.3333", p.String())

	_, err = binomial.Price(nil, 0, 0, 2)
	assert.ErrorIs(t, err, binomial.ErrNilFunc)

	nan := binomial.Valuer(func(int, int) (float64, error) { return math.NaN(), nil })
	_, err = binomial.Price(nan, 0, 0, 2)
	assert.ErrorIs(t, err, binomial.ErrNotFinite)

	boom := errors.New("boom")
	failing := binomial.Valuer(func(int, int) (float64, error) { return 0, boom })
	_, err = binomial.Price(failing, 0, 0, 2)
	assert.ErrorIs(t, err, boom)

	_, err = binomial.Price(call, 5, 0, 2)
	assert.ErrorIs(t, err, binomial.ErrDomain)
}
