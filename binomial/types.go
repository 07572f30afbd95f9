// SPDX-License-Identifier: MIT

package binomial

import "fmt"

// Node is a lattice coordinate: N elapsed steps, K of them "up".
// Valid nodes satisfy 0 <= K <= N.
type Node struct {
	N int
	K int
}

// Valid reports whether 0 <= K <= N.
func (nd Node) Valid() bool {
	return nd.N >= 0 && nd.K >= 0 && nd.K <= nd.N
}

// Validate returns ErrDomain, annotated with the coordinate, if nd is not valid.
func (nd Node) Validate() error {
	if !nd.Valid() {
		return fmt.Errorf("%w: (n=%d, k=%d)", ErrDomain, nd.N, nd.K)
	}

	return nil
}

// Next moves to the next level at the same depth. At K == N it saturates
// and returns nd unchanged.
func (nd Node) Next() Node {
	if nd.K < nd.N {
		nd.K++
	}

	return nd
}

// Up returns the successor reached by an up step: (N+1, K+1).
func (nd Node) Up() Node {
	return Node{N: nd.N + 1, K: nd.K + 1}
}

// Down returns the successor reached by a down step: (N+1, K).
func (nd Node) Down() Node {
	return Node{N: nd.N + 1, K: nd.K}
}

// Value is the scalar value of the node: its level K.
func (nd Node) Value() float64 {
	return float64(nd.K)
}

// Walk is the centered random-walk value 2K − N.
func (nd Node) Walk() int {
	return 2*nd.K - nd.N
}

// Mass returns the exact probability of reaching nd from the root.
func (nd Node) Mass() (float64, error) {
	return Mass(nd.N, nd.K)
}

// String renders the coordinate as "(n,k)".
func (nd Node) String() string {
	return fmt.Sprintf("(%d,%d)", nd.N, nd.K)
}

// StoppingTime decides whether the walk stops at node (n, k).
// It must be pure: it is evaluated afresh at every visited node.
type StoppingTime func(n, k int) bool

// Payoff values a stopping node (n, k). It must be pure and deterministic.
type Payoff func(n, k int) float64

// LevelPayoff values a terminal level k at a fixed horizon.
type LevelPayoff func(k int) float64

// Valuer evaluates an expectation at node (n, k).
type Valuer func(n, k int) (float64, error)

// AtHorizon is the stopping time "depth equals N".
func AtHorizon(N int) StoppingTime {
	return func(n, _ int) bool { return n >= N }
}

// MemoryMode controls how Sweep stores the lattice.
//
//   - FullLattice - keep every depth; Lattice.At works for any node.
//     Memory: O(N²).
//   - TwoRows     - keep only the current and previous depth; only the root
//     value survives. Memory: O(N).
type MemoryMode int

const (
	// FullLattice stores all depths, supporting node lookups.
	FullLattice MemoryMode = iota

	// TwoRows keeps two rolling rows and returns only the root value.
	TwoRows
)

// String returns the mode name.
func (m MemoryMode) String() string {
	switch m {
	case FullLattice:
		return "FullLattice"
	case TwoRows:
		return "TwoRows"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}
