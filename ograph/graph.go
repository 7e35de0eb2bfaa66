package ograph

import "github.com/katalvlaran/qflow/gf2"

// Set is a subset of vertex indices 0..n-1, keyed by index for O(1)
// membership and stable iteration order via sorted traversal helpers.
type Set map[int]struct{}

// NewSet builds a Set from a slice of indices.
func NewSet(ids ...int) Set {
	s := make(Set, len(ids))
	for _, i := range ids {
		s[i] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s Set) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Sorted returns the set's members in ascending order.
func (s Set) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	// insertion sort is fine: finder sets are small per round in practice,
	// and this keeps the substrate dependency-free.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// toVector renders s as a length-n GF(2) bitset.
func (s Set) toVector(n int) (gf2.Vector, error) {
	return gf2.VectorFromBits(n, s.Sorted())
}

// Graph is a simple, undirected open graph on dense indices 0..n-1.
// Adjacency is stored as one bitset row per vertex so Odd(S) reduces to
// XOR-accumulating the rows named by S (spec.md §3, §4.C).
type Graph struct {
	n    int
	adj  []gf2.Vector // adj[i] has bit j set iff i~j
	I, O Set
}

// New constructs a Graph from an adjacency list (neighbor sets per
// vertex) plus input/output subsets, validating the preconditions spec.md
// §3 and §7 (category 2) place on the core: no self-loops, symmetric
// adjacency, I and O subsets of 0..n-1.
func New(adjList []Set, i, o Set) (*Graph, error) {
	n := len(adjList)
	if n == 0 {
		return nil, ographErrorf("New", ErrEmptyGraph)
	}
	adj := make([]gf2.Vector, n)
	for v, nbrs := range adjList {
		if nbrs.Has(v) {
			return nil, ographErrorf("New", ErrSelfLoop)
		}
		for u := range nbrs {
			if u < 0 || u >= n {
				return nil, ographErrorf("New", ErrIndexRange)
			}
		}
		vec, err := nbrs.toVector(n)
		if err != nil {
			return nil, ographErrorf("New", err)
		}
		adj[v] = vec
	}
	for v := 0; v < n; v++ {
		for u := 0; u < n; u++ {
			if adj[v].Get(u) != adj[u].Get(v) {
				return nil, ographErrorf("New", ErrAsymmetric)
			}
		}
	}
	for v := range i {
		if v < 0 || v >= n {
			return nil, ographErrorf("New", ErrNotSubset)
		}
	}
	for v := range o {
		if v < 0 || v >= n {
			return nil, ographErrorf("New", ErrNotSubset)
		}
	}
	return &Graph{n: n, adj: adj, I: i, O: o}, nil
}

// N returns the vertex count.
func (g *Graph) N() int { return g.n }

// Adjacent reports whether u and v are neighbors.
func (g *Graph) Adjacent(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}
	return g.adj[u].Get(v)
}

// Neighbors returns the bitset row for vertex v (not a copy: callers must
// not mutate it).
func (g *Graph) Neighbors(v int) gf2.Vector {
	return g.adj[v]
}

// Odd computes Odd(S) = { v : |G[v] ∩ S| is odd } by XOR-accumulating the
// adjacency rows of every member of S (spec.md §3, §4.C).
//
// Complexity: Θ(|S|·n/w).
func (g *Graph) Odd(s gf2.Vector) gf2.Vector {
	acc, _ := gf2.NewVector(g.n)
	for _, u := range s.Bits() {
		acc.XOR(g.adj[u])
	}
	return acc
}

// OddSet is the Set-typed convenience wrapper over Odd.
func (g *Graph) OddSet(s Set) (gf2.Vector, error) {
	v, err := s.toVector(g.n)
	if err != nil {
		return gf2.Vector{}, err
	}
	return g.Odd(v), nil
}

// VertexSet returns the full vertex set {0,...,n-1} as a bitset.
func (g *Graph) VertexSet() (gf2.Vector, error) {
	full, err := gf2.NewVector(g.n)
	if err != nil {
		return gf2.Vector{}, err
	}
	for v := 0; v < g.n; v++ {
		full.Set(v, true)
	}
	return full, nil
}
