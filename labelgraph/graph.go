package labelgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathquery/boolmatrix"
)

// Ends is a (from, to) vertex-pair tuple, the common result shape of every
// reachability computation in this module.
type Ends struct {
	From, To uint64
}

// Edge is a single (from, label, to) triple as read from graph text.
type Edge struct {
	From, To uint64
	Label    string
}

// Graph is a labelled directed multigraph: one size×size Boolean matrix
// per distinct edge label.
type Graph struct {
	Size     uint64
	Matrices map[string]*boolmatrix.Matrix[bool]
}

// WithSize returns an empty Graph of the given vertex count.
func WithSize(size uint64) *Graph {
	return &Graph{Size: size, Matrices: make(map[string]*boolmatrix.Matrix[bool])}
}

// getOrCreate returns the matrix for label, allocating a fresh size×size
// Boolean matrix on first use.
func (g *Graph) getOrCreate(label string) *boolmatrix.Matrix[bool] {
	m, ok := g.Matrices[label]
	if !ok {
		m = boolmatrix.New[bool](g.Size, g.Size)
		g.Matrices[label] = m
	}
	return m
}

// ReadFrom parses graph text from an io.Reader: one edge per non-empty
// line, "from label to", exactly three whitespace-separated tokens (spec
// §4.2, §6). size = max vertex id + 1.
func ReadFrom(r io.Reader) (*Graph, error) {
	var edges []Edge
	var size uint64

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrParseGraph, lineNo, line)
		}
		from, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrParseGraph, lineNo, line)
		}
		to, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrParseGraph, lineNo, line)
		}
		if from+1 > size {
			size = from + 1
		}
		if to+1 > size {
			size = to + 1
		}
		edges = append(edges, Edge{From: from, To: to, Label: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("labelgraph: %w", err)
	}

	return FromEdges(size, edges), nil
}

// ReadFile opens path and delegates to ReadFrom.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("labelgraph: %w", err)
	}
	defer f.Close()
	return ReadFrom(f)
}

// FromText parses graph text held in memory.
func FromText(text string) (*Graph, error) {
	return ReadFrom(strings.NewReader(text))
}

// FromEdges builds a Graph of the given size from a slice of edges,
// growing size to cover any vertex id that exceeds it.
func FromEdges(size uint64, edges []Edge) *Graph {
	for _, e := range edges {
		if e.From+1 > size {
			size = e.From + 1
		}
		if e.To+1 > size {
			size = e.To + 1
		}
	}
	g := WithSize(size)
	for _, e := range edges {
		g.getOrCreate(e.Label).Insert(e.From, e.To, true)
	}
	return g
}

// Clone returns an independent copy of g: every per-label matrix is
// deep-copied via boolmatrix.Matrix.Clone.
func (g *Graph) Clone() *Graph {
	out := WithSize(g.Size)
	for label, m := range g.Matrices {
		out.Matrices[label] = m.Clone()
	}
	return out
}

// Stats returns, for every label, the number of stored edges (nvals) —
// the payload of the script language's `stats` command.
func (g *Graph) Stats() map[string]uint64 {
	out := make(map[string]uint64, len(g.Matrices))
	for label, m := range g.Matrices {
		out[label] = m.NVals()
	}
	return out
}

// Kronecker computes the per-label Kronecker product of g and b, keeping
// only labels present in both graphs (intersection semantics). The
// result has size g.Size * b.Size.
func (g *Graph) Kronecker(b *Graph) *Graph {
	out := WithSize(g.Size * b.Size)
	for label, m := range g.Matrices {
		om, ok := b.Matrices[label]
		if !ok {
			continue
		}
		out.Matrices[label] = boolmatrix.KroneckerNew(boolmatrix.LorLand, m, om)
	}
	return out
}

// AdjacencyMatrix returns ⋁_label Matrices[label] as a single Boolean
// matrix.
func (g *Graph) AdjacencyMatrix() *boolmatrix.Matrix[bool] {
	adj := boolmatrix.New[bool](g.Size, g.Size)
	for _, m := range g.Matrices {
		boolmatrix.Apply(adj, &boolmatrix.Lor, boolmatrix.BoolIdentity, m, nil)
	}
	return adj
}

// TransitiveClosureSquaring computes the reflexive-free transitive closure
// of m in place by repeated squaring: M ← M ∨ (M·M) until nvals stabilises.
func TransitiveClosureSquaring(m *boolmatrix.Matrix[bool]) {
	prev := uint64(0)
	square := boolmatrix.New[bool](m.NRows(), m.NCols())
	for prev != m.NVals() {
		prev = m.NVals()
		square.Clear()
		boolmatrix.Mxm(square, &boolmatrix.Lor, boolmatrix.LorLand, m, m)
		boolmatrix.Apply(m, &boolmatrix.Lor, boolmatrix.BoolIdentity, square, nil)
	}
}

// TransitiveClosureAdjacency computes the same closure as
// TransitiveClosureSquaring via repeated BFS-style expansion against a
// fixed copy of the original adjacency: M ← M ∨ (Adj·M) until nvals
// stabilises.
func TransitiveClosureAdjacency(m *boolmatrix.Matrix[bool]) {
	adj := m.Clone()
	prev := uint64(0)
	production := boolmatrix.New[bool](m.NRows(), m.NCols())
	for prev != m.NVals() {
		prev = m.NVals()
		production.Clear()
		boolmatrix.Mxm(production, &boolmatrix.Lor, boolmatrix.LorLand, adj, m)
		boolmatrix.Apply(m, &boolmatrix.Lor, boolmatrix.BoolIdentity, production, nil)
	}
}

// ExtractPairs returns every stored (row,col) position of m as an Ends.
func ExtractPairs(m *boolmatrix.Matrix[bool]) []Ends {
	rows, cols, _ := m.ExtractTuples()
	out := make([]Ends, len(rows))
	for k := range rows {
		out[k] = Ends{From: rows[k], To: cols[k]}
	}
	return out
}

// ReachablePairs returns the full (u,v) reachability relation of g: the
// transitive closure of g's adjacency matrix, computed by squaring.
func (g *Graph) ReachablePairs() []Ends {
	closure := g.AdjacencyMatrix()
	TransitiveClosureSquaring(closure)
	return ExtractPairs(closure)
}
