package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/pathquery/automaton"
	"github.com/katalvlaran/pathquery/labelgraph"
)

// Result is one timed run of a single (graph, query) pair against both
// transitive-closure strategies labelgraph exposes.
type Result struct {
	RunID          string
	Graph, Query   string
	IntersectNanos int64
	CloseSquare    int64
	ExtractSquare  int64
	NSquare        int
	CloseAdj       int64
	ExtractAdj     int64
	NAdj           int
}

// Header is the CSV column header row for the `measure` command's output.
var Header = []string{
	"run_id", "graph", "query",
	"t_intersect",
	"t_close_square", "t_extract_square", "n_square",
	"t_close_adj", "t_extract_adj", "n_adj",
}

func (r Result) row() []string {
	return []string{
		r.RunID, r.Graph, r.Query,
		fmt.Sprintf("%d", r.IntersectNanos),
		fmt.Sprintf("%d", r.CloseSquare), fmt.Sprintf("%d", r.ExtractSquare), fmt.Sprintf("%d", r.NSquare),
		fmt.Sprintf("%d", r.CloseAdj), fmt.Sprintf("%d", r.ExtractAdj), fmt.Sprintf("%d", r.NAdj),
	}
}

// Measure times a single (graph, query) run: the Kronecker intersection,
// then both closure strategies applied to independent clones of the same
// adjacency matrix.
func Measure(graphName, queryName string, g *labelgraph.Graph, q *automaton.FA) Result {
	start := time.Now()
	intersection := g.Kronecker(q.Graph)
	adj := intersection.AdjacencyMatrix()
	intersectNanos := time.Since(start).Nanoseconds()

	square := adj.Clone()
	start = time.Now()
	labelgraph.TransitiveClosureSquaring(square)
	closeSquare := time.Since(start).Nanoseconds()
	start = time.Now()
	squarePairs := labelgraph.ExtractPairs(square)
	extractSquare := time.Since(start).Nanoseconds()

	adjClosure := adj.Clone()
	start = time.Now()
	labelgraph.TransitiveClosureAdjacency(adjClosure)
	closeAdj := time.Since(start).Nanoseconds()
	start = time.Now()
	adjPairs := labelgraph.ExtractPairs(adjClosure)
	extractAdj := time.Since(start).Nanoseconds()

	return Result{
		RunID:          uuid.New().String(),
		Graph:          graphName,
		Query:          queryName,
		IntersectNanos: intersectNanos,
		CloseSquare:    closeSquare,
		ExtractSquare:  extractSquare,
		NSquare:        len(squarePairs),
		CloseAdj:       closeAdj,
		ExtractAdj:     extractAdj,
		NAdj:           len(adjPairs),
	}
}

// WriteCSV walks dir for graph subdirectories shaped like
// dir/<graph>/<graph>.txt and dir/<graph>/queries/<class>/<query>, running
// Measure iterations times per (graph, query) pair and writing one CSV row
// per run to csvPath: one graph file per graph directory, queries grouped
// by class.
func WriteCSV(dir, csvPath string, iterations int) error {
	f, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, strings.Join(Header, ",")); err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	graphDirs, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	for _, gd := range graphDirs {
		if !gd.IsDir() {
			continue
		}
		graphName := gd.Name()
		graphPath := filepath.Join(dir, graphName, graphName+".txt")
		g, err := labelgraph.ReadFile(graphPath)
		if err != nil {
			return fmt.Errorf("bench: graph %s: %w", graphName, err)
		}

		classesDir := filepath.Join(dir, graphName, "queries")
		classes, err := os.ReadDir(classesDir)
		if err != nil {
			return fmt.Errorf("bench: %w", err)
		}

		for _, cd := range classes {
			if !cd.IsDir() {
				continue
			}
			className := cd.Name()
			queryFiles, err := os.ReadDir(filepath.Join(classesDir, className))
			if err != nil {
				return fmt.Errorf("bench: %w", err)
			}

			for _, qf := range queryFiles {
				if qf.IsDir() {
					continue
				}
				queryName := className + "/" + qf.Name()
				queryPath := filepath.Join(classesDir, className, qf.Name())
				q, err := automaton.ReadRegexFile(queryPath)
				if err != nil {
					return fmt.Errorf("bench: query %s: %w", queryName, err)
				}

				for i := 0; i < iterations; i++ {
					result := Measure(graphName, queryName, g, q)
					log.Info().
						Str("graph", graphName).
						Str("query", queryName).
						Int("iteration", i).
						Msg("measured")
					if _, err := fmt.Fprintln(f, strings.Join(result.row(), ",")); err != nil {
						return fmt.Errorf("bench: %w", err)
					}
				}
			}
		}
	}

	return nil
}
