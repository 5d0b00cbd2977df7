// Package rpq evaluates regular path queries: the set of (u,v) vertex
// pairs of a graph G connected by some path whose label sequence belongs
// to the language of a query automaton Q.
package rpq
