package genome

import "sync"

// Authority issues population-wide unique node numbers and innovation
// numbers. The genome core never calls it: mutation operators return
// proposals with Unassigned identifiers, and the driver submits them here
// before committing the finalized genes.
//
// Within one generation, identical structural proposals (same source and
// destination) receive the same innovation number, so homologous mutations
// arising independently in different genomes stay aligned for crossover.
// All allocation is serialized behind a single mutex, which keeps the
// global uniqueness invariant intact if genomes are mutated concurrently.
type Authority struct {
	mu             sync.Mutex
	nextNode       int
	nextInnovation int
	issued         map[NodePair]int // this generation's (src, dst) -> innovation
}

// NewAuthority creates an authority whose counters start after the numbers
// already consumed by the population's reference generation: firstNode is
// the first free node number, firstInnovation the first free innovation
// number.
func NewAuthority(firstNode, firstInnovation int) *Authority {
	return &Authority{
		nextNode:       firstNode,
		nextInnovation: firstInnovation,
		issued:         make(map[NodePair]int),
	}
}

// NextNodeNumber issues the next free node number.
func (a *Authority) NextNodeNumber() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := a.nextNode
	a.nextNode++
	return n
}

// NextInnovationNumber issues the innovation number for a proposed
// src->dst connection, reusing the number already issued for an identical
// proposal earlier in the current generation.
func (a *Authority) NextInnovationNumber(src, dst int) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	pair := NodePair{Src: src, Dst: dst}
	if n, ok := a.issued[pair]; ok {
		return n
	}
	n := a.nextInnovation
	a.nextInnovation++
	a.issued[pair] = n
	return n
}

// NextGeneration forgets the current generation's issued proposals, so a
// structurally identical mutation in a later generation gets a fresh
// innovation number.
func (a *Authority) NextGeneration() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.issued = make(map[NodePair]int)
}
