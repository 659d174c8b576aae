package genome

import (
	"fmt"
	"math/rand"
)

// Crossover produces a child genome from g and mate. Both parents must
// share the same input/output shape and weight range. Fitness is supplied
// by the caller's evaluator; the genome does not own it.
//
// Connection genes are aligned by innovation-number homology:
//
//   - Matching genes (innovation present in both parents) are inherited
//     verbatim from either parent with equal probability, weight and
//     enabled state included.
//   - Disjoint and excess genes come from the fitter parent only; on equal
//     fitness the child inherits them from both. A gene whose (src, dst)
//     pair is already occupied in the child is skipped, so the child never
//     carries two genes over one structural pair.
//
// The child's node set is the union of every node referenced as an
// endpoint by an inherited gene, plus the fixed input/output nodes.
// Parents are never modified; every inherited gene is a copy.
func (g *Genome) Crossover(mate *Genome, fitness, mateFitness float64) (*Genome, error) {
	if g.Inputs != mate.Inputs || g.Outputs != mate.Outputs || g.WeightRange != mate.WeightRange {
		return nil, fmt.Errorf("%w: %dx%d (W=%g) vs %dx%d (W=%g)",
			ErrIncompatibleGenomes,
			g.Inputs, g.Outputs, g.WeightRange,
			mate.Inputs, mate.Outputs, mate.WeightRange)
	}

	child := NewEmpty(g.Inputs, g.Outputs, g.WeightRange)
	child.Policy = g.Policy

	mateByInnovation := make(map[int]*ConnectionGene, len(mate.Connections))
	for _, cg := range mate.Connections {
		mateByInnovation[cg.Innovation] = cg
	}
	selfInnovations := make(map[int]bool, len(g.Connections))
	for _, cg := range g.Connections {
		selfInnovations[cg.Innovation] = true
	}

	// Two parents can carry distinct innovations over the same structural
	// pair (the same mutation in different generations gets a fresh
	// innovation number), so inheritance must enforce the genome's
	// one-gene-per-pair invariant: the first gene over a pair wins.
	occupied := make(map[NodePair]bool)
	inherit := func(cg *ConnectionGene) {
		pair := NodePair{Src: cg.Src, Dst: cg.Dst}
		if occupied[pair] {
			return
		}
		occupied[pair] = true
		child.Connections = append(child.Connections, cg.Copy())
	}

	for _, cg := range g.Connections {
		mateGene, matching := mateByInnovation[cg.Innovation]
		switch {
		case matching && rand.Float64() < 0.5:
			inherit(cg)
		case matching:
			inherit(mateGene)
		case fitness >= mateFitness:
			// Disjoint/excess gene of g.
			inherit(cg)
		}
	}
	for _, cg := range mate.Connections {
		if selfInnovations[cg.Innovation] {
			continue
		}
		if mateFitness >= fitness {
			// Disjoint/excess gene of mate.
			inherit(cg)
		}
	}

	// Fixed input/output nodes are always carried over.
	for n := 0; n < g.Inputs; n++ {
		child.Nodes[n] = NewInputNode(n)
	}
	for n := g.Inputs; n < g.Inputs+g.Outputs; n++ {
		child.Nodes[n] = NewOutputNode(n)
	}

	// Every endpoint referenced by an inherited gene must exist in the child.
	for _, cg := range child.Connections {
		for _, number := range [2]int{cg.Src, cg.Dst} {
			if _, ok := child.Nodes[number]; ok {
				continue
			}
			node, err := g.Node(number)
			if err != nil {
				node, err = mate.Node(number)
			}
			if err != nil {
				return nil, fmt.Errorf("crossover: endpoint of innovation %d: %w", cg.Innovation, err)
			}
			child.Nodes[number] = node.Copy()
		}
	}

	return child, nil
}
