package genome

import (
	"fmt"
	"math/rand"
)

// MutationRates carries the per-call Bernoulli probabilities for Mutate.
// Each rate must be in [0, 1]; the three structural/weight trials are
// independent of one another.
type MutationRates struct {
	AddNode       float64 // chance of proposing a connection split
	AddConnection float64 // chance of proposing a new connection
	MutateWeight  float64 // chance of mutating one existing weight in place
	ReplaceWeight float64 // chance the weight mutation replaces instead of perturbs
}

// Proposal is a structural change produced by Mutate. Proposals carry
// Unassigned identifiers: the driver submits them to the identity
// authority, fills in the issued numbers, and applies the finalized genes
// back into the genome with AddNode/AddConnection. Mutate never inserts a
// proposal itself.
type Proposal interface {
	proposal()
}

// SplitProposal is the result of splitting an existing connection: a new
// hidden node plus the two connections routing the old signal through it.
type SplitProposal struct {
	Node    *NodeGene       // hidden node, number and layer Unassigned
	FromSrc *ConnectionGene // original source -> new node, weight fixed at 1
	ToDst   *ConnectionGene // new node -> original destination, weight of the split gene
	Disable *ConnectionGene // the original gene; the caller disables it on commit, never deletes it
}

func (*SplitProposal) proposal() {}

// ConnectionProposal wraps a single proposed connection gene.
type ConnectionProposal struct {
	Gene *ConnectionGene
}

func (*ConnectionProposal) proposal() {}

// SplitConnection builds the proposal for inserting a hidden node in the
// middle of target. The source-side gene gets weight 1 so the pass-through
// signal keeps its magnitude, and the destination-side gene inherits
// target's current weight so the split edge keeps its influence once the
// new path is enabled. Both new genes take their Forward flag from the
// original endpoints' layer comparison; the hidden node's own layer stays
// Unassigned. The returned Disable field is target itself, which the
// caller must disable (not delete) once the split is committed.
func (g *Genome) SplitConnection(target *ConnectionGene) (*SplitProposal, error) {
	srcNode, err := g.Node(target.Src)
	if err != nil {
		return nil, fmt.Errorf("split connection: source: %w", err)
	}
	dstNode, err := g.Node(target.Dst)
	if err != nil {
		return nil, fmt.Errorf("split connection: destination: %w", err)
	}

	node := NewHiddenNode()
	forward := srcNode.Layer < dstNode.Layer
	return &SplitProposal{
		Node: node,
		FromSrc: &ConnectionGene{
			Innovation: Unassigned,
			Src:        srcNode.Number,
			Dst:        node.Number,
			Weight:     1,
			Enabled:    true,
			Forward:    forward,
		},
		ToDst: &ConnectionGene{
			Innovation: Unassigned,
			Src:        node.Number,
			Dst:        dstNode.Number,
			Weight:     target.Weight,
			Enabled:    true,
			Forward:    forward,
		},
		Disable: target,
	}, nil
}

// Mutate runs three independent Bernoulli trials against rates:
//
//  1. With probability AddNode, pick one connection gene uniformly at
//     random and produce a SplitProposal for it.
//  2. With probability AddConnection, pick one pair uniformly at random
//     from AvailableConnections and produce a ConnectionProposal. If no
//     legal pair exists this fails with ErrNoAvailableConnection rather
//     than silently doing nothing.
//  3. With probability MutateWeight, mutate one existing gene's weight in
//     place: with probability ReplaceWeight replace it with a fresh value
//     in [-W, W], otherwise add a perturbation from [0, W/8). The
//     perturbation is strictly additive.
//
// Only the structural trials contribute to the returned proposals; the
// weight mutation needs no new identifiers and is applied immediately.
// Trials 1 and 3 are skipped on a genome with no connections, which only
// occurs on an empty scratch genome.
func (g *Genome) Mutate(rates MutationRates) ([]Proposal, error) {
	proposals := []Proposal{}

	if rand.Float64() < rates.AddNode && len(g.Connections) > 0 {
		target := g.Connections[rand.Intn(len(g.Connections))]
		split, err := g.SplitConnection(target)
		if err != nil {
			return proposals, err
		}
		proposals = append(proposals, split)
	}

	if rand.Float64() < rates.AddConnection {
		available := g.AvailableConnections()
		if len(available) == 0 {
			return proposals, fmt.Errorf("connection mutation: %w", ErrNoAvailableConnection)
		}
		pair := available[rand.Intn(len(available))]
		gene, err := g.ProposeConnection(pair.Src, pair.Dst)
		if err != nil {
			return proposals, err
		}
		proposals = append(proposals, &ConnectionProposal{Gene: gene})
	}

	if rand.Float64() < rates.MutateWeight && len(g.Connections) > 0 {
		gene := g.Connections[rand.Intn(len(g.Connections))]
		if rand.Float64() < rates.ReplaceWeight {
			gene.Weight = g.RandomWeight()
		} else {
			gene.Weight += rand.Float64() * g.WeightRange / 8
		}
	}

	return proposals, nil
}
