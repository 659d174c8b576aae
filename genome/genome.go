package genome

import (
	"fmt"
	"math/rand"
	"sort"
)

// Genome is the evolvable description of one individual's network topology
// and weights: a set of NodeGenes keyed by node number and an ordered list
// of ConnectionGenes. Connection insertion order only affects
// reproducibility of random picks, not meaning.
type Genome struct {
	Inputs      int
	Outputs     int
	WeightRange float64 // weights are drawn from [-WeightRange, WeightRange]
	Policy      ConnectionPolicy

	Nodes       map[int]*NodeGene
	Connections []*ConnectionGene
}

// New creates a fully connected genome: Inputs input nodes at layer 0
// numbered 0..inputs-1, Outputs output nodes at layer 1 numbered
// inputs..inputs+outputs-1, and one enabled connection per (input, output)
// pair with a random weight. Innovation numbers are assigned sequentially
// from 0, a convention that is only valid for the population's initial
// reference generation; every later structural change goes through the
// identity authority.
func New(inputs, outputs int, weightRange float64) *Genome {
	g := NewEmpty(inputs, outputs, weightRange)
	for n := 0; n < inputs; n++ {
		g.Nodes[n] = NewInputNode(n)
	}
	for n := inputs; n < inputs+outputs; n++ {
		g.Nodes[n] = NewOutputNode(n)
	}
	for src := 0; src < inputs; src++ {
		for dst := inputs; dst < inputs+outputs; dst++ {
			g.Connections = append(g.Connections, &ConnectionGene{
				Innovation: len(g.Connections),
				Src:        src,
				Dst:        dst,
				Weight:     g.RandomWeight(),
				Enabled:    true,
				Forward:    true, // inputs at layer 0, outputs at layer 1
			})
		}
	}
	return g
}

// NewEmpty creates a genome with no nodes and no connections. It is a
// scratch container, used for the child during crossover; it is not a
// valid phenotype source until genes are added.
func NewEmpty(inputs, outputs int, weightRange float64) *Genome {
	return &Genome{
		Inputs:      inputs,
		Outputs:     outputs,
		WeightRange: weightRange,
		Policy:      DefaultConnectionPolicy(),
		Nodes:       make(map[int]*NodeGene),
	}
}

// RandomWeight draws a weight uniformly from [-WeightRange, WeightRange].
func (g *Genome) RandomWeight() float64 {
	return rand.Float64()*g.WeightRange*2 - g.WeightRange
}

// Node returns the node with the given number, or ErrNodeNotFound.
func (g *Genome) Node(number int) (*NodeGene, error) {
	node, ok := g.Nodes[number]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, number)
	}
	return node, nil
}

// AddNode registers a finalized node. It guards the genome's uniqueness
// invariant: a second node under an existing number is rejected with
// ErrDuplicateNode.
func (g *Genome) AddNode(node *NodeGene) error {
	if _, exists := g.Nodes[node.Number]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, node.Number)
	}
	g.Nodes[node.Number] = node
	return nil
}

// AddConnection appends a finalized connection gene. Both endpoints must
// already exist and no gene, enabled or disabled, may already occupy the
// same (src, dst) pair.
func (g *Genome) AddConnection(gene *ConnectionGene) error {
	if _, err := g.Node(gene.Src); err != nil {
		return fmt.Errorf("add connection: source: %w", err)
	}
	if _, err := g.Node(gene.Dst); err != nil {
		return fmt.Errorf("add connection: destination: %w", err)
	}
	for _, existing := range g.Connections {
		if existing.Src == gene.Src && existing.Dst == gene.Dst {
			return fmt.Errorf("add connection: %d->%d already present", gene.Src, gene.Dst)
		}
	}
	g.Connections = append(g.Connections, gene)
	return nil
}

// ProposeConnection builds a proposal gene between two existing nodes:
// unassigned innovation number, fresh random weight, enabled, with the
// Forward flag computed from the endpoints' layers. The genome itself is
// not modified; the driver finalizes the proposal through the identity
// authority and applies it with AddConnection.
func (g *Genome) ProposeConnection(src, dst int) (*ConnectionGene, error) {
	srcNode, err := g.Node(src)
	if err != nil {
		return nil, fmt.Errorf("propose connection: source: %w", err)
	}
	dstNode, err := g.Node(dst)
	if err != nil {
		return nil, fmt.Errorf("propose connection: destination: %w", err)
	}
	return &ConnectionGene{
		Innovation: Unassigned,
		Src:        src,
		Dst:        dst,
		Weight:     g.RandomWeight(),
		Enabled:    true,
		Forward:    srcNode.Layer < dstNode.Layer,
	}, nil
}

// NodePair is an ordered (src, dst) endpoint pair.
type NodePair struct {
	Src int
	Dst int
}

// ConnectionPolicy controls which node pairs qualify as candidates for a
// new connection. The defaults reproduce this genome family's restrictive
// rule: hidden nodes never originate new edges, and pairs sharing a role
// (input to input, output to output) are skipped. The rule's motivation is
// preserved as policy rather than hardcoded, so a driver that wants the
// broader canonical behavior can opt out.
type ConnectionPolicy struct {
	AllowHiddenSource bool
	AllowSameRole     bool
}

// DefaultConnectionPolicy returns the restrictive historical defaults.
func DefaultConnectionPolicy() ConnectionPolicy {
	return ConnectionPolicy{}
}

// AvailableConnections enumerates every ordered pair of distinct nodes that
// could legally receive a new connection: the pair is not already occupied
// by a gene (enabled or disabled) and it passes the genome's
// ConnectionPolicy. Pairs are returned in node-number order so the
// enumeration is deterministic. The result is empty when the genome is
// saturated.
func (g *Genome) AvailableConnections() []NodePair {
	existing := make(map[NodePair]bool, len(g.Connections))
	for _, cg := range g.Connections {
		existing[NodePair{Src: cg.Src, Dst: cg.Dst}] = true
	}

	numbers := make([]int, 0, len(g.Nodes))
	for n := range g.Nodes {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	var pairs []NodePair
	for _, src := range numbers {
		for _, dst := range numbers {
			if src == dst {
				continue
			}
			pair := NodePair{Src: src, Dst: dst}
			if existing[pair] {
				continue
			}
			srcNode, dstNode := g.Nodes[src], g.Nodes[dst]
			if !g.Policy.AllowHiddenSource && srcNode.Role == Hidden {
				continue
			}
			if !g.Policy.AllowSameRole && srcNode.Role == dstNode.Role {
				continue
			}
			pairs = append(pairs, pair)
		}
	}
	return pairs
}
