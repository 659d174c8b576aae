// Package nn builds runnable phenotype networks from genomes.
package nn

import (
	"fmt"
	"math"
	"sort"

	"github.com/baldhumanity/genome-go/genome"
)

// FeedForwardNetwork is the phenotype built from a genome's nodes and
// enabled connections. It assumes a feed-forward structure; a cycle among
// the enabled connections is a construction error.
type FeedForwardNetwork struct {
	InputNumbers  []int
	OutputNumbers []int
	evalOrder     []int                            // topologically sorted non-input node numbers
	incoming      map[int][]*genome.ConnectionGene // node number -> enabled incoming connections
}

// Create builds a runnable feed-forward network from a genome. Only
// enabled connections contribute; disabled genes stay out of the
// phenotype. The activation order comes from a topological sort (Kahn's
// algorithm) over the enabled connection graph.
func Create(g *genome.Genome) (*FeedForwardNetwork, error) {
	var inputNumbers, outputNumbers []int
	for number, node := range g.Nodes {
		switch node.Role {
		case genome.Input:
			inputNumbers = append(inputNumbers, number)
		case genome.Output:
			outputNumbers = append(outputNumbers, number)
		case genome.Hidden:
			// Hidden nodes only matter through their connections.
		}
	}
	sort.Ints(inputNumbers)
	sort.Ints(outputNumbers)

	incoming := make(map[int][]*genome.ConnectionGene)
	inDegree := make(map[int]int, len(g.Nodes))
	graph := make(map[int][]int, len(g.Nodes))
	for number := range g.Nodes {
		inDegree[number] = 0
	}
	for _, cg := range g.Connections {
		if !cg.Enabled {
			continue
		}
		if _, err := g.Node(cg.Src); err != nil {
			return nil, fmt.Errorf("network build: %w", err)
		}
		if _, err := g.Node(cg.Dst); err != nil {
			return nil, fmt.Errorf("network build: %w", err)
		}
		incoming[cg.Dst] = append(incoming[cg.Dst], cg)
		graph[cg.Src] = append(graph[cg.Src], cg.Dst)
		inDegree[cg.Dst]++
	}

	// Kahn's algorithm; sorted queues keep the order deterministic.
	queue := []int{}
	for number, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, number)
		}
	}
	sort.Ints(queue)

	evalOrder := []int{}
	visited := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		visited++
		if g.Nodes[u].Role != genome.Input {
			evalOrder = append(evalOrder, u)
		}
		neighbors := graph[u]
		sort.Ints(neighbors)
		for _, v := range neighbors {
			inDegree[v]--
			if inDegree[v] == 0 {
				queue = append(queue, v)
			}
		}
		sort.Ints(queue)
	}
	if visited != len(g.Nodes) {
		return nil, fmt.Errorf("network build: cycle among enabled connections (ordered %d of %d nodes)",
			visited, len(g.Nodes))
	}

	return &FeedForwardNetwork{
		InputNumbers:  inputNumbers,
		OutputNumbers: outputNumbers,
		evalOrder:     evalOrder,
		incoming:      incoming,
	}, nil
}

// Activate computes the network's outputs for one slice of input values.
// The input slice must match the number of input nodes; outputs come back
// in node-number order.
func (net *FeedForwardNetwork) Activate(inputs []float64) ([]float64, error) {
	if len(inputs) != len(net.InputNumbers) {
		return nil, fmt.Errorf("mismatch between input count (%d) and network input nodes (%d)",
			len(inputs), len(net.InputNumbers))
	}

	values := make(map[int]float64, len(net.evalOrder)+len(inputs))
	for i, number := range net.InputNumbers {
		values[number] = inputs[i]
	}

	for _, number := range net.evalOrder {
		sum := 0.0
		for _, cg := range net.incoming[number] {
			sum += values[cg.Src] * cg.Weight
		}
		values[number] = sigmoid(sum)
	}

	outputs := make([]float64, len(net.OutputNumbers))
	for i, number := range net.OutputNumbers {
		// An output with no enabled incoming connection evaluates to
		// sigmoid(0), set above during the ordered pass.
		outputs[i] = values[number]
	}
	return outputs, nil
}

// sigmoid is the steepened sigmoid conventionally used by NEAT phenotypes.
func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-4.9*x))
}
