package genome

import "fmt"

// Unassigned marks an identifier the identity authority has not issued yet.
// Proposal genes and freshly split hidden nodes carry it until the driver
// finalizes them.
const Unassigned = -1

// NodeRole identifies what part a node plays in the network topology.
// It is a closed set; code that switches on a role should handle all three.
type NodeRole int

const (
	Input NodeRole = iota
	Hidden
	Output
)

// String returns the lowercase name of the role.
func (r NodeRole) String() string {
	switch r {
	case Input:
		return "input"
	case Hidden:
		return "hidden"
	case Output:
		return "output"
	default:
		return fmt.Sprintf("NodeRole(%d)", int(r))
	}
}

// --------------------------- NodeGene ---------------------------

// NodeGene describes a single neuron: its number (unique within a genome,
// and population-wide once issued by the identity authority), its
// topological layer, and its role. All fields are fixed at construction;
// the genome never rewrites a node once it exists.
type NodeGene struct {
	Number int
	Layer  int
	Role   NodeRole
}

// NewInputNode creates an input node. Inputs always sit at layer 0.
func NewInputNode(number int) *NodeGene {
	return &NodeGene{Number: number, Layer: 0, Role: Input}
}

// NewOutputNode creates an output node. Outputs sit at layer 1 at genome
// creation time, when no hidden layers exist yet.
func NewOutputNode(number int) *NodeGene {
	return &NodeGene{Number: number, Layer: 1, Role: Output}
}

// NewHiddenNode creates a hidden node proposal. Both its number and its
// layer are Unassigned; the driver fills in the number from the identity
// authority, and the layer stays open until a layering pass resolves it.
func NewHiddenNode() *NodeGene {
	return &NodeGene{Number: Unassigned, Layer: Unassigned, Role: Hidden}
}

// String returns a string representation of the NodeGene.
func (ng *NodeGene) String() string {
	return fmt.Sprintf("NodeGene(Number: %d, Layer: %d, Role: %s)", ng.Number, ng.Layer, ng.Role)
}

// Copy creates a copy of the NodeGene.
func (ng *NodeGene) Copy() *NodeGene {
	c := *ng
	return &c
}

// --------------------------- ConnectionGene ---------------------------

// ConnectionGene describes a directed weighted edge between two nodes,
// carrying the historical marking (innovation number) NEAT uses to align
// genes across genomes. Two genes in different genomes with equal
// innovation numbers describe the same structural mutation, regardless of
// how their weights or enabled flags have since diverged.
//
// Weight and Enabled are mutated in place by the weight mutation operator
// and the driver's split commit; every other field is fixed at construction.
type ConnectionGene struct {
	Innovation int
	Src        int // source node number
	Dst        int // destination node number
	Weight     float64
	Enabled    bool
	Forward    bool // true iff layer(src) < layer(dst) at creation time
}

// String returns a string representation of the ConnectionGene.
func (cg *ConnectionGene) String() string {
	return fmt.Sprintf("ConnGene(Innovation: %d, %d->%d, Weight: %.3f, Enabled: %t, Forward: %t)",
		cg.Innovation, cg.Src, cg.Dst, cg.Weight, cg.Enabled, cg.Forward)
}

// Copy creates a copy of the ConnectionGene.
func (cg *ConnectionGene) Copy() *ConnectionGene {
	c := *cg
	return &c
}
