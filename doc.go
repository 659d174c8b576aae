// Package genomego provides the genome layer of a NEAT-style
// (NeuroEvolution of Augmenting Topologies) evolutionary algorithm: the
// node and connection gene types, the topology-changing mutation
// operators, and historical-marking-based crossover between structurally
// different genomes.
//
// The core lives in the genome package. A genome never invents final
// identifiers for new structure: mutation operators return proposals with
// unassigned numbers, which the driver finalizes through an injectable
// identity Authority before applying them. The genome/nn package builds
// runnable feed-forward phenotypes from a genome, and the store package
// archives genome snapshots in memory or SQLite.
//
// Basic driver flow:
//
//	config, err := genome.LoadConfig("path/to/config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	g := config.NewGenome()
//	authority := genome.NewAuthority(g.Inputs+g.Outputs, len(g.Connections))
//
//	proposals, err := g.Mutate(config.Rates())
//	if err != nil {
//		// e.g. genome.ErrNoAvailableConnection: re-roll or skip
//	}
//	for _, p := range proposals {
//		switch proposal := p.(type) {
//		case *genome.SplitProposal:
//			// assign numbers from the authority, add the node and
//			// both connections, disable proposal.Disable
//		case *genome.ConnectionProposal:
//			// assign an innovation number, add the gene
//		}
//	}
package genomego
