package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/baldhumanity/genome-go/genome"
)

// CurrentSchemaVersion is stamped on every snapshot written by this
// package; decoding rejects payloads from a different schema.
const CurrentSchemaVersion = 1

// ErrVersionMismatch is returned by DecodeSnapshot when a payload was
// written under a different schema version.
var ErrVersionMismatch = errors.New("snapshot version mismatch")

// Snapshot is the stored form of one genome at one point of a run.
type Snapshot struct {
	SchemaVersion int     `json:"schema_version"`
	ID            string  `json:"id"`
	RunID         string  `json:"run_id"`
	Generation    int     `json:"generation"`
	Fitness       float64 `json:"fitness"`

	Inputs      int                `json:"inputs"`
	Outputs     int                `json:"outputs"`
	WeightRange float64            `json:"weight_range"`
	Nodes       []NodeRecord       `json:"nodes"`
	Connections []ConnectionRecord `json:"connections"`
}

// NodeRecord is the stored form of a node gene.
type NodeRecord struct {
	Number int    `json:"number"`
	Layer  int    `json:"layer"`
	Role   string `json:"role"`
}

// ConnectionRecord is the stored form of a connection gene.
type ConnectionRecord struct {
	Innovation int     `json:"innovation"`
	Src        int     `json:"src"`
	Dst        int     `json:"dst"`
	Weight     float64 `json:"weight"`
	Enabled    bool    `json:"enabled"`
	Forward    bool    `json:"forward"`
}

// NewSnapshot captures a genome into a snapshot with a fresh unique ID.
// Node records are written in node-number order and connection records in
// the genome's insertion order, so two snapshots of the same genome differ
// only in their IDs.
func NewSnapshot(g *genome.Genome, runID string, generation int, fitness float64) Snapshot {
	snapshot := Snapshot{
		SchemaVersion: CurrentSchemaVersion,
		ID:            uuid.NewString(),
		RunID:         runID,
		Generation:    generation,
		Fitness:       fitness,
		Inputs:        g.Inputs,
		Outputs:       g.Outputs,
		WeightRange:   g.WeightRange,
	}
	numbers := make([]int, 0, len(g.Nodes))
	for number := range g.Nodes {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)
	for _, number := range numbers {
		node := g.Nodes[number]
		snapshot.Nodes = append(snapshot.Nodes, NodeRecord{
			Number: node.Number,
			Layer:  node.Layer,
			Role:   node.Role.String(),
		})
	}
	for _, cg := range g.Connections {
		snapshot.Connections = append(snapshot.Connections, ConnectionRecord{
			Innovation: cg.Innovation,
			Src:        cg.Src,
			Dst:        cg.Dst,
			Weight:     cg.Weight,
			Enabled:    cg.Enabled,
			Forward:    cg.Forward,
		})
	}
	return snapshot
}

// Genome rebuilds the captured genome. The genome's own invariants are
// re-checked on the way in, so a corrupted snapshot surfaces as an error
// instead of a malformed genome.
func (s Snapshot) Genome() (*genome.Genome, error) {
	g := genome.NewEmpty(s.Inputs, s.Outputs, s.WeightRange)
	for _, record := range s.Nodes {
		role, err := parseRole(record.Role)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", s.ID, err)
		}
		if err := g.AddNode(&genome.NodeGene{
			Number: record.Number,
			Layer:  record.Layer,
			Role:   role,
		}); err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", s.ID, err)
		}
	}
	for _, record := range s.Connections {
		if err := g.AddConnection(&genome.ConnectionGene{
			Innovation: record.Innovation,
			Src:        record.Src,
			Dst:        record.Dst,
			Weight:     record.Weight,
			Enabled:    record.Enabled,
			Forward:    record.Forward,
		}); err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", s.ID, err)
		}
	}
	return g, nil
}

func parseRole(name string) (genome.NodeRole, error) {
	switch name {
	case genome.Input.String():
		return genome.Input, nil
	case genome.Hidden.String():
		return genome.Hidden, nil
	case genome.Output.String():
		return genome.Output, nil
	default:
		return 0, fmt.Errorf("unknown node role: %q", name)
	}
}

// EncodeSnapshot serializes a snapshot for storage.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	return json.Marshal(s)
}

// DecodeSnapshot deserializes a stored snapshot, rejecting payloads
// written under a different schema version.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, err
	}
	if snapshot.SchemaVersion != CurrentSchemaVersion {
		return Snapshot{}, fmt.Errorf("%w: got %d, want %d",
			ErrVersionMismatch, snapshot.SchemaVersion, CurrentSchemaVersion)
	}
	return snapshot, nil
}
