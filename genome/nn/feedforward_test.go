package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldhumanity/genome-go/genome"
)

func TestCreateFromFreshGenome(t *testing.T) {
	g := genome.New(4, 3, 2.0)

	net, err := Create(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, net.InputNumbers)
	assert.Equal(t, []int{4, 5, 6}, net.OutputNumbers)

	outputs, err := net.Activate([]float64{0.1, 0.2, 0.3, 0.4})
	require.NoError(t, err)
	assert.Len(t, outputs, 3)
}

func TestActivateMatchesManualComputation(t *testing.T) {
	g := genome.New(2, 1, 1.0)
	g.Connections[0].Weight = 0.5  // 0 -> 2
	g.Connections[1].Weight = -0.3 // 1 -> 2

	net, err := Create(g)
	require.NoError(t, err)

	inputs := []float64{1.0, 2.0}
	outputs, err := net.Activate(inputs)
	require.NoError(t, err)
	require.Len(t, outputs, 1)

	sum := 1.0*0.5 + 2.0*(-0.3)
	expected := 1.0 / (1.0 + math.Exp(-4.9*sum))
	assert.InDelta(t, expected, outputs[0], 1e-12)
}

func TestDisabledConnectionsStayOutOfPhenotype(t *testing.T) {
	g := genome.New(2, 1, 1.0)
	g.Connections[0].Weight = 10.0
	g.Connections[0].Enabled = false
	g.Connections[1].Weight = 0.0

	net, err := Create(g)
	require.NoError(t, err)

	outputs, err := net.Activate([]float64{1.0, 1.0})
	require.NoError(t, err)
	// Only the zero-weight edge contributes: sigmoid(0).
	assert.InDelta(t, 0.5, outputs[0], 1e-12)
}

func TestActivateThroughHiddenNode(t *testing.T) {
	g := genome.New(1, 1, 1.0)
	split := g.Connections[0]
	originalWeight := split.Weight

	// Commit a split by hand: hidden node 2 reroutes 0 -> 1.
	require.NoError(t, g.AddNode(&genome.NodeGene{Number: 2, Layer: genome.Unassigned, Role: genome.Hidden}))
	require.NoError(t, g.AddConnection(&genome.ConnectionGene{Innovation: 1, Src: 0, Dst: 2, Weight: 1, Enabled: true, Forward: true}))
	require.NoError(t, g.AddConnection(&genome.ConnectionGene{Innovation: 2, Src: 2, Dst: 1, Weight: originalWeight, Enabled: true, Forward: true}))
	split.Enabled = false

	net, err := Create(g)
	require.NoError(t, err)

	outputs, err := net.Activate([]float64{0.7})
	require.NoError(t, err)
	require.Len(t, outputs, 1)

	hidden := 1.0 / (1.0 + math.Exp(-4.9*0.7))
	expected := 1.0 / (1.0 + math.Exp(-4.9*hidden*originalWeight))
	assert.InDelta(t, expected, outputs[0], 1e-12)
}

func TestCreateRejectsCycles(t *testing.T) {
	g := genome.New(1, 1, 1.0)
	require.NoError(t, g.AddNode(&genome.NodeGene{Number: 2, Layer: genome.Unassigned, Role: genome.Hidden}))
	require.NoError(t, g.AddNode(&genome.NodeGene{Number: 3, Layer: genome.Unassigned, Role: genome.Hidden}))
	require.NoError(t, g.AddConnection(&genome.ConnectionGene{Innovation: 1, Src: 2, Dst: 3, Weight: 0.1, Enabled: true}))
	require.NoError(t, g.AddConnection(&genome.ConnectionGene{Innovation: 2, Src: 3, Dst: 2, Weight: 0.1, Enabled: true}))

	_, err := Create(g)
	require.Error(t, err)
}

func TestActivateInputCountMismatch(t *testing.T) {
	g := genome.New(2, 1, 1.0)
	net, err := Create(g)
	require.NoError(t, err)

	_, err = net.Activate([]float64{1.0})
	require.Error(t, err)
}
