package genome

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

const validConfig = `
[Genome]
num_inputs   = 4
num_outputs  = 3
weight_range = 2.0

[Mutation]
node_add_prob       = 0.03
conn_add_prob       = 0.05
weight_mutate_prob  = 0.8
weight_replace_prob = 0.1

[Policy]
allow_hidden_source = false
allow_same_role     = false
`

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 4, config.Genome.NumInputs)
	assert.Equal(t, 3, config.Genome.NumOutputs)
	assert.Equal(t, 2.0, config.Genome.WeightRange)
	assert.Equal(t, 0.03, config.Mutation.NodeAddProb)
	assert.Equal(t, 0.05, config.Mutation.ConnAddProb)
	assert.Equal(t, 0.8, config.Mutation.WeightMutateProb)
	assert.Equal(t, 0.1, config.Mutation.WeightReplaceProb)
	assert.False(t, config.Policy.AllowHiddenSource)
	assert.False(t, config.Policy.AllowSameRole)
}

func TestLoadConfigPolicyToggles(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, `
[Genome]
num_inputs   = 2
num_outputs  = 1
weight_range = 1.0

[Policy]
allow_hidden_source = true
allow_same_role     = true
`))
	require.NoError(t, err)
	assert.True(t, config.Policy.AllowHiddenSource)
	assert.True(t, config.Policy.AllowSameRole)
}

func TestLoadConfigValidation(t *testing.T) {
	cases := []struct {
		name     string
		contents string
	}{
		{"missing inputs", "[Genome]\nnum_outputs = 1\nweight_range = 1.0\n"},
		{"zero outputs", "[Genome]\nnum_inputs = 2\nnum_outputs = 0\nweight_range = 1.0\n"},
		{"zero weight range", "[Genome]\nnum_inputs = 2\nnum_outputs = 1\nweight_range = 0\n"},
		{"rate above one", "[Genome]\nnum_inputs = 2\nnum_outputs = 1\nweight_range = 1.0\n[Mutation]\nnode_add_prob = 1.5\n"},
		{"negative rate", "[Genome]\nnum_inputs = 2\nnum_outputs = 1\nweight_range = 1.0\n[Mutation]\nconn_add_prob = -0.1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.contents))
			require.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}

func TestConfigNewGenome(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, validConfig))
	require.NoError(t, err)

	g := config.NewGenome()
	assert.Len(t, g.Nodes, 7)
	assert.Len(t, g.Connections, 12)
	assert.False(t, g.Policy.AllowHiddenSource)

	rates := config.Rates()
	assert.Equal(t, 0.03, rates.AddNode)
	assert.Equal(t, 0.05, rates.AddConnection)
	assert.Equal(t, 0.8, rates.MutateWeight)
	assert.Equal(t, 0.1, rates.ReplaceWeight)
}
