package genome

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Config stores the configuration parameters for the genome module.
type Config struct {
	Genome   GenomeConfig
	Mutation MutationConfig
	Policy   PolicyConfig
}

// GenomeConfig holds the parameters fixed at genome creation.
type GenomeConfig struct {
	NumInputs   int     `ini:"num_inputs"`
	NumOutputs  int     `ini:"num_outputs"`
	WeightRange float64 `ini:"weight_range"`
}

// MutationConfig holds the Bernoulli rates for the mutation operators.
type MutationConfig struct {
	NodeAddProb       float64 `ini:"node_add_prob"`
	ConnAddProb       float64 `ini:"conn_add_prob"`
	WeightMutateProb  float64 `ini:"weight_mutate_prob"`
	WeightReplaceProb float64 `ini:"weight_replace_prob"`
}

// PolicyConfig holds the connection-availability policy switches.
type PolicyConfig struct {
	AllowHiddenSource bool `ini:"allow_hidden_source"`
	AllowSameRole     bool `ini:"allow_same_role"`
}

// LoadConfig loads configuration parameters from an INI file.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := &Config{}

	if err := cfg.Section("Genome").MapTo(&config.Genome); err != nil {
		return nil, fmt.Errorf("failed to map [Genome] section: %w", err)
	}
	if err := cfg.Section("Mutation").MapTo(&config.Mutation); err != nil {
		return nil, fmt.Errorf("failed to map [Mutation] section: %w", err)
	}
	if err := cfg.Section("Policy").MapTo(&config.Policy); err != nil {
		return nil, fmt.Errorf("failed to map [Policy] section: %w", err)
	}

	// Manually reload the bool values: MapTo can trip over trailing
	// comments and value formats the ini parser tolerates elsewhere.
	policySection := cfg.Section("Policy")
	if key, err := policySection.GetKey("allow_hidden_source"); err == nil {
		config.Policy.AllowHiddenSource, _ = key.Bool()
	}
	if key, err := policySection.GetKey("allow_same_role"); err == nil {
		config.Policy.AllowSameRole, _ = key.Bool()
	}

	if config.Genome.NumInputs <= 0 {
		return nil, fmt.Errorf("config error: num_inputs must be positive")
	}
	if config.Genome.NumOutputs <= 0 {
		return nil, fmt.Errorf("config error: num_outputs must be positive")
	}
	if config.Genome.WeightRange <= 0 {
		return nil, fmt.Errorf("config error: weight_range must be positive")
	}
	rates := map[string]float64{
		"node_add_prob":       config.Mutation.NodeAddProb,
		"conn_add_prob":       config.Mutation.ConnAddProb,
		"weight_mutate_prob":  config.Mutation.WeightMutateProb,
		"weight_replace_prob": config.Mutation.WeightReplaceProb,
	}
	for name, rate := range rates {
		if rate < 0 || rate > 1 {
			return nil, fmt.Errorf("config error: %s must be between 0 and 1", name)
		}
	}

	return config, nil
}

// NewGenome creates a fully connected genome from the configured shape,
// with the configured connection-availability policy applied.
func (c *Config) NewGenome() *Genome {
	g := New(c.Genome.NumInputs, c.Genome.NumOutputs, c.Genome.WeightRange)
	g.Policy = ConnectionPolicy{
		AllowHiddenSource: c.Policy.AllowHiddenSource,
		AllowSameRole:     c.Policy.AllowSameRole,
	}
	return g
}

// Rates returns the configured mutation rates in the form Mutate expects.
func (c *Config) Rates() MutationRates {
	return MutationRates{
		AddNode:       c.Mutation.NodeAddProb,
		AddConnection: c.Mutation.ConnAddProb,
		MutateWeight:  c.Mutation.WeightMutateProb,
		ReplaceWeight: c.Mutation.WeightReplaceProb,
	}
}
