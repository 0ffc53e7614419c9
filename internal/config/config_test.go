package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			LexicalWeight:     0.45,
			SemanticWeight:    0.35,
			ReadabilityWeight: 0.10,
			ATSWeight:         0.10,
			SemanticThreshold: 0.78,
		},
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejectsNegativeWeight(t *testing.T) {
	cfg := validConfig()
	cfg.Scoring.LexicalWeight = -0.45

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "WEIGHT_LEXICAL")
}

func TestValidateRejectsWeightsNotSummingToOne(t *testing.T) {
	cfg := validConfig()
	cfg.Scoring.SemanticWeight = 0.5

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestValidateRejectsThresholdOutOfRange(t *testing.T) {
	for _, threshold := range []float64{-0.1, 1.1} {
		cfg := validConfig()
		cfg.Scoring.SemanticThreshold = threshold

		require.Error(t, cfg.Validate(), "threshold %v", threshold)
	}
}

func TestLoadNormalizationOverridesUnset(t *testing.T) {
	cfg := validConfig()

	overrides, err := cfg.LoadNormalizationOverrides()

	require.NoError(t, err)
	assert.Nil(t, overrides)
}
