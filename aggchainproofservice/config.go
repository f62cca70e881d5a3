package aggchainproofservice

import (
	"github.com/agglayer/aggkit-prover/aggchainproofbuilder"
	"github.com/agglayer/aggkit-prover/proposer"
)

// Config holds the configuration of both stages
type Config struct {
	Proposer             proposer.Config             `mapstructure:"Proposer"`
	AggchainProofBuilder aggchainproofbuilder.Config `mapstructure:"AggchainProofBuilder"`
}

// DefaultConfig returns the default configuration of both stages
func DefaultConfig() Config {
	return Config{
		Proposer:             proposer.DefaultConfig(),
		AggchainProofBuilder: aggchainproofbuilder.DefaultConfig(),
	}
}
