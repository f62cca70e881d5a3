package aggchainproofbuilder

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	aggkitcommon "github.com/agglayer/aggkit-prover/common"
	"github.com/agglayer/aggkit-prover/config/types"
	signertypes "github.com/agglayer/go_signer/signer/types"
	"github.com/ethereum/go-ethereum/common"
)

// Config is the configuration of the aggchain proof builder
type Config struct {
	// L1RPCEndpoint is the L1 node used to read the AggchainFEP contract
	L1RPCEndpoint string `mapstructure:"L1RPCEndpoint"`
	// OpNodeURL is the op-node providing the L2 outputs
	OpNodeURL string `mapstructure:"OpNodeURL"`
	// SP1ClusterEndpoint is the JSON-RPC endpoint of the proving cluster
	SP1ClusterEndpoint string `mapstructure:"SP1ClusterEndpoint"`
	// AggchainFEPAddr is the L1 address of the AggchainFEP contract
	AggchainFEPAddr common.Address `mapstructure:"AggchainFEPAddr"`
	// TrustedSequencerKey signs the public values in optimistic mode. Method "none" disables it.
	TrustedSequencerKey signertypes.SignerConfig `mapstructure:"TrustedSequencerKey"`
	// RequireKeyMatchTrustedSequencer fails at startup if the signer isn't the trusted sequencer
	RequireKeyMatchTrustedSequencer bool `mapstructure:"RequireKeyMatchTrustedSequencer"`
	// VerifyL1InfoTreeInclusion checks the leaf against the L1 info tree root before proving
	VerifyL1InfoTreeInclusion bool `mapstructure:"VerifyL1InfoTreeInclusion"`
	// RequireFinalizedL2Block rejects ranges ending after the finalized L2 block
	RequireFinalizedL2Block bool `mapstructure:"RequireFinalizedL2Block"`
	// MaxConcurrentRequests is the number of proofs built at the same time
	MaxConcurrentRequests int64 `mapstructure:"MaxConcurrentRequests"`
	// ProverTimeout bounds a call to the proving cluster
	ProverTimeout types.Duration `mapstructure:"ProverTimeout"`
	// ChainDataRetry configures the retries of L1 and L2 reads
	ChainDataRetry aggkitcommon.RetryConfig `mapstructure:"ChainDataRetry"`
}

// DefaultConfig returns the configuration used when no value is provided
func DefaultConfig() Config {
	return Config{
		L1RPCEndpoint:             "http://127.0.0.1:8545",
		OpNodeURL:                 "http://127.0.0.1:9545",
		SP1ClusterEndpoint:        "http://127.0.0.1:5432",
		TrustedSequencerKey:       signertypes.SignerConfig{Method: signertypes.MethodNone},
		VerifyL1InfoTreeInclusion: true,
		RequireFinalizedL2Block:   true,
		MaxConcurrentRequests:     10,
		ProverTimeout:             types.NewDuration(time.Hour),
		ChainDataRetry: aggkitcommon.RetryConfig{
			MaxRetries:     3,
			InitialBackoff: types.NewDuration(time.Second),
		},
	}
}

// Validate checks the configuration is usable
func (c Config) Validate() error {
	for name, endpoint := range map[string]string{
		"L1RPCEndpoint":      c.L1RPCEndpoint,
		"OpNodeURL":          c.OpNodeURL,
		"SP1ClusterEndpoint": c.SP1ClusterEndpoint,
	} {
		if _, err := url.ParseRequestURI(endpoint); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, endpoint, err)
		}
	}
	if c.AggchainFEPAddr == (common.Address{}) {
		return errors.New("AggchainFEPAddr is required")
	}
	if c.RequireKeyMatchTrustedSequencer && !c.signerEnabled() {
		return errors.New("RequireKeyMatchTrustedSequencer needs a TrustedSequencerKey")
	}
	return nil
}

func (c Config) signerEnabled() bool {
	return c.TrustedSequencerKey.Method != "" && c.TrustedSequencerKey.Method != signertypes.MethodNone
}
