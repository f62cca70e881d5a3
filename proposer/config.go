package proposer

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	aggkitcommon "github.com/agglayer/aggkit-prover/common"
	"github.com/agglayer/aggkit-prover/config/types"
	"github.com/ethereum/go-ethereum/common"
)

const (
	DefaultProposerEndpoint   = "http://127.0.0.1:3000"
	DefaultSP1ClusterEndpoint = "http://127.0.0.1:5432"
	DefaultProvingTimeout     = time.Hour
)

// Config is the configuration of the proposer stage
type Config struct {
	// ProposerEndpoint is the base URL of the proposer REST API
	ProposerEndpoint string `mapstructure:"ProposerEndpoint"`
	// SP1ClusterEndpoint is the base URL of the SP1 proving cluster, used to follow proof requests
	SP1ClusterEndpoint string `mapstructure:"SP1ClusterEndpoint"`
	// L1RPCEndpoint is the L1 JSON-RPC node used to resolve block hashes
	L1RPCEndpoint string `mapstructure:"L1RPCEndpoint"`
	// ProvingTimeout is the max time to wait for an aggregation proof to be fulfilled
	ProvingTimeout types.Duration `mapstructure:"ProvingTimeout"`
	// PollInterval is the time between two proof status queries
	PollInterval types.Duration `mapstructure:"PollInterval"`
	// RequestTimeout bounds every HTTP request to the proposer and the SP1 cluster
	RequestTimeout types.Duration `mapstructure:"RequestTimeout"`
	// HTTPRetries is the number of extra attempts on transport errors and 5xx answers
	HTTPRetries int `mapstructure:"HTTPRetries"`
	// AggregationVKeyHash is the expected verification key hash of the aggregation program.
	// The zero hash disables the check.
	AggregationVKeyHash common.Hash `mapstructure:"AggregationVKeyHash"`
	// MaxConcurrentRequests is the number of proof requests in flight at the same time
	MaxConcurrentRequests int64 `mapstructure:"MaxConcurrentRequests"`
	// L1Retry configures the retries of L1 header queries
	L1Retry aggkitcommon.RetryConfig `mapstructure:"L1Retry"`
}

// DefaultConfig returns the configuration used when no value is provided
func DefaultConfig() Config {
	return Config{
		ProposerEndpoint:      DefaultProposerEndpoint,
		SP1ClusterEndpoint:    DefaultSP1ClusterEndpoint,
		L1RPCEndpoint:         "http://127.0.0.1:8545",
		ProvingTimeout:        types.NewDuration(DefaultProvingTimeout),
		PollInterval:          types.NewDuration(5 * time.Second),
		RequestTimeout:        types.NewDuration(30 * time.Second),
		HTTPRetries:           3,
		MaxConcurrentRequests: 10,
		L1Retry: aggkitcommon.RetryConfig{
			MaxRetries:     3,
			InitialBackoff: types.NewDuration(time.Second),
		},
	}
}

// Validate checks the configuration is usable
func (c Config) Validate() error {
	for name, endpoint := range map[string]string{
		"ProposerEndpoint":   c.ProposerEndpoint,
		"SP1ClusterEndpoint": c.SP1ClusterEndpoint,
		"L1RPCEndpoint":      c.L1RPCEndpoint,
	} {
		if _, err := url.ParseRequestURI(endpoint); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, endpoint, err)
		}
	}
	if c.ProvingTimeout.Duration <= 0 {
		return errors.New("ProvingTimeout must be positive")
	}
	if c.PollInterval.Duration <= 0 {
		return errors.New("PollInterval must be positive")
	}
	if c.HTTPRetries < 0 {
		return errors.New("HTTPRetries can't be negative")
	}
	return nil
}
