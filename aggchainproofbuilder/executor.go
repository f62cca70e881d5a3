package aggchainproofbuilder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/agglayer/aggkit-prover/fep"
	"github.com/agglayer/aggkit-prover/log"
	"github.com/agglayer/aggkit-prover/types"
	signertypes "github.com/agglayer/go_signer/signer/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	optimisticExecutorName = "optimistic"
	networkExecutorName    = "network"

	proveAggchainMethod = "sp1_proveAggchainFep"
)

var jSONRPCCall = rpc.JSONRPCCallWithContext

// ProverExecutor produces the proof of a set of public values
type ProverExecutor interface {
	Execute(ctx context.Context, req *ExecutorRequest) (*ExecutorResponse, error)
}

var (
	_ ProverExecutor = (*OptimisticExecutor)(nil)
	_ ProverExecutor = (*NetworkExecutor)(nil)
)

// OptimisticExecutor signs the public values with the trusted sequencer key
type OptimisticExecutor struct {
	signer signertypes.HashSigner
	logger *log.Logger
}

// NewOptimisticExecutor creates an executor signing with signer. A nil signer
// makes every optimistic request fail with ErrNoSigner.
func NewOptimisticExecutor(signer signertypes.HashSigner, logger *log.Logger) *OptimisticExecutor {
	return &OptimisticExecutor{
		signer: signer,
		logger: logger,
	}
}

// Execute signs Hash() and checks that the signature recovers to the trusted sequencer
func (e *OptimisticExecutor) Execute(ctx context.Context, req *ExecutorRequest) (*ExecutorResponse, error) {
	if e.signer == nil {
		return nil, &ProverExecutorError{Executor: optimisticExecutorName, Err: ErrNoSigner}
	}
	publicValues := req.PublicValues
	hash := publicValues.Hash()
	signature, err := e.signer.SignHash(ctx, hash)
	if err != nil {
		return nil, &ProverExecutorError{
			Executor: optimisticExecutorName,
			Err:      fmt.Errorf("signing public values hash %s: %w", hash.Hex(), err),
		}
	}
	publicValues.Mode = fep.OptimisticMode(signature)
	if err := publicValues.Verify(nil); err != nil {
		return nil, &ProverExecutorError{
			Executor: optimisticExecutorName,
			Err:      fmt.Errorf("signature over %s rejected: %w", hash.Hex(), err),
		}
	}
	e.logger.Infof("public values %s signed for trusted sequencer %s", hash.Hex(), publicValues.TrustedSequencer.Hex())
	return &ExecutorResponse{PublicValues: publicValues}, nil
}

// NetworkExecutor asks the SP1 proving cluster for a stark proof
type NetworkExecutor struct {
	url     string
	timeout time.Duration
	logger  *log.Logger
}

// NewNetworkExecutor creates an executor submitting witnesses to url.
// Every call is bounded by timeout, zero leaves only the caller deadline.
func NewNetworkExecutor(url string, timeout time.Duration, logger *log.Logger) *NetworkExecutor {
	return &NetworkExecutor{
		url:     url,
		timeout: timeout,
		logger:  logger,
	}
}

type proveAggchainParams struct {
	PublicValues          fep.FepPublicValues             `json:"public_values"`
	AggSpanProof          hexutil.Bytes                   `json:"agg_span_proof"`
	L1InfoTreeRootHash    common.Hash                     `json:"l1_info_tree_root_hash"`
	L1InfoTreeLeaf        types.L1InfoTreeLeaf            `json:"l1_info_tree_leaf"`
	L1InfoTreeMerkleProof types.MerkleProof               `json:"l1_info_tree_merkle_proof"`
	GERInclusionProofs    map[string]types.InclusionProof `json:"ger_inclusion_proofs"`
}

type proveAggchainResult struct {
	Version string        `json:"version"`
	Proof   hexutil.Bytes `json:"proof"`
	Vkey    hexutil.Bytes `json:"vkey"`
}

// Execute submits the witness and waits for the stark proof
func (e *NetworkExecutor) Execute(ctx context.Context, req *ExecutorRequest) (*ExecutorResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ProverExecutorError{Executor: networkExecutorName, Err: err}
	}
	params := proveAggchainParams{
		PublicValues:          req.PublicValues,
		AggSpanProof:          req.AggSpanProof,
		L1InfoTreeRootHash:    req.L1InfoTreeRootHash,
		L1InfoTreeLeaf:        req.L1InfoTreeLeaf,
		L1InfoTreeMerkleProof: req.L1InfoTreeMerkleProof,
		GERInclusionProofs:    req.GERInclusionProofs,
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	response, err := jSONRPCCall(ctx, e.url, proveAggchainMethod, params)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, &ProverExecutorError{
			Executor: networkExecutorName,
			Err:      fmt.Errorf("calling %s: %w", proveAggchainMethod, ctxErr),
		}
	}
	if err != nil {
		return nil, &ProverExecutorError{
			Executor: networkExecutorName,
			Err:      fmt.Errorf("calling %s: %w", proveAggchainMethod, err),
		}
	}
	if response.Error != nil {
		return nil, &ProverServiceError{
			Code:    response.Error.Code,
			Message: response.Error.Message,
		}
	}
	var proof proveAggchainResult
	if err := json.Unmarshal(response.Result, &proof); err != nil {
		return nil, &ProverExecutorError{
			Executor: networkExecutorName,
			Err:      fmt.Errorf("decoding %s result: %w", proveAggchainMethod, err),
		}
	}
	if len(proof.Proof) == 0 {
		return nil, &ProverExecutorError{Executor: networkExecutorName, Err: errors.New("empty stark proof")}
	}
	e.logger.Infof("stark proof received for public values %s (sp1 %s)", req.PublicValues.Hash().Hex(), proof.Version)
	return &ExecutorResponse{
		PublicValues: req.PublicValues,
		SP1StarkProof: &SP1StarkProof{
			Version: proof.Version,
			Proof:   proof.Proof,
			Vkey:    proof.Vkey,
		},
	}, nil
}
