package aggchainproofbuilder

import (
	"context"
	"encoding/json"
	"fmt"

	aggkitcommon "github.com/agglayer/aggkit-prover/common"
	"github.com/agglayer/aggkit-prover/fep"
	"github.com/agglayer/aggkit-prover/log"
	"github.com/agglayer/aggkit-prover/opnode"
	"github.com/agglayer/aggkit-prover/stage"
	"github.com/agglayer/go_signer/signer"
	signertypes "github.com/agglayer/go_signer/signer/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Builder turns an aggregated span proof into an aggchain proof
type Builder struct {
	cfg        Config
	logger     *log.Logger
	l1Data     L1ChainDataQuerier
	l2Data     L2ChainDataQuerier
	optimistic ProverExecutor
	network    ProverExecutor
}

var _ stage.Stage[*Request, *Response] = (*Builder)(nil)

// New creates the builder stage dialing the L1 node, the op-node and the proving cluster of cfg
func New(ctx context.Context, cfg Config, logger *log.Logger) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("aggchain proof builder config: %w", err)
	}
	l1Client, err := ethclient.DialContext(ctx, cfg.L1RPCEndpoint)
	if err != nil {
		return nil, fmt.Errorf("dialing L1 RPC %s: %w", cfg.L1RPCEndpoint, err)
	}
	l1Data, err := NewL1ChainDataQuery(cfg.AggchainFEPAddr, l1Client, cfg.ChainDataRetry)
	if err != nil {
		return nil, err
	}
	l2Data := NewL2ChainDataQuery(opnode.NewOpNodeClient(cfg.OpNodeURL),
		cfg.RequireFinalizedL2Block, cfg.ChainDataRetry, logger)

	hashSigner, err := newSigner(ctx, cfg, logger, l1Data)
	if err != nil {
		return nil, err
	}

	return NewBuilder(cfg, logger, l1Data, l2Data,
		NewOptimisticExecutor(hashSigner, logger),
		NewNetworkExecutor(cfg.SP1ClusterEndpoint, cfg.ProverTimeout.Duration, logger),
	), nil
}

func newSigner(ctx context.Context, cfg Config, logger *log.Logger,
	l1Data L1ChainDataQuerier) (signertypes.HashSigner, error) {
	if !cfg.signerEnabled() {
		logger.Warn("no TrustedSequencerKey configured, optimistic mode requests will fail")
		return nil, nil
	}
	s, err := signer.NewSigner(ctx, 0, cfg.TrustedSequencerKey, aggkitcommon.AGGCHAINPROOFBUILDER, logger)
	if err != nil {
		return nil, fmt.Errorf("creating trusted sequencer signer: %w", err)
	}
	if err := s.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("initializing trusted sequencer signer: %w", err)
	}
	logger.Infof("optimistic signer address: %s", s.PublicAddress().Hex())

	if cfg.RequireKeyMatchTrustedSequencer {
		data, err := l1Data.GetL1ChainData(ctx)
		if err != nil {
			return nil, err
		}
		if data.TrustedSequencer != s.PublicAddress() {
			return nil, fmt.Errorf("signer %s is not the trusted sequencer %s",
				s.PublicAddress().Hex(), data.TrustedSequencer.Hex())
		}
	}
	return s, nil
}

// NewBuilder creates the builder stage from already built dependencies
func NewBuilder(cfg Config, logger *log.Logger,
	l1Data L1ChainDataQuerier, l2Data L2ChainDataQuerier,
	optimistic, network ProverExecutor) *Builder {
	return &Builder{
		cfg:        cfg,
		logger:     logger,
		l1Data:     l1Data,
		l2Data:     l2Data,
		optimistic: optimistic,
		network:    network,
	}
}

// Ready reports whether a new request can be accepted
func (b *Builder) Ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("aggchain proof builder: %w: %w", stage.ErrNotReady, err)
	}
	return nil
}

// Invoke gathers the chain data of the range, computes the public values and proves them
func (b *Builder) Invoke(ctx context.Context, req *Request) (*Response, error) {
	claimBlockNum, err := b.checkRequest(req)
	if err != nil {
		return nil, err
	}

	l1Data, err := b.l1Data.GetL1ChainData(ctx)
	if err != nil {
		return nil, err
	}
	l2Data, err := b.l2Data.GetL2ChainData(ctx, req.StartBlock, req.EndBlock)
	if err != nil {
		return nil, err
	}

	publicValues := fep.FepPublicValues{
		L1Head:                    req.L1InfoTreeLeaf.Inner.BlockHash,
		ClaimBlockNum:             claimBlockNum,
		RollupConfigHash:          l1Data.RollupConfigHash,
		PrevStateRoot:             l2Data.Prev.StateRoot,
		PrevWithdrawalStorageRoot: l2Data.Prev.WithdrawalStorageRoot,
		PrevBlockHash:             l2Data.Prev.BlockHash,
		NewStateRoot:              l2Data.New.StateRoot,
		NewWithdrawalStorageRoot:  l2Data.New.WithdrawalStorageRoot,
		NewBlockHash:              l2Data.New.BlockHash,
		TrustedSequencer:          l1Data.TrustedSequencer,
		Mode:                      fep.SuccinctMode(),
	}
	b.logger.Debugf("public values for blocks [%d, %d]: %s", req.StartBlock, req.EndBlock, publicValues.String())

	executor := b.network
	if l1Data.OptimisticMode {
		executor = b.optimistic
	}
	result, err := executor.Execute(ctx, &ExecutorRequest{
		PublicValues:          publicValues,
		AggSpanProof:          req.AggSpanProof,
		L1InfoTreeRootHash:    req.L1InfoTreeRootHash,
		L1InfoTreeLeaf:        req.L1InfoTreeLeaf,
		L1InfoTreeMerkleProof: req.L1InfoTreeMerkleProof,
		GERInclusionProofs:    req.GERInclusionProofs,
	})
	if err != nil {
		return nil, err
	}

	proof, err := newAggchainProof(result)
	if err != nil {
		return nil, err
	}
	b.logger.Infof("aggchain proof built for blocks [%d, %d], mode: %s, aggchainParams: %s",
		req.StartBlock, req.EndBlock, result.PublicValues.Mode.Kind, proof.AggchainParams.Hex())

	return &Response{
		Proof:      *proof,
		StartBlock: req.StartBlock,
		EndBlock:   req.EndBlock,
	}, nil
}

func (b *Builder) checkRequest(req *Request) (uint32, error) {
	if req.EndBlock <= req.StartBlock {
		return 0, fmt.Errorf("%w: end block %d must be greater than start block %d",
			ErrInvalidRequest, req.EndBlock, req.StartBlock)
	}
	claimBlockNum, err := aggkitcommon.SafeUint32(req.EndBlock)
	if err != nil {
		return 0, fmt.Errorf("%w: end block: %w", ErrInvalidRequest, err)
	}
	if b.cfg.VerifyL1InfoTreeInclusion {
		if err := req.L1InfoTreeLeaf.VerifyInclusion(req.L1InfoTreeMerkleProof, req.L1InfoTreeRootHash); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
	}
	return claimBlockNum, nil
}

func newAggchainProof(result *ExecutorResponse) (*AggchainProof, error) {
	encoded, err := json.Marshal(result.PublicValues)
	if err != nil {
		return nil, fmt.Errorf("encoding public values: %w", err)
	}
	proof := &AggchainProof{
		AggchainParams: result.PublicValues.AggchainParams(),
		Context:        map[string][]byte{PublicValuesContextKey: encoded},
		SP1StarkProof:  result.SP1StarkProof,
	}
	if result.PublicValues.Mode.Kind == fep.Optimistic {
		proof.Signature = result.PublicValues.Mode.Signature
	}
	return proof, nil
}
