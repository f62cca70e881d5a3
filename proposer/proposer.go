package proposer

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/agglayer/aggkit-prover/log"
	"github.com/agglayer/aggkit-prover/stage"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// L1HeaderGetter resolves L1 block headers
type L1HeaderGetter interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

// Service requests aggregated span proofs from the proposer and waits until
// the SP1 cluster fulfills them.
type Service struct {
	cfg       Config
	logger    *log.Logger
	l1Client  L1HeaderGetter
	requester AggProofRequester
	status    ProofStatusGetter
}

var _ stage.Stage[*Request, *Response] = (*Service)(nil)

// New creates the proposer stage dialing the L1 node and the REST endpoints of cfg
func New(ctx context.Context, cfg Config, logger *log.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("proposer config: %w", err)
	}
	l1Client, err := ethclient.DialContext(ctx, cfg.L1RPCEndpoint)
	if err != nil {
		return nil, fmt.Errorf("dialing L1 RPC %s: %w", cfg.L1RPCEndpoint, err)
	}
	requester, err := NewRESTClient(cfg.ProposerEndpoint, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("proposer client: %w", err)
	}
	status, err := NewRESTClient(cfg.SP1ClusterEndpoint, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sp1 cluster client: %w", err)
	}
	return NewService(cfg, logger, l1Client, requester, status), nil
}

// NewService creates the proposer stage from already built clients
func NewService(cfg Config, logger *log.Logger,
	l1Client L1HeaderGetter, requester AggProofRequester, status ProofStatusGetter) *Service {
	if cfg.AggregationVKeyHash == (common.Hash{}) {
		logger.Warn("AggregationVKeyHash is not set, the aggregation vkey of the proofs is not checked")
	}
	return &Service{
		cfg:       cfg,
		logger:    logger,
		l1Client:  l1Client,
		requester: requester,
		status:    status,
	}
}

// Ready reports whether a new request can be accepted
func (s *Service) Ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("proposer: %w: %w", stage.ErrNotReady, err)
	}
	return nil
}

// Invoke requests an aggregated span proof for req and waits for it
func (s *Service) Invoke(ctx context.Context, req *Request) (*Response, error) {
	if req.MaxBlock <= req.StartBlock {
		return nil, fmt.Errorf("%w: max block %d must be greater than start block %d",
			ErrInvalidBlockRange, req.MaxBlock, req.StartBlock)
	}

	l1BlockHash, err := s.l1BlockHash(ctx, req.L1BlockNumber)
	if err != nil {
		return nil, err
	}

	requested, err := s.requester.RequestAggProof(ctx, &AggProofRequest{
		Start:         req.StartBlock,
		End:           req.MaxBlock,
		L1BlockNumber: req.L1BlockNumber,
		L1BlockHash:   l1BlockHash,
	})
	if err != nil {
		return nil, err
	}
	if requested.EndBlock <= requested.StartBlock || requested.EndBlock > req.MaxBlock {
		return nil, fmt.Errorf("%w: proposer answered [%d, %d] for a request up to %d",
			ErrInvalidBlockRange, requested.StartBlock, requested.EndBlock, req.MaxBlock)
	}
	s.logger.Infof("aggregation proof %s requested for blocks [%d, %d]",
		requested.ProofID, requested.StartBlock, requested.EndBlock)

	status, err := s.waitForProof(ctx, requested.ProofID)
	if err != nil {
		return nil, err
	}
	if err := s.checkProof(status); err != nil {
		return nil, err
	}
	s.logger.Infof("aggregation proof %s fulfilled for blocks [%d, %d]",
		requested.ProofID, requested.StartBlock, requested.EndBlock)

	return &Response{
		AggSpanProof: *status.Proof,
		StartBlock:   requested.StartBlock,
		EndBlock:     requested.EndBlock,
	}, nil
}

func (s *Service) l1BlockHash(ctx context.Context, blockNumber uint64) (common.Hash, error) {
	var header *types.Header
	err := s.cfg.L1Retry.Retry(ctx, func() error {
		var err error
		header, err = s.l1Client.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
		return err
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: header of block %d: %w", ErrL1Provider, blockNumber, err)
	}
	if header == nil {
		return common.Hash{}, fmt.Errorf("%w: block %d not found", ErrL1Provider, blockNumber)
	}
	return header.Hash(), nil
}

func (s *Service) waitForProof(parent context.Context, proofID string) (*ProofStatus, error) {
	ctx, cancel := context.WithTimeout(parent, s.cfg.ProvingTimeout.Duration)
	defer cancel()

	ticker := time.NewTicker(s.cfg.PollInterval.Duration)
	defer ticker.Stop()

	for {
		status, err := s.status.GetProofStatus(ctx, proofID)
		switch {
		case ctx.Err() != nil:
			return nil, s.waitError(parent, proofID)
		case err != nil:
			return nil, err
		case status.Status == StatusFulfilled:
			return status, nil
		case status.Status == StatusUnfulfillable:
			return nil, &ClientError{Op: "get_proof_status", Err: fmt.Errorf("%w: %s", ErrProofUnfulfillable, proofID)}
		}
		s.logger.Debugf("aggregation proof %s status: %s", proofID, status.Status)

		select {
		case <-ctx.Done():
			return nil, s.waitError(parent, proofID)
		case <-ticker.C:
		}
	}
}

func (s *Service) waitError(parent context.Context, proofID string) error {
	if err := parent.Err(); err != nil {
		return fmt.Errorf("waiting for aggregation proof %s: %w", proofID, err)
	}
	return fmt.Errorf("%w: aggregation proof %s not fulfilled after %s",
		ErrProvingTimeout, proofID, s.cfg.ProvingTimeout.Duration)
}

func (s *Service) checkProof(status *ProofStatus) error {
	if status.ProofMode != ProofModeCompressed {
		return &UnsupportedAggregationProofModeError{Mode: status.ProofMode}
	}
	if s.cfg.AggregationVKeyHash != (common.Hash{}) && status.VKeyHash != s.cfg.AggregationVKeyHash {
		return &AggregationVKeyMismatchError{Got: status.VKeyHash, Expected: s.cfg.AggregationVKeyHash}
	}
	if status.Proof == nil || len(*status.Proof) == 0 {
		return &ClientError{Op: "get_proof_status", Err: fmt.Errorf("fulfilled proof without proof bytes")}
	}
	return nil
}
