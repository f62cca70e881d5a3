package aggchainproofservice

import (
	"context"
	"fmt"
	"time"

	"github.com/agglayer/aggkit-prover/aggchainproofbuilder"
	"github.com/agglayer/aggkit-prover/common"
	"github.com/agglayer/aggkit-prover/log"
	"github.com/agglayer/aggkit-prover/proposer"
	"github.com/agglayer/aggkit-prover/stage"
)

// ProposerStage is the stage producing aggregated span proofs
type ProposerStage = stage.Stage[*proposer.Request, *proposer.Response]

// BuilderStage is the stage turning aggregated span proofs into aggchain proofs
type BuilderStage = stage.Stage[*aggchainproofbuilder.Request, *aggchainproofbuilder.Response]

// Service sequences the proposer and the builder to answer aggchain proof requests.
// A request goes through the proposer first; the builder only runs on its success.
type Service struct {
	proposer ProposerStage
	builder  BuilderStage
	logger   *log.Logger
}

// New creates the service from both stages
func New(proposerStage ProposerStage, builderStage BuilderStage, logger *log.Logger) *Service {
	return &Service{
		proposer: proposerStage,
		builder:  builderStage,
		logger:   logger,
	}
}

// NewFromConfig builds both stages from cfg, each one limited to its MaxConcurrentRequests
func NewFromConfig(ctx context.Context, cfg Config, logger *log.Logger) (*Service, error) {
	proposerService, err := proposer.New(ctx, cfg.Proposer, logger.WithFields("stage", common.PROPOSER))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProposerConstruction, err)
	}
	builder, err := aggchainproofbuilder.New(ctx, cfg.AggchainProofBuilder,
		logger.WithFields("stage", common.AGGCHAINPROOFBUILDER))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuilderConstruction, err)
	}
	return New(
		stage.NewLimited(common.PROPOSER, ProposerStage(proposerService), cfg.Proposer.MaxConcurrentRequests),
		stage.NewLimited(common.AGGCHAINPROOFBUILDER, BuilderStage(builder),
			cfg.AggchainProofBuilder.MaxConcurrentRequests),
		logger,
	), nil
}

// Ready returns nil when both stages can take a request. The proposer is asked first
// and the builder is not consulted when the proposer is not ready.
func (s *Service) Ready(ctx context.Context) error {
	if err := s.proposer.Ready(ctx); err != nil {
		return &Error{Stage: StageProposer, Err: err}
	}
	if err := s.builder.Ready(ctx); err != nil {
		return &Error{Stage: StageBuilder, Err: err}
	}
	return nil
}

// Call runs the proposer and then the builder for req. There are no retries,
// a failed stage is reported as *Error and ends the call.
func (s *Service) Call(ctx context.Context, req *Request) (*Response, error) {
	started := time.Now()
	requestStarted()

	proposerResp, err := s.proposer.Invoke(ctx, &proposer.Request{
		StartBlock:    req.StartBlock,
		MaxBlock:      req.MaxBlock,
		L1BlockNumber: req.MaxBlock,
	})
	if err != nil {
		requestDone(outcomeProposer, started)
		s.logger.Errorf("proposer failed for %s: %v", req.String(), err)
		return nil, &Error{Stage: StageProposer, Err: err}
	}
	s.logger.Debugf("aggregation proof ready for blocks [%d, %d]", proposerResp.StartBlock, proposerResp.EndBlock)

	builderResp, err := s.builder.Invoke(ctx, &aggchainproofbuilder.Request{
		AggSpanProof:          proposerResp.AggSpanProof,
		StartBlock:            proposerResp.StartBlock,
		EndBlock:              proposerResp.EndBlock,
		L1InfoTreeRootHash:    req.L1InfoTreeRootHash,
		L1InfoTreeLeaf:        req.L1InfoTreeLeaf,
		L1InfoTreeMerkleProof: req.L1InfoTreeMerkleProof,
		GERInclusionProofs:    req.GERInclusionProofs,
	})
	if err != nil {
		requestDone(outcomeBuilder, started)
		s.logger.Errorf("aggchain proof builder failed for blocks [%d, %d]: %v",
			proposerResp.StartBlock, proposerResp.EndBlock, err)
		return nil, &Error{Stage: StageBuilder, Err: err}
	}

	requestDone(outcomeSuccess, started)
	s.logger.Infof("aggchain proof generated for blocks [%d, %d] in %s",
		builderResp.StartBlock, builderResp.EndBlock, time.Since(started))
	return &Response{
		Proof:      builderResp.Proof,
		StartBlock: builderResp.StartBlock,
		EndBlock:   builderResp.EndBlock,
	}, nil
}
