package rpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/agglayer/aggkit-prover/aggchainproofbuilder"
	"github.com/agglayer/aggkit-prover/log"
	"github.com/agglayer/aggkit-prover/proposer"
	"github.com/agglayer/aggkit-prover/ratelimit"
	"github.com/agglayer/aggkit-prover/rpc/types"
	"github.com/agglayer/aggkit-prover/stage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	// AGGKITPROVER is the namespace of the prover service
	AGGKITPROVER = "aggkitprover"
	meterName    = "github.com/agglayer/aggkit-prover/rpc"

	// ResourceUnavailableErrorCode is returned while the proving pipeline is not ready
	ResourceUnavailableErrorCode = -32002
	// LimitExceededErrorCode is returned when the network exhausted its rate limit
	LimitExceededErrorCode = -32005
)

// ProverEndpoints contains implementations for the "aggkitprover" RPC endpoints
type ProverEndpoints struct {
	logger       *log.Logger
	meter        metric.Meter
	readTimeout  time.Duration
	writeTimeout time.Duration
	service      AggchainProofServicer
	limiter      SendTxLimiter
	// networkID is the network served by this prover
	networkID uint32
}

// NewProverEndpoints returns ProverEndpoints
func NewProverEndpoints(
	logger *log.Logger,
	writeTimeout time.Duration,
	readTimeout time.Duration,
	service AggchainProofServicer,
	limiter SendTxLimiter,
	networkID uint32,
) *ProverEndpoints {
	return &ProverEndpoints{
		logger:       logger,
		meter:        otel.Meter(meterName),
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
		service:      service,
		limiter:      limiter,
		networkID:    networkID,
	}
}

// GenerateAggchainProof proves the blocks after StartBlock, up to MaxEndBlock.
// A request without network id is accounted to the served network.
// Readiness is checked before the network rate limit, so a busy pipeline
// does not consume the network allowance.
func (p *ProverEndpoints) GenerateAggchainProof(req types.GenerateAggchainProofRequest) (interface{}, rpc.Error) {
	p.logger.Debugf("GenerateAggchainProof invoked (network id=%d, start=%d, max end=%d)",
		req.NetworkID, req.StartBlock, req.MaxEndBlock)

	ctx, cancel := p.contextWithTimeout(p.writeTimeout)
	defer cancel()
	p.count(ctx, "generate_aggchain_proof")

	if err := req.Validate(); err != nil {
		return nil, rpc.NewRPCError(rpc.InvalidRequestErrorCode, err.Error())
	}
	if req.NetworkID == 0 {
		req.NetworkID = p.networkID
	} else if req.NetworkID != p.networkID {
		return nil, rpc.NewRPCError(rpc.InvalidRequestErrorCode,
			fmt.Sprintf("this prover serves network %d, got a request for network %d", p.networkID, req.NetworkID))
	}

	if err := p.service.Ready(ctx); err != nil {
		p.logger.Warnf("aggchain proof service not ready: %v", err)
		return nil, rpc.NewRPCError(ResourceUnavailableErrorCode, fmt.Sprintf("service not ready: %s", err))
	}

	if err := p.limiter.SendTx(req.NetworkID); err != nil {
		p.count(ctx, "generate_aggchain_proof_rate_limited")
		if errors.Is(err, ratelimit.ErrRateLimited) {
			return nil, rpc.NewRPCError(LimitExceededErrorCode, err.Error())
		}
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("rate limiter failure: %s", err))
	}

	resp, err := p.service.Call(ctx, req.ServiceRequest())
	if err != nil {
		p.count(ctx, "generate_aggchain_proof_failed")
		return nil, toRPCError(err)
	}
	return types.NewGenerateAggchainProofResponse(resp), nil
}

// Status reports whether a proof request would be accepted now
func (p *ProverEndpoints) Status() (interface{}, rpc.Error) {
	ctx, cancel := p.contextWithTimeout(p.readTimeout)
	defer cancel()
	p.count(ctx, "status")

	if err := p.service.Ready(ctx); err != nil {
		return &types.StatusResponse{Ready: false, Reason: err.Error()}, nil
	}
	return &types.StatusResponse{Ready: true}, nil
}

func (p *ProverEndpoints) contextWithTimeout(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

func (p *ProverEndpoints) count(ctx context.Context, name string) {
	c, err := p.meter.Int64Counter(name)
	if err != nil {
		p.logger.Warnf("failed to create %s counter: %s", name, err)
		return
	}
	c.Add(ctx, 1)
}

func toRPCError(err error) rpc.Error {
	switch {
	case errors.Is(err, proposer.ErrInvalidBlockRange),
		errors.Is(err, aggchainproofbuilder.ErrInvalidRequest):
		return rpc.NewRPCError(rpc.InvalidRequestErrorCode, err.Error())
	case errors.Is(err, stage.ErrNotReady):
		return rpc.NewRPCError(ResourceUnavailableErrorCode, err.Error())
	default:
		return rpc.NewRPCError(rpc.DefaultErrorCode, err.Error())
	}
}
