package rpc

import (
	"context"

	"github.com/agglayer/aggkit-prover/aggchainproofservice"
)

type AggchainProofServicer interface {
	Ready(ctx context.Context) error
	Call(ctx context.Context, req *aggchainproofservice.Request) (*aggchainproofservice.Response, error)
}

type SendTxLimiter interface {
	SendTx(networkID uint32) error
}
