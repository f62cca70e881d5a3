package aggchainproofbuilder

import (
	"context"
	"fmt"

	aggkitcommon "github.com/agglayer/aggkit-prover/common"
	"github.com/agglayer/aggkit-prover/log"
	"github.com/agglayer/aggkit-prover/opnode"
)

// OpNodeClienter is the op-node API used by the builder
type OpNodeClienter interface {
	OutputAtBlock(blockNum uint64) (*opnode.Output, error)
	FinalizedL2Block() (*opnode.BlockInfo, error)
}

// L2ChainDataQuerier returns the L2 data of the public values
type L2ChainDataQuerier interface {
	GetL2ChainData(ctx context.Context, startBlock, endBlock uint64) (*L2ChainData, error)
}

var (
	_ OpNodeClienter     = (*opnode.OpNodeClient)(nil)
	_ L2ChainDataQuerier = (*L2ChainDataQuery)(nil)
)

// L2ChainDataQuery reads the L2 outputs from the op-node
type L2ChainDataQuery struct {
	opNode           OpNodeClienter
	requireFinalized bool
	retry            aggkitcommon.RetryConfig
	logger           *log.Logger
}

// NewL2ChainDataQuery creates an L2 querier over opNode
func NewL2ChainDataQuery(opNode OpNodeClienter, requireFinalized bool,
	retry aggkitcommon.RetryConfig, logger *log.Logger) *L2ChainDataQuery {
	return &L2ChainDataQuery{
		opNode:           opNode,
		requireFinalized: requireFinalized,
		retry:            retry,
		logger:           logger,
	}
}

// GetL2ChainData returns the outputs at startBlock (previous state) and endBlock (new state)
func (q *L2ChainDataQuery) GetL2ChainData(ctx context.Context, startBlock, endBlock uint64) (*L2ChainData, error) {
	if q.requireFinalized {
		if err := q.checkFinalized(ctx, endBlock); err != nil {
			return nil, err
		}
	}
	prev, err := q.output(ctx, startBlock)
	if err != nil {
		return nil, err
	}
	next, err := q.output(ctx, endBlock)
	if err != nil {
		return nil, err
	}
	return &L2ChainData{Prev: *prev, New: *next}, nil
}

func (q *L2ChainDataQuery) checkFinalized(ctx context.Context, endBlock uint64) error {
	var finalized *opnode.BlockInfo
	err := q.retry.Retry(ctx, func() (err error) {
		finalized, err = q.opNode.FinalizedL2Block()
		return err
	})
	if err != nil {
		return &L2ChainDataRetrievalError{BlockNumber: endBlock, Err: err}
	}
	if finalized.Number < endBlock {
		return &L2ChainDataRetrievalError{
			BlockNumber: endBlock,
			Err:         fmt.Errorf("%w: finalized block is %d", ErrL2BlockNotFinalized, finalized.Number),
		}
	}
	return nil
}

func (q *L2ChainDataQuery) output(ctx context.Context, blockNum uint64) (*L2Output, error) {
	var output *opnode.Output
	err := q.retry.Retry(ctx, func() (err error) {
		output, err = q.opNode.OutputAtBlock(blockNum)
		return err
	})
	if err != nil {
		return nil, &L2ChainDataRetrievalError{BlockNumber: blockNum, Err: err}
	}
	if output.BlockRef.Number != blockNum {
		return nil, &L2ChainDataRetrievalError{
			BlockNumber: blockNum,
			Err:         fmt.Errorf("op-node answered the output of block %d", output.BlockRef.Number),
		}
	}
	l2Output := L2Output{
		StateRoot:             output.StateRoot,
		WithdrawalStorageRoot: output.WithdrawalStorageRoot,
		BlockHash:             output.BlockRef.Hash,
	}
	if computed := l2Output.OutputRoot(); computed != output.OutputRoot {
		return nil, &L2ChainDataRetrievalError{
			BlockNumber: blockNum,
			Err: fmt.Errorf("%w: op-node reports %s, preimage hashes to %s",
				ErrOutputRootMismatch, output.OutputRoot.Hex(), computed.Hex()),
		}
	}
	q.logger.Debugf("l2 output at block %d: %s", blockNum, output.OutputRoot.Hex())
	return &l2Output, nil
}
