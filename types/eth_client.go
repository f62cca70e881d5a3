package types

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// L1Client is the subset of an L1 RPC client used by the prover: header
// lookups and read-only contract calls.
type L1Client interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	bind.ContractCaller
}

var _ L1Client = (*ethclient.Client)(nil)
