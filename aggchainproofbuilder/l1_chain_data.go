package aggchainproofbuilder

import (
	"context"
	"fmt"
	"strings"

	"github.com/0xPolygon/cdk-contracts-tooling/contracts/pp/l2-sovereign-chain/aggchainfep"
	aggkitcommon "github.com/agglayer/aggkit-prover/common"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const trustedSequencerABI = `[{"inputs":[],"name":"trustedSequencer","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"}]`

// FEPContractQuerier are the AggchainFEP getters used by the builder
type FEPContractQuerier interface {
	RollupConfigHash(opts *bind.CallOpts) ([32]byte, error)
	OptimisticMode(opts *bind.CallOpts) (bool, error)
}

// TrustedSequencerQuerier reads the trusted sequencer of the aggchain
type TrustedSequencerQuerier interface {
	TrustedSequencer(opts *bind.CallOpts) (common.Address, error)
}

// L1ChainDataQuerier returns the L1 data of the public values
type L1ChainDataQuerier interface {
	GetL1ChainData(ctx context.Context) (*L1ChainData, error)
}

var (
	_ FEPContractQuerier      = (*aggchainfep.AggchainfepCaller)(nil)
	_ TrustedSequencerQuerier = (*trustedSequencerCaller)(nil)
	_ L1ChainDataQuerier      = (*L1ChainDataQuery)(nil)
)

// L1ChainDataQuery reads the AggchainFEP contract
type L1ChainDataQuery struct {
	contract         FEPContractQuerier
	trustedSequencer TrustedSequencerQuerier
	contractAddr     common.Address
	retry            aggkitcommon.RetryConfig
}

// NewL1ChainDataQuery binds the AggchainFEP contract at addr
func NewL1ChainDataQuery(addr common.Address, backend bind.ContractCaller,
	retry aggkitcommon.RetryConfig) (*L1ChainDataQuery, error) {
	contract, err := aggchainfep.NewAggchainfepCaller(addr, backend)
	if err != nil {
		return nil, fmt.Errorf("binding aggchainFEP contract %s: %w", addr, err)
	}
	parsed, err := abi.JSON(strings.NewReader(trustedSequencerABI))
	if err != nil {
		return nil, fmt.Errorf("parsing trustedSequencer ABI: %w", err)
	}
	return &L1ChainDataQuery{
		contract: contract,
		trustedSequencer: &trustedSequencerCaller{
			contract: bind.NewBoundContract(addr, parsed, backend, nil, nil),
		},
		contractAddr: addr,
		retry:        retry,
	}, nil
}

// NewL1ChainDataQueryFromQueriers is used when the contract getters are already built
func NewL1ChainDataQueryFromQueriers(contract FEPContractQuerier, trustedSequencer TrustedSequencerQuerier,
	contractAddr common.Address, retry aggkitcommon.RetryConfig) *L1ChainDataQuery {
	return &L1ChainDataQuery{
		contract:         contract,
		trustedSequencer: trustedSequencer,
		contractAddr:     contractAddr,
		retry:            retry,
	}
}

// GetL1ChainData reads the rollup config hash, the optimistic mode flag and the trusted sequencer
func (q *L1ChainDataQuery) GetL1ChainData(ctx context.Context) (*L1ChainData, error) {
	opts := &bind.CallOpts{Context: ctx}
	var data L1ChainData

	if err := q.read(ctx, "rollupConfigHash", func() (err error) {
		data.RollupConfigHash, err = q.contract.RollupConfigHash(opts)
		return err
	}); err != nil {
		return nil, err
	}
	if err := q.read(ctx, "optimisticMode", func() (err error) {
		data.OptimisticMode, err = q.contract.OptimisticMode(opts)
		return err
	}); err != nil {
		return nil, err
	}
	if err := q.read(ctx, "trustedSequencer", func() (err error) {
		data.TrustedSequencer, err = q.trustedSequencer.TrustedSequencer(opts)
		return err
	}); err != nil {
		return nil, err
	}
	return &data, nil
}

func (q *L1ChainDataQuery) read(ctx context.Context, field string, call func() error) error {
	if err := q.retry.Retry(ctx, call); err != nil {
		return &L1ChainDataRetrievalError{
			Field: field,
			Err:   fmt.Errorf("contract %s: %w", q.contractAddr, err),
		}
	}
	return nil
}

type trustedSequencerCaller struct {
	contract *bind.BoundContract
}

func (c *trustedSequencerCaller) TrustedSequencer(opts *bind.CallOpts) (common.Address, error) {
	var out []interface{}
	if err := c.contract.Call(opts, &out, "trustedSequencer"); err != nil {
		return common.Address{}, err
	}
	if len(out) != 1 {
		return common.Address{}, fmt.Errorf("trustedSequencer returned %d values", len(out))
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}
