package aggchainproofbuilder

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest is returned for requests that can't be proven as given
	ErrInvalidRequest = errors.New("invalid builder request")
	// ErrOutputRootMismatch is returned when the op-node output root doesn't match its preimage
	ErrOutputRootMismatch = errors.New("output root mismatch")
	// ErrL2BlockNotFinalized is returned when the range ends after the finalized L2 block
	ErrL2BlockNotFinalized = errors.New("l2 block not finalized")
	// ErrNoSigner is returned for optimistic requests when no signer is configured
	ErrNoSigner = errors.New("no optimistic signer configured")
)

// L1ChainDataRetrievalError is a failure reading the AggchainFEP contract
type L1ChainDataRetrievalError struct {
	Field string
	Err   error
}

func (e *L1ChainDataRetrievalError) Error() string {
	return fmt.Sprintf("l1 chain data retrieval (%s): %v", e.Field, e.Err)
}

func (e *L1ChainDataRetrievalError) Unwrap() error {
	return e.Err
}

// L2ChainDataRetrievalError is a failure reading the L2 outputs
type L2ChainDataRetrievalError struct {
	BlockNumber uint64
	Err         error
}

func (e *L2ChainDataRetrievalError) Error() string {
	return fmt.Sprintf("l2 chain data retrieval (block %d): %v", e.BlockNumber, e.Err)
}

func (e *L2ChainDataRetrievalError) Unwrap() error {
	return e.Err
}

// ProverExecutorError is a failure of the executor producing the proof
type ProverExecutorError struct {
	Executor string
	Err      error
}

func (e *ProverExecutorError) Error() string {
	return fmt.Sprintf("prover executor %s: %v", e.Executor, e.Err)
}

func (e *ProverExecutorError) Unwrap() error {
	return e.Err
}

// ProverServiceError is an error reported by the proving cluster itself
type ProverServiceError struct {
	Code    int
	Message string
}

func (e *ProverServiceError) Error() string {
	return fmt.Sprintf("prover service error %d: %s", e.Code, e.Message)
}
