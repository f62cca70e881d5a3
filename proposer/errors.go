package proposer

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrL1Provider is returned when the L1 node can't resolve the requested block
	ErrL1Provider = errors.New("l1 provider error")
	// ErrProvingTimeout is returned when the proof is not fulfilled within the proving timeout
	ErrProvingTimeout = errors.New("proving timeout")
	// ErrProofUnfulfillable is returned when the prover network gives up on a proof request
	ErrProofUnfulfillable = errors.New("proof request is unfulfillable")
	// ErrInvalidBlockRange is returned for empty or inconsistent block ranges
	ErrInvalidBlockRange = errors.New("invalid block range")
)

// ClientError is a failure talking to the proposer or the SP1 cluster
type ClientError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *ClientError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("proposer client: %s: http status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("proposer client: %s: %v", e.Op, e.Err)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// UnsupportedAggregationProofModeError is returned for aggregation proofs not in compressed mode
type UnsupportedAggregationProofModeError struct {
	Mode string
}

func (e *UnsupportedAggregationProofModeError) Error() string {
	return fmt.Sprintf("unsupported aggregation proof mode %q, expected %q", e.Mode, ProofModeCompressed)
}

// AggregationVKeyMismatchError is returned when the proof was generated with an unexpected program
type AggregationVKeyMismatchError struct {
	Got      common.Hash
	Expected common.Hash
}

func (e *AggregationVKeyMismatchError) Error() string {
	return fmt.Sprintf("aggregation vkey mismatch: got %s, expected %s", e.Got.Hex(), e.Expected.Hex())
}
