package proposer

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// ProofModeCompressed is the only aggregation proof mode accepted downstream
	ProofModeCompressed = "compressed"
)

// FulfillmentStatus is the state of a proof request in the SP1 cluster
type FulfillmentStatus string

const (
	StatusRequested     FulfillmentStatus = "requested"
	StatusAssigned      FulfillmentStatus = "assigned"
	StatusFulfilled     FulfillmentStatus = "fulfilled"
	StatusUnfulfillable FulfillmentStatus = "unfulfillable"
)

// Request asks for an aggregated span proof of the blocks after StartBlock, up to MaxBlock
type Request struct {
	StartBlock    uint64
	MaxBlock      uint64
	L1BlockNumber uint64
}

func (r *Request) String() string {
	return fmt.Sprintf("proposer.Request{start: %d, maxBlock: %d, l1Block: %d}",
		r.StartBlock, r.MaxBlock, r.L1BlockNumber)
}

// Response is the aggregated span proof and the range it actually covers
type Response struct {
	AggSpanProof []byte
	StartBlock   uint64
	EndBlock     uint64
}

// AggProofRequest is the body of POST /request_agg_proof
type AggProofRequest struct {
	Start         uint64      `json:"start"`
	End           uint64      `json:"end"`
	L1BlockNumber uint64      `json:"l1_block_number"`
	L1BlockHash   common.Hash `json:"l1_block_hash"`
}

// AggProofResponse is the answer of POST /request_agg_proof
type AggProofResponse struct {
	ProofID    string `json:"proof_id"`
	StartBlock uint64 `json:"start_block"`
	EndBlock   uint64 `json:"end_block"`
}

// ProofStatus is the answer of GET /status/{proof_id}
type ProofStatus struct {
	Status    FulfillmentStatus `json:"status"`
	Proof     *hexutil.Bytes    `json:"proof,omitempty"`
	ProofMode string            `json:"proof_mode,omitempty"`
	VKeyHash  common.Hash       `json:"vkey_hash"`
}
