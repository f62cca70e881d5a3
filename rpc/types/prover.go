package types

import (
	"encoding/base64"
	"fmt"

	"github.com/agglayer/aggkit-prover/aggchainproofbuilder"
	"github.com/agglayer/aggkit-prover/aggchainproofservice"
	aggtypes "github.com/agglayer/aggkit-prover/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// GenerateAggchainProofRequest are the params of aggkitprover_generateAggchainProof
type GenerateAggchainProofRequest struct {
	// NetworkID is the rollup asking for the proof, zero means the served network
	NetworkID             uint32                  `json:"networkId"`
	StartBlock            uint64                  `json:"startBlock"`
	MaxEndBlock           uint64                  `json:"maxEndBlock"`
	L1InfoTreeRootHash    common.Hash             `json:"l1InfoTreeRootHash"`
	L1InfoTreeLeaf        aggtypes.L1InfoTreeLeaf `json:"l1InfoTreeLeaf"`
	L1InfoTreeMerkleProof aggtypes.MerkleProof    `json:"l1InfoTreeMerkleProof"`
	// GERInclusionProofs is keyed by the base64 encoded global exit root
	GERInclusionProofs map[string]aggtypes.InclusionProof `json:"gerInclusionProofs,omitempty"`
}

// Validate checks the params that can be checked without any remote call
func (r *GenerateAggchainProofRequest) Validate() error {
	if r.MaxEndBlock <= r.StartBlock {
		return fmt.Errorf("maxEndBlock %d must be greater than startBlock %d", r.MaxEndBlock, r.StartBlock)
	}
	for key := range r.GERInclusionProofs {
		ger, err := base64.StdEncoding.DecodeString(key)
		if err != nil {
			return fmt.Errorf("GER inclusion proof key %q is not base64: %w", key, err)
		}
		if len(ger) != common.HashLength {
			return fmt.Errorf("GER inclusion proof key %q decodes to %d bytes, expected %d",
				key, len(ger), common.HashLength)
		}
	}
	return nil
}

// ServiceRequest converts the params into an aggchain proof service request
func (r *GenerateAggchainProofRequest) ServiceRequest() *aggchainproofservice.Request {
	return &aggchainproofservice.Request{
		StartBlock:            r.StartBlock,
		MaxBlock:              r.MaxEndBlock,
		L1InfoTreeRootHash:    r.L1InfoTreeRootHash,
		L1InfoTreeLeaf:        r.L1InfoTreeLeaf,
		L1InfoTreeMerkleProof: r.L1InfoTreeMerkleProof,
		GERInclusionProofs:    r.GERInclusionProofs,
	}
}

// SP1StarkProof is the JSON form of aggchainproofbuilder.SP1StarkProof
type SP1StarkProof struct {
	Version string        `json:"version"`
	Proof   hexutil.Bytes `json:"proof"`
	Vkey    hexutil.Bytes `json:"vkey"`
}

// AggchainProof carries either a stark proof or an optimistic signature
type AggchainProof struct {
	AggchainParams common.Hash              `json:"aggchainParams"`
	Context        map[string]hexutil.Bytes `json:"context"`
	SP1StarkProof  *SP1StarkProof           `json:"sp1StarkProof,omitempty"`
	Signature      hexutil.Bytes            `json:"signature,omitempty"`
}

// GenerateAggchainProofResponse is the result of aggkitprover_generateAggchainProof
type GenerateAggchainProofResponse struct {
	AggchainProof     AggchainProof `json:"aggchainProof"`
	StartBlock        uint64        `json:"startBlock"`
	EndBlock          uint64        `json:"endBlock"`
	LocalExitRootHash *common.Hash  `json:"localExitRootHash"`
	CustomChainData   hexutil.Bytes `json:"customChainData"`
}

// NewGenerateAggchainProofResponse converts a service response to its JSON form
func NewGenerateAggchainProofResponse(resp *aggchainproofservice.Response) *GenerateAggchainProofResponse {
	proof := AggchainProof{
		AggchainParams: resp.Proof.AggchainParams,
		Context:        make(map[string]hexutil.Bytes, len(resp.Proof.Context)),
		Signature:      resp.Proof.Signature,
	}
	for k, v := range resp.Proof.Context {
		proof.Context[k] = v
	}
	if resp.Proof.SP1StarkProof != nil {
		proof.SP1StarkProof = newSP1StarkProof(resp.Proof.SP1StarkProof)
	}
	res := &GenerateAggchainProofResponse{
		AggchainProof:   proof,
		StartBlock:      resp.StartBlock,
		EndBlock:        resp.EndBlock,
		CustomChainData: resp.CustomChainData,
	}
	if resp.LocalExitRootHash != nil {
		ler := common.BytesToHash(resp.LocalExitRootHash)
		res.LocalExitRootHash = &ler
	}
	return res
}

func newSP1StarkProof(p *aggchainproofbuilder.SP1StarkProof) *SP1StarkProof {
	return &SP1StarkProof{
		Version: p.Version,
		Proof:   p.Proof,
		Vkey:    p.Vkey,
	}
}

// StatusResponse is the result of aggkitprover_status
type StatusResponse struct {
	Ready  bool   `json:"ready"`
	Reason string `json:"reason,omitempty"`
}
