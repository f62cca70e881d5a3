package aggchainproofservice

import (
	"fmt"

	"github.com/agglayer/aggkit-prover/aggchainproofbuilder"
	"github.com/agglayer/aggkit-prover/types"
	"github.com/ethereum/go-ethereum/common"
)

// Request asks for an aggchain proof of the blocks after StartBlock, up to MaxBlock
type Request struct {
	StartBlock            uint64
	MaxBlock              uint64
	L1InfoTreeRootHash    common.Hash
	L1InfoTreeLeaf        types.L1InfoTreeLeaf
	L1InfoTreeMerkleProof types.MerkleProof
	// GERInclusionProofs is keyed by the base64 encoded global exit root
	GERInclusionProofs map[string]types.InclusionProof
}

func (r *Request) String() string {
	if r == nil {
		return aggchainproofbuilder.NilStr
	}
	return fmt.Sprintf("aggchainproofservice.Request{start: %d, maxBlock: %d, l1InfoTreeRoot: %s, leafIndex: %d}",
		r.StartBlock, r.MaxBlock, r.L1InfoTreeRootHash.Hex(), r.L1InfoTreeLeaf.L1InfoTreeIndex)
}

// Response is the aggchain proof of the range [StartBlock, EndBlock] actually proven
type Response struct {
	Proof      aggchainproofbuilder.AggchainProof
	StartBlock uint64
	EndBlock   uint64
	// LocalExitRootHash is not computed yet, always nil
	LocalExitRootHash []byte
	// CustomChainData is not computed yet, always nil
	CustomChainData []byte
}
