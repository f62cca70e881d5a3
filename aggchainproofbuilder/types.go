package aggchainproofbuilder

import (
	"fmt"

	"github.com/agglayer/aggkit-prover/fep"
	"github.com/agglayer/aggkit-prover/types"
	"github.com/ethereum/go-ethereum/common"
)

const (
	// PublicValuesContextKey is the AggchainProof context entry holding the JSON public values
	PublicValuesContextKey = "fep_public_values"
	// NilStr is printed for nil values
	NilStr = "nil"
)

// Request is the input of the builder stage
type Request struct {
	// AggSpanProof is the aggregated span proof produced by the proposer
	AggSpanProof []byte
	// StartBlock is the last block proven before the range
	StartBlock uint64
	// EndBlock is the last block of the range
	EndBlock uint64
	// L1InfoTreeRootHash is the root the L1 info tree leaf is included in
	L1InfoTreeRootHash common.Hash
	// L1InfoTreeLeaf is the leaf whose L1 block anchors the proof
	L1InfoTreeLeaf types.L1InfoTreeLeaf
	// L1InfoTreeMerkleProof links L1InfoTreeLeaf to L1InfoTreeRootHash
	L1InfoTreeMerkleProof types.MerkleProof
	// GERInclusionProofs are the inclusion proofs of the imported global exit roots
	GERInclusionProofs map[string]types.InclusionProof
}

func (r *Request) String() string {
	if r == nil {
		return NilStr
	}
	return fmt.Sprintf("aggchainproofbuilder.Request{start: %d, end: %d, l1InfoTreeRoot: %s, leaf: %s, gerProofs: %d}",
		r.StartBlock, r.EndBlock, r.L1InfoTreeRootHash.Hex(), r.L1InfoTreeLeaf.String(), len(r.GERInclusionProofs))
}

// Response is the output of the builder stage
type Response struct {
	Proof      AggchainProof
	StartBlock uint64
	EndBlock   uint64
}

// AggchainProof is the proof handed back to the caller.
// Exactly one of SP1StarkProof and Signature is set.
type AggchainProof struct {
	AggchainParams common.Hash
	Context        map[string][]byte
	SP1StarkProof  *SP1StarkProof
	Signature      []byte
}

func (a *AggchainProof) String() string {
	if a == nil {
		return NilStr
	}
	return fmt.Sprintf("AggchainParams: %s \n"+
		"Context keys: %d \n"+
		"SP1StarkProof: %v \n"+
		"Signature: %x",
		a.AggchainParams.String(),
		len(a.Context),
		a.SP1StarkProof.String(),
		a.Signature,
	)
}

// SP1StarkProof is a stark proof of the aggchain program
type SP1StarkProof struct {
	// SP1 Version
	Version string
	// SP1 stark proof.
	Proof []byte
	// SP1 stark proof verification key.
	Vkey []byte
}

func (s *SP1StarkProof) String() string {
	if s == nil {
		return NilStr
	}
	return fmt.Sprintf("Version: %s \n"+
		"Proof: %x \n"+
		"Vkey: %x",
		s.Version,
		s.Proof,
		s.Vkey,
	)
}

// L1ChainData is the AggchainFEP state read from L1
type L1ChainData struct {
	RollupConfigHash common.Hash
	OptimisticMode   bool
	TrustedSequencer common.Address
}

// L2ChainData is the L2 state before and after the proven range
type L2ChainData struct {
	Prev L2Output
	New  L2Output
}

// L2Output are the preimage fields of an output root
type L2Output struct {
	StateRoot             common.Hash
	WithdrawalStorageRoot common.Hash
	BlockHash             common.Hash
}

// OutputRoot returns the output root of o
func (o L2Output) OutputRoot() common.Hash {
	return fep.ComputeOutputRoot(o.StateRoot, o.WithdrawalStorageRoot, o.BlockHash)
}

// ExecutorRequest is the witness handed to a ProverExecutor
type ExecutorRequest struct {
	PublicValues          fep.FepPublicValues
	AggSpanProof          []byte
	L1InfoTreeRootHash    common.Hash
	L1InfoTreeLeaf        types.L1InfoTreeLeaf
	L1InfoTreeMerkleProof types.MerkleProof
	GERInclusionProofs    map[string]types.InclusionProof
}

// ExecutorResponse is the result of a ProverExecutor, a stark proof or an optimistic signature
type ExecutorResponse struct {
	PublicValues  fep.FepPublicValues
	SP1StarkProof *SP1StarkProof
}
