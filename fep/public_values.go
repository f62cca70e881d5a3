package fep

import (
	"crypto/sha256"
	"fmt"

	aggkitcommon "github.com/agglayer/aggkit-prover/common"
	"github.com/ethereum/go-ethereum/common"
	"github.com/iden3/go-iden3-crypto/keccak256"
)

// Digest is a 32 byte SHA-256 or Keccak-256 output, compared byte by byte.
type Digest = common.Hash

var (
	// OutputRootVersion is the version prefix of the L2 output commitment
	OutputRootVersion = Digest{}
	// RangeVkeyCommitment is the commitment of the range program verification key
	RangeVkeyCommitment = Digest{}
	// AggregationVkeyHash is the hash_u32 of the aggregation program verification key
	AggregationVkeyHash = [8]uint32{}
)

// FepPublicValues are the public values of a full execution proof over a block range.
// A value is built once from chain data and never mutated afterwards.
type FepPublicValues struct {
	L1Head           Digest `json:"l1_head"`
	ClaimBlockNum    uint32 `json:"claim_block_num"`
	RollupConfigHash Digest `json:"rollup_config_hash"`

	// state right before the range
	PrevStateRoot             Digest `json:"prev_state_root"`
	PrevWithdrawalStorageRoot Digest `json:"prev_withdrawal_storage_root"`
	PrevBlockHash             Digest `json:"prev_block_hash"`

	// state at ClaimBlockNum
	NewStateRoot             Digest `json:"new_state_root"`
	NewWithdrawalStorageRoot Digest `json:"new_withdrawal_storage_root"`
	NewBlockHash             Digest `json:"new_block_hash"`

	TrustedSequencer common.Address `json:"trusted_sequencer"`
	Mode             TrustMode      `json:"trust_mode"`
}

// ComputeOutputRoot computes the L2 output commitment:
// keccak256(version || stateRoot || withdrawalStorageRoot || blockHash)
// https://specs.optimism.io/protocol/proposals.html#l2-output-commitment-construction
func ComputeOutputRoot(stateRoot, withdrawalStorageRoot, blockHash Digest) Digest {
	return common.BytesToHash(keccak256.Hash(
		OutputRootVersion.Bytes(),
		stateRoot.Bytes(),
		withdrawalStorageRoot.Bytes(),
		blockHash.Bytes(),
	))
}

// L2PreRoot is the output root right before the proven range
func (p FepPublicValues) L2PreRoot() Digest {
	return ComputeOutputRoot(p.PrevStateRoot, p.PrevWithdrawalStorageRoot, p.PrevBlockHash)
}

// ClaimRoot is the output root at ClaimBlockNum
func (p FepPublicValues) ClaimRoot() Digest {
	return ComputeOutputRoot(p.NewStateRoot, p.NewWithdrawalStorageRoot, p.NewBlockHash)
}

// Hash is the digest attested by the aggregation proof:
// sha256(l1Head || l2PreRoot || claimRoot || claimBlockNum || rollupConfigHash || rangeVkeyCommitment)
func (p FepPublicValues) Hash() Digest {
	l2PreRoot := p.L2PreRoot()
	claimRoot := p.ClaimRoot()

	data := make([]byte, 0, 5*common.HashLength+aggkitcommon.Uint32ByteSize) //nolint:mnd
	data = append(data, p.L1Head.Bytes()...)
	data = append(data, l2PreRoot.Bytes()...)
	data = append(data, claimRoot.Bytes()...)
	data = append(data, aggkitcommon.Uint32ToBytes(p.ClaimBlockNum)...)
	data = append(data, p.RollupConfigHash.Bytes()...)
	data = append(data, RangeVkeyCommitment.Bytes()...)

	return sha256.Sum256(data)
}

// AggchainParams is the chain specific commitment forwarded to the pessimistic proof:
// keccak256(l2PreRoot || claimRoot || claimBlockNum || rollupConfigHash || mode || trustedSequencer)
func (p FepPublicValues) AggchainParams() Digest {
	l2PreRoot := p.L2PreRoot()
	claimRoot := p.ClaimRoot()

	return common.BytesToHash(keccak256.Hash(
		l2PreRoot.Bytes(),
		claimRoot.Bytes(),
		aggkitcommon.Uint32ToBytes(p.ClaimBlockNum),
		p.RollupConfigHash.Bytes(),
		[]byte{p.Mode.Kind.Byte()},
		p.TrustedSequencer.Bytes(),
	))
}

func (p FepPublicValues) String() string {
	return fmt.Sprintf("FepPublicValues{l1Head: %s, claimBlockNum: %d, rollupConfigHash: %s, "+
		"l2PreRoot: %s, claimRoot: %s, trustedSequencer: %s, mode: %s}",
		p.L1Head.Hex(),
		p.ClaimBlockNum,
		p.RollupConfigHash.Hex(),
		p.L2PreRoot().Hex(),
		p.ClaimRoot().Hex(),
		p.TrustedSequencer.Hex(),
		p.Mode.Kind,
	)
}
