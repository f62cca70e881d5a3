package types

import (
	"fmt"

	aggkitcommon "github.com/agglayer/aggkit-prover/common"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	// L1InfoTreeHeight is the depth of the L1 info tree
	L1InfoTreeHeight uint8 = 32
)

// MerkleProof is the list of siblings from a leaf to the L1 info tree root
type MerkleProof [L1InfoTreeHeight]common.Hash

// Root folds the proof over leafHash placed at index
func (p MerkleProof) Root(leafHash common.Hash, index uint32) common.Hash {
	node := leafHash
	for height, sibling := range p {
		if index&(1<<height) != 0 {
			node = crypto.Keccak256Hash(sibling.Bytes(), node.Bytes())
		} else {
			node = crypto.Keccak256Hash(node.Bytes(), sibling.Bytes())
		}
	}
	return node
}

// L1InfoTreeLeafInner is the hashed part of an L1 info tree leaf
type L1InfoTreeLeafInner struct {
	GlobalExitRoot common.Hash `json:"globalExitRoot"`
	// BlockHash is the hash of the L1 block previous to the leaf insertion
	BlockHash common.Hash `json:"blockHash"`
	Timestamp uint64      `json:"timestamp"`
}

// Hash returns keccak256(globalExitRoot || blockHash || timestamp)
func (l L1InfoTreeLeafInner) Hash() common.Hash {
	return crypto.Keccak256Hash(
		l.GlobalExitRoot.Bytes(),
		l.BlockHash.Bytes(),
		aggkitcommon.Uint64ToBytes(l.Timestamp),
	)
}

// L1InfoTreeLeaf is a leaf of the L1 info tree with its context
type L1InfoTreeLeaf struct {
	L1InfoTreeIndex uint32              `json:"l1InfoTreeIndex"`
	RollupExitRoot  common.Hash         `json:"rollupExitRoot"`
	MainnetExitRoot common.Hash         `json:"mainnetExitRoot"`
	Inner           L1InfoTreeLeafInner `json:"inner"`
}

// Hash returns the hash of the leaf as inserted in the tree
func (l L1InfoTreeLeaf) Hash() common.Hash {
	return l.Inner.Hash()
}

// ExpectedGlobalExitRoot is keccak256(mainnetExitRoot || rollupExitRoot)
func (l L1InfoTreeLeaf) ExpectedGlobalExitRoot() common.Hash {
	return crypto.Keccak256Hash(l.MainnetExitRoot.Bytes(), l.RollupExitRoot.Bytes())
}

func (l L1InfoTreeLeaf) String() string {
	return fmt.Sprintf("L1InfoTreeLeaf{index: %d, ger: %s, blockHash: %s, timestamp: %d}",
		l.L1InfoTreeIndex, l.Inner.GlobalExitRoot.Hex(), l.Inner.BlockHash.Hex(), l.Inner.Timestamp)
}

// VerifyInclusion checks that the leaf is consistent and that proof links it to root
func (l L1InfoTreeLeaf) VerifyInclusion(proof MerkleProof, root common.Hash) error {
	if ger := l.ExpectedGlobalExitRoot(); ger != l.Inner.GlobalExitRoot {
		return fmt.Errorf("l1 info tree leaf %d: global exit root %s does not match exit roots (%s)",
			l.L1InfoTreeIndex, l.Inner.GlobalExitRoot.Hex(), ger.Hex())
	}
	if computed := proof.Root(l.Hash(), l.L1InfoTreeIndex); computed != root {
		return fmt.Errorf("l1 info tree leaf %d: computed root %s does not match %s",
			l.L1InfoTreeIndex, computed.Hex(), root.Hex())
	}
	return nil
}

// InclusionProof is the merkle path of a global exit root in the L1 info tree
type InclusionProof struct {
	Siblings []common.Hash `json:"siblings"`
}
