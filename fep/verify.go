package fep

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// ProofVerifier verifies an aggregated proof against its public values digest.
// It is chosen when the process is wired; the only implementation that can
// succeed runs inside the zkVM.
type ProofVerifier interface {
	VerifyProof(vkeyHash [8]uint32, publicValuesDigest Digest) error
}

// Verify checks the public values under their trust mode.
// Optimistic: the signature over Hash() must recover to TrustedSequencer.
// Succinct: the aggregated proof is verified by verifier.
func (p FepPublicValues) Verify(verifier ProofVerifier) error {
	if err := p.Mode.Validate(); err != nil {
		return err
	}

	switch p.Mode.Kind {
	case Optimistic:
		return p.verifyOptimistic()
	default:
		if verifier == nil {
			return ErrNoProofVerifier
		}
		return verifier.VerifyProof(AggregationVkeyHash, p.Hash())
	}
}

func (p FepPublicValues) verifyOptimistic() error {
	sig, err := normalizeSignature(p.Mode.Signature)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	hash := p.Hash()
	pubKey, err := crypto.SigToPub(hash.Bytes(), sig)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	recovered := crypto.PubkeyToAddress(*pubKey)
	if recovered != p.TrustedSequencer {
		return &InvalidSignerError{
			Declared:  p.TrustedSequencer,
			Recovered: recovered,
		}
	}
	return nil
}

// OutsideZkVMVerifier is the ProofVerifier of any process that is not the
// zkVM guest. Reaching it is a wiring bug, so it panics.
type OutsideZkVMVerifier struct{}

var _ ProofVerifier = OutsideZkVMVerifier{}

func (OutsideZkVMVerifier) VerifyProof([8]uint32, Digest) error {
	panic("aggregation proof verification is unreachable outside of the zkVM")
}
