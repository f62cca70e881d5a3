package fep

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrInvalidSignature is returned when the signer cannot be recovered from the signature
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrSignatureInSuccinctMode is returned for succinct public values carrying a signature
	ErrSignatureInSuccinctMode = errors.New("succinct mode public values must not carry an optimistic signature")
	// ErrMissingSignature is returned for optimistic public values without signature
	ErrMissingSignature = errors.New("optimistic mode public values require a signature")
	// ErrUnknownTrustMode is returned for a trust mode tag that is neither succinct nor optimistic
	ErrUnknownTrustMode = errors.New("unknown trust mode")
	// ErrNoProofVerifier is returned when succinct public values are verified without a verifier
	ErrNoProofVerifier = errors.New("no proof verifier configured for succinct mode")
)

// InvalidSignerError is returned when the signature is valid but it does not
// belong to the trusted sequencer.
type InvalidSignerError struct {
	Declared  common.Address
	Recovered common.Address
}

func (e *InvalidSignerError) Error() string {
	return fmt.Sprintf("invalid signer: declared %s, recovered %s", e.Declared.Hex(), e.Recovered.Hex())
}
