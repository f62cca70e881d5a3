package fep

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// TrustModeKind selects how a range of blocks is trusted
type TrustModeKind uint8

const (
	// Succinct ranges are trusted through an aggregated zk proof
	Succinct TrustModeKind = 0
	// Optimistic ranges are trusted through the trusted sequencer signature
	Optimistic TrustModeKind = 1
)

// Byte is the discriminant committed in the aggchain params
func (k TrustModeKind) Byte() byte {
	return byte(k)
}

func (k TrustModeKind) String() string {
	switch k {
	case Succinct:
		return "succinct"
	case Optimistic:
		return "optimistic"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// MarshalText encodes the kind by name
func (k TrustModeKind) MarshalText() ([]byte, error) {
	if k != Succinct && k != Optimistic {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTrustMode, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes the kind from its name
func (k *TrustModeKind) UnmarshalText(data []byte) error {
	switch strings.ToLower(string(data)) {
	case "succinct":
		*k = Succinct
	case "optimistic":
		*k = Optimistic
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTrustMode, string(data))
	}
	return nil
}

// TrustMode is the explicit tag of a FepPublicValues. The signature only has
// meaning in Optimistic mode; see Validate.
type TrustMode struct {
	Kind      TrustModeKind `json:"kind"`
	Signature []byte        `json:"signature,omitempty"`
}

// SuccinctMode returns the mode of ranges proven by an aggregated zk proof
func SuccinctMode() TrustMode {
	return TrustMode{Kind: Succinct}
}

// OptimisticMode returns the mode of ranges signed by the trusted sequencer
func OptimisticMode(signature []byte) TrustMode {
	return TrustMode{Kind: Optimistic, Signature: signature}
}

// Validate rejects the shapes a tag does not allow: a succinct mode carrying
// a signature and an optimistic mode without one.
func (m TrustMode) Validate() error {
	switch m.Kind {
	case Succinct:
		if len(m.Signature) != 0 {
			return ErrSignatureInSuccinctMode
		}
	case Optimistic:
		if len(m.Signature) == 0 {
			return ErrMissingSignature
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownTrustMode, uint8(m.Kind))
	}
	return nil
}

// trustModeJSON carries the signature as hex on the wire
type trustModeJSON struct {
	Kind      TrustModeKind `json:"kind"`
	Signature hexutil.Bytes `json:"signature,omitempty"`
}

func (m TrustMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(trustModeJSON{Kind: m.Kind, Signature: m.Signature})
}

func (m *TrustMode) UnmarshalJSON(data []byte) error {
	var raw trustModeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Kind = raw.Kind
	m.Signature = raw.Signature
	return nil
}

// normalizeSignature returns a copy of a [R || S || V] signature with V in {0, 1}
func normalizeSignature(sig []byte) ([]byte, error) {
	if len(sig) != crypto.SignatureLength {
		return nil, fmt.Errorf("signature length %d, expected %d", len(sig), crypto.SignatureLength)
	}
	normalized := make([]byte, crypto.SignatureLength)
	copy(normalized, sig)
	v := normalized[crypto.RecoveryIDOffset]
	if v >= 27 { //nolint:mnd
		v -= 27
	}
	if v > 1 {
		return nil, fmt.Errorf("invalid recovery id %d", sig[crypto.RecoveryIDOffset])
	}
	normalized[crypto.RecoveryIDOffset] = v
	return normalized, nil
}
