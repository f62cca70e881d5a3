package common

// Config holds the settings shared by every component of the prover.
type Config struct {
	// NetworkID is the agglayer network id of the chain served by this prover
	NetworkID uint32 `mapstructure:"NetworkID"`
}
