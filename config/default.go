package config

// This values doesnt have a default value because depend on the
// environment / deployment
const DefaultMandatoryVars = `
L1URL = "http://localhost:8545"
OpNodeURL = "http://localhost:9545"
ProposerURL = "http://localhost:3000"
SP1ClusterURL = "http://localhost:5432"
AggchainFEPAddr = "0x0000000000000000000000000000000000000000"
NetworkID = 1
`

// This doesnt below to config, but are the vars used
// to avoid repetition in config-files
const DefaultVars = `
ProvingTimeout = "1h"
ChainDataMaxRetries = 3
ChainDataInitialBackoff = "1s"
`

// DefaultValues is the default configuration
const DefaultValues = `
[Log]
Environment = "development" # "production" or "development"
Level = "info"
Outputs = ["stderr"]

[RPC]
Host = "0.0.0.0"
Port = 5576
ReadTimeout = "2s"
# WriteTimeout is left out: it defaults to the proposer ProvingTimeout plus
# the builder ProverTimeout, the time a proof request is held open
MaxRequestsPerIPAndSecond = 10

[Prometheus]
Enabled = false
Host = "localhost"
Port = 9091

[Profiling]
ProfilingHost = "localhost"
ProfilingPort = 6060
ProfilingEnabled = false

[Common]
NetworkID = "{{NetworkID}}"

[AggchainProofService.Proposer]
ProposerEndpoint = "{{ProposerURL}}"
SP1ClusterEndpoint = "{{SP1ClusterURL}}"
L1RPCEndpoint = "{{L1URL}}"
ProvingTimeout = "{{ProvingTimeout}}"
PollInterval = "5s"
RequestTimeout = "30s"
HTTPRetries = 3
AggregationVKeyHash = "0x0000000000000000000000000000000000000000000000000000000000000000"
MaxConcurrentRequests = 10
	[AggchainProofService.Proposer.L1Retry]
		MaxRetries = "{{ChainDataMaxRetries}}"
		InitialBackoff = "{{ChainDataInitialBackoff}}"

[AggchainProofService.AggchainProofBuilder]
L1RPCEndpoint = "{{L1URL}}"
OpNodeURL = "{{OpNodeURL}}"
SP1ClusterEndpoint = "{{SP1ClusterURL}}"
AggchainFEPAddr = "{{AggchainFEPAddr}}"
TrustedSequencerKey = {Method = "none"}
RequireKeyMatchTrustedSequencer = false
VerifyL1InfoTreeInclusion = true
RequireFinalizedL2Block = true
MaxConcurrentRequests = 10
ProverTimeout = "{{ProvingTimeout}}"
	[AggchainProofService.AggchainProofBuilder.ChainDataRetry]
		MaxRetries = "{{ChainDataMaxRetries}}"
		InitialBackoff = "{{ChainDataInitialBackoff}}"

[RateLimiting]
SendTx = {MaxPerInterval = 1, TimeInterval = "1h"}
`
