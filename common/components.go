package common

const (
	// PROPOSER name to identify the span proof proposer stage
	PROPOSER = "proposer"
	// AGGCHAINPROOFBUILDER name to identify the aggchain proof builder stage
	AGGCHAINPROOFBUILDER = "aggchain-proof-builder"
	// AGGCHAINPROOFSERVICE name to identify the service that sequences both stages
	AGGCHAINPROOFSERVICE = "aggchain-proof-service"
	// RPC name to identify the json-rpc front-end
	RPC = "rpc"
)
