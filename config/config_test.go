package config

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/agglayer/aggkit-prover/aggchainproofservice"
	"github.com/agglayer/aggkit-prover/ratelimit"
	signertypes "github.com/agglayer/go_signer/signer/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestLExploratorySetConfigFlag(t *testing.T) {
	value := []string{"config.json", "another_config.json"}
	ctx := newCliContextConfigFlag(t, value...)
	configFilePath := ctx.StringSlice(FlagCfg)
	require.Equal(t, value, configFilePath)
}

func TestLoadDefaultConfig(t *testing.T) {
	cfgFile := writeTempFile(t, "ut_config.toml", DefaultMandatoryVars)
	ctx := newCliContextConfigFlag(t, cfgFile)
	cfg, err := Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	defaults := aggchainproofservice.DefaultConfig()

	proposerCfg := cfg.AggchainProofService.Proposer
	require.Equal(t, "http://localhost:3000", proposerCfg.ProposerEndpoint)
	require.Equal(t, "http://localhost:5432", proposerCfg.SP1ClusterEndpoint)
	require.Equal(t, "http://localhost:8545", proposerCfg.L1RPCEndpoint)
	require.Equal(t, defaults.Proposer.ProvingTimeout, proposerCfg.ProvingTimeout)
	require.Equal(t, defaults.Proposer.PollInterval, proposerCfg.PollInterval)
	require.Equal(t, defaults.Proposer.RequestTimeout, proposerCfg.RequestTimeout)
	require.Equal(t, defaults.Proposer.HTTPRetries, proposerCfg.HTTPRetries)
	require.Equal(t, defaults.Proposer.MaxConcurrentRequests, proposerCfg.MaxConcurrentRequests)
	require.Equal(t, defaults.Proposer.L1Retry, proposerCfg.L1Retry)
	require.Equal(t, common.Hash{}, proposerCfg.AggregationVKeyHash)

	builderCfg := cfg.AggchainProofService.AggchainProofBuilder
	require.Equal(t, "http://localhost:9545", builderCfg.OpNodeURL)
	require.Equal(t, signertypes.MethodNone, builderCfg.TrustedSequencerKey.Method)
	require.Equal(t, defaults.AggchainProofBuilder.VerifyL1InfoTreeInclusion, builderCfg.VerifyL1InfoTreeInclusion)
	require.Equal(t, defaults.AggchainProofBuilder.RequireFinalizedL2Block, builderCfg.RequireFinalizedL2Block)
	require.Equal(t, defaults.AggchainProofBuilder.ProverTimeout, builderCfg.ProverTimeout)
	require.Equal(t, defaults.AggchainProofBuilder.ChainDataRetry, builderCfg.ChainDataRetry)

	require.Equal(t, ratelimit.DefaultConfig(), cfg.RateLimiting)
	require.Equal(t, uint32(1), cfg.Common.NetworkID)
	require.Equal(t, 2*time.Hour, cfg.RPC.WriteTimeout.Duration)
	require.Equal(t, 5576, cfg.RPC.Port)
	require.False(t, cfg.Profiling.ProfilingEnabled)
	require.Equal(t, "localhost", cfg.Profiling.ProfilingHost)
	require.Equal(t, 6060, cfg.Profiling.ProfilingPort)

	// the AggchainFEP address has no usable default
	require.ErrorContains(t, cfg.Validate(), "AggchainFEPAddr is required")
}

func TestLoadConfigOverrides(t *testing.T) {
	cfgFile := writeTempFile(t, "ut_config.toml", `
L1URL = "http://l1.example:8545"
AggchainFEPAddr = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
ProvingTimeout = "2h30m"

[AggchainProofService.Proposer]
PollInterval = "10s"

[RateLimiting]
SendTx = "unlimited"

[RateLimiting.Network.7.SendTx]
MaxPerInterval = 4
TimeInterval = "1h 20min"
`)
	cfg, err := Load(newCliContextConfigFlag(t, cfgFile))
	require.NoError(t, err)

	require.Equal(t, "http://l1.example:8545", cfg.AggchainProofService.Proposer.L1RPCEndpoint)
	require.Equal(t, "http://l1.example:8545", cfg.AggchainProofService.AggchainProofBuilder.L1RPCEndpoint)
	require.Equal(t, 150*time.Minute, cfg.AggchainProofService.Proposer.ProvingTimeout.Duration)
	require.Equal(t, 150*time.Minute, cfg.AggchainProofService.AggchainProofBuilder.ProverTimeout.Duration)
	require.Equal(t, 10*time.Second, cfg.AggchainProofService.Proposer.PollInterval.Duration)
	require.Equal(t, 300*time.Minute, cfg.RPC.WriteTimeout.Duration)
	require.Equal(t, common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		cfg.AggchainProofService.AggchainProofBuilder.AggchainFEPAddr)

	require.Equal(t, ratelimit.Unlimited(), cfg.RateLimiting.ConfigFor(1))
	require.Equal(t, ratelimit.Limited(4, 80*time.Minute), cfg.RateLimiting.ConfigFor(7))
	require.NoError(t, cfg.Validate())
}

func TestRPCWriteTimeoutCoversBothStages(t *testing.T) {
	cfgFile := writeTempFile(t, "ut_config.toml", `
AggchainFEPAddr = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

[AggchainProofService.Proposer]
ProvingTimeout = "40m"

[AggchainProofService.AggchainProofBuilder]
ProverTimeout = "20m"
`)
	cfg, err := Load(newCliContextConfigFlag(t, cfgFile))
	require.NoError(t, err)
	require.Equal(t, time.Hour, cfg.RPC.WriteTimeout.Duration)
	require.NoError(t, cfg.Validate())

	explicitFile := writeTempFile(t, "ut_config.toml", `
AggchainFEPAddr = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

[RPC]
WriteTimeout = "1h"
`)
	cfg, err = Load(newCliContextConfigFlag(t, explicitFile))
	require.NoError(t, err)
	require.Equal(t, time.Hour, cfg.RPC.WriteTimeout.Duration)
	require.ErrorContains(t, cfg.Validate(), "shorter than the proving budget 2h0m0s")
}

func TestLoadConfigVarFromEnv(t *testing.T) {
	t.Setenv("AGGKIT_PROVER_OPNODEURL", "http://op-node.env:9545")
	cfgFile := writeTempFile(t, "ut_config.toml", "")

	cfg, err := Load(newCliContextConfigFlag(t, cfgFile))
	require.NoError(t, err)
	require.Equal(t, "http://op-node.env:9545", cfg.AggchainProofService.AggchainProofBuilder.OpNodeURL)
}

func TestLoadConfigWithoutMandatoryVars(t *testing.T) {
	_, err := LoadFile(nil, "", false, false)
	require.ErrorContains(t, err, "unresolved vars")
	require.ErrorContains(t, err, "L1URL")
}

func TestLoadConfigFromJSON(t *testing.T) {
	cfgFile := writeTempFile(t, "ut_config.json", `{
		"AggchainProofService": {
			"AggchainProofBuilder": {"RequireFinalizedL2Block": false}
		}
	}`)
	cfg, err := Load(newCliContextConfigFlag(t, cfgFile))
	require.NoError(t, err)
	require.False(t, cfg.AggchainProofService.AggchainProofBuilder.RequireFinalizedL2Block)
	require.True(t, cfg.AggchainProofService.AggchainProofBuilder.VerifyL1InfoTreeInclusion)
}

func TestLoadConfigFromYAML(t *testing.T) {
	cfgFile := writeTempFile(t, "ut_config.yaml", `
AggchainProofService:
  Proposer:
    HTTPRetries: 7
`)
	cfg, err := Load(newCliContextConfigFlag(t, cfgFile))
	require.NoError(t, err)
	require.Equal(t, 7, cfg.AggchainProofService.Proposer.HTTPRetries)
}

func TestLoadConfigWithSaveConfigFile(t *testing.T) {
	cfgFile := writeTempFile(t, "ut_config.toml", DefaultVars+"\n")
	ctx := newCliContextConfigFlag(t, cfgFile)
	dir := t.TempDir()

	err := ctx.Set(FlagSaveConfigPath, dir)
	require.NoError(t, err)
	cfg, err := Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	_, err = os.Stat(filepath.Join(dir, SaveConfigFileName))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, SaveConfigFileName+".merged"))
	require.NoError(t, err)
}

func TestLoadConfigWithInvalidFilename(t *testing.T) {
	ctx := newCliContextConfigFlag(t, "invalid_file")
	cfg, err := Load(ctx)
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoadConfigWithDeprecatedFields(t *testing.T) {
	cfgFile := writeTempFile(t, "ut_config.toml", `
[Proposer]
ProposerEndpoint = "http://localhost:3000"

[AggchainProofBuilder]
OpNodeURL = "http://localhost:9545"

[AggchainProofService.AggchainProofBuilder.SignerKey]
Method = "local"
`)
	ctx := newCliContextConfigFlag(t, cfgFile)
	_, err := Load(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), proposerSectionMoved)
	require.Contains(t, err.Error(), builderSectionMoved)
	require.Contains(t, err.Error(), builderKeyRenamed)

	require.NoError(t, ctx.Set(FlagAllowDeprecatedFields, "true"))
	cfg, err := Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cfg)
}

func TestJSONSchema(t *testing.T) {
	data, err := JSONSchema()
	require.NoError(t, err)

	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &schema))
	require.Equal(t, "aggkit-prover config file", schema["title"])
	require.Contains(t, string(data), "AggchainProofService")
	require.Contains(t, string(data), "RateLimiting")
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func newCliContextConfigFlag(t *testing.T, values ...string) *cli.Context {
	t.Helper()
	flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
	var configFilePaths cli.StringSlice
	flagSet.Var(&configFilePaths, FlagCfg, "")
	flagSet.Bool(FlagAllowDeprecatedFields, false, "")
	flagSet.Bool(FlagDisableDefaultConfigVars, false, "")
	flagSet.String(FlagSaveConfigPath, "", "")
	for _, value := range values {
		err := flagSet.Parse([]string{"--" + FlagCfg, value})
		require.NoError(t, err)
	}
	return cli.NewContext(nil, flagSet, nil)
}
