package fep

import (
	"crypto/sha256"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func newTestPublicValues() FepPublicValues {
	return FepPublicValues{
		L1Head:                    common.HexToHash("0x1ead"),
		ClaimBlockNum:             200,
		RollupConfigHash:          common.HexToHash("0xc0f1"),
		PrevStateRoot:             common.HexToHash("0xc82b7f91a1c9e78463653c6ec44a579062426d71d3404325fa5f129615e0473d"),
		PrevWithdrawalStorageRoot: common.HexToHash("0x8ed4baae3a927be3dea54996b4d5899f8c01e7594bf50b17dc1e741388ce3d12"),
		PrevBlockHash:             common.HexToHash("0x61438199094c9db8d5c154034de9940712805469459346ed1b4e0fa57da5519b"),
		NewStateRoot:              common.HexToHash("0xed3333ee703cfa3bd9101a6777d8e3214c25699a1bb04dd0704afa60a6f90fec"),
		NewWithdrawalStorageRoot:  common.HexToHash("0x8ed4baae3a927be3dea54996b4d5899f8c01e7594bf50b17dc1e741388ce3d12"),
		NewBlockHash:              common.HexToHash("0xe7128f7db5b884be3d28b0090aa6ca8218d1041e72454f8b01866cd9569c2fa7"),
		TrustedSequencer:          common.HexToAddress("0x5a1e5"),
		Mode:                      SuccinctMode(),
	}
}

func TestComputeOutputRootExpectedValue(t *testing.T) {
	// values returned by optimism_outputAtBlock
	state := common.HexToHash("0xc82b7f91a1c9e78463653c6ec44a579062426d71d3404325fa5f129615e0473d")
	withdrawal := common.HexToHash("0x8ed4baae3a927be3dea54996b4d5899f8c01e7594bf50b17dc1e741388ce3d12")
	blockHash := common.HexToHash("0x61438199094c9db8d5c154034de9940712805469459346ed1b4e0fa57da5519b")
	expected := common.HexToHash("0x720311395abb5216bee64000575e07dd3b64847b9f88d4d77b64e6aa28fc93a2")

	require.Equal(t, expected, ComputeOutputRoot(state, withdrawal, blockHash))
	// deterministic
	require.Equal(t, ComputeOutputRoot(state, withdrawal, blockHash), ComputeOutputRoot(state, withdrawal, blockHash))
}

func TestL2PreRootAndClaimRoot(t *testing.T) {
	pv := newTestPublicValues()
	require.Equal(t,
		common.HexToHash("0x720311395abb5216bee64000575e07dd3b64847b9f88d4d77b64e6aa28fc93a2"),
		pv.L2PreRoot())
	require.Equal(t,
		ComputeOutputRoot(pv.NewStateRoot, pv.NewWithdrawalStorageRoot, pv.NewBlockHash),
		pv.ClaimRoot())
	require.NotEqual(t, pv.L2PreRoot(), pv.ClaimRoot())
}

func TestHashLayout(t *testing.T) {
	pv := newTestPublicValues()
	preRoot := pv.L2PreRoot()
	claimRoot := pv.ClaimRoot()

	var data []byte
	data = append(data, pv.L1Head.Bytes()...)
	data = append(data, preRoot.Bytes()...)
	data = append(data, claimRoot.Bytes()...)
	data = append(data, 0x00, 0x00, 0x00, 0xc8)
	data = append(data, pv.RollupConfigHash.Bytes()...)
	data = append(data, make([]byte, 32)...)
	require.Len(t, data, 196)

	require.Equal(t, common.Hash(sha256.Sum256(data)), pv.Hash())
}

func TestAggchainParamsLayout(t *testing.T) {
	pv := newTestPublicValues()
	preRoot := pv.L2PreRoot()
	claimRoot := pv.ClaimRoot()

	expected := crypto.Keccak256Hash(
		preRoot.Bytes(),
		claimRoot.Bytes(),
		[]byte{0x00, 0x00, 0x00, 0xc8},
		pv.RollupConfigHash.Bytes(),
		[]byte{0x00},
		pv.TrustedSequencer.Bytes(),
	)
	require.Equal(t, expected, pv.AggchainParams())

	pv.Mode = OptimisticMode(make([]byte, 65))
	expected = crypto.Keccak256Hash(
		preRoot.Bytes(),
		claimRoot.Bytes(),
		[]byte{0x00, 0x00, 0x00, 0xc8},
		pv.RollupConfigHash.Bytes(),
		[]byte{0x01},
		pv.TrustedSequencer.Bytes(),
	)
	require.Equal(t, expected, pv.AggchainParams())
}

func TestTrustedSequencerOnlyAffectsAggchainParams(t *testing.T) {
	sequencers := []common.Address{
		common.HexToAddress("0x1"),
		common.HexToAddress("0x2"),
		common.HexToAddress("0xffffffffffffffffffffffffffffffffffffffff"),
	}
	base := newTestPublicValues()
	for _, mode := range []TrustMode{SuccinctMode(), OptimisticMode([]byte{0x01})} {
		base.Mode = mode
		for _, seq := range sequencers {
			changed := base
			changed.TrustedSequencer = seq

			require.Equal(t, base.Hash(), changed.Hash())
			require.NotEqual(t, base.AggchainParams(), changed.AggchainParams())
		}
	}
}

func TestClaimBlockNumAffectsBothDigests(t *testing.T) {
	pv := newTestPublicValues()
	changed := pv
	changed.ClaimBlockNum++

	require.NotEqual(t, pv.Hash(), changed.Hash())
	require.NotEqual(t, pv.AggchainParams(), changed.AggchainParams())
}

func TestL1HeadOnlyAffectsHash(t *testing.T) {
	pv := newTestPublicValues()
	changed := pv
	changed.L1Head = common.HexToHash("0xbeef")

	require.NotEqual(t, pv.Hash(), changed.Hash())
	require.Equal(t, pv.AggchainParams(), changed.AggchainParams())
}

func TestPublicValuesString(t *testing.T) {
	pv := newTestPublicValues()
	str := pv.String()
	require.Contains(t, str, "claimBlockNum: 200")
	require.Contains(t, str, "mode: succinct")
	require.Contains(t, str, pv.L2PreRoot().Hex())
}
