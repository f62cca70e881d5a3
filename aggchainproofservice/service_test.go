package aggchainproofservice

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/agglayer/aggkit-prover/aggchainproofbuilder"
	"github.com/agglayer/aggkit-prover/log"
	"github.com/agglayer/aggkit-prover/prometheus"
	"github.com/agglayer/aggkit-prover/proposer"
	"github.com/agglayer/aggkit-prover/stage"
	"github.com/agglayer/aggkit-prover/stage/mocks"
	"github.com/agglayer/aggkit-prover/types"
	"github.com/ethereum/go-ethereum/common"
	prometheusClient "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type ctxKey struct{}

type serviceSetup struct {
	service  *Service
	proposer *mocks.Stage[*proposer.Request, *proposer.Response]
	builder  *mocks.Stage[*aggchainproofbuilder.Request, *aggchainproofbuilder.Response]
}

func newServiceSetup(t *testing.T) *serviceSetup {
	t.Helper()
	s := &serviceSetup{
		proposer: mocks.NewStage[*proposer.Request, *proposer.Response](t),
		builder:  mocks.NewStage[*aggchainproofbuilder.Request, *aggchainproofbuilder.Response](t),
	}
	s.service = New(s.proposer, s.builder, log.WithFields("module", "test"))
	return s
}

func newRequest() *Request {
	var proof types.MerkleProof
	proof[0] = common.HexToHash("0x01")
	return &Request{
		StartBlock:         100,
		MaxBlock:           200,
		L1InfoTreeRootHash: common.HexToHash("0x0f"),
		L1InfoTreeLeaf: types.L1InfoTreeLeaf{
			L1InfoTreeIndex: 7,
			Inner:           types.L1InfoTreeLeafInner{BlockHash: common.HexToHash("0x1ead")},
		},
		L1InfoTreeMerkleProof: proof,
		GERInclusionProofs: map[string]types.InclusionProof{
			"AQID": {Siblings: []common.Hash{common.HexToHash("0x02")}},
		},
	}
}

func testProof() aggchainproofbuilder.AggchainProof {
	return aggchainproofbuilder.AggchainProof{
		AggchainParams: common.HexToHash("0xa9"),
		SP1StarkProof:  &aggchainproofbuilder.SP1StarkProof{Version: "v4", Proof: []byte{0x01}, Vkey: []byte{0x02}},
	}
}

func counterValue(t *testing.T, outcome string) float64 {
	t.Helper()
	counterVec, ok := prometheus.CounterVec(requestsTotal)
	require.True(t, ok)
	var metric dto.Metric
	require.NoError(t, counterVec.WithLabelValues(outcome).Write(&metric))
	return metric.GetCounter().GetValue()
}

func initMetrics() {
	prometheus.InitWithRegisterer(prometheusClient.NewRegistry())
	RegisterMetrics()
}

func TestCallEndToEnd(t *testing.T) {
	initMetrics()
	s := newServiceSetup(t)
	req := newRequest()
	ctx := context.WithValue(context.Background(), ctxKey{}, "caller")
	sameCtx := mock.MatchedBy(func(c context.Context) bool { return c.Value(ctxKey{}) == "caller" })

	s.proposer.EXPECT().Invoke(sameCtx, &proposer.Request{StartBlock: 100, MaxBlock: 200, L1BlockNumber: 200}).
		Return(&proposer.Response{AggSpanProof: []byte{0xaa}, StartBlock: 100, EndBlock: 200}, nil)
	s.builder.EXPECT().Invoke(sameCtx, &aggchainproofbuilder.Request{
		AggSpanProof:          []byte{0xaa},
		StartBlock:            100,
		EndBlock:              200,
		L1InfoTreeRootHash:    req.L1InfoTreeRootHash,
		L1InfoTreeLeaf:        req.L1InfoTreeLeaf,
		L1InfoTreeMerkleProof: req.L1InfoTreeMerkleProof,
		GERInclusionProofs:    req.GERInclusionProofs,
	}).Return(&aggchainproofbuilder.Response{Proof: testProof(), StartBlock: 100, EndBlock: 200}, nil)

	resp, err := s.service.Call(ctx, req)
	require.NoError(t, err)
	require.Equal(t, testProof(), resp.Proof)
	require.Equal(t, uint64(100), resp.StartBlock)
	require.Equal(t, uint64(200), resp.EndBlock)
	require.Nil(t, resp.LocalExitRootHash)
	require.Nil(t, resp.CustomChainData)
	require.Equal(t, float64(1), counterValue(t, outcomeSuccess))
}

func TestCallUsesProposerRange(t *testing.T) {
	s := newServiceSetup(t)
	s.proposer.EXPECT().Invoke(mock.Anything, mock.Anything).
		Return(&proposer.Response{AggSpanProof: []byte{0xaa}, StartBlock: 100, EndBlock: 150}, nil)
	s.builder.EXPECT().Invoke(mock.Anything, mock.MatchedBy(func(req *aggchainproofbuilder.Request) bool {
		return req.StartBlock == 100 && req.EndBlock == 150
	})).Return(&aggchainproofbuilder.Response{Proof: testProof(), StartBlock: 100, EndBlock: 150}, nil)

	resp, err := s.service.Call(context.Background(), newRequest())
	require.NoError(t, err)
	require.Equal(t, uint64(150), resp.EndBlock)
}

func TestCallProposerFailureSkipsBuilder(t *testing.T) {
	initMetrics()
	s := newServiceSetup(t)
	proposerErr := &proposer.UnsupportedAggregationProofModeError{Mode: "plonk"}
	s.proposer.EXPECT().Invoke(mock.Anything, mock.Anything).Return(nil, proposerErr)

	resp, err := s.service.Call(context.Background(), newRequest())
	require.Nil(t, resp)
	var serviceErr *Error
	require.ErrorAs(t, err, &serviceErr)
	require.Equal(t, StageProposer, serviceErr.Stage)
	var modeErr *proposer.UnsupportedAggregationProofModeError
	require.ErrorAs(t, err, &modeErr)
	s.builder.AssertNotCalled(t, "Invoke", mock.Anything, mock.Anything)
	require.Equal(t, float64(1), counterValue(t, outcomeProposer))
}

func TestCallBuilderFailure(t *testing.T) {
	s := newServiceSetup(t)
	s.proposer.EXPECT().Invoke(mock.Anything, mock.Anything).
		Return(&proposer.Response{StartBlock: 100, EndBlock: 200}, nil)
	builderErr := &aggchainproofbuilder.L2ChainDataRetrievalError{BlockNumber: 100, Err: errors.New("op-node down")}
	s.builder.EXPECT().Invoke(mock.Anything, mock.Anything).Return(nil, builderErr)

	_, err := s.service.Call(context.Background(), newRequest())
	var serviceErr *Error
	require.ErrorAs(t, err, &serviceErr)
	require.Equal(t, StageBuilder, serviceErr.Stage)
	var l2Err *aggchainproofbuilder.L2ChainDataRetrievalError
	require.ErrorAs(t, err, &l2Err)
}

func TestCallNoRetries(t *testing.T) {
	s := newServiceSetup(t)
	s.proposer.EXPECT().Invoke(mock.Anything, mock.Anything).Return(nil, proposer.ErrProvingTimeout).Once()

	_, err := s.service.Call(context.Background(), newRequest())
	require.ErrorIs(t, err, proposer.ErrProvingTimeout)
	s.proposer.AssertNumberOfCalls(t, "Invoke", 1)
}

func TestCallConcurrentRequestsKeepTheirOwnResults(t *testing.T) {
	const calls = 32
	s := newServiceSetup(t)
	s.proposer.EXPECT().Invoke(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req *proposer.Request) (*proposer.Response, error) {
			return &proposer.Response{
				AggSpanProof: []byte(fmt.Sprintf("span-%d", req.StartBlock)),
				StartBlock:   req.StartBlock,
				EndBlock:     req.MaxBlock,
			}, nil
		}).Times(calls)
	s.builder.EXPECT().Invoke(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req *aggchainproofbuilder.Request) (*aggchainproofbuilder.Response, error) {
			return &aggchainproofbuilder.Response{
				Proof: aggchainproofbuilder.AggchainProof{
					Context: map[string][]byte{
						"span":    req.AggSpanProof,
						"l1_leaf": req.L1InfoTreeLeaf.Inner.BlockHash.Bytes(),
					},
				},
				StartBlock: req.StartBlock,
				EndBlock:   req.EndBlock,
			}, nil
		}).Times(calls)

	var g errgroup.Group
	for i := 0; i < calls; i++ {
		start := uint64(1000 * (i + 1))
		g.Go(func() error {
			req := newRequest()
			req.StartBlock = start
			req.MaxBlock = start + uint64(i) + 1
			req.L1InfoTreeLeaf.Inner.BlockHash = common.BigToHash(new(big.Int).SetUint64(start))

			resp, err := s.service.Call(context.Background(), req)
			if err != nil {
				return err
			}
			if resp.StartBlock != req.StartBlock || resp.EndBlock != req.MaxBlock {
				return fmt.Errorf("request [%d, %d] got range [%d, %d]",
					req.StartBlock, req.MaxBlock, resp.StartBlock, resp.EndBlock)
			}
			if got := string(resp.Proof.Context["span"]); got != fmt.Sprintf("span-%d", start) {
				return fmt.Errorf("request %d got span proof %q", start, got)
			}
			if got := common.BytesToHash(resp.Proof.Context["l1_leaf"]); got != req.L1InfoTreeLeaf.Inner.BlockHash {
				return fmt.Errorf("request %d got l1 leaf %s", start, got.Hex())
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestReady(t *testing.T) {
	notReady := errors.Join(stage.ErrNotReady, errors.New("busy"))

	t.Run("both ready", func(t *testing.T) {
		s := newServiceSetup(t)
		s.proposer.EXPECT().Ready(mock.Anything).Return(nil)
		s.builder.EXPECT().Ready(mock.Anything).Return(nil)
		require.NoError(t, s.service.Ready(context.Background()))
	})
	t.Run("proposer not ready, builder not consulted", func(t *testing.T) {
		s := newServiceSetup(t)
		s.proposer.EXPECT().Ready(mock.Anything).Return(notReady)

		err := s.service.Ready(context.Background())
		var serviceErr *Error
		require.ErrorAs(t, err, &serviceErr)
		require.Equal(t, StageProposer, serviceErr.Stage)
		require.ErrorIs(t, err, stage.ErrNotReady)
		s.builder.AssertNotCalled(t, "Ready", mock.Anything)
	})
	t.Run("builder not ready", func(t *testing.T) {
		s := newServiceSetup(t)
		s.proposer.EXPECT().Ready(mock.Anything).Return(nil)
		s.builder.EXPECT().Ready(mock.Anything).Return(notReady)

		err := s.service.Ready(context.Background())
		var serviceErr *Error
		require.ErrorAs(t, err, &serviceErr)
		require.Equal(t, StageBuilder, serviceErr.Stage)
		require.ErrorIs(t, err, stage.ErrNotReady)
	})
}

func TestNewFromConfigErrors(t *testing.T) {
	logger := log.WithFields("module", "test")

	cfg := DefaultConfig()
	cfg.Proposer.ProposerEndpoint = "not a url"
	_, err := NewFromConfig(context.Background(), cfg, logger)
	require.ErrorIs(t, err, ErrProposerConstruction)

	cfg = DefaultConfig()
	_, err = NewFromConfig(context.Background(), cfg, logger)
	require.ErrorIs(t, err, ErrBuilderConstruction)
	require.ErrorContains(t, err, "AggchainFEPAddr")
}

func TestErrorString(t *testing.T) {
	err := &Error{Stage: StageBuilder, Err: errors.New("boom")}
	require.Equal(t, "builder: boom", err.Error())
	require.Contains(t, newRequest().String(), "maxBlock: 200")
}
