package opnode

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/ethereum/go-ethereum/common"
)

var (
	jSONRPCCall = rpc.JSONRPCCall

	// ErrNotFound is returned when an expected key is missing in the op-node response
	ErrNotFound = errors.New("not found in RPC response")
)

// OpNodeClient is a thin JSON-RPC client for the optimism_* namespace of an op-node
type OpNodeClient struct {
	url string
}

// NewOpNodeClient creates a client pointing to url
func NewOpNodeClient(url string) *OpNodeClient {
	return &OpNodeClient{
		url: url,
	}
}

// BlockInfo is an L2 block reference as returned by the op-node
type BlockInfo struct {
	Number     uint64      `json:"number"`
	Hash       common.Hash `json:"hash"`
	ParentHash common.Hash `json:"parentHash"`
	Timestamp  uint64      `json:"timestamp"`
}

// Output is the response of optimism_outputAtBlock
type Output struct {
	Version               common.Hash `json:"version"`
	OutputRoot            common.Hash `json:"outputRoot"`
	BlockRef              BlockInfo   `json:"blockRef"`
	WithdrawalStorageRoot common.Hash `json:"withdrawalStorageRoot"`
	StateRoot             common.Hash `json:"stateRoot"`
}

// FinalizedL2Block returns the finalized L2 block reported by optimism_syncStatus
func (c *OpNodeClient) FinalizedL2Block() (*BlockInfo, error) {
	var status map[string]json.RawMessage
	if err := c.call("optimism_syncStatus", &status); err != nil {
		return nil, err
	}
	raw, ok := status["finalized_l2"]
	if !ok {
		return nil, fmt.Errorf("opNodeClient.FinalizedL2Block: finalized_l2 %w", ErrNotFound)
	}
	var result BlockInfo
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("opNodeClient error unmarshaling finalized_l2 key. Err: %w", err)
	}
	return &result, nil
}

// OutputAtBlock retrieves the output at a specific L2 block number
func (c *OpNodeClient) OutputAtBlock(number uint64) (*Output, error) {
	var data map[string]json.RawMessage
	if err := c.call("optimism_outputAtBlock", &data, fmt.Sprintf("0x%x", number)); err != nil {
		return nil, err
	}
	for _, key := range []string{"outputRoot", "stateRoot", "withdrawalStorageRoot", "blockRef"} {
		if _, ok := data[key]; !ok {
			return nil, fmt.Errorf("opNodeClient.OutputAtBlock(%d): %s %w", number, key, ErrNotFound)
		}
	}
	var output Output
	if err := remarshal(data, &output); err != nil {
		return nil, fmt.Errorf("opNodeClient.OutputAtBlock(%d): decoding output. Err: %w", number, err)
	}
	return &output, nil
}

func (c *OpNodeClient) call(method string, result any, params ...any) error {
	response, err := jSONRPCCall(c.url, method, params...)
	if err != nil {
		return fmt.Errorf("opNodeClient error calling %s jSONRPCCall. Err:%w", method, err)
	}
	if response.Error != nil {
		return fmt.Errorf("opNodeClient error calling %s, server returns error: %v %v",
			method, response.Error.Code, response.Error.Message)
	}
	if err := json.Unmarshal(response.Result, result); err != nil {
		return fmt.Errorf("opNodeClient error calling %s. Unmarshal json fails. Err:%w", method, err)
	}
	return nil
}

func remarshal(in, out any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
