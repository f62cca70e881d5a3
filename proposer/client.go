package proposer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/agglayer/aggkit-prover/log"
	"github.com/hashicorp/go-retryablehttp"
)

const maxResponseSize = 64 << 20

// AggProofRequester asks the proposer for an aggregated span proof
type AggProofRequester interface {
	RequestAggProof(ctx context.Context, req *AggProofRequest) (*AggProofResponse, error)
}

// ProofStatusGetter follows a proof request in the SP1 cluster
type ProofStatusGetter interface {
	GetProofStatus(ctx context.Context, proofID string) (*ProofStatus, error)
}

// RESTClient is a JSON over HTTP client for the proposer and the SP1 cluster
type RESTClient struct {
	endpoint string
	client   *retryablehttp.Client
}

var (
	_ AggProofRequester = (*RESTClient)(nil)
	_ ProofStatusGetter = (*RESTClient)(nil)
)

// NewRESTClient creates a client for endpoint using the timeouts and retries of cfg
func NewRESTClient(endpoint string, cfg Config, logger *log.Logger) (*RESTClient, error) {
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.HTTPRetries
	client.HTTPClient.Timeout = cfg.RequestTimeout.Duration
	client.Logger = &leveledLogger{logger: logger}
	return &RESTClient{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		client:   client,
	}, nil
}

// RequestAggProof calls POST /request_agg_proof
func (c *RESTClient) RequestAggProof(ctx context.Context, req *AggProofRequest) (*AggProofResponse, error) {
	var resp AggProofResponse
	if err := c.do(ctx, "request_agg_proof", http.MethodPost, "/request_agg_proof", req, &resp); err != nil {
		return nil, err
	}
	if resp.ProofID == "" {
		return nil, &ClientError{Op: "request_agg_proof", Err: fmt.Errorf("empty proof_id in response")}
	}
	return &resp, nil
}

// GetProofStatus calls GET /status/{proofID}
func (c *RESTClient) GetProofStatus(ctx context.Context, proofID string) (*ProofStatus, error) {
	var status ProofStatus
	if err := c.do(ctx, "get_proof_status", http.MethodGet, "/status/"+url.PathEscape(proofID), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *RESTClient) do(ctx context.Context, op, method, path string, in, out any) error {
	var body any
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return &ClientError{Op: op, Err: fmt.Errorf("encoding request: %w", err)}
		}
		body = payload
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return &ClientError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &ClientError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return &ClientError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("reading body: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return &ClientError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("%s", strings.TrimSpace(string(raw)))}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ClientError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// leveledLogger routes retryablehttp messages to the component logger
type leveledLogger struct {
	logger *log.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, keysAndValues...)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Infow(msg, keysAndValues...)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warnw(msg, keysAndValues...)
}
