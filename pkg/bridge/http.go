package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/routeforge-hq/routeforge-engine/pkg/logger"
	"github.com/routeforge-hq/routeforge-engine/pkg/models"
)

// HTTPClient talks to a bridge relay API over HTTP
type HTTPClient struct {
	endpoint   string
	httpClient *http.Client
	logger     logger.Logger
}

var _ Bridge = (*HTTPClient)(nil)

// NewHTTPClient creates a new bridge relay API client
func NewHTTPClient(endpoint string, log logger.Logger) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		// Bridging waits for the source-chain lock to settle
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: log,
	}
}

// bridgeRequest is the JSON body for a bridge transfer
type bridgeRequest struct {
	SourceChain int    `json:"source_chain"`
	DestChain   int    `json:"dest_chain"`
	Token       string `json:"token"`
	Amount      string `json:"amount"`
	Recipient   string `json:"recipient"`
	FromWallet  string `json:"from_wallet"`
}

// BridgeTokens locks funds on the source chain via the relay API
func (c *HTTPClient) BridgeTokens(ctx context.Context, sourceChain, destChain int, token, amount, recipient string, signer models.Signer) (*Result, error) {
	body, err := json.Marshal(bridgeRequest{
		SourceChain: sourceChain,
		DestChain:   destChain,
		Token:       token,
		Amount:      amount,
		Recipient:   recipient,
		FromWallet:  signer.Address().Hex(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode bridge request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/bridge", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build bridge request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to bridge tokens: %v", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Error("Failed to close response body: %v", err)
		}
	}(resp.Body)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read bridge response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var result Result
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, fmt.Errorf("failed to decode bridge result: %v", err)
	}
	if result.LockTx == "" {
		return nil, fmt.Errorf("bridge result missing lock transaction")
	}

	c.logger.InfoWithChain(sourceChain, "Bridged %s of %s to chain %d (lock tx: %s)",
		amount, token, destChain, result.LockTx)
	return &result, nil
}
