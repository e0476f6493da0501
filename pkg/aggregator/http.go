package aggregator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/routeforge-hq/routeforge-engine/pkg/logger"
	"github.com/routeforge-hq/routeforge-engine/pkg/models"
)

// HTTPClient talks to an aggregator API over HTTP
type HTTPClient struct {
	endpoint   string
	httpClient *http.Client
	swapClient *http.Client
	logger     logger.Logger
}

var _ Aggregator = (*HTTPClient)(nil)

// NewHTTPClient creates a new aggregator API client
func NewHTTPClient(endpoint string, log logger.Logger) *HTTPClient {
	return &HTTPClient{
		endpoint:   endpoint,
		httpClient: createHTTPClient(10 * time.Second),
		// Swap execution waits for the transaction to settle, which takes
		// far longer than a quote
		swapClient: createHTTPClient(3 * time.Minute),
		logger:     log,
	}
}

// swapRequest is the JSON body for swap execution
type swapRequest struct {
	ChainID    int     `json:"chain_id"`
	FromToken  string  `json:"from_token"`
	ToToken    string  `json:"to_token"`
	Amount     string  `json:"amount"`
	FromWallet string  `json:"from_wallet"`
	Slippage   float64 `json:"slippage"`
}

// GetQuote prices a swap via the aggregator API
func (c *HTTPClient) GetQuote(ctx context.Context, chainID int, inputToken, outputToken, amount string, opts QuoteOptions) (*Quote, error) {
	params := url.Values{}
	params.Set("chain_id", strconv.Itoa(chainID))
	params.Set("from_token", inputToken)
	params.Set("to_token", outputToken)
	params.Set("amount", amount)
	params.Set("slippage", strconv.FormatFloat(opts.Slippage, 'f', -1, 64))
	if opts.IncludeGas {
		params.Set("include_gas", "true")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/v1/quote?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build quote request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote: %v", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Error("Failed to close response body: %v", err)
		}
	}(resp.Body)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read quote response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var quote Quote
	if err := json.Unmarshal(bodyBytes, &quote); err != nil {
		return nil, fmt.Errorf("failed to decode quote: %v", err)
	}
	if quote.ToTokenAmount == "" {
		return nil, fmt.Errorf("quote missing output amount for %s -> %s on chain %d", inputToken, outputToken, chainID)
	}

	c.logger.DebugWithChain(chainID, "Quote %s %s -> %s %s (gas: %s)",
		amount, inputToken, quote.ToTokenAmount, outputToken, quote.EstimatedGas)
	return &quote, nil
}

// ExecuteSwap performs a swap via the aggregator API
func (c *HTTPClient) ExecuteSwap(ctx context.Context, chainID int, inputToken, outputToken, amount string, signer models.Signer, opts SwapOptions) (*SwapResult, error) {
	body, err := json.Marshal(swapRequest{
		ChainID:    chainID,
		FromToken:  inputToken,
		ToToken:    outputToken,
		Amount:     amount,
		FromWallet: signer.Address().Hex(),
		Slippage:   opts.Slippage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode swap request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/swap", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build swap request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.swapClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute swap: %v", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Error("Failed to close response body: %v", err)
		}
	}(resp.Body)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read swap response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var result SwapResult
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, fmt.Errorf("failed to decode swap result: %v", err)
	}
	if result.TxHash == "" {
		return nil, fmt.Errorf("swap result missing transaction hash")
	}

	c.logger.InfoWithChain(chainID, "Swap executed: %s %s -> %s %s (tx: %s)",
		amount, inputToken, result.OutputAmount, outputToken, result.TxHash)
	return &result, nil
}

// createHTTPClient builds an HTTP client with connection pooling and timeouts
func createHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
