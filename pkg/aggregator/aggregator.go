// Package aggregator provides the DEX aggregator contract consumed by the
// engine, and an HTTP client implementation of it.
package aggregator

import (
	"context"

	"github.com/routeforge-hq/routeforge-engine/pkg/models"
)

// QuoteOptions controls quote requests
type QuoteOptions struct {
	// Slippage tolerance in percent
	Slippage float64
	// IncludeGas requests a gas estimate alongside the quote
	IncludeGas bool
}

// Quote is the aggregator's answer to a quote request. Amounts and gas are
// base-10 strings in token base units.
type Quote struct {
	ToTokenAmount string `json:"to_token_amount"`
	EstimatedGas  string `json:"estimated_gas"`
}

// SwapOptions controls swap execution
type SwapOptions struct {
	// Slippage tolerance in percent
	Slippage float64
}

// SwapResult is the realized outcome of a swap
type SwapResult struct {
	TxHash       string `json:"tx_hash"`
	OutputAmount string `json:"output_amount"`
}

// Aggregator is the DEX aggregator contract the engine quotes and executes
// swaps against
type Aggregator interface {
	// GetQuote prices a swap of amount inputToken for outputToken on the
	// given chain
	GetQuote(ctx context.Context, chainID int, inputToken, outputToken, amount string, opts QuoteOptions) (*Quote, error)

	// ExecuteSwap performs the swap, authorized by the signer
	ExecuteSwap(ctx context.Context, chainID int, inputToken, outputToken, amount string, signer models.Signer, opts SwapOptions) (*SwapResult, error)
}
