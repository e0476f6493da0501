// Package mocks provides scriptable in-memory stand-ins for the engine's
// external collaborators.
package mocks

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/routeforge-hq/routeforge-engine/pkg/aggregator"
	"github.com/routeforge-hq/routeforge-engine/pkg/bridge"
	"github.com/routeforge-hq/routeforge-engine/pkg/models"
)

// QuoteCall records one GetQuote invocation
type QuoteCall struct {
	ChainID     int
	InputToken  string
	OutputToken string
	Amount      string
}

// SwapCall records one ExecuteSwap invocation
type SwapCall struct {
	ChainID     int
	InputToken  string
	OutputToken string
	Amount      string
}

// MockAggregator is a scriptable aggregator. With no hooks set, quotes echo
// the input amount and swaps succeed with the input amount as output.
type MockAggregator struct {
	mu sync.Mutex

	// QuoteFn, when set, answers GetQuote
	QuoteFn func(chainID int, inputToken, outputToken, amount string) (*aggregator.Quote, error)
	// SwapFn, when set, answers ExecuteSwap
	SwapFn func(chainID int, inputToken, outputToken, amount string) (*aggregator.SwapResult, error)

	QuoteCalls []QuoteCall
	SwapCalls  []SwapCall
}

// NewMockAggregator creates a mock aggregator with default behavior
func NewMockAggregator() *MockAggregator {
	return &MockAggregator{}
}

// GetQuote implements aggregator.Aggregator
func (m *MockAggregator) GetQuote(_ context.Context, chainID int, inputToken, outputToken, amount string, _ aggregator.QuoteOptions) (*aggregator.Quote, error) {
	m.mu.Lock()
	m.QuoteCalls = append(m.QuoteCalls, QuoteCall{ChainID: chainID, InputToken: inputToken, OutputToken: outputToken, Amount: amount})
	fn := m.QuoteFn
	m.mu.Unlock()

	if fn != nil {
		return fn(chainID, inputToken, outputToken, amount)
	}
	return &aggregator.Quote{ToTokenAmount: amount, EstimatedGas: "150000"}, nil
}

// ExecuteSwap implements aggregator.Aggregator
func (m *MockAggregator) ExecuteSwap(_ context.Context, chainID int, inputToken, outputToken, amount string, _ models.Signer, _ aggregator.SwapOptions) (*aggregator.SwapResult, error) {
	m.mu.Lock()
	m.SwapCalls = append(m.SwapCalls, SwapCall{ChainID: chainID, InputToken: inputToken, OutputToken: outputToken, Amount: amount})
	fn := m.SwapFn
	m.mu.Unlock()

	if fn != nil {
		return fn(chainID, inputToken, outputToken, amount)
	}
	return &aggregator.SwapResult{TxHash: "0xswap", OutputAmount: amount}, nil
}

// BridgeCall records one BridgeTokens invocation
type BridgeCall struct {
	SourceChain int
	DestChain   int
	Token       string
	Amount      string
	Recipient   string
}

// MockBridge is a scriptable bridge. With no hook set, transfers succeed.
type MockBridge struct {
	mu sync.Mutex

	// BridgeFn, when set, answers BridgeTokens
	BridgeFn func(sourceChain, destChain int, token, amount, recipient string) (*bridge.Result, error)

	Calls []BridgeCall
}

// NewMockBridge creates a mock bridge with default behavior
func NewMockBridge() *MockBridge {
	return &MockBridge{}
}

// BridgeTokens implements bridge.Bridge
func (m *MockBridge) BridgeTokens(_ context.Context, sourceChain, destChain int, token, amount, recipient string, _ models.Signer) (*bridge.Result, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, BridgeCall{SourceChain: sourceChain, DestChain: destChain, Token: token, Amount: amount, Recipient: recipient})
	fn := m.BridgeFn
	m.mu.Unlock()

	if fn != nil {
		return fn(sourceChain, destChain, token, amount, recipient)
	}
	return &bridge.Result{LockTx: "0xlock"}, nil
}

// MockSigner is a fixed-address signer
type MockSigner struct {
	Addr common.Address
}

// NewMockSigner creates a signer for the given hex address
func NewMockSigner(hex string) *MockSigner {
	return &MockSigner{Addr: common.HexToAddress(hex)}
}

// Address implements models.Signer
func (m *MockSigner) Address() common.Address {
	return m.Addr
}
