package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeforge-hq/routeforge-engine/pkg/logger"
)

type fixedSigner struct {
	addr common.Address
}

func (s fixedSigner) Address() common.Address {
	return s.addr
}

func TestBridgeTokens(t *testing.T) {
	signer := fixedSigner{addr: common.HexToAddress("0x1111111111111111111111111111111111111111")}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/bridge", r.URL.Path)

		var req bridgeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 1, req.SourceChain)
		assert.Equal(t, 42, req.DestChain)
		assert.Equal(t, "0xusdc", req.Token)
		assert.Equal(t, "1000", req.Amount)
		assert.Equal(t, "0xrecipient", req.Recipient)
		assert.Equal(t, signer.Address().Hex(), req.FromWallet)

		_ = json.NewEncoder(w).Encode(Result{LockTx: "0xlock"})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, &logger.EmptyLogger{})
	result, err := client.BridgeTokens(context.Background(), 1, 42, "0xusdc", "1000", "0xrecipient", signer)
	require.NoError(t, err)
	assert.Equal(t, "0xlock", result.LockTx)
}

func TestBridgeTokensErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "relay unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, &logger.EmptyLogger{})
	_, err := client.BridgeTokens(context.Background(), 1, 42, "0xusdc", "1000", "0xrecipient", fixedSigner{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestBridgeTokensMissingLockTx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Result{})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, &logger.EmptyLogger{})
	_, err := client.BridgeTokens(context.Background(), 1, 42, "0xusdc", "1000", "0xrecipient", fixedSigner{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing lock transaction")
}
