package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvDefaultDeadline(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
		isErr    bool
	}{
		{
			name:     "default",
			value:    "",
			expected: 300 * time.Second,
		},
		{
			name:     "custom",
			value:    "60",
			expected: 60 * time.Second,
		},
		{
			name:  "not a number",
			value: "abc",
			isErr: true,
		},
		{
			name:  "non-positive",
			value: "0",
			isErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("DEFAULT_DEADLINE", tc.value)
			deadline, err := GetEnvDefaultDeadline()
			if tc.isErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, deadline)
		})
	}
}

func TestGetEnvDefaultSlippage(t *testing.T) {
	t.Setenv("DEFAULT_SLIPPAGE", "")
	slippage, err := GetEnvDefaultSlippage()
	require.NoError(t, err)
	assert.Equal(t, 0.5, slippage)

	t.Setenv("DEFAULT_SLIPPAGE", "1.5")
	slippage, err = GetEnvDefaultSlippage()
	require.NoError(t, err)
	assert.Equal(t, 1.5, slippage)

	t.Setenv("DEFAULT_SLIPPAGE", "100")
	_, err = GetEnvDefaultSlippage()
	require.Error(t, err)
}

func TestGetEnvIntermediateTokens(t *testing.T) {
	tokens, err := GetEnvIntermediateTokens()
	require.NoError(t, err)
	// Defaults cover Ethereum mainnet
	assert.NotEmpty(t, tokens[1])

	t.Setenv("CHAIN_1_INTERMEDIATE_TOKEN", "0xdAC17F958D2ee523a2206206994597C13D831ec7")
	tokens, err = GetEnvIntermediateTokens()
	require.NoError(t, err)
	assert.Equal(t, "0xdAC17F958D2ee523a2206206994597C13D831ec7", tokens[1])

	t.Setenv("CHAIN_1_INTERMEDIATE_TOKEN", "not-an-address")
	_, err = GetEnvIntermediateTokens()
	require.Error(t, err)
}

func TestLoadIntermediateTokensFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.yaml")

	content := []byte("intermediate_tokens:\n  1: \"0xdAC17F958D2ee523a2206206994597C13D831ec7\"\n  137: \"0xc2132D05D31c914a87C6611C10748AEb04B58e8F\"\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	tokens, err := LoadIntermediateTokensFile(path)
	require.NoError(t, err)
	assert.Len(t, tokens, 2)
	assert.Equal(t, "0xdAC17F958D2ee523a2206206994597C13D831ec7", tokens[1])

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("intermediate_tokens:\n  1: \"nope\"\n"), 0o600))
	_, err = LoadIntermediateTokensFile(bad)
	require.Error(t, err)
}

func TestGetEnvLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	_, err := GetEnvLogLevel()
	require.NoError(t, err)

	t.Setenv("LOG_LEVEL", "verbose")
	_, err = GetEnvLogLevel()
	require.Error(t, err)
}
