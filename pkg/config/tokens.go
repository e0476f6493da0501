package config

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

// intermediateTokensFile is the YAML layout of a token registry file:
//
//	intermediate_tokens:
//	  1: "0xA0b8..."
//	  8453: "0x8335..."
type intermediateTokensFile struct {
	IntermediateTokens map[int]string `yaml:"intermediate_tokens"`
}

// LoadIntermediateTokensFile reads a per-chain intermediate token registry
// from a YAML file
func LoadIntermediateTokensFile(path string) (map[int]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read intermediate tokens file %s: %v", path, err)
	}

	var file intermediateTokensFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse intermediate tokens file %s: %v", path, err)
	}

	for chainID, addr := range file.IntermediateTokens {
		if chainID <= 0 {
			return nil, fmt.Errorf("invalid chain id %d in %s", chainID, path)
		}
		if !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("invalid token address %s for chain %d in %s", addr, chainID, path)
		}
	}

	return file.IntermediateTokens, nil
}
