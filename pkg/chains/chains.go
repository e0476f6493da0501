package chains

// ChainList contains the list of supported chain IDs
var ChainList = []int{
	1,     // Ethereum
	137,   // Polygon
	42161, // Arbitrum
	43114, // Avalanche
	56,    // Binance Smart Chain
	7000,  // ZetaChain
	8453,  // Base
}

// chainNames maps chain IDs to their names
var chainNames = map[int]string{
	1:     "ETHEREUM",
	137:   "POLYGON",
	42161: "ARBITRUM",
	43114: "AVALANCHE",
	56:    "BSC",
	7000:  "ZETACHAIN",
	8453:  "BASE",
}

// DefaultIntermediateTokens maps chain IDs to the address of the stable token
// used as the bridging hop for multi-step routes. Chains without an entry
// cannot participate in a swap-bridge-swap route unless an address is
// provided through configuration.
var DefaultIntermediateTokens = map[int]string{
	1:     "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", // Ethereum USDC
	137:   "0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359", // Polygon USDC
	42161: "0xaf88d065e77c8cC2239327C5EDb3A432268e5831", // Arbitrum USDC
	43114: "0xB97EF9Ef8734C71904D8002F8b6Bc66Dd9c48a6E", // Avalanche USDC
	56:    "0x8AC76a51cc950d9822D68b83fE1Ad97B32Cd580d", // BSC USDC
	8453:  "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", // Base USDC
}

// GetChainName returns the name of the chain for a given chain ID
func GetChainName(chainID int) string {
	name, exists := chainNames[chainID]
	if !exists {
		return ""
	}
	return name
}

// IsSupported returns true when the chain ID is part of the supported set
func IsSupported(chainID int) bool {
	_, exists := chainNames[chainID]
	return exists
}
