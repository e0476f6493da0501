// Package signer provides a local key-based implementation of the Signer
// credential passed through to the aggregator and bridge clients.
package signer

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/routeforge-hq/routeforge-engine/pkg/models"
)

// LocalSigner derives its address from a hex-encoded private key
type LocalSigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

var _ models.Signer = (*LocalSigner)(nil)

// NewLocalSigner creates a signer from a hex-encoded private key
func NewLocalSigner(hexKey string) (*LocalSigner, error) {
	hexKey = strings.TrimPrefix(hexKey, "0x")

	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %v", err)
	}

	return &LocalSigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Address returns the address transactions are authorized from
func (s *LocalSigner) Address() common.Address {
	return s.address
}
