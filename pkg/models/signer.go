package models

import (
	"github.com/ethereum/go-ethereum/common"
)

// Signer is an opaque authorization credential. The engine never inspects it
// beyond the owning address; it is passed through to the aggregator and
// bridge clients untouched.
type Signer interface {
	// Address returns the address transactions are authorized from
	Address() common.Address
}
