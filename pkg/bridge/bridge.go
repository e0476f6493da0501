// Package bridge provides the bridge client contract consumed by the engine,
// and an HTTP client implementation of it.
package bridge

import (
	"context"

	"github.com/routeforge-hq/routeforge-engine/pkg/models"
)

// Result is the outcome of a bridge transfer. LockTx is the transaction that
// locked the funds on the source chain.
type Result struct {
	LockTx string `json:"lock_tx"`
}

// Bridge moves a token from one chain to its bridged equivalent on another
type Bridge interface {
	// BridgeTokens locks amount of token on sourceChain and releases the
	// bridged equivalent to recipient on destChain, authorized by the signer
	BridgeTokens(ctx context.Context, sourceChain, destChain int, token, amount, recipient string, signer models.Signer) (*Result, error)
}
