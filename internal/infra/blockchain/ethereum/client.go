// Package ethereum implements payverify.ChainClient for Ethereum-compatible
// nodes, Mantle included, on top of a JSON-RPC client.
package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/ad402/payverify/internal/payverify"
	"github.com/ad402/payverify/internal/pkg/transport/jsonrpc"
)

// client implements the payverify.ChainClient interface for Ethereum-based networks.
// It communicates with a node via a JSON-RPC client.
type client struct {
	conn jsonrpc.Client // Underlying JSON-RPC client used to interact with the node
}

// Ensure client implements the payverify.ChainClient interface at compile time.
var _ payverify.ChainClient = (*client)(nil)

// NewClient creates a new chain client using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

func isNull(data json.RawMessage) bool {
	data = bytes.TrimSpace(data)
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}

// call invokes method and decodes its result into out.
//
// Transport and provider failures, as well as undecodable results, wrap
// payverify.ErrRPC. A null result is reported as payverify.ErrNotFound.
func (c *client) call(ctx context.Context, out any, method string, params ...any) error {
	data, err := c.conn.Fetch(ctx, method, params...)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", payverify.ErrRPC, method, err)
	}

	if isNull(data) {
		return payverify.ErrNotFound
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decoding %s result: %w", payverify.ErrRPC, method, err)
	}

	return nil
}
