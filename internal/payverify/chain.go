package payverify

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrNotFound is returned when the node does not know the transaction. It
	// may still be pending, or the hash may be bogus; the caller decides.
	ErrNotFound = errors.New("transaction not found")

	// ErrRPC wraps transport, provider and decoding failures. Retrying later
	// may succeed.
	ErrRPC = errors.New("rpc request failed")

	// ErrUnsupportedNetwork is returned by operations that report failures as
	// errors when the network is not registered or has no chain client.
	ErrUnsupportedNetwork = errors.New("unsupported network")

	// ErrInvalidTransactionHash is returned when a hash is not 32 hex bytes.
	ErrInvalidTransactionHash = errors.New("invalid transaction hash")
)

// TransferEventSignature is topic[0] of the ERC-20
// Transfer(address indexed from, address indexed to, uint256 value) event.
var TransferEventSignature = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")

// ReceiptStatusSuccessful is the status of a receipt whose execution succeeded.
const ReceiptStatusSuccessful = 1

// Log is an event emitted during a transaction.
type Log struct {
	Address common.Address
	Topics  []common.Hash
	Data    []byte
}

// Receipt is the execution outcome of a mined transaction.
type Receipt struct {
	Status      uint64
	BlockNumber uint64
	Logs        []Log
}

// Transaction is the subset of a transaction the verifiers look at.
// To is nil for contract creations.
type Transaction struct {
	Hash  common.Hash
	From  common.Address
	To    *common.Address
	Value *big.Int
}

// Block is the subset of a block header the verifiers look at.
type Block struct {
	Number    uint64
	Timestamp uint64
}

// ChainClient reads chain state from one network's RPC endpoint.
//
// Lookups by hash return ErrNotFound when the node has no record and an error
// wrapping ErrRPC for any other failure.
type ChainClient interface {
	TransactionReceipt(ctx context.Context, hash common.Hash) (Receipt, error)
	Transaction(ctx context.Context, hash common.Hash) (Transaction, error)
	BlockByNumber(ctx context.Context, number uint64) (Block, error)
	BlockNumber(ctx context.Context) (uint64, error)
}
