package ethereum

import (
	"context"

	"github.com/ad402/payverify/internal/payverify"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type (
	// TransactionResponse is the part of a transaction returned by
	// eth_getTransactionByHash that payment verification reads.
	TransactionResponse struct {
		Hash        common.Hash     `json:"hash"`
		BlockNumber *hexutil.Uint64 `json:"blockNumber"`
		From        common.Address  `json:"from"`
		To          *common.Address `json:"to"`
		Value       *hexutil.Big    `json:"value"`
		Input       hexutil.Bytes   `json:"input"`
	}

	// LogResponse is an event log entry of a receipt.
	LogResponse struct {
		Address common.Address `json:"address"`
		Topics  []common.Hash  `json:"topics"`
		Data    hexutil.Bytes  `json:"data"`
	}

	// ReceiptResponse is the part of a receipt returned by
	// eth_getTransactionReceipt that payment verification reads.
	ReceiptResponse struct {
		TransactionHash common.Hash    `json:"transactionHash"`
		BlockHash       common.Hash    `json:"blockHash"`
		BlockNumber     hexutil.Uint64 `json:"blockNumber"`
		Status          hexutil.Uint64 `json:"status"`
		Logs            []LogResponse  `json:"logs"`
	}
)

func (t TransactionResponse) toTransaction() payverify.Transaction {
	tx := payverify.Transaction{
		Hash: t.Hash,
		From: t.From,
		To:   t.To,
	}

	if t.Value != nil {
		tx.Value = t.Value.ToInt()
	}

	return tx
}

func (r ReceiptResponse) toReceipt() payverify.Receipt {
	logs := make([]payverify.Log, len(r.Logs))
	for i, l := range r.Logs {
		logs[i] = payverify.Log{
			Address: l.Address,
			Topics:  l.Topics,
			Data:    l.Data,
		}
	}

	return payverify.Receipt{
		Status:      uint64(r.Status),
		BlockNumber: uint64(r.BlockNumber),
		Logs:        logs,
	}
}

// Transaction implements payverify.ChainClient.
func (c *client) Transaction(ctx context.Context, hash common.Hash) (payverify.Transaction, error) {
	var tx TransactionResponse
	if err := c.call(ctx, &tx, "eth_getTransactionByHash", hash); err != nil {
		return payverify.Transaction{}, err
	}

	return tx.toTransaction(), nil
}

// TransactionReceipt implements payverify.ChainClient.
func (c *client) TransactionReceipt(ctx context.Context, hash common.Hash) (payverify.Receipt, error) {
	var receipt ReceiptResponse
	if err := c.call(ctx, &receipt, "eth_getTransactionReceipt", hash); err != nil {
		return payverify.Receipt{}, err
	}

	return receipt.toReceipt(), nil
}
