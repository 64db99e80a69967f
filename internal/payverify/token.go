package payverify

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// tokenVerifier checks an ERC-20 transfer on a single token contract by
// decoding the Transfer event from the receipt logs.
type tokenVerifier struct {
	contract common.Address
	decimals int32
}

func (v tokenVerifier) verify(ctx context.Context, client ChainClient, exp expectation) (Result, error) {
	tx, receipt, err := fetchTransaction(ctx, client, exp.hash)
	if err != nil {
		return Result{}, err
	}

	if receipt.Status != ReceiptStatusSuccessful {
		return reject(ReasonTransactionFailed, "Transaction failed on blockchain"), nil
	}

	if tx.To == nil || *tx.To != v.contract {
		return reject(ReasonNotTokenTransfer, "Transaction is not a token transfer"), nil
	}

	t, ok := v.decodeTransfer(receipt.Logs)
	if !ok {
		return reject(ReasonNoTransferEvent, "No valid token transfer event found"), nil
	}

	observed, ok := exp.match(t)
	if !ok {
		return observed, nil
	}

	return verified(ctx, client, observed, receipt)
}

// decodeTransfer returns the first Transfer event emitted by the contract.
// Indexed addresses are the low 20 bytes of topics 1 and 2; the value is the
// big-endian integer in the data, zero when the data is empty.
func (v tokenVerifier) decodeTransfer(logs []Log) (transfer, bool) {
	for _, l := range logs {
		if l.Address != v.contract || len(l.Topics) == 0 || l.Topics[0] != TransferEventSignature {
			continue
		}

		if len(l.Topics) < 3 {
			return transfer{}, false
		}

		return transfer{
			from:   common.BytesToAddress(l.Topics[1].Bytes()),
			to:     common.BytesToAddress(l.Topics[2].Bytes()),
			amount: toHuman(new(big.Int).SetBytes(l.Data), v.decimals),
		}, true
	}

	return transfer{}, false
}
