package payverify

import "context"

// nativeVerifier checks a plain transfer of the chain's native coin.
type nativeVerifier struct {
	decimals int32
}

func (v nativeVerifier) verify(ctx context.Context, client ChainClient, exp expectation) (Result, error) {
	tx, receipt, err := fetchTransaction(ctx, client, exp.hash)
	if err != nil {
		return Result{}, err
	}

	if receipt.Status != ReceiptStatusSuccessful {
		return reject(ReasonTransactionFailed, "Transaction failed on blockchain"), nil
	}

	if tx.To == nil || tx.Value == nil || tx.Value.Sign() <= 0 {
		return reject(ReasonNotNativeTransfer, "Transaction is not a native transfer"), nil
	}

	observed, ok := exp.match(transfer{
		from:   tx.From,
		to:     *tx.To,
		amount: toHuman(tx.Value, v.decimals),
	})
	if !ok {
		return observed, nil
	}

	return verified(ctx, client, observed, receipt)
}
