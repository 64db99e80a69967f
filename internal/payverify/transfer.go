package payverify

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// amountTolerance is the largest difference between the expected and the
// observed amount still accepted as a match: one base unit of an 18-decimal
// asset.
var amountTolerance = decimal.New(1, -18)

// expectation is a parsed Request.
type expectation struct {
	hash      common.Hash
	payer     common.Address
	recipient common.Address
	amount    decimal.Decimal
}

// transfer is the movement of value observed on chain.
type transfer struct {
	from   common.Address
	to     common.Address
	amount decimal.Decimal
}

// toHuman converts a base-unit integer to human units.
func toHuman(v *big.Int, decimals int32) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(v, -decimals)
}

func formatAddress(a common.Address) string {
	return strings.ToLower(a.Hex())
}

// match checks payer, recipient and amount in that order and returns the
// first mismatch.
func (e expectation) match(t transfer) (Result, bool) {
	observed := Result{
		Amount: t.amount.String(),
		From:   formatAddress(t.from),
		To:     formatAddress(t.to),
	}

	var rejection Result
	switch {
	case t.from != e.payer:
		rejection = reject(ReasonPayerMismatch, "Payer mismatch. Expected: %s, Got: %s",
			formatAddress(e.payer), formatAddress(t.from))
	case t.to != e.recipient:
		rejection = reject(ReasonRecipientMismatch, "Recipient mismatch. Expected: %s, Got: %s",
			formatAddress(e.recipient), formatAddress(t.to))
	case t.amount.Sub(e.amount).Abs().GreaterThan(amountTolerance):
		rejection = reject(ReasonAmountMismatch, "Amount mismatch. Expected: %s, Got: %s",
			e.amount.String(), t.amount.String())
	default:
		return observed, true
	}

	rejection.Amount = observed.Amount
	rejection.From = observed.From
	rejection.To = observed.To
	return rejection, false
}

// fetchTransaction loads the transaction and its receipt concurrently.
func fetchTransaction(ctx context.Context, client ChainClient, hash common.Hash) (Transaction, Receipt, error) {
	var (
		tx      Transaction
		receipt Receipt
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tx, err = client.Transaction(gctx, hash)
		return err
	})
	g.Go(func() error {
		var err error
		receipt, err = client.TransactionReceipt(gctx, hash)
		return err
	})

	if err := g.Wait(); err != nil {
		return Transaction{}, Receipt{}, err
	}

	return tx, receipt, nil
}

// verified completes an accepted transfer with its block data.
func verified(ctx context.Context, client ChainClient, observed Result, receipt Receipt) (Result, error) {
	block, err := client.BlockByNumber(ctx, receipt.BlockNumber)
	if err != nil {
		return Result{}, err
	}

	observed.Verified = true
	observed.BlockNumber = receipt.BlockNumber
	observed.Timestamp = block.Timestamp
	return observed, nil
}
