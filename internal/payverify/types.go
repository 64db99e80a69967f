// Package payverify proves, against chain state, that a transaction hash
// submitted by an advertiser is the expected payment: the right amount, sent
// by the right payer, to the right recipient, on the right network.
//
// Two rails are supported. The native rail checks a plain value transfer of
// the chain's native coin. The token rail decodes the ERC-20 Transfer event
// emitted by the network's token contract. Rejections are returned as data in
// Result; only transport failures and unknown transactions are Go errors.
package payverify

import "fmt"

// Rail selects how a payment is expected to have been made.
type Rail string

const (
	// RailNative is a value transfer of the chain's native coin.
	RailNative Rail = "native"

	// RailToken is an ERC-20 Transfer on the network's token contract.
	RailToken Rail = "token"
)

// Reason is the machine-readable cause of a rejected verification.
type Reason string

const (
	ReasonInvalidRequest     Reason = "invalid_request"
	ReasonUnsupportedNetwork Reason = "unsupported_network"
	ReasonTransactionFailed  Reason = "transaction_failed"
	ReasonNotNativeTransfer  Reason = "not_native_transfer"
	ReasonNotTokenTransfer   Reason = "not_token_transfer"
	ReasonNoTransferEvent    Reason = "no_transfer_event"
	ReasonPayerMismatch      Reason = "payer_mismatch"
	ReasonRecipientMismatch  Reason = "recipient_mismatch"
	ReasonAmountMismatch     Reason = "amount_mismatch"
)

// Request describes the payment a caller expects to find on chain.
//
// ExpectedAmount is a decimal string in human units ("0.25" means a quarter
// of one coin). Addresses compare case-insensitively.
type Request struct {
	TransactionHash   string `json:"transactionHash" validate:"required,txhash"`
	Network           string `json:"network" validate:"required"`
	ExpectedAmount    string `json:"expectedAmount" validate:"required,amount"`
	ExpectedRecipient string `json:"expectedRecipient" validate:"required,eth_addr"`
	ExpectedPayer     string `json:"expectedPayer" validate:"required,eth_addr"`

	// Rail overrides the network's default rail when set.
	Rail Rail `json:"rail,omitempty" validate:"omitempty,oneof=native token"`
}

// Result is the outcome of a verification.
//
// When Verified is true, Rail, Amount, From, To, BlockNumber and Timestamp
// describe the observed transfer and Error is empty. When false, Reason and Error
// explain the rejection; From, To and Amount may carry the observed values.
type Result struct {
	Verified    bool   `json:"verified"`
	Rail        Rail   `json:"rail,omitempty"`
	Amount      string `json:"amount,omitempty"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
	BlockNumber uint64 `json:"blockNumber,omitempty"`
	Timestamp   uint64 `json:"timestamp,omitempty"`
	Reason      Reason `json:"reason,omitempty"`
	Error       string `json:"error,omitempty"`
}

func reject(reason Reason, format string, args ...any) Result {
	return Result{
		Reason: reason,
		Error:  fmt.Sprintf(format, args...),
	}
}

func unsupportedNetwork(name string) Result {
	return reject(ReasonUnsupportedNetwork, "Unsupported network: %s", name)
}
