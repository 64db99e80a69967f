package paymentproc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ad402/payverify/internal/payverify"

	"github.com/google/uuid"
)

var (
	// ErrPaymentAlreadyRecorded is returned when a transaction hash was already
	// accepted as a payment on the same network.
	ErrPaymentAlreadyRecorded = errors.New("payment already recorded")

	// ErrPaymentNotFound is returned when no payment is stored for a
	// network and transaction hash.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrPaymentAlreadyConfirmed is returned when a payment is marked
	// confirmed a second time.
	ErrPaymentAlreadyConfirmed = errors.New("payment already confirmed")
)

// Payment is a verified payment as it is persisted and published.
//
// Addresses and the transaction hash are lowercase hex; Amount is in human
// units of the asset of Rail.
type Payment struct {
	ID              string         `json:"id"`
	Network         string         `json:"network"`
	Rail            payverify.Rail `json:"rail"`
	TransactionHash string         `json:"transactionHash"`
	Payer           string         `json:"payer"`
	Recipient       string         `json:"recipient"`
	Amount          string         `json:"amount"`
	BlockNumber     uint64         `json:"blockNumber"`
	BlockTimestamp  uint64         `json:"blockTimestamp"`
	Confirmed       bool           `json:"confirmed"`
	VerifiedAt      time.Time      `json:"verifiedAt"`
	ConfirmedAt     *time.Time     `json:"confirmedAt,omitempty"`
}

// PaymentStorage persists verified payments.
type PaymentStorage interface {
	// SavePayment stores p and queues it for confirmation tracking.
	//
	// The write must be atomic per (network, transaction hash): a second
	// payment for the same pair returns ErrPaymentAlreadyRecorded.
	SavePayment(ctx context.Context, p Payment) error

	// GetPayment returns the payment stored for network and hash, or
	// ErrPaymentNotFound.
	GetPayment(ctx context.Context, network, hash string) (Payment, error)
}

// Notifier publishes accepted payments to downstream consumers.
type Notifier interface {
	// PaymentVerified is called once per payment, after it is stored.
	PaymentVerified(ctx context.Context, p Payment) error
}

// nopNotifier discards every event.
type nopNotifier struct{}

func (nopNotifier) PaymentVerified(context.Context, Payment) error { return nil }

// NormalizeHash returns the canonical form of a transaction hash used as a
// storage key.
func NormalizeHash(hash string) string {
	return strings.ToLower(hash)
}

// newPayment builds the record of a verified payment.
func newPayment(req payverify.Request, result payverify.Result, now time.Time) (Payment, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Payment{}, err
	}

	return Payment{
		ID:              id.String(),
		Network:         req.Network,
		Rail:            result.Rail,
		TransactionHash: NormalizeHash(req.TransactionHash),
		Payer:           result.From,
		Recipient:       result.To,
		Amount:          result.Amount,
		BlockNumber:     result.BlockNumber,
		BlockTimestamp:  result.Timestamp,
		VerifiedAt:      now.UTC(),
	}, nil
}
