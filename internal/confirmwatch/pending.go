package confirmwatch

import (
	"context"
	"time"

	"github.com/ad402/payverify/internal/paymentproc"
)

// PendingStorage is the queue of payments waiting for enough confirmations.
type PendingStorage interface {
	// ListPending returns up to limit pending payments of network, oldest
	// first.
	ListPending(ctx context.Context, network string, limit int) ([]paymentproc.Payment, error)

	// MarkConfirmed flags the payment as confirmed at the given time, removes
	// it from the queue and returns the updated record. It returns
	// paymentproc.ErrPaymentAlreadyConfirmed when the payment was confirmed
	// before.
	MarkConfirmed(ctx context.Context, network, hash string, at time.Time) (paymentproc.Payment, error)

	// DropPending removes the payment from the queue and leaves its record
	// untouched.
	DropPending(ctx context.Context, network, hash string) error
}

// Checker reports whether a transaction is deep enough in the chain.
// payverify.Service satisfies it.
type Checker interface {
	IsConfirmed(ctx context.Context, hash, network string, minConfirmations uint64) bool
}

// Notifier publishes confirmed payments.
type Notifier interface {
	PaymentConfirmed(ctx context.Context, p paymentproc.Payment) error
}

type nopNotifier struct{}

func (nopNotifier) PaymentConfirmed(context.Context, paymentproc.Payment) error { return nil }
