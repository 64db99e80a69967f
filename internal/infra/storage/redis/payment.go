package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ad402/payverify/internal/confirmwatch"
	"github.com/ad402/payverify/internal/paymentproc"

	"github.com/redis/go-redis/v9"
)

// paymentKeyPrefix is the Redis key namespace of payment records and of the
// pending-confirmation queues.
const paymentKeyPrefix = "payment"

// paymentRecordKey is the key of the JSON record of a payment. Its existence
// is what makes a transaction hash a replay.
func paymentRecordKey(network, hash string) string {
	return fmt.Sprintf("%s:record:%s:%s", paymentKeyPrefix, network, hash)
}

// paymentPendingKey is the sorted set of unconfirmed payments of a network,
// scored by verification time in unix milliseconds.
func paymentPendingKey(network string) string {
	return fmt.Sprintf("%s:pending:%s", paymentKeyPrefix, network)
}

// SavePayment stores the payment record with SETNX and queues it for
// confirmation tracking.
//
// Returns:
//   - nil if the payment was stored.
//   - paymentproc.ErrPaymentAlreadyRecorded if a record already exists.
//   - any other error if a Redis operation fails.
func (s *client) SavePayment(ctx context.Context, p paymentproc.Payment) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	ok, err := s.conn.SetNX(ctx, paymentRecordKey(p.Network, p.TransactionHash), data, 0).Result()
	if err != nil {
		return err
	}

	if !ok {
		return paymentproc.ErrPaymentAlreadyRecorded
	}

	if p.Confirmed {
		return nil
	}

	return s.conn.ZAdd(ctx, paymentPendingKey(p.Network), redis.Z{
		Score:  float64(p.VerifiedAt.UnixMilli()),
		Member: p.TransactionHash,
	}).Err()
}

// GetPayment returns the stored payment or paymentproc.ErrPaymentNotFound.
func (s *client) GetPayment(ctx context.Context, network, hash string) (paymentproc.Payment, error) {
	data, err := s.conn.Get(ctx, paymentRecordKey(network, hash)).Bytes()
	if errors.Is(err, redis.Nil) {
		return paymentproc.Payment{}, paymentproc.ErrPaymentNotFound
	}
	if err != nil {
		return paymentproc.Payment{}, err
	}

	var p paymentproc.Payment
	return p, json.Unmarshal(data, &p)
}

// ListPending returns the oldest pending payments of network. Queue entries
// whose record disappeared are skipped.
func (s *client) ListPending(ctx context.Context, network string, limit int) ([]paymentproc.Payment, error) {
	if limit <= 0 {
		return nil, nil
	}

	hashes, err := s.conn.ZRange(ctx, paymentPendingKey(network), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	if len(hashes) == 0 {
		return nil, nil
	}

	keys := make([]string, len(hashes))
	for i, h := range hashes {
		keys[i] = paymentRecordKey(network, h)
	}

	values, err := s.conn.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	payments := make([]paymentproc.Payment, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}

		var p paymentproc.Payment
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, nil
}

// MarkConfirmed rewrites the record as confirmed and dequeues it in a single
// transaction, watching the record so that only one caller can confirm it.
//
// Returns:
//   - the updated payment on success.
//   - paymentproc.ErrPaymentNotFound if there is no record.
//   - paymentproc.ErrPaymentAlreadyConfirmed if the record is already
//     confirmed or was confirmed concurrently.
//   - any other error if a Redis operation fails.
func (s *client) MarkConfirmed(ctx context.Context, network, hash string, at time.Time) (paymentproc.Payment, error) {
	key := paymentRecordKey(network, hash)

	var p paymentproc.Payment
	err := s.conn.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return paymentproc.ErrPaymentNotFound
		}
		if err != nil {
			return err
		}

		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}

		if p.Confirmed {
			return paymentproc.ErrPaymentAlreadyConfirmed
		}

		p.Confirmed = true
		p.ConfirmedAt = &at

		data, err = json.Marshal(p)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.ZRem(ctx, paymentPendingKey(network), hash)
			return nil
		})
		return err
	}, key)

	// Records are only rewritten here, so a lost WATCH means another caller
	// confirmed the payment first.
	if errors.Is(err, redis.TxFailedErr) {
		return paymentproc.Payment{}, paymentproc.ErrPaymentAlreadyConfirmed
	}
	if err != nil {
		return paymentproc.Payment{}, err
	}

	return p, nil
}

// DropPending removes hash from the pending queue of network.
func (s *client) DropPending(ctx context.Context, network, hash string) error {
	return s.conn.ZRem(ctx, paymentPendingKey(network), hash).Err()
}

// Ensure the client satisfies the storage interfaces at compile time.
var (
	_ paymentproc.PaymentStorage  = new(client)
	_ confirmwatch.PendingStorage = new(client)
)
