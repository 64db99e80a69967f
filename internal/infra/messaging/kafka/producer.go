// Package kafka publishes payment events to a Kafka topic.
//
// Every message is a JSON Envelope keyed by "<network>:<transaction hash>", so
// all events of one payment land on the same partition in order.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ad402/payverify/internal/confirmwatch"
	"github.com/ad402/payverify/internal/paymentproc"

	"github.com/IBM/sarama"
)

// Event types carried in Envelope.Type.
const (
	EventPaymentVerified  = "payment.verified"
	EventPaymentConfirmed = "payment.confirmed"
)

// Envelope wraps an event payload with its type and emission time (unix ms).
type Envelope struct {
	Type string          `json:"type"`
	TS   int64           `json:"ts"`
	Data json.RawMessage `json:"data"`
}

type Producer struct {
	topic string
	sp    sarama.SyncProducer
	now   func() time.Time
}

var (
	_ paymentproc.Notifier  = (*Producer)(nil)
	_ confirmwatch.Notifier = (*Producer)(nil)
)

// NewProducer connects a synchronous producer to brokers. cfg may be nil;
// delivery reports are always enabled since SendMessage waits for them.
func NewProducer(brokers []string, topic string, cfg *sarama.Config) (*Producer, error) {
	if cfg == nil {
		cfg = sarama.NewConfig()
		cfg.Producer.RequiredAcks = sarama.WaitForAll
		cfg.Producer.Retry.Max = 5
		cfg.Producer.Retry.Backoff = 200 * time.Millisecond
	}
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true

	sp, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return newProducer(sp, topic), nil
}

func newProducer(sp sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		topic: topic,
		sp:    sp,
		now:   time.Now,
	}
}

func (p *Producer) Close() error {
	if p.sp != nil {
		return p.sp.Close()
	}
	return nil
}

// PaymentVerified implements paymentproc.Notifier.
func (p *Producer) PaymentVerified(ctx context.Context, payment paymentproc.Payment) error {
	return p.emit(ctx, EventPaymentVerified, payment)
}

// PaymentConfirmed implements confirmwatch.Notifier.
func (p *Producer) PaymentConfirmed(ctx context.Context, payment paymentproc.Payment) error {
	return p.emit(ctx, EventPaymentConfirmed, payment)
}

func (p *Producer) emit(ctx context.Context, typ string, payment paymentproc.Payment) error {
	// SyncProducer takes no context; honour cancellation before sending.
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(payment)
	if err != nil {
		return err
	}

	b, err := json.Marshal(Envelope{
		Type: typ,
		TS:   p.now().UnixMilli(),
		Data: data,
	})
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(payment.Network + ":" + payment.TransactionHash),
		Value: sarama.ByteEncoder(b),
	}
	if _, _, err := p.sp.SendMessage(msg); err != nil {
		return fmt.Errorf("kafka emit %s failed: %w", typ, err)
	}

	return nil
}
