// Package paymentproc turns a payment submission into a stored, published
// payment.
//
// It sits between the transport handlers and payverify: it rejects replays of
// already accepted transactions, retries verification on transient RPC
// failures, persists accepted payments for confirmation tracking and notifies
// downstream consumers.
package paymentproc

import (
	"context"
	"errors"
	"time"

	"github.com/ad402/payverify/internal/metrics"
	"github.com/ad402/payverify/internal/payverify"
	"github.com/ad402/payverify/internal/pkg/logger"
	"github.com/ad402/payverify/internal/pkg/resilience/retry"
	"github.com/ad402/payverify/internal/pkg/validator"
)

// Outcome is the result of processing a submission.
//
// Payment is set only when the submission was verified and stored.
type Outcome struct {
	Result  payverify.Result `json:"result"`
	Payment *Payment         `json:"payment,omitempty"`
}

// Service processes payment submissions.
type Service interface {
	// Process verifies req and, when it is a valid payment, stores and
	// publishes it.
	//
	// Rejections are returned in Outcome.Result with a nil error. Errors are:
	//   - ErrPaymentAlreadyRecorded if the transaction was already accepted.
	//   - errors wrapping payverify.ErrNotFound or payverify.ErrRPC when the
	//     chain could not answer, after retries.
	//   - storage errors.
	Process(ctx context.Context, req payverify.Request) (Outcome, error)

	// Payment returns a stored payment, or ErrPaymentNotFound.
	Payment(ctx context.Context, network, hash string) (Payment, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	verifier payverify.Service
	storage  PaymentStorage
	notifier Notifier
	retry    retry.Retry
	metrics  metrics.Recorder
	now      func() time.Time
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

// verify runs the verification under the retry policy.
func (s *service) verify(ctx context.Context, req payverify.Request) (payverify.Result, error) {
	start := s.now()
	defer func() {
		s.metrics.ObserveLatency(metrics.OperationVerify, s.now().Sub(start), metrics.Network(req.Network))
	}()

	var result payverify.Result
	err := s.retry.Execute(ctx, func() error {
		var err error
		result, err = s.verifier.Verify(ctx, req)
		return err
	})

	return result, err
}

// checkReplay returns ErrPaymentAlreadyRecorded when req names a transaction
// that was already accepted.
func (s *service) checkReplay(ctx context.Context, req payverify.Request) error {
	_, err := s.storage.GetPayment(ctx, req.Network, NormalizeHash(req.TransactionHash))
	switch {
	case err == nil:
		return ErrPaymentAlreadyRecorded
	case errors.Is(err, ErrPaymentNotFound):
		return nil
	default:
		return err
	}
}

// Process implements Service.
//
// Malformed requests skip the replay check and go straight to the verifier,
// which rejects them without touching the chain.
func (s *service) Process(ctx context.Context, req payverify.Request) (Outcome, error) {
	labels := metrics.Network(req.Network)

	if validator.Validate(req) == nil {
		if err := s.checkReplay(ctx, req); err != nil {
			if errors.Is(err, ErrPaymentAlreadyRecorded) {
				s.metrics.IncCounter(metrics.EventPaymentReplayed, labels)
			}
			return Outcome{}, err
		}
	}

	result, err := s.verify(ctx, req)
	if err != nil {
		s.metrics.IncCounter(metrics.EventPaymentErrored, labels)
		return Outcome{}, err
	}

	if !result.Verified {
		s.metrics.IncCounter(metrics.EventPaymentRejected, labels)
		logger.Info(ctx, "payment rejected",
			"payment.network", req.Network,
			"payment.tx_hash", req.TransactionHash,
			"payment.reason", result.Reason,
		)
		return Outcome{Result: result}, nil
	}

	payment, err := newPayment(req, result, s.now())
	if err != nil {
		return Outcome{}, err
	}

	if err := s.storage.SavePayment(ctx, payment); err != nil {
		if errors.Is(err, ErrPaymentAlreadyRecorded) {
			s.metrics.IncCounter(metrics.EventPaymentReplayed, labels)
		}
		return Outcome{}, err
	}

	if err := s.notifier.PaymentVerified(ctx, payment); err != nil {
		logger.Warn(ctx, "error publishing verified payment",
			"payment.id", payment.ID,
			"payment.network", payment.Network,
			"error", err,
		)
	}

	s.metrics.IncCounter(metrics.EventPaymentVerified, labels)
	logger.Info(ctx, "payment verified",
		"payment.id", payment.ID,
		"payment.network", payment.Network,
		"payment.tx_hash", payment.TransactionHash,
		"payment.amount", payment.Amount,
	)

	return Outcome{Result: result, Payment: &payment}, nil
}

// Payment implements Service.
func (s *service) Payment(ctx context.Context, network, hash string) (Payment, error) {
	return s.storage.GetPayment(ctx, network, NormalizeHash(hash))
}

type config struct {
	notifier Notifier
	retry    retry.Retry
	metrics  metrics.Recorder
}

// Option configures the service built by New.
type Option func(*config)

// WithNotifier publishes accepted payments through n.
func WithNotifier(n Notifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}

// WithRetry replaces the default retry policy used around verification.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithMetrics records processing events on r.
func WithMetrics(r metrics.Recorder) Option {
	return func(c *config) {
		c.metrics = r
	}
}

// RetryRPCErrors reports whether err is worth retrying: only transport and
// provider failures are.
func RetryRPCErrors(err error) bool {
	return errors.Is(err, payverify.ErrRPC)
}

// New creates a payment processing service.
//
// By default verification is attempted up to 3 times, retrying only
// payverify.ErrRPC failures, no events are published and no metrics are
// recorded.
func New(verifier payverify.Service, storage PaymentStorage, opts ...Option) *service {
	cfg := config{
		notifier: nopNotifier{},
		retry: retry.New(
			retry.WithAttempts(3),
			retry.WithDelay(500*time.Millisecond),
			retry.WithRetryIf(RetryRPCErrors),
		),
		metrics: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		verifier: verifier,
		storage:  storage,
		notifier: cfg.notifier,
		retry:    cfg.retry,
		metrics:  cfg.metrics,
		now:      time.Now,
	}
}
