// Package confirmwatch follows verified payments until the chain has built
// enough blocks on top of them.
//
// A poller lists the pending payments of every network at a fixed interval
// and hands them to a pool of workers. A payment already queued or being
// checked is not handed out again until its worker is done. A worker asks the Checker whether the
// payment is confirmed: confirmed payments are marked and published, payments
// pending for longer than the maximum age are dropped from the queue.
package confirmwatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ad402/payverify/internal/metrics"
	"github.com/ad402/payverify/internal/paymentproc"
	"github.com/ad402/payverify/internal/payverify"
	"github.com/ad402/payverify/internal/pkg/logger"
	"github.com/ad402/payverify/internal/pkg/x/chflow"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

const pendingChannelBufferSize = 32

// Service is the confirmation watcher lifecycle.
type Service interface {
	// Start launches the poller and the workers. They run until ctx is done
	// or Close is called.
	Start(ctx context.Context) error

	// Close stops every goroutine started by Start and waits for them. It is
	// safe to call Close on a service that was never started.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	// inFlight holds the payments between enqueue and the end of their check.
	inFlightMu sync.Mutex
	inFlight   map[string]struct{}

	networks []string
	checker  Checker
	storage  PendingStorage
	notifier Notifier
	metrics  metrics.Recorder
	now      func() time.Time

	interval         time.Duration
	minConfirmations uint64
	maxPendingAge    time.Duration
	batchSize        int
	workers          int
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	s.inFlightMu.Lock()
	s.inFlight = make(map[string]struct{})
	s.inFlightMu.Unlock()

	var (
		wg        sync.WaitGroup
		pendingCh = make(chan paymentproc.Payment, pendingChannelBufferSize)
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.poll(ctx, pendingCh)
	}()

	for range s.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.work(ctx, pendingCh)
		}()
	}

	s.closeFunc = func() {
		cancel()
		wg.Wait()
	}
	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

// poll enqueues pending payments every interval. It owns pendingCh and closes
// it on return.
func (s *service) poll(ctx context.Context, pendingCh chan<- paymentproc.Payment) {
	defer close(pendingCh)

	for {
		if !s.enqueuePending(ctx, pendingCh) {
			return
		}

		if !chflow.Sleep(ctx, s.interval) {
			return
		}
	}
}

// enqueuePending sends one batch per network. It returns false once ctx is
// done.
func (s *service) enqueuePending(ctx context.Context, pendingCh chan<- paymentproc.Payment) bool {
	for _, network := range s.networks {
		payments, err := s.storage.ListPending(ctx, network, s.batchSize)
		if err != nil {
			logger.Error(ctx, "error listing pending payments",
				"payment.network", network,
				"error", err,
			)
			continue
		}

		for _, p := range payments {
			if !s.claim(p) {
				continue
			}

			if !chflow.Send(ctx, pendingCh, p) {
				s.release(p)
				return false
			}
		}
	}

	return ctx.Err() == nil
}

func (s *service) work(ctx context.Context, pendingCh <-chan paymentproc.Payment) {
	for {
		p, ok := chflow.Receive(ctx, pendingCh)
		if !ok {
			return
		}

		s.check(ctx, p)
		s.release(p)
	}
}

func inFlightKey(p paymentproc.Payment) string {
	return p.Network + ":" + p.TransactionHash
}

// claim marks p as in flight. It returns false if it already was.
func (s *service) claim(p paymentproc.Payment) bool {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()

	key := inFlightKey(p)
	if _, ok := s.inFlight[key]; ok {
		return false
	}

	s.inFlight[key] = struct{}{}
	return true
}

func (s *service) release(p paymentproc.Payment) {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()

	delete(s.inFlight, inFlightKey(p))
}

// check settles one pending payment.
func (s *service) check(ctx context.Context, p paymentproc.Payment) {
	labels := metrics.Network(p.Network)

	start := s.now()
	confirmed := s.checker.IsConfirmed(ctx, p.TransactionHash, p.Network, s.minConfirmations)
	s.metrics.ObserveLatency(metrics.OperationConfirmCheck, s.now().Sub(start), labels)

	if confirmed {
		s.confirm(ctx, p)
		return
	}

	if s.maxPendingAge > 0 && s.now().Sub(p.VerifiedAt) > s.maxPendingAge {
		if err := s.storage.DropPending(ctx, p.Network, p.TransactionHash); err != nil {
			logger.Error(ctx, "error dropping expired payment",
				"payment.id", p.ID,
				"payment.network", p.Network,
				"error", err,
			)
			return
		}

		s.metrics.IncCounter(metrics.EventPaymentExpired, labels)
		logger.Warn(ctx, "payment not confirmed in time, stopped tracking",
			"payment.id", p.ID,
			"payment.network", p.Network,
			"payment.tx_hash", p.TransactionHash,
			"payment.verified_at", p.VerifiedAt,
		)
	}
}

func (s *service) confirm(ctx context.Context, p paymentproc.Payment) {
	updated, err := s.storage.MarkConfirmed(ctx, p.Network, p.TransactionHash, s.now().UTC())
	if errors.Is(err, paymentproc.ErrPaymentAlreadyConfirmed) {
		logger.Debug(ctx, "payment already confirmed",
			"payment.id", p.ID,
			"payment.network", p.Network,
		)
		return
	}
	if err != nil {
		logger.Error(ctx, "error marking payment confirmed",
			"payment.id", p.ID,
			"payment.network", p.Network,
			"error", err,
		)
		return
	}

	if err := s.notifier.PaymentConfirmed(ctx, updated); err != nil {
		logger.Warn(ctx, "error publishing confirmed payment",
			"payment.id", updated.ID,
			"error", err,
		)
	}

	s.metrics.IncCounter(metrics.EventPaymentConfirmed, metrics.Network(p.Network))
	logger.Info(ctx, "payment confirmed",
		"payment.id", updated.ID,
		"payment.network", updated.Network,
		"payment.tx_hash", updated.TransactionHash,
	)
}

type config struct {
	notifier         Notifier
	metrics          metrics.Recorder
	interval         time.Duration
	minConfirmations uint64
	maxPendingAge    time.Duration
	batchSize        int
	workers          int
}

type Option func(*config)

// WithInterval sets the time between two polls. Default: 15 seconds.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		c.interval = d
	}
}

// WithMinConfirmations sets the depth a payment needs. Default:
// payverify.DefaultMinConfirmations.
func WithMinConfirmations(n uint64) Option {
	return func(c *config) {
		c.minConfirmations = n
	}
}

// WithMaxPendingAge stops tracking payments still unconfirmed after d. Zero
// tracks them forever. Default: 1 hour.
func WithMaxPendingAge(d time.Duration) Option {
	return func(c *config) {
		c.maxPendingAge = d
	}
}

// WithBatchSize caps the payments listed per network and poll. Default: 100.
func WithBatchSize(n int) Option {
	return func(c *config) {
		c.batchSize = n
	}
}

// WithWorkers sets the number of concurrent checks. Default: 4.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = max(n, 1)
	}
}

func WithNotifier(n Notifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(c *config) {
		c.metrics = r
	}
}

// New creates a confirmation watcher over the given networks.
func New(networks []string, checker Checker, storage PendingStorage, opts ...Option) *service {
	cfg := config{
		notifier:         nopNotifier{},
		metrics:          metrics.NoopRecorder{},
		interval:         15 * time.Second,
		minConfirmations: payverify.DefaultMinConfirmations,
		maxPendingAge:    time.Hour,
		batchSize:        100,
		workers:          4,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		networks:         networks,
		checker:          checker,
		storage:          storage,
		notifier:         cfg.notifier,
		metrics:          cfg.metrics,
		now:              time.Now,
		inFlight:         make(map[string]struct{}),
		interval:         cfg.interval,
		minConfirmations: cfg.minConfirmations,
		maxPendingAge:    cfg.maxPendingAge,
		batchSize:        cfg.batchSize,
		workers:          cfg.workers,
	}
}
