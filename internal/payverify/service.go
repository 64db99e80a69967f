package payverify

import (
	"context"
	"errors"
	"time"

	"github.com/ad402/payverify/internal/pkg/logger"
	"github.com/ad402/payverify/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// DefaultMinConfirmations is the confirmation depth used when a caller asks
// for zero.
const DefaultMinConfirmations = 3

// defaultTimeout bounds a whole verification, all RPC calls included.
const defaultTimeout = 10 * time.Second

var tracer = otel.Tracer("github.com/ad402/payverify/internal/payverify")

// Service verifies payments and reports confirmation depth.
type Service interface {
	// Verify checks req against chain state. Rejections are returned in the
	// Result with a nil error. The error is non-nil only when the outcome is
	// unknown: it wraps ErrNotFound or ErrRPC.
	Verify(ctx context.Context, req Request) (Result, error)

	// IsConfirmed reports whether the transaction is at least
	// minConfirmations blocks deep. Zero means DefaultMinConfirmations.
	// Any failure yields false.
	IsConfirmed(ctx context.Context, hash, network string, minConfirmations uint64) bool

	// Confirmations returns how many blocks were mined on top of the block
	// that included the transaction.
	Confirmations(ctx context.Context, hash, network string) (uint64, error)

	// Networks lists the networks payments can be verified on.
	Networks() []Network
}

// verifier checks one rail.
type verifier interface {
	verify(ctx context.Context, client ChainClient, exp expectation) (Result, error)
}

type service struct {
	registry *Registry
	clients  map[string]ChainClient
	timeout  time.Duration
}

var _ Service = (*service)(nil)

// resolve returns the network and its client. A network without a client is
// treated as unsupported.
func (s *service) resolve(name string) (Network, ChainClient, bool) {
	network, ok := s.registry.Lookup(name)
	if !ok {
		return Network{}, nil, false
	}

	client, ok := s.clients[name]
	if !ok || client == nil {
		return Network{}, nil, false
	}

	return network, client, true
}

// verifierFor picks the verifier of rail, or of the network default when rail
// is empty, and returns the rail it resolved to.
func (s *service) verifierFor(network Network, rail Rail) (verifier, Rail, bool) {
	if rail == "" {
		rail = network.defaultRail()
	}

	switch rail {
	case RailNative:
		return nativeVerifier{decimals: network.nativeDecimals()}, rail, true
	case RailToken:
		contract, ok := network.Token()
		if !ok {
			return nil, "", false
		}
		return tokenVerifier{contract: contract, decimals: network.tokenDecimals()}, rail, true
	default:
		return nil, "", false
	}
}

func parseExpectation(req Request) (expectation, error) {
	amount, err := decimal.NewFromString(req.ExpectedAmount)
	if err != nil {
		return expectation{}, err
	}

	return expectation{
		hash:      common.HexToHash(req.TransactionHash),
		payer:     common.HexToAddress(req.ExpectedPayer),
		recipient: common.HexToAddress(req.ExpectedRecipient),
		amount:    amount,
	}, nil
}

// Verify implements Service.
func (s *service) Verify(ctx context.Context, req Request) (result Result, err error) {
	ctx, span := tracer.Start(ctx, "payverify.Verify", trace.WithAttributes(
		attribute.String("payment.network", req.Network),
		attribute.String("payment.rail", string(req.Rail)),
		attribute.String("payment.tx_hash", req.TransactionHash),
	))
	defer func() {
		span.SetAttributes(
			attribute.Bool("payment.verified", result.Verified),
			attribute.String("payment.reason", string(result.Reason)),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := validator.Validate(req); err != nil {
		return reject(ReasonInvalidRequest, "Invalid request: %s", err), nil
	}

	exp, err := parseExpectation(req)
	if err != nil {
		return reject(ReasonInvalidRequest, "Invalid request: %s", err), nil
	}

	network, client, ok := s.resolve(req.Network)
	if !ok {
		return unsupportedNetwork(req.Network), nil
	}

	v, rail, ok := s.verifierFor(network, req.Rail)
	if !ok {
		return unsupportedNetwork(req.Network), nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err = v.verify(ctx, client, exp)
	if err != nil {
		return Result{}, err
	}
	if result.Verified {
		result.Rail = rail
	}

	logger.Debug(ctx, "payment verification finished",
		"payment.network", req.Network,
		"payment.tx_hash", req.TransactionHash,
		"payment.verified", result.Verified,
		"payment.reason", result.Reason,
	)

	return result, nil
}

// Confirmations implements Service.
func (s *service) Confirmations(ctx context.Context, hash, network string) (uint64, error) {
	if !isTransactionHash(hash) {
		return 0, ErrInvalidTransactionHash
	}

	_, client, ok := s.resolve(network)
	if !ok {
		return 0, ErrUnsupportedNetwork
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		receipt Receipt
		head    uint64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		receipt, err = client.TransactionReceipt(gctx, common.HexToHash(hash))
		return err
	})
	g.Go(func() error {
		var err error
		head, err = client.BlockNumber(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return 0, err
	}

	if head < receipt.BlockNumber {
		return 0, nil
	}

	return head - receipt.BlockNumber, nil
}

// IsConfirmed implements Service.
func (s *service) IsConfirmed(ctx context.Context, hash, network string, minConfirmations uint64) bool {
	if minConfirmations == 0 {
		minConfirmations = DefaultMinConfirmations
	}

	confirmations, err := s.Confirmations(ctx, hash, network)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn(ctx, "confirmation check failed",
				"payment.network", network,
				"payment.tx_hash", hash,
				"error", err,
			)
		}
		return false
	}

	return confirmations >= minConfirmations
}

// Networks implements Service.
func (s *service) Networks() []Network {
	return s.registry.Networks()
}

func isTransactionHash(s string) bool {
	b, err := hexutil.Decode(s)
	return err == nil && len(b) == common.HashLength
}

type config struct {
	timeout time.Duration
}

// Option configures the service built by New.
type Option func(*config)

// WithTimeout bounds each Verify and Confirmations call, RPC calls included.
// Default: 10 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// New returns a Service over registry. clients holds one ChainClient per
// network name; registered networks without a client are unsupported.
func New(registry *Registry, clients map[string]ChainClient, opts ...Option) *service {
	cfg := config{
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		registry: registry,
		clients:  clients,
		timeout:  cfg.timeout,
	}
}
