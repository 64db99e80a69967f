// Package metrics records payment events and operation latencies.
//
// Counters are keyed by event type and network, histograms by operation and
// network. Callers depend on Recorder; NoopRecorder is the default wherever a
// recorder is optional.
package metrics

import "time"

// Event types counted by the services.
const (
	EventPaymentVerified  = "payment_verified"
	EventPaymentRejected  = "payment_rejected"
	EventPaymentReplayed  = "payment_replayed"
	EventPaymentErrored   = "payment_errored"
	EventPaymentConfirmed = "payment_confirmed"
	EventPaymentExpired   = "payment_expired"
	EventRateLimited      = "rate_limited"
)

// Operations timed by the services.
const (
	OperationVerify       = "verify"
	OperationConfirmCheck = "confirm_check"
)

type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}

// Network builds the label set used by every recorder call.
func Network(name string) map[string]string {
	return map[string]string{"network": name}
}
