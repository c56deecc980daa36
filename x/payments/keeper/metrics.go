package keeper

import (
	"math/big"
	"sync"

	sdkmath "cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PaymentsMetrics holds all Prometheus metrics for the payments module
type PaymentsMetrics struct {
	PaymentsCreated   *prometheus.CounterVec
	PaymentsCompleted prometheus.Counter
	PaymentsRefunded  prometheus.Counter
	EscrowsReleased   *prometheus.CounterVec
	EscrowLocked      *prometheus.GaugeVec
	PlatformFees      *prometheus.CounterVec
}

var (
	paymentsMetricsOnce sync.Once
	paymentsMetrics     *PaymentsMetrics
)

// NewPaymentsMetrics creates and registers payments metrics (singleton pattern)
func NewPaymentsMetrics() *PaymentsMetrics {
	paymentsMetricsOnce.Do(func() {
		paymentsMetrics = &PaymentsMetrics{
			PaymentsCreated: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "aivectormp",
					Subsystem: "payments",
					Name:      "payments_created_total",
					Help:      "Total query payments created",
				},
				[]string{"denom"},
			),
			PaymentsCompleted: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "aivectormp",
					Subsystem: "payments",
					Name:      "payments_completed_total",
					Help:      "Total payments completed by proof verification",
				},
			),
			PaymentsRefunded: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "aivectormp",
					Subsystem: "payments",
					Name:      "payments_refunded_total",
					Help:      "Total payments refunded to consumers",
				},
			),
			EscrowsReleased: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "aivectormp",
					Subsystem: "payments",
					Name:      "escrows_released_total",
					Help:      "Total escrows released to providers",
				},
				[]string{"denom"},
			),
			EscrowLocked: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "aivectormp",
					Subsystem: "payments",
					Name:      "escrow_locked",
					Help:      "Currently escrowed amount",
				},
				[]string{"denom"},
			),
			PlatformFees: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "aivectormp",
					Subsystem: "payments",
					Name:      "platform_fees_total",
					Help:      "Total platform fees collected",
				},
				[]string{"denom"},
			),
		}
	})
	return paymentsMetrics
}

// floatAmount converts a monetary integer to a float for metrics reporting.
// Precision loss above 2^53 is acceptable for observability.
func floatAmount(amount sdkmath.Int) float64 {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}
