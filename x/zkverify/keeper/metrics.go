package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ZkverifyMetrics holds all Prometheus metrics for the zkverify module
type ZkverifyMetrics struct {
	KeysRegistered      *prometheus.CounterVec
	ProofsSubmitted     prometheus.Counter
	ProofsVerified      *prometheus.CounterVec
	ProofsRejected      *prometheus.CounterVec
	ChallengesRaised    prometheus.Counter
	ChallengesAccepted  prometheus.Counter
	ChallengesDismissed prometheus.Counter
}

var (
	zkverifyMetricsOnce sync.Once
	zkverifyMetrics     *ZkverifyMetrics
)

// NewZkverifyMetrics creates and registers zkverify metrics (singleton pattern)
func NewZkverifyMetrics() *ZkverifyMetrics {
	zkverifyMetricsOnce.Do(func() {
		zkverifyMetrics = &ZkverifyMetrics{
			KeysRegistered: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "aivectormp",
					Subsystem: "zkverify",
					Name:      "verification_keys_registered_total",
					Help:      "Total verification keys registered",
				},
				[]string{"circuit_type"},
			),
			ProofsSubmitted: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "aivectormp",
					Subsystem: "zkverify",
					Name:      "proofs_submitted_total",
					Help:      "Total execution proofs submitted",
				},
			),
			ProofsVerified: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "aivectormp",
					Subsystem: "zkverify",
					Name:      "proofs_verified_total",
					Help:      "Total proofs that passed verification",
				},
				[]string{"circuit_type"},
			),
			ProofsRejected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "aivectormp",
					Subsystem: "zkverify",
					Name:      "proofs_rejected_total",
					Help:      "Total proofs that failed verification",
				},
				[]string{"circuit_type"},
			),
			ChallengesRaised: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "aivectormp",
					Subsystem: "zkverify",
					Name:      "challenges_raised_total",
					Help:      "Total challenges raised against verified proofs",
				},
			),
			ChallengesAccepted: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "aivectormp",
					Subsystem: "zkverify",
					Name:      "challenges_accepted_total",
					Help:      "Total challenges resolved in the challenger's favor",
				},
			),
			ChallengesDismissed: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "aivectormp",
					Subsystem: "zkverify",
					Name:      "challenges_dismissed_total",
					Help:      "Total challenges dismissed with stake forfeited",
				},
			),
		}
	})
	return zkverifyMetrics
}
