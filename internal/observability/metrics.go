package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	eventsDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wingnrp",
			Subsystem: "decoder",
			Name:      "events_total",
			Help:      "Decoder events produced, by kind.",
		},
		[]string{"addr", "kind"},
	)
	opcodesIgnored = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wingnrp",
			Subsystem: "decoder",
			Name:      "opcodes_ignored_total",
			Help:      "Informational or unknown opcodes seen, by reason.",
		},
		[]string{"addr", "reason"},
	)
	escapeQuirks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wingnrp",
			Subsystem: "demux",
			Name:      "escape_quirks_total",
			Help:      "Occurrences of the §4.2 rule-4 escape pass-through quirk.",
		},
		[]string{"addr"},
	)
	keepAlivesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wingnrp",
			Subsystem: "connection",
			Name:      "keepalives_sent_total",
			Help:      "Channel-select handshakes sent: the one at connect plus each keep-alive resend.",
		},
		[]string{"addr"},
	)
	eventDispatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wingnrp",
			Subsystem: "connection",
			Name:      "event_dispatch_seconds",
			Help:      "Time spent in an EventSink callback.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"addr", "kind"},
	)
)

// RegisterMetrics registers all collectors with the default Prometheus
// registry. Safe to call more than once.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			eventsDecoded,
			opcodesIgnored,
			escapeQuirks,
			keepAlivesSent,
			eventDispatchDuration,
		)
	})
}

// RecordEvent records one decoder event of the given kind for addr.
func RecordEvent(addr, kind string) {
	RegisterMetrics()
	eventsDecoded.WithLabelValues(addr, kind).Inc()
}

// RecordOpcodeIgnored records one informational/unknown opcode seen for
// addr, tagged with a short reason (e.g. "fast-index", "unknown").
func RecordOpcodeIgnored(addr, reason string) {
	RegisterMetrics()
	opcodesIgnored.WithLabelValues(addr, reason).Inc()
}

// RecordEscapeQuirk records one occurrence of the escape pass-through
// quirk on addr's demux.
func RecordEscapeQuirk(addr string) {
	RegisterMetrics()
	escapeQuirks.WithLabelValues(addr).Inc()
}

// RecordKeepAlive records one channel-select handshake sent on addr,
// whether the initial one at connect or a keep-alive resend.
func RecordKeepAlive(addr string) {
	RegisterMetrics()
	keepAlivesSent.WithLabelValues(addr).Inc()
}

// RecordEventDispatch records the time spent inside an EventSink
// callback for addr and event kind.
func RecordEventDispatch(addr, kind string, d time.Duration) {
	RegisterMetrics()
	eventDispatchDuration.WithLabelValues(addr, kind).Observe(d.Seconds())
}
