package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters use bounded labels only: move names come from the catalog and
// reasons from a fixed enum.
var (
	attacksStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beachbomb_attacks_started_total",
		Help: "Attacks started, by move",
	}, []string{"move"})

	attacksRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beachbomb_attacks_rejected_total",
		Help: "Attack requests rejected, by reason",
	}, []string{"reason"})

	followups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beachbomb_followups_total",
		Help: "Follow-up cancels accepted",
	}, []string{"from", "to"})

	desyncHeals = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beachbomb_desync_heals_total",
		Help: "Animation parameters reset because their state was not active",
	}, []string{"param"})

	slips = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beachbomb_slips_total",
		Help: "Slips triggered, by trigger",
	}, []string{"trigger"}) // "mash_<action>" or "stuck"

	landings = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beachbomb_landings_total",
		Help: "Landings by severity",
	}, []string{"severity"})

	droppedWrites = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beachbomb_vertical_writes_dropped_total",
		Help: "Vertical velocity writes refused because another authority owned the tick",
	})
)

func AttackStarted(move string) {
	attacksStarted.WithLabelValues(move).Inc()
}

func AttackRejected(reason string) {
	attacksRejected.WithLabelValues(reason).Inc()
}

func Followup(from, to string) {
	followups.WithLabelValues(from, to).Inc()
}

func DesyncHealed(param string) {
	desyncHeals.WithLabelValues(param).Inc()
}

func Slip(trigger string) {
	slips.WithLabelValues(trigger).Inc()
}

func Landing(severity string) {
	landings.WithLabelValues(severity).Inc()
}

func VerticalWriteDropped() {
	droppedWrites.Inc()
}
