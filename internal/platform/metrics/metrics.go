package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels shared by the submission and rating update counters.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
	ResultFailed   = "failed"
	ResultPartial  = "partial"
	ResultApplied  = "applied"
)

// Recorder holds the rating engine metrics. All methods are nil-safe so the
// engine can run unmetered in tests.
type Recorder struct {
	submissions    *prometheus.CounterVec
	ratingUpdates  *prometheus.CounterVec
	submitDuration prometheus.Histogram
}

func NewRecorder(namespace string) *Recorder {
	r := &Recorder{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_submissions_total",
			Help:      "Match submissions by outcome.",
		}, []string{"result"}),
		ratingUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rating_updates_total",
			Help:      "Per-starter rating history appends by outcome.",
		}, []string{"result"}),
		submitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_submit_duration_seconds",
			Help:      "End-to-end match submission latency.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	return r
}

// Register adds the collectors to reg. Call once per recorder.
func (r *Recorder) Register(reg prometheus.Registerer) error {
	if r == nil || reg == nil {
		return nil
	}
	for _, c := range []prometheus.Collector{r.submissions, r.ratingUpdates, r.submitDuration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (r *Recorder) Submission(result string) {
	if r == nil {
		return
	}
	r.submissions.WithLabelValues(result).Inc()
}

func (r *Recorder) RatingUpdate(result string) {
	if r == nil {
		return
	}
	r.ratingUpdates.WithLabelValues(result).Inc()
}

func (r *Recorder) ObserveSubmitDuration(d time.Duration) {
	if r == nil {
		return
	}
	r.submitDuration.Observe(d.Seconds())
}
