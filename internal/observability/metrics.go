package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "fit_client"

var (
	collectionFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "collection",
		Name:      "fetches_total",
		Help:      "Collection fetches by resource and outcome (accepted, stale, failed).",
	}, []string{"resource", "outcome"})
	sessionTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "session",
		Name:      "transitions_total",
		Help:      "Session status transitions by target status.",
	}, []string{"status"})
	notificationsPosted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "notifications",
		Name:      "posted_total",
		Help:      "Notifications posted by kind.",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(collectionFetches, sessionTransitions, notificationsPosted)
}

func RecordFetch(resource, outcome string) {
	collectionFetches.WithLabelValues(resource, outcome).Inc()
}

func RecordSessionTransition(status string) {
	sessionTransitions.WithLabelValues(status).Inc()
}

func RecordNotification(kind string) {
	notificationsPosted.WithLabelValues(kind).Inc()
}

// FetchCounter exposes the underlying series for assertions.
func FetchCounter(resource, outcome string) prometheus.Counter {
	return collectionFetches.WithLabelValues(resource, outcome)
}

func SessionTransitionCounter(status string) prometheus.Counter {
	return sessionTransitions.WithLabelValues(status)
}

func NotificationCounter(kind string) prometheus.Counter {
	return notificationsPosted.WithLabelValues(kind)
}

// WriteSummary prints every non-zero client counter as "name{labels} value".
func WriteSummary(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), namespace+"_") {
			continue
		}
		for _, metric := range family.GetMetric() {
			value := metric.GetCounter().GetValue()
			if value == 0 {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", family.GetName(), formatLabels(metric.GetLabel()), value))
		}
	}
	sort.Strings(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", pair.GetName(), pair.GetValue()))
	}
	return strings.Join(parts, ",")
}
