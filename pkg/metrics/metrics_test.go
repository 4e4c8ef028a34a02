package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/wc_altek/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	t.Helper()
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestExportCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeCreated := testutil.ToFloat64(metrics.ExportsTotal.WithLabelValues("created"))
	beforeFailed := testutil.ToFloat64(metrics.ExportsTotal.WithLabelValues("failed"))
	beforeExcluded := testutil.ToFloat64(metrics.ExcludedItemsTotal)

	metrics.ExportsTotal.WithLabelValues("created").Inc()
	metrics.ExcludedItemsTotal.Add(3)

	if got := testutil.ToFloat64(metrics.ExportsTotal.WithLabelValues("created")); got != beforeCreated+1 {
		t.Fatalf("ExportsTotal(created): got=%v want=%v", got, beforeCreated+1)
	}
	if got := testutil.ToFloat64(metrics.ExportsTotal.WithLabelValues("failed")); got != beforeFailed {
		t.Fatalf("ExportsTotal(failed): got=%v want=%v", got, beforeFailed)
	}
	if got := testutil.ToFloat64(metrics.ExcludedItemsTotal); got != beforeExcluded+3 {
		t.Fatalf("ExcludedItemsTotal: got=%v want=%v", got, beforeExcluded+3)
	}
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeConsumed := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("exports"))
	beforeFailed := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("exports"))

	metrics.KafkaMessagesConsumed.WithLabelValues("exports").Inc()
	metrics.KafkaMessagesFailed.WithLabelValues("exports").Inc()

	if got := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("exports")); got != beforeConsumed+1 {
		t.Fatalf("KafkaMessagesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("exports")); got != beforeFailed+1 {
		t.Fatalf("KafkaMessagesFailed: got=%v want=%v", got, beforeFailed+1)
	}
}
