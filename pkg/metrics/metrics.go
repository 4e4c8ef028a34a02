package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ExportsTotal — попытки выгрузки по итогу: created|idempotent|failed.
	ExportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "altek_exports_total",
			Help: "Number of export attempts by outcome",
		},
		[]string{"result"},
	)
	// ExcludedItemsTotal — позиции, отброшенные фильтром исключений.
	ExcludedItemsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "altek_excluded_items_total",
			Help: "Number of order lines dropped by the exclusion filter",
		},
	)
	// ExportDuration — длительность одной попытки выгрузки.
	ExportDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "altek_export_duration_seconds",
			Help:    "Duration of a single export attempt",
			Buckets: prometheus.DefBuckets,
		},
	)
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует все коллекторы; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			ExportsTotal, ExcludedItemsTotal, ExportDuration,
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		)
	})
}
