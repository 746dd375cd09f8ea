package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
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

var (
	PaymentsValidated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_validated_total",
			Help: "Payment validations",
		},
		[]string{"result"}, // ok|invalid
	)
	StorageOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_operations_total",
			Help: "Payment storage operations",
		},
		[]string{"op", "result"}, // create|list|aggregate|get|update|delete x ok|error
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует все метрики; повторные вызовы безопасны.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			PaymentsValidated, StorageOps,
		)
	})
}
