package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kakeibo/expenses/pkg/metrics"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	t.Helper()
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeConsumed := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("payments"))
	beforeProcessed := testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("payments"))
	beforeFailed := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("payments"))

	metrics.KafkaMessagesConsumed.WithLabelValues("payments").Inc()
	metrics.KafkaMessagesProcessed.WithLabelValues("payments").Inc()
	metrics.KafkaMessagesFailed.WithLabelValues("payments").Inc()

	if got := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("payments")); got != beforeConsumed+1 {
		t.Fatalf("KafkaMessagesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("payments")); got != beforeProcessed+1 {
		t.Fatalf("KafkaMessagesProcessed: got=%v want=%v", got, beforeProcessed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("payments")); got != beforeFailed+1 {
		t.Fatalf("KafkaMessagesFailed: got=%v want=%v", got, beforeFailed+1)
	}
}

func TestPaymentsValidated_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	okBefore := testutil.ToFloat64(metrics.PaymentsValidated.WithLabelValues("ok"))
	invalidBefore := testutil.ToFloat64(metrics.PaymentsValidated.WithLabelValues("invalid"))

	metrics.PaymentsValidated.WithLabelValues("ok").Inc()
	metrics.PaymentsValidated.WithLabelValues("ok").Inc()

	if got := testutil.ToFloat64(metrics.PaymentsValidated.WithLabelValues("ok")); got != okBefore+2 {
		t.Fatalf("PaymentsValidated(ok): got=%v want=%v", got, okBefore+2)
	}
	if got := testutil.ToFloat64(metrics.PaymentsValidated.WithLabelValues("invalid")); got != invalidBefore {
		t.Fatalf("PaymentsValidated(invalid): got=%v want=%v", got, invalidBefore)
	}
}

func TestStorageOps_CountersByOpAndResult(t *testing.T) {
	metrics.MustRegister()

	createOKBefore := testutil.ToFloat64(metrics.StorageOps.WithLabelValues("create", "ok"))
	deleteErrBefore := testutil.ToFloat64(metrics.StorageOps.WithLabelValues("delete", "error"))

	metrics.StorageOps.WithLabelValues("create", "ok").Inc()

	if got := testutil.ToFloat64(metrics.StorageOps.WithLabelValues("create", "ok")); got != createOKBefore+1 {
		t.Fatalf("StorageOps(create,ok): got=%v want=%v", got, createOKBefore+1)
	}
	if got := testutil.ToFloat64(metrics.StorageOps.WithLabelValues("delete", "error")); got != deleteErrBefore {
		t.Fatalf("StorageOps(delete,error): got=%v want=%v", got, deleteErrBefore)
	}
}
