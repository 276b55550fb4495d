package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordGrpcRequest(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordGrpcRequest("/svc/Get", "OK", 10*time.Millisecond)
	m.RecordGrpcRequest("/svc/Get", "OK", 10*time.Millisecond)
	m.RecordGrpcRequest("/svc/Get", "NotFound", time.Millisecond)

	if got := testutil.ToFloat64(m.GrpcRequestsTotal.WithLabelValues("/svc/Get", "OK")); got != 2 {
		t.Errorf("OK requests = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.GrpcRequestsTotal.WithLabelValues("/svc/Get", "NotFound")); got != 1 {
		t.Errorf("NotFound requests = %v, want 1", got)
	}
}

func TestRecordBatchAndTagEvents(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordBatch(3, 1)
	m.RecordTagEvent("apply")
	m.RecordTagEvent("apply")
	m.RecordTagEvent("remove")

	if got := testutil.ToFloat64(m.VersionsWrittenTotal); got != 3 {
		t.Errorf("versions written = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.BatchItemsTotal.WithLabelValues("error")); got != 1 {
		t.Errorf("failed batch items = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.TagEventsTotal.WithLabelValues("apply")); got != 2 {
		t.Errorf("apply events = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.TagEventsTotal.WithLabelValues("remove")); got != 1 {
		t.Errorf("remove events = %v, want 1", got)
	}
}

func TestRecordDbOperation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.RecordDbOperation("insert_version", "success", time.Millisecond)

	if got := testutil.ToFloat64(m.DbOperationsTotal.WithLabelValues("insert_version", "success")); got != 1 {
		t.Errorf("db operations = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(m.DbOperationDuration); n != 1 {
		t.Errorf("duration series = %d, want 1", n)
	}
}

func TestUptimeGaugeRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == "docstore_server_uptime_seconds" {
			return
		}
	}
	t.Error("uptime gauge not registered")
}

func TestSeparateRegistriesDoNotCollide(t *testing.T) {
	NewMetrics(prometheus.NewRegistry())
	NewMetrics(prometheus.NewRegistry())
}
