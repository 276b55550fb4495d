// Integration tests for the document store gRPC server
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/nainya/docstore/internal/logger"
	"github.com/nainya/docstore/internal/metrics"
	"github.com/nainya/docstore/pkg/keylock"
	"github.com/nainya/docstore/pkg/ledger"
	"github.com/nainya/docstore/pkg/session"
	"github.com/nainya/docstore/pkg/storage/sqlstore"
	"github.com/nainya/docstore/pkg/tags"
	pb "github.com/nainya/docstore/proto"
)

const bufSize = 1024 * 1024

type harness struct {
	client  pb.DocumentStoreServiceClient
	conn    *grpc.ClientConn
	metrics *metrics.Metrics
}

func setupTestServer(t *testing.T) harness {
	t.Helper()

	m := metrics.NewMetrics(prometheus.NewRegistry())
	log := logger.Nop()

	store, err := sqlstore.Open(context.Background(), sqlstore.DriverSQLite,
		filepath.Join(t.TempDir(), "docstore.db"),
		sqlstore.WithObserver(NewStoreObserver(m, log)))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	locks := keylock.New()
	l := ledger.New(store, locks)
	srv := NewServer(Options{
		Store:    store,
		Ledger:   l,
		Tags:     tags.New(store, locks),
		Sessions: session.New(l),
		Metrics:  m,
		Logger:   log,
	})

	lis := bufconn.Listen(bufSize)
	app := NewApp(lis, srv, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		cancel()
		t.Fatalf("Failed to dial bufnet: %v", err)
	}

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Serve returned error: %v", err)
		}
	})

	return harness{
		client:  pb.NewDocumentStoreServiceClient(conn),
		conn:    conn,
		metrics: m,
	}
}

func (h harness) put(t *testing.T, doc *pb.Document) *pb.DocumentReceipt {
	t.Helper()
	resp, err := h.client.PutDocument(context.Background(), &pb.PutDocumentRequest{Document: doc})
	if err != nil {
		t.Fatalf("PutDocument failed: %v", err)
	}
	if !resp.Success {
		t.Fatalf("PutDocument rejected: %s", resp.Message)
	}
	return resp.Receipt
}

func (h harness) tag(t *testing.T, uuid string, version int32, tag string) *pb.TagDocumentResponse {
	t.Helper()
	resp, err := h.client.TagDocument(context.Background(), &pb.TagDocumentRequest{
		DocumentUuid: uuid,
		Version:      version,
		Tag:          tag,
		TaggedBy:     "alice",
		TaggedByType: "user",
		SessionId:    "s1",
	})
	if err != nil {
		t.Fatalf("TagDocument failed: %v", err)
	}
	if !resp.Success {
		t.Fatalf("TagDocument rejected: %s", resp.Message)
	}
	return resp
}

func note(uuid string) *pb.Document {
	return &pb.Document{DocumentUuid: uuid, Type: "note", Namespace: "ns", SessionId: "s1"}
}

func TestEndToEndScenario(t *testing.T) {
	h := setupTestServer(t)
	ctx := context.Background()

	if r := h.put(t, note("doc1")); r.Version != 1 {
		t.Fatalf("first put version = %d, want 1", r.Version)
	}
	if r := h.put(t, note("doc1")); r.Version != 2 {
		t.Fatalf("second put version = %d, want 2", r.Version)
	}

	draft := h.tag(t, "doc1", 1, "draft")
	final := h.tag(t, "doc1", 2, "final")
	if draft.TagEventUuid == "" || final.TagEventUuid == "" || draft.TagEventUuid == final.TagEventUuid {
		t.Errorf("tag event ids: %q %q", draft.TagEventUuid, final.TagEventUuid)
	}

	byTag, err := h.client.GetDocument(ctx, &pb.GetDocumentRequest{DocumentUuid: "doc1", Tag: "draft"})
	if err != nil {
		t.Fatalf("GetDocument(tag=draft) failed: %v", err)
	}
	if byTag.Document.Version != 1 {
		t.Errorf("draft resolves to version %d, want 1", byTag.Document.Version)
	}

	latest, err := h.client.GetDocument(ctx, &pb.GetDocumentRequest{DocumentUuid: "doc1"})
	if err != nil {
		t.Fatalf("GetDocument(latest) failed: %v", err)
	}
	if latest.Document.Version != 2 {
		t.Errorf("latest version = %d, want 2", latest.Document.Version)
	}

	active, err := h.client.ListActiveTags(ctx, &pb.ListActiveTagsRequest{DocumentUuid: "doc1"})
	if err != nil {
		t.Fatalf("ListActiveTags failed: %v", err)
	}
	got := map[string]int32{}
	for _, at := range active.ActiveTags {
		got[at.Tag] = at.DocumentVersion
	}
	if want := map[string]int32{"draft": 1, "final": 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("active tags = %v, want %v", got, want)
	}

	events, err := h.client.ListTagEvents(ctx, &pb.ListTagEventsRequest{DocumentUuid: "doc1"})
	if err != nil {
		t.Fatalf("ListTagEvents failed: %v", err)
	}
	if len(events.TagEvents) != 2 {
		t.Fatalf("tag events = %d, want 2", len(events.TagEvents))
	}
	for _, ev := range events.TagEvents {
		if ev.Operation != "apply" || ev.CreatedBy != "alice" || ev.CreatedAt == nil {
			t.Errorf("unexpected event: %+v", ev)
		}
	}
}

func TestServesProtobufAndJSONClients(t *testing.T) {
	h := setupTestServer(t)
	ctx := context.Background()

	// A stub compiled against an unrelated empty message still decodes as HealthCheckRequest.
	health := &pb.HealthCheckResponse{}
	if err := h.conn.Invoke(ctx, pb.DocumentStoreService_HealthCheck_FullMethodName, &emptypb.Empty{}, health); err != nil {
		t.Fatalf("HealthCheck over the protobuf codec failed: %v", err)
	}
	if !health.GetHealthy() || health.GetVersion() != Version {
		t.Errorf("health = %v", health)
	}

	put, err := h.client.PutDocument(ctx, &pb.PutDocumentRequest{Document: note("doc1")},
		grpc.CallContentSubtype(pb.CodecName))
	if err != nil {
		t.Fatalf("PutDocument over the json codec failed: %v", err)
	}
	if !put.GetSuccess() || put.GetReceipt().GetVersion() != 1 {
		t.Errorf("json put = %v", put)
	}

	got, err := h.client.GetDocument(ctx, &pb.GetDocumentRequest{DocumentUuid: "doc1"})
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if got.GetDocument().GetVersion() != 1 || got.GetDocument().GetCreatedAt() == nil {
		t.Errorf("document = %v", got.GetDocument())
	}
}

func TestBodyAndMetadataRoundTrip(t *testing.T) {
	h := setupTestServer(t)
	ctx := context.Background()

	doc := note("doc1")
	doc.BodyJson = `{"title": "graph", "id": 9007199254740993, "nodes": [1, 2.50]}`
	doc.MetadataJson = `{"source":"cli", "attempt":1}`
	doc.Tags = []string{"b", "a", "b"}
	h.put(t, doc)

	withBody, err := h.client.GetDocument(ctx, &pb.GetDocumentRequest{DocumentUuid: "doc1", IncludeBody: true})
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if withBody.Document.BodyJson != doc.BodyJson {
		t.Errorf("body = %s, want %s", withBody.Document.BodyJson, doc.BodyJson)
	}
	if withBody.Document.MetadataJson != doc.MetadataJson {
		t.Errorf("metadata = %s, want %s", withBody.Document.MetadataJson, doc.MetadataJson)
	}
	if !reflect.DeepEqual(withBody.Document.Tags, []string{"b", "a"}) {
		t.Errorf("tags = %v", withBody.Document.Tags)
	}

	noBody, err := h.client.GetDocument(ctx, &pb.GetDocumentRequest{DocumentUuid: "doc1"})
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if noBody.Document.BodyJson != "" {
		t.Errorf("body returned without include_body: %s", noBody.Document.BodyJson)
	}
	if noBody.Document.MetadataJson != doc.MetadataJson {
		t.Errorf("metadata = %s, want %s", noBody.Document.MetadataJson, doc.MetadataJson)
	}
}

func TestPutRejectionsComeBackAsReceipts(t *testing.T) {
	h := setupTestServer(t)
	ctx := context.Background()

	cases := []struct {
		name string
		doc  *pb.Document
		want string
	}{
		{"missing document", nil, "document is required"},
		{"missing type", &pb.Document{DocumentUuid: "doc1", Namespace: "ns"}, "type is required"},
		{"bad body", &pb.Document{DocumentUuid: "doc1", Type: "note", Namespace: "ns", BodyJson: "{"}, "body_json"},
		{"metadata not object", &pb.Document{DocumentUuid: "doc1", Type: "note", Namespace: "ns", MetadataJson: "[1]"}, "metadata_json"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := h.client.PutDocument(ctx, &pb.PutDocumentRequest{Document: tc.doc})
			if err != nil {
				t.Fatalf("PutDocument returned transport error: %v", err)
			}
			if resp.Success || !strings.Contains(resp.Message, tc.want) {
				t.Errorf("response = %+v, want rejection containing %q", resp, tc.want)
			}
			if resp.Receipt == nil || resp.Receipt.Success || resp.Receipt.ErrorMessage == "" {
				t.Errorf("receipt = %+v", resp.Receipt)
			}
		})
	}
}

func TestPutDocumentsReportsPerItem(t *testing.T) {
	h := setupTestServer(t)

	resp, err := h.client.PutDocuments(context.Background(), &pb.PutDocumentsRequest{
		Documents: []*pb.Document{
			note("a"),
			{DocumentUuid: "b", Namespace: "ns"},
			note("a"),
			note("c"),
			{DocumentUuid: "d", Type: "note", Namespace: "ns", BodyJson: "not json"},
		},
	})
	if err != nil {
		t.Fatalf("PutDocuments failed: %v", err)
	}
	if resp.Success {
		t.Error("batch with failures must not report success")
	}
	if len(resp.Receipts) != 5 {
		t.Fatalf("receipts = %d, want 5", len(resp.Receipts))
	}

	wantOK := []bool{true, false, true, true, false}
	wantVersion := []int32{1, 0, 2, 1, 0}
	wantUUID := []string{"a", "b", "a", "c", "d"}
	for i, r := range resp.Receipts {
		if r.Success != wantOK[i] || r.Version != wantVersion[i] || r.DocumentUuid != wantUUID[i] {
			t.Errorf("receipt %d = %+v", i, r)
		}
		if !r.Success && r.ErrorMessage == "" {
			t.Errorf("receipt %d has no error message", i)
		}
	}

	if got := testutil.ToFloat64(h.metrics.BatchItemsTotal.WithLabelValues("success")); got != 3 {
		t.Errorf("batch successes = %v, want 3", got)
	}

	empty, err := h.client.PutDocuments(context.Background(), &pb.PutDocumentsRequest{})
	if err != nil {
		t.Fatalf("empty PutDocuments failed: %v", err)
	}
	if empty.Success {
		t.Error("empty batch must be rejected")
	}
}

func TestPutDocumentsKeepsCommittedReceiptsWhenCancelled(t *testing.T) {
	store, err := sqlstore.Open(context.Background(), sqlstore.DriverSQLite, filepath.Join(t.TempDir(), "cancel.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	calls := 0
	now := func() time.Time {
		calls++
		if calls == 2 {
			cancel()
		}
		return time.Now()
	}

	locks := keylock.New()
	l := ledger.New(store, locks, ledger.WithClock(now), ledger.WithBatchConcurrency(1))
	srv := NewServer(Options{Store: store, Ledger: l, Tags: tags.New(store, locks), Sessions: session.New(l)})

	resp, err := srv.PutDocuments(ctx, &pb.PutDocumentsRequest{
		Documents: []*pb.Document{note("a"), note("b"), note("c")},
	})
	if err != nil {
		t.Fatalf("PutDocuments returned %v, want receipts", err)
	}
	if resp.GetSuccess() || len(resp.GetReceipts()) != 3 {
		t.Fatalf("response = %v", resp)
	}
	if r := resp.Receipts[0]; !r.Success || r.Version != 1 {
		t.Errorf("committed receipt = %v", r)
	}
	for _, r := range resp.Receipts[1:] {
		if r.Success || !strings.Contains(r.ErrorMessage, "context canceled") {
			t.Errorf("receipt after cancel = %v", r)
		}
	}
}

func TestReadFailuresAreStatusErrors(t *testing.T) {
	h := setupTestServer(t)
	ctx := context.Background()
	h.put(t, note("doc1"))

	_, err := h.client.GetDocument(ctx, &pb.GetDocumentRequest{DocumentUuid: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Errorf("GetDocument(missing) code = %v, want NotFound", status.Code(err))
	}

	_, err = h.client.GetDocument(ctx, &pb.GetDocumentRequest{DocumentUuid: "doc1", Tag: "nope"})
	if status.Code(err) != codes.NotFound {
		t.Errorf("GetDocument(unknown tag) code = %v, want NotFound", status.Code(err))
	}

	_, err = h.client.GetDocument(ctx, &pb.GetDocumentRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("GetDocument(empty) code = %v, want InvalidArgument", status.Code(err))
	}

	_, err = h.client.ListDocuments(ctx, &pb.ListDocumentsRequest{PaginationToken: "garbage"})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("ListDocuments(bad token) code = %v, want InvalidArgument", status.Code(err))
	}

	_, err = h.client.GetSessionContext(ctx, &pb.GetSessionContextRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("GetSessionContext(no session) code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestListDocumentsPaginationMatchesUnbounded(t *testing.T) {
	h := setupTestServer(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		h.put(t, note(fmt.Sprintf("doc%d", i)))
	}
	h.put(t, note("doc0"))

	all, err := h.client.ListDocuments(ctx, &pb.ListDocumentsRequest{Namespace: "ns", PageSize: 100})
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(all.Documents) != 5 || all.TotalCount != 5 || all.NextPaginationToken != "" {
		t.Fatalf("unbounded list: %d docs, total %d, token %q", len(all.Documents), all.TotalCount, all.NextPaginationToken)
	}

	var paged []string
	token := ""
	for pages := 0; ; pages++ {
		if pages > 10 {
			t.Fatal("pagination did not terminate")
		}
		resp, err := h.client.ListDocuments(ctx, &pb.ListDocumentsRequest{Namespace: "ns", PageSize: 2, PaginationToken: token})
		if err != nil {
			t.Fatalf("ListDocuments page failed: %v", err)
		}
		for _, d := range resp.Documents {
			paged = append(paged, fmt.Sprintf("%s@%d", d.DocumentUuid, d.Version))
		}
		if resp.NextPaginationToken == "" {
			break
		}
		token = resp.NextPaginationToken
	}

	var want []string
	for _, d := range all.Documents {
		want = append(want, fmt.Sprintf("%s@%d", d.DocumentUuid, d.Version))
	}
	if !reflect.DeepEqual(paged, want) {
		t.Errorf("paged = %v, want %v", paged, want)
	}

	latest, err := h.client.ListDocuments(ctx, &pb.ListDocumentsRequest{Namespace: "ns", LatestVersionsOnly: true})
	if err != nil {
		t.Fatalf("ListDocuments(latest) failed: %v", err)
	}
	if latest.TotalCount != 4 {
		t.Errorf("latest-only total = %d, want 4", latest.TotalCount)
	}
}

func TestDeleteOverGRPC(t *testing.T) {
	h := setupTestServer(t)
	ctx := context.Background()

	h.put(t, note("doc1"))
	h.put(t, note("doc1"))
	h.tag(t, "doc1", 1, "draft")

	resp, err := h.client.DeleteDocument(ctx, &pb.DeleteDocumentRequest{DocumentUuid: "doc1", Version: 1, DeletedBy: "bob"})
	if err != nil {
		t.Fatalf("DeleteDocument failed: %v", err)
	}
	if !resp.Success || resp.VersionsDeleted != 1 {
		t.Fatalf("delete response = %+v", resp)
	}

	_, err = h.client.GetDocument(ctx, &pb.GetDocumentRequest{DocumentUuid: "doc1", Version: 1})
	if status.Code(err) != codes.NotFound {
		t.Errorf("deleted version code = %v, want NotFound", status.Code(err))
	}

	versions, err := h.client.ListDocumentVersions(ctx, &pb.ListDocumentVersionsRequest{DocumentUuid: "doc1"})
	if err != nil {
		t.Fatalf("ListDocumentVersions failed: %v", err)
	}
	if len(versions.Documents) != 1 || versions.Documents[0].Version != 2 {
		t.Errorf("remaining versions = %+v", versions.Documents)
	}

	events, err := h.client.ListTagEvents(ctx, &pb.ListTagEventsRequest{DocumentUuid: "doc1", Tag: "draft"})
	if err != nil {
		t.Fatalf("ListTagEvents failed: %v", err)
	}
	if len(events.TagEvents) != 2 || events.TagEvents[0].Operation != "remove" || events.TagEvents[0].CreatedBy != "bob" {
		t.Errorf("events after delete = %+v", events.TagEvents)
	}

	missing, err := h.client.DeleteDocument(ctx, &pb.DeleteDocumentRequest{DocumentUuid: "doc1", Version: 9})
	if err != nil {
		t.Fatalf("DeleteDocument(missing) returned transport error: %v", err)
	}
	if missing.Success || missing.Message == "" {
		t.Errorf("missing delete response = %+v", missing)
	}

	all, err := h.client.DeleteDocument(ctx, &pb.DeleteDocumentRequest{DocumentUuid: "doc1"})
	if err != nil || !all.Success || all.VersionsDeleted != 1 {
		t.Fatalf("delete all = %+v, %v", all, err)
	}
	_, err = h.client.GetDocument(ctx, &pb.GetDocumentRequest{DocumentUuid: "doc1"})
	if status.Code(err) != codes.NotFound {
		t.Errorf("deleted document code = %v, want NotFound", status.Code(err))
	}
}

func TestUntagOverGRPC(t *testing.T) {
	h := setupTestServer(t)
	ctx := context.Background()

	h.put(t, note("doc1"))
	h.tag(t, "doc1", 1, "draft")

	resp, err := h.client.UntagDocument(ctx, &pb.UntagDocumentRequest{DocumentUuid: "doc1", Tag: "draft", UntaggedBy: "alice"})
	if err != nil {
		t.Fatalf("UntagDocument failed: %v", err)
	}
	if !resp.Success || resp.TagEventUuid == "" {
		t.Fatalf("untag response = %+v", resp)
	}

	again, err := h.client.UntagDocument(ctx, &pb.UntagDocumentRequest{DocumentUuid: "doc1", Tag: "draft"})
	if err != nil {
		t.Fatalf("second UntagDocument returned transport error: %v", err)
	}
	if again.Success {
		t.Error("untagging a missing tag must be rejected")
	}

	tagMissing, err := h.client.TagDocument(ctx, &pb.TagDocumentRequest{DocumentUuid: "doc1", Version: 7, Tag: "x"})
	if err != nil {
		t.Fatalf("TagDocument(missing version) returned transport error: %v", err)
	}
	if tagMissing.Success {
		t.Error("tagging a missing version must be rejected")
	}

	if got := testutil.ToFloat64(h.metrics.TagEventsTotal.WithLabelValues("remove")); got != 1 {
		t.Errorf("remove events metric = %v, want 1", got)
	}
}

func TestSessionContextOverGRPC(t *testing.T) {
	h := setupTestServer(t)
	ctx := context.Background()

	h.put(t, note("early"))
	time.Sleep(5 * time.Millisecond)
	cutoff := time.Now()
	time.Sleep(5 * time.Millisecond)
	h.put(t, note("late"))
	other := note("other")
	other.SessionId = "s2"
	h.put(t, other)

	resp, err := h.client.GetSessionContext(ctx, &pb.GetSessionContextRequest{
		SessionId: "s1",
		Since:     timestamppb.New(cutoff),
	})
	if err != nil {
		t.Fatalf("GetSessionContext failed: %v", err)
	}
	if !resp.Success || resp.TotalCount != 1 || len(resp.Documents) != 1 || resp.Documents[0].DocumentUuid != "late" {
		t.Errorf("session context = %+v", resp)
	}
}

func TestHealthChecks(t *testing.T) {
	h := setupTestServer(t)
	ctx := context.Background()

	resp, err := h.client.HealthCheck(ctx, &pb.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("HealthCheck failed: %v", err)
	}
	if !resp.Healthy || resp.Version != Version {
		t.Errorf("health = %+v", resp)
	}

	std, err := grpc_health_v1.NewHealthClient(h.conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: pb.ServiceName})
	if err != nil {
		t.Fatalf("grpc health check failed: %v", err)
	}
	if std.Status != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Errorf("grpc health status = %v", std.Status)
	}
}

func TestInterceptorRecordsMetrics(t *testing.T) {
	h := setupTestServer(t)

	h.put(t, note("doc1"))
	_, _ = h.client.GetDocument(context.Background(), &pb.GetDocumentRequest{DocumentUuid: "missing"})

	put := testutil.ToFloat64(h.metrics.GrpcRequestsTotal.WithLabelValues(pb.DocumentStoreService_PutDocument_FullMethodName, "OK"))
	if put != 1 {
		t.Errorf("PutDocument OK count = %v, want 1", put)
	}
	get := testutil.ToFloat64(h.metrics.GrpcRequestsTotal.WithLabelValues(pb.DocumentStoreService_GetDocument_FullMethodName, "NotFound"))
	if get != 1 {
		t.Errorf("GetDocument NotFound count = %v, want 1", get)
	}
	if got := testutil.ToFloat64(h.metrics.VersionsWrittenTotal); got != 1 {
		t.Errorf("versions written = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(h.metrics.DbOperationsTotal); n == 0 {
		t.Error("store observer recorded no database operations")
	}
}

func TestObservabilityHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewMetrics(reg)

	readyErr := errors.New("store down")
	failing := httptest.NewServer(ObservabilityHandler(reg, func(context.Context) error { return readyErr }))
	defer failing.Close()
	healthy := httptest.NewServer(ObservabilityHandler(reg, func(context.Context) error { return nil }))
	defer healthy.Close()

	cases := []struct {
		url      string
		wantCode int
		contains string
	}{
		{healthy.URL + "/health", http.StatusOK, `"healthy"`},
		{healthy.URL + "/ready", http.StatusOK, `"ready"`},
		{failing.URL + "/ready", http.StatusServiceUnavailable, "store down"},
		{healthy.URL + "/metrics", http.StatusOK, "docstore_server_uptime_seconds"},
	}
	for _, tc := range cases {
		resp, err := http.Get(tc.url)
		if err != nil {
			t.Fatalf("GET %s failed: %v", tc.url, err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("read %s: %v", tc.url, err)
		}
		if resp.StatusCode != tc.wantCode {
			t.Errorf("GET %s status = %d, want %d", tc.url, resp.StatusCode, tc.wantCode)
		}
		if !strings.Contains(string(body), tc.contains) {
			t.Errorf("GET %s body missing %q: %s", tc.url, tc.contains, body)
		}
	}
}
