package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nainya/docstore/internal/server"
	"github.com/nainya/docstore/pkg/keylock"
	"github.com/nainya/docstore/pkg/ledger"
	"github.com/nainya/docstore/pkg/session"
	"github.com/nainya/docstore/pkg/storage/sqlstore"
	"github.com/nainya/docstore/pkg/tags"
)

func startServer(t *testing.T) string {
	t.Helper()
	store, err := sqlstore.Open(context.Background(), sqlstore.DriverSQLite, filepath.Join(t.TempDir(), "ctl.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	locks := keylock.New()
	l := ledger.New(store, locks)
	srv := server.NewServer(server.Options{
		Store:    store,
		Ledger:   l,
		Tags:     tags.New(store, locks),
		Sessions: session.New(l),
	})

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	app := server.NewApp(lis, srv, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return app.Addr()
}

func ctl(t *testing.T, addr string, args ...string) (map[string]any, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(context.Background(), append([]string{"-addr", addr}, args...), &out, &errOut)
	if out.Len() == 0 {
		return nil, err
	}
	var resp map[string]any
	if jerr := json.Unmarshal(out.Bytes(), &resp); jerr != nil {
		t.Fatalf("output is not JSON: %v\n%s", jerr, out.String())
	}
	return resp, err
}

func TestCommandsAgainstServer(t *testing.T) {
	addr := startServer(t)

	put, err := ctl(t, addr, "put", "-uuid", "doc1", "-type", "note", "-namespace", "ns", "-body", `{"x":1}`, "-session", "s1")
	if err != nil {
		t.Fatalf("put failed: %v", err)
	}
	receipt, _ := put["receipt"].(map[string]any)
	if put["success"] != true || receipt["version"] != float64(1) {
		t.Errorf("put response = %v", put)
	}

	if _, err := ctl(t, addr, "put", "-uuid", "doc1", "-type", "note", "-namespace", "ns"); err != nil {
		t.Fatalf("second put failed: %v", err)
	}
	if _, err := ctl(t, addr, "tag", "-uuid", "doc1", "-version", "1", "-tag", "draft", "-by", "alice"); err != nil {
		t.Fatalf("tag failed: %v", err)
	}

	got, err := ctl(t, addr, "get", "-uuid", "doc1", "-tag", "draft")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	doc, _ := got["document"].(map[string]any)
	if doc["version"] != float64(1) || !strings.Contains(doc["body_json"].(string), "x") {
		t.Errorf("get response = %v", got)
	}

	events, err := ctl(t, addr, "events", "-uuid", "doc1")
	if err != nil {
		t.Fatalf("events failed: %v", err)
	}
	if list, _ := events["tag_events"].([]any); len(list) != 1 {
		t.Errorf("events response = %v", events)
	}

	sess, err := ctl(t, addr, "session", "-session", "s1", "-types", "note")
	if err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if sess["total_count"] != float64(1) {
		t.Errorf("session response = %v", sess)
	}

	health, err := ctl(t, addr, "health")
	if err != nil {
		t.Fatalf("health failed: %v", err)
	}
	if health["healthy"] != true {
		t.Errorf("health response = %v", health)
	}
}

func TestRejectionReturnsErrRejected(t *testing.T) {
	addr := startServer(t)

	resp, err := ctl(t, addr, "untag", "-uuid", "doc1", "-tag", "missing")
	if !errors.Is(err, errRejected) {
		t.Fatalf("untag error = %v, want errRejected", err)
	}
	if resp["success"] == true || resp["message"] == nil {
		t.Errorf("rejection response = %v", resp)
	}
}

func TestUsageErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := run(context.Background(), nil, &out, &errOut); err == nil {
		t.Error("expected missing command error")
	}
	if !strings.Contains(errOut.String(), "commands:") {
		t.Errorf("usage not printed: %s", errOut.String())
	}

	errOut.Reset()
	if err := run(context.Background(), []string{"frobnicate"}, &out, &errOut); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("unknown command error = %v", err)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a, ,b ,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("splitList = %v", got)
	}
	if splitList("  ") != nil {
		t.Error("blank list must be nil")
	}
}
