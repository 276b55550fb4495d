package sqlstore

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"reflect"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/nainya/docstore/pkg/document"
	"github.com/nainya/docstore/pkg/storage"
)

func openTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docstore.db")
	s, err := Open(context.Background(), DriverSQLite, path, opts...)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

var baseTime = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func insertVersion(t *testing.T, s storage.Store, v document.Version) {
	t.Helper()
	err := s.WithTx(context.Background(), func(tx storage.Tx) error {
		return tx.InsertVersion(context.Background(), v)
	})
	if err != nil {
		t.Fatalf("InsertVersion(%s/%d) failed: %v", v.DocumentUUID, v.Version, err)
	}
}

func TestOpenAppliesMigrationsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docstore.db")
	for i := 0; i < 2; i++ {
		s, err := Open(context.Background(), DriverSQLite, path)
		if err != nil {
			t.Fatalf("Open #%d failed: %v", i+1, err)
		}
		var n int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM " + migrationTable).Scan(&n); err != nil {
			t.Fatalf("count migrations: %v", err)
		}
		if n != 1 {
			t.Errorf("expected 1 applied migration, got %d", n)
		}
		_ = s.Close()
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), "oracle", "x"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
	if _, err := Open(context.Background(), DriverSQLite, " "); err == nil {
		t.Fatal("expected error for empty location")
	}
}

func TestOpenCreatesSQLiteDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "docstore.db")
	s, err := Open(context.Background(), "sqlite3", path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()
	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestNormalizeDriver(t *testing.T) {
	for in, want := range map[string]string{"": DriverSQLite, "sqlite3": DriverSQLite, " PostgreSQL ": DriverPostgres, "pgx": DriverPostgres} {
		got, err := NormalizeDriver(in)
		if err != nil || got != want {
			t.Errorf("NormalizeDriver(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := NormalizeDriver("mysql"); err == nil {
		t.Error("expected error for mysql")
	}
}

func TestSQLiteStore(t *testing.T) {
	runStoreSuite(t, openTestStore(t))
}

// runStoreSuite exercises the storage contract against any backend.
func runStoreSuite(t *testing.T, s storage.Store) {
	ctx := context.Background()

	body := json.RawMessage(`{"title": "hello", "id": 9007199254740993}`)
	md := json.RawMessage(`{"source":"test"}`)

	insertVersion(t, s, document.Version{
		DocumentUUID: "doc1", Version: 1, Type: "note", Name: "first", Namespace: "ns",
		Body: body, Metadata: md, Tags: []string{"draft"},
		CreatedAt: baseTime, CreatedBy: "alice", CreatedByType: "user", SessionID: "s1",
	})
	insertVersion(t, s, document.Version{
		DocumentUUID: "doc1", Version: 2, Type: "note", Name: "second", Namespace: "ns",
		CreatedAt: baseTime.Add(time.Second), SessionID: "s1",
	})
	insertVersion(t, s, document.Version{
		DocumentUUID: "doc2", Version: 1, Type: "graph", Namespace: "other",
		CreatedAt: baseTime.Add(time.Second), SessionID: "s2",
	})

	t.Run("get version", func(t *testing.T) {
		v, err := s.GetVersion(ctx, "doc1", 1, true)
		if err != nil {
			t.Fatalf("GetVersion failed: %v", err)
		}
		if v.Name != "first" || v.CreatedBy != "alice" || !v.CreatedAt.Equal(baseTime) {
			t.Errorf("unexpected version %+v", v)
		}
		if string(v.Body) != string(body) || string(v.Metadata) != string(md) {
			t.Errorf("opaque values not preserved: body=%v metadata=%v", v.Body, v.Metadata)
		}
		if !reflect.DeepEqual(v.Tags, []string{"draft"}) {
			t.Errorf("Tags = %v", v.Tags)
		}

		noBody, err := s.GetVersion(ctx, "doc1", 1, false)
		if err != nil {
			t.Fatalf("GetVersion without body failed: %v", err)
		}
		if noBody.Body != nil {
			t.Errorf("expected body to be omitted, got %v", noBody.Body)
		}
		if noBody.Metadata == nil {
			t.Error("metadata must be returned even without body")
		}

		if _, err := s.GetVersion(ctx, "doc1", 9, false); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("latest version", func(t *testing.T) {
		v, err := s.GetLatestVersion(ctx, "doc1", false)
		if err != nil {
			t.Fatalf("GetLatestVersion failed: %v", err)
		}
		if v.Version != 2 {
			t.Errorf("latest version = %d, want 2", v.Version)
		}
		if _, err := s.GetLatestVersion(ctx, "missing", false); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}

		err = s.WithTx(ctx, func(tx storage.Tx) error {
			n, at, err := tx.LatestVersion(ctx, "doc1")
			if err != nil {
				return err
			}
			if n != 2 || !at.Equal(baseTime.Add(time.Second)) {
				t.Errorf("LatestVersion = %d %v", n, at)
			}
			n, _, err = tx.LatestVersion(ctx, "missing")
			if err != nil {
				return err
			}
			if n != 0 {
				t.Errorf("LatestVersion(missing) = %d, want 0", n)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("WithTx failed: %v", err)
		}
	})

	t.Run("duplicate version conflicts", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx storage.Tx) error {
			return tx.InsertVersion(ctx, document.Version{
				DocumentUUID: "doc1", Version: 2, Type: "note", Namespace: "ns", CreatedAt: baseTime,
			})
		})
		if !errors.Is(err, storage.ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("query order and filters", func(t *testing.T) {
		page, err := s.QueryVersions(ctx, storage.VersionQuery{})
		if err != nil {
			t.Fatalf("QueryVersions failed: %v", err)
		}
		got := keys(page.Versions)
		want := []string{"doc2/1", "doc1/2", "doc1/1"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("order = %v, want %v", got, want)
		}

		page, err = s.QueryVersions(ctx, storage.VersionQuery{Filter: storage.VersionFilter{Namespace: "ns", LatestOnly: true}})
		if err != nil {
			t.Fatalf("QueryVersions latest failed: %v", err)
		}
		if got := keys(page.Versions); !reflect.DeepEqual(got, []string{"doc1/2"}) {
			t.Errorf("latest-only = %v", got)
		}

		page, err = s.QueryVersions(ctx, storage.VersionQuery{Filter: storage.VersionFilter{Types: []string{"graph", "x"}}})
		if err != nil {
			t.Fatalf("QueryVersions types failed: %v", err)
		}
		if got := keys(page.Versions); !reflect.DeepEqual(got, []string{"doc2/1"}) {
			t.Errorf("types filter = %v", got)
		}

		page, err = s.QueryVersions(ctx, storage.VersionQuery{Filter: storage.VersionFilter{SessionID: "s1", Since: baseTime}})
		if err != nil {
			t.Fatalf("QueryVersions since failed: %v", err)
		}
		if got := keys(page.Versions); !reflect.DeepEqual(got, []string{"doc1/2"}) {
			t.Errorf("since filter = %v", got)
		}

		n, err := s.CountVersions(ctx, storage.VersionFilter{DocumentUUID: "doc1"})
		if err != nil {
			t.Fatalf("CountVersions failed: %v", err)
		}
		if n != 2 {
			t.Errorf("CountVersions = %d, want 2", n)
		}
	})

	t.Run("keyset pages", func(t *testing.T) {
		var (
			after *storage.VersionPosition
			seen  []string
		)
		for i := 0; i < 10; i++ {
			page, err := s.QueryVersions(ctx, storage.VersionQuery{After: after, Limit: 1})
			if err != nil {
				t.Fatalf("QueryVersions page %d failed: %v", i, err)
			}
			seen = append(seen, keys(page.Versions)...)
			if !page.HasMore {
				break
			}
			last := page.Versions[len(page.Versions)-1]
			after = &storage.VersionPosition{CreatedAt: last.CreatedAt, DocumentUUID: last.DocumentUUID, Version: last.Version}
		}
		if want := []string{"doc2/1", "doc1/2", "doc1/1"}; !reflect.DeepEqual(seen, want) {
			t.Errorf("paged = %v, want %v", seen, want)
		}
	})

	t.Run("tags and events", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx storage.Tx) error {
			for _, tag := range []document.ActiveTag{
				{DocumentUUID: "doc1", Tag: "final", DocumentVersion: 2, UpdatedAt: baseTime, UpdatedBy: "bob"},
				{DocumentUUID: "doc1", Tag: "draft", DocumentVersion: 1, UpdatedAt: baseTime},
			} {
				if err := tx.UpsertActiveTag(ctx, tag); err != nil {
					return err
				}
				ev := document.NewTagEvent(tag.DocumentUUID, tag.DocumentVersion, tag.Tag, document.OperationApply, document.Actor{ID: "bob"}, baseTime)
				if _, err := tx.InsertTagEvent(ctx, ev); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			t.Fatalf("tagging failed: %v", err)
		}

		// Re-point draft; the pair keeps a single row.
		err = s.WithTx(ctx, func(tx storage.Tx) error {
			return tx.UpsertActiveTag(ctx, document.ActiveTag{DocumentUUID: "doc1", Tag: "draft", DocumentVersion: 2, UpdatedAt: baseTime.Add(time.Minute)})
		})
		if err != nil {
			t.Fatalf("re-point failed: %v", err)
		}

		tag, err := s.GetActiveTag(ctx, "doc1", "draft")
		if err != nil {
			t.Fatalf("GetActiveTag failed: %v", err)
		}
		if tag.DocumentVersion != 2 {
			t.Errorf("draft points at %d, want 2", tag.DocumentVersion)
		}

		tags, err := s.ListActiveTags(ctx, storage.TagQuery{DocumentUUID: "doc1", Limit: 1})
		if err != nil {
			t.Fatalf("ListActiveTags failed: %v", err)
		}
		if len(tags.Tags) != 1 || tags.Tags[0].Tag != "draft" || !tags.HasMore {
			t.Errorf("unexpected first tag page %+v", tags)
		}
		tags, err = s.ListActiveTags(ctx, storage.TagQuery{DocumentUUID: "doc1", After: "draft", Limit: 1})
		if err != nil {
			t.Fatalf("ListActiveTags page 2 failed: %v", err)
		}
		if len(tags.Tags) != 1 || tags.Tags[0].Tag != "final" || tags.HasMore {
			t.Errorf("unexpected second tag page %+v", tags)
		}

		events, err := s.ListTagEvents(ctx, storage.TagEventQuery{DocumentUUID: "doc1"})
		if err != nil {
			t.Fatalf("ListTagEvents failed: %v", err)
		}
		if len(events.Events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events.Events))
		}
		// Same created_at: higher seq first.
		if events.Events[0].Tag != "draft" || events.Events[0].Seq <= events.Events[1].Seq {
			t.Errorf("events not newest first: %+v", events.Events)
		}

		page, err := s.QueryVersions(ctx, storage.VersionQuery{Filter: storage.VersionFilter{Tag: "final"}})
		if err != nil {
			t.Fatalf("QueryVersions tag failed: %v", err)
		}
		if got := keys(page.Versions); !reflect.DeepEqual(got, []string{"doc1/2"}) {
			t.Errorf("tag filter = %v", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx storage.Tx) error {
			if err := tx.DeleteActiveTag(ctx, "doc1", "missing"); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("expected ErrNotFound for missing tag, got %v", err)
			}
			for _, tag := range []string{"draft", "final"} {
				if err := tx.DeleteActiveTag(ctx, "doc1", tag); err != nil {
					return err
				}
			}
			n, err := tx.DeleteVersions(ctx, "doc1", 0)
			if err != nil {
				return err
			}
			if n != 2 {
				t.Errorf("deleted %d versions, want 2", n)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("delete failed: %v", err)
		}

		events, err := s.ListTagEvents(ctx, storage.TagEventQuery{DocumentUUID: "doc1"})
		if err != nil {
			t.Fatalf("ListTagEvents failed: %v", err)
		}
		if len(events.Events) != 2 {
			t.Errorf("tag events must survive deletes, got %d", len(events.Events))
		}
	})

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := s.WithTx(ctx, func(tx storage.Tx) error {
			if err := tx.InsertVersion(ctx, document.Version{DocumentUUID: "doc9", Version: 1, Type: "t", Namespace: "n", CreatedAt: baseTime}); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if _, err := s.GetVersion(ctx, "doc9", 1, false); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("rolled back insert is visible: %v", err)
		}
	})
}

type recordingObserver struct {
	mu  sync.Mutex
	ops map[string]int
}

func (r *recordingObserver) ObserveQuery(op string, _ time.Duration, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[op]++
}

func TestObserverSeesOperations(t *testing.T) {
	obs := &recordingObserver{ops: map[string]int{}}
	s := openTestStore(t, WithObserver(obs))

	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
	_, _ = s.GetLatestVersion(context.Background(), "nope", false)

	obs.mu.Lock()
	defer obs.mu.Unlock()
	if obs.ops["ping"] != 1 || obs.ops["get_latest_version"] != 1 {
		t.Errorf("unexpected observations %v", obs.ops)
	}
}

func TestRebind(t *testing.T) {
	got := postgresDialect.rebind("SELECT * FROM t WHERE a = ? AND b IN (?, ?)")
	want := "SELECT * FROM t WHERE a = $1 AND b IN ($2, $3)"
	if got != want {
		t.Errorf("rebind = %q, want %q", got, want)
	}
	if q := "a = ?"; sqliteDialect.rebind(q) != q {
		t.Error("sqlite queries must not be rewritten")
	}
}

func keys(vs []document.Version) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.DocumentUUID+"/"+strconv.Itoa(v.Version))
	}
	return out
}
