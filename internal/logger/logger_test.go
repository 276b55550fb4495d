package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("log line %q is not JSON: %v", line, err)
		}
		out = append(out, entry)
	}
	return out
}

func TestLoggerAddsServiceField(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Config{Level: "info", Output: &buf})

	log.Info().Str("k", "v").Msg("hello")

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0]["service"] != "docstore" || lines[0]["k"] != "v" || lines[0]["message"] != "hello" {
		t.Errorf("unexpected entry: %v", lines[0])
	}
}

func TestLoggerLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Config{Level: "WARN", Output: &buf})

	log.Debug().Msg("hidden")
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	lines := decodeLines(t, &buf)
	if len(lines) != 1 || lines[0]["message"] != "shown" {
		t.Errorf("expected only the warning, got %v", lines)
	}
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Config{Level: "chatty", Output: &buf})

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")

	if lines := decodeLines(t, &buf); len(lines) != 1 {
		t.Errorf("expected 1 line, got %v", lines)
	}
}

func TestLogGrpcRequest(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Config{Level: "info", Output: &buf})

	log.LogGrpcRequest("/svc/Get", "OK", 5*time.Millisecond, nil)
	log.LogGrpcRequest("/svc/Get", "NotFound", time.Millisecond, errors.New("missing"))
	log.LogGrpcRequest("/svc/Put", "Internal", time.Millisecond, errors.New("boom"))

	lines := decodeLines(t, &buf)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	wantLevels := []string{"info", "warn", "error"}
	for i, want := range wantLevels {
		if lines[i]["level"] != want {
			t.Errorf("line %d level = %v, want %s", i, lines[i]["level"], want)
		}
		if lines[i]["component"] != "grpc" {
			t.Errorf("line %d missing grpc component: %v", i, lines[i])
		}
	}
	if lines[1]["code"] != "NotFound" || lines[1]["error"] != "missing" {
		t.Errorf("unexpected error entry: %v", lines[1])
	}
}

func TestScopedLoggers(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Config{Level: "debug", Output: &buf})

	log.DbLogger("insert_version").Debug().Msg("db")
	log.GrpcLogger("/svc/Put").With(map[string]string{"document_uuid": "d1"}).Info().Msg("rpc")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0]["component"] != "database" || lines[0]["operation"] != "insert_version" {
		t.Errorf("unexpected db entry: %v", lines[0])
	}
	if lines[1]["method"] != "/svc/Put" || lines[1]["document_uuid"] != "d1" {
		t.Errorf("unexpected grpc entry: %v", lines[1])
	}
}

func TestNopDiscards(t *testing.T) {
	Nop().Error().Msg("nothing")
	Nop().LogDbOperation("op", time.Second, errors.New("x"))
}
