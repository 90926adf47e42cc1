package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/zora-rando/zora/pkg/logging"
)

func TestInitialize_LevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	logging.Logger = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logging.Info("should be filtered", "key", "value")
	if buf.Len() != 0 {
		t.Fatalf("expected Info to be filtered at Warn level, got %q", buf.String())
	}

	logging.Warn("should appear", "key", "value")
	if buf.Len() == 0 {
		t.Fatal("expected Warn to be logged at Warn level")
	}

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	if record["msg"] != "should appear" {
		t.Fatalf("unexpected msg field: %v", record["msg"])
	}
}

func TestInitialize_UnknownLevelDefaultsToInfo(t *testing.T) {
	logging.Initialize("not-a-real-level")

	ctx := context.Background()
	h := logging.Logger.Handler()
	if !h.Enabled(ctx, slog.LevelInfo) {
		t.Fatal("expected Info to be enabled under the default level")
	}
	if h.Enabled(ctx, slog.LevelDebug) {
		t.Fatal("expected Debug to be filtered under the default (info) level")
	}
}
