package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{" warn ", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"nonsense", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerAttachesRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := &zapLogger{sugar: newZap(ZapConfig{
		Level:    "debug",
		Mode:     ModeProduction,
		Encoding: EncodingJSON,
	}, zapcore.AddSync(&buf)).Sugar()}

	ctx := WithRequestID(context.Background(), "req-42")
	l.Infof(ctx, "parsed %d directives", 3)

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("unmarshal log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "parsed 3 directives" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["request_id"] != "req-42" {
		t.Errorf("request_id = %v", entry["request_id"])
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := &zapLogger{sugar: newZap(ZapConfig{
		Level:    "warn",
		Mode:     ModeProduction,
		Encoding: EncodingJSON,
	}, zapcore.AddSync(&buf)).Sugar()}

	l.Info(context.Background(), "hidden")
	l.Warn(context.Background(), "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn line missing: %s", out)
	}
}
