package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newCaptureLogger(levels ...slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{AddSource: false})
	return slog.New(NewConditionalSourceHandler(base, levels...)), &buf
}

func TestConditionalSourceHandlerLevels(t *testing.T) {
	cases := []struct {
		name       string
		log        func(*slog.Logger)
		wantSource bool
	}{
		{"info stays bare", func(l *slog.Logger) { l.Info("m") }, false},
		{"debug stays bare", func(l *slog.Logger) { l.Debug("m") }, false},
		{"warn gets source", func(l *slog.Logger) { l.Warn("m") }, true},
		{"error gets source", func(l *slog.Logger) { l.Error("m") }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			log, buf := newCaptureLogger(slog.LevelWarn, slog.LevelError)
			tc.log(log)

			hasSource := strings.Contains(buf.String(), "source=")
			if hasSource != tc.wantSource {
				t.Errorf("source attached = %v, want %v. Output: %s", hasSource, tc.wantSource, buf.String())
			}
		})
	}
}

func TestConditionalSourceHandlerPreservesAttrs(t *testing.T) {
	log, buf := newCaptureLogger(slog.LevelError)

	log.With("ticket", "INC1").Info("m")

	if strings.Contains(buf.String(), "source=") {
		t.Errorf("unexpected source on INFO. Output: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "ticket=INC1") {
		t.Errorf("attribute lost. Output: %s", buf.String())
	}
}

func TestConditionalSourceHandlerPreservesGroups(t *testing.T) {
	log, buf := newCaptureLogger(slog.LevelError)

	log.WithGroup("request").Info("m", "path", "/api/tickets")

	if !strings.Contains(buf.String(), "path") {
		t.Errorf("group attribute lost. Output: %s", buf.String())
	}
}
