package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

func TestNew_LevelAndFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   string
		format  string
		emit    func(*slog.Logger)
		want    []string
		notWant []string
		silent  bool
	}{
		{
			name:   "json at info",
			level:  "info",
			format: "json",
			emit:   func(l *slog.Logger) { l.Info("todo created") },
			want:   []string{`"level":"INFO"`, `"msg":"todo created"`},
			// Source locations are only attached at debug level.
			notWant: []string{`"source"`},
		},
		{
			name:   "text format",
			level:  "info",
			format: "text",
			emit:   func(l *slog.Logger) { l.Info("todo created") },
			want:   []string{"level=INFO", `msg="todo created"`},
		},
		{
			name:   "unknown format falls back to json",
			level:  "info",
			format: "logfmt",
			emit:   func(l *slog.Logger) { l.Info("todo created") },
			want:   []string{`"msg":"todo created"`},
		},
		{
			name:   "debug includes source",
			level:  "debug",
			format: "json",
			emit:   func(l *slog.Logger) { l.Debug("schema ensured") },
			want:   []string{`"level":"DEBUG"`, `"source"`},
		},
		{
			name:   "level is case insensitive",
			level:  "DEBUG",
			format: "json",
			emit:   func(l *slog.Logger) { l.Debug("schema ensured") },
			want:   []string{"schema ensured"},
		},
		{
			name:   "info drops debug",
			level:  "info",
			format: "json",
			emit:   func(l *slog.Logger) { l.Debug("schema ensured") },
			silent: true,
		},
		{
			name:   "error drops warn",
			level:  "error",
			format: "json",
			emit:   func(l *slog.Logger) { l.Warn("readiness check failed") },
			silent: true,
		},
		{
			name:   "unknown level behaves as info",
			level:  "verbose",
			format: "json",
			emit: func(l *slog.Logger) {
				l.Debug("hidden")
				l.Info("shown")
			},
			want:    []string{"shown"},
			notWant: []string{"hidden"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.emit(logging.New(tt.level, tt.format, &buf))
			out := buf.String()

			if tt.silent {
				if out != "" {
					t.Errorf("expected no output, got %q", out)
				}
				return
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(out, nw) {
					t.Errorf("output %q unexpectedly contains %q", out, nw)
				}
			}
		})
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	fallback := slog.New(slog.DiscardHandler)
	first := slog.New(slog.DiscardHandler).With(slog.String("request_id", "req-1"))
	second := first.With(slog.String("correlation_id", "corr-1"))

	bare := context.Background()
	if logging.FromContext(bare) != slog.Default() {
		t.Error("FromContext on a bare context should return slog.Default()")
	}
	if logging.FromContextOr(bare, fallback) != fallback {
		t.Error("FromContextOr on a bare context should return the fallback")
	}

	ctx := logging.WithLogger(bare, first)
	if logging.FromContext(ctx) != first {
		t.Error("FromContext did not return the stored logger")
	}
	if logging.FromContextOr(ctx, fallback) != first {
		t.Error("FromContextOr ignored the stored logger")
	}

	ctx = logging.WithLogger(ctx, second)
	if logging.FromContext(ctx) != second {
		t.Error("a later WithLogger should replace the earlier logger")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{"authorization field", slog.String("authorization", "Bearer supersecret-token"), "supersecret-token"},
		{"password field", slog.String("password", "hunter2"), "hunter2"},
		{"dsn field", slog.String("dsn", "postgres://todo:hunter2@db:5432/todo"), "hunter2"},
		{"bearer inside value", slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), "eyJhbGciOiJSUzI1NiJ9"},
		{
			"url credentials in error text",
			slog.String("detail", "dial postgres://todo:s3cr3t@db:5432/todo: connection refused"),
			"s3cr3t",
		},
		{"mysql dsn in error text", slog.String("detail", "todo:pa55word@tcp(mysql:3306)/todo"), "pa55word"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("store failure", tt.attr)
			out := buf.String()

			if strings.Contains(out, tt.secret) {
				t.Errorf("output %q leaks %q", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output %q has no redaction marker", out)
			}
		})
	}
}

func TestNew_KeepsTodoFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("todo toggled",
		slog.Int64("id", 42),
		slog.String("title", "buy milk"),
		slog.String("path", "/42/toggle"),
	)

	out := buf.String()
	for _, want := range []string{`"id":42`, `"title":"buy milk"`, `"path":"/42/toggle"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %s", out, want)
		}
	}
}
