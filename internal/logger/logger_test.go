package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/shape-quiz-generator/internal/config"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"local", "production"} {
		t.Run(env, func(t *testing.T) {
			l, err := New(&config.Config{Env: env})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			defer func() { _ = l.Sync() }()

			debugEnabled := l.Core().Enabled(zapcore.DebugLevel)
			if env == "production" && debugEnabled {
				t.Fatalf("production logger should not log debug")
			}
			if env == "local" && !debugEnabled {
				t.Fatalf("development logger should log debug")
			}
		})
	}
}
