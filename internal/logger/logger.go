package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/shape-quiz-generator/internal/config"
)

// New builds the application logger. Output goes to stderr so that stdout
// only carries the path of the generated file.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
