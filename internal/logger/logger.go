package logger

import (
	"go.uber.org/zap"

	"github.com/elvin52/quran-quiz-sub001/internal/config"
)

func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
