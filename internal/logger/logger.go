package logger

import (
	"hr-dashboard/internal/config"

	"go.uber.org/zap"
)

// NewLogger builds the application logger. Production environments get JSON
// output; everything else gets the human readable development encoder.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.IsProduction() {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	// Enable Caller to get Function Name
	zapConfig.EncoderConfig.FunctionKey = "func"

	baseLogger, err := zapConfig.Build(zap.AddCaller())
	if err != nil {
		return nil, err
	}

	return baseLogger.With(zap.String("app", cfg.AppId)), nil
}
