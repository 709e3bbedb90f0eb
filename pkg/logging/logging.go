package logging

import (
	"go.uber.org/zap"
)

// New builds the application logger. When debug is true the human-readable
// development config is used, otherwise the JSON production config. The
// logger is returned to the caller and passed down explicitly; no package
// keeps a global logger.
func New(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	return cfg.Build()
}
