package utils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the shared zap logger. When LOG_FILE is set the JSON
// output is teed to the file and stdout.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		logFile := os.Getenv("LOG_FILE")
		if logFile == "" {
			l, _ := zap.NewProduction()
			logger = l
			return
		}
		_ = os.MkdirAll(filepath.Dir(logFile), 0o755)
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			l, _ := zap.NewProduction()
			logger = l
			return
		}
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		fileCore := zapcore.NewCore(enc, zapcore.AddSync(f), zapcore.InfoLevel)
		consoleCore := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)
		logger = zap.New(zapcore.NewTee(fileCore, consoleCore))
	})
	return logger
}

// LogEvent prints a standardized log line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	Logger().Info(message,
		zap.String("module", strings.ToUpper(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
	)
}
