package logger

import (
	"store-monitor/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	sugar  *zap.SugaredLogger
)

func init() {
	logger, _ = zap.NewDevelopment()
	sugar = logger.Sugar()

	config.GlobalConfigCallback.AddCallback(func(gCfg config.GlobalConfig) {
		InitLogger(gCfg.LoggerConfig())
	})
}

// Rebuild the global logger from the application config. Called through the
// global config callback once the application config is loaded.
func InitLogger(cfg config.LoggerConfig) {
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))

	var outputs []string
	if cfg.Console {
		outputs = append(outputs, "stderr")
	}
	if len(cfg.File) > 0 {
		outputs = append(outputs, cfg.File)
	}
	if len(outputs) > 0 {
		zapCfg.OutputPaths = outputs
	}

	newLogger, err := zapCfg.Build()
	if err != nil {
		sugar.Errorf("failed to initialize logger: %v", err)
		return
	}
	logger = newLogger
	sugar = logger.Sugar()
}

func parseLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.DebugLevel
	}
	return l
}

func Warn(msg string, args ...interface{}) {
	sugar.Warnf(msg, args...)
}

func Error(msg string, args ...interface{}) {
	sugar.Errorf(msg, args...)
}

func Info(msg string, args ...interface{}) {
	sugar.Infof(msg, args...)
}

func Debug(msg string, args ...interface{}) {
	sugar.Debugf(msg, args...)
}

func Fatal(msg string, args ...interface{}) {
	sugar.Fatalf(msg, args...)
}
