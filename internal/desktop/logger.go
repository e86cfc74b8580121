package desktop

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the tray's own log inside the logs folder.
const LogFileName = "tray.log"

// NewLogger writes JSON logs to a rotated file in the logs folder, falling
// back to stderr when that folder cannot be resolved.
func NewLogger(opts Options, level zapcore.Level) *zap.SugaredLogger {
	var sink zapcore.WriteSyncer
	if dir, err := opts.LogsDir(); err == nil {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(dir, LogFileName),
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		})
	} else {
		sink = zapcore.Lock(os.Stderr)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, level)
	return zap.New(core).Sugar()
}
