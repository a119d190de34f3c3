// Package debug provides the structured logger used across boxflow.
//
// The logger is a no-op until Init is called, unless the BOXFLOW_DEBUG
// environment variable names a file, in which case debug messages are
// appended to that file as JSON lines.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvFile names the environment variable that enables file logging without
// an explicit Init call.
const EnvFile = "BOXFLOW_DEBUG"

// Config controls where log output goes.
type Config struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
	Console    bool   `mapstructure:"console"`
}

var (
	logger   atomic.Pointer[zap.Logger]
	initOnce sync.Once
	mu       sync.Mutex
)

// Init builds the global logger from cfg. It may be called more than once;
// the last call wins.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	l, err := build(cfg)
	if err != nil {
		return err
	}
	logger.Store(l)
	return nil
}

// Set replaces the global logger. Passing nil restores the no-op logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// L returns the global structured logger.
func L() *zap.Logger {
	initOnce.Do(func() {
		if logger.Load() != nil {
			return
		}
		path := os.Getenv(EnvFile)
		if path == "" {
			logger.CompareAndSwap(nil, zap.NewNop())
			return
		}
		l, err := build(Config{Level: "debug", File: path})
		if err != nil {
			l = zap.NewNop()
		}
		logger.CompareAndSwap(nil, l)
	})
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	l := L()
	if ce := l.Check(zapcore.DebugLevel, ""); ce != nil {
		ce.Message = fmt.Sprintf(format, args...)
		ce.Write()
	}
}

// Sync flushes buffered log entries.
func Sync() error {
	return L().Sync()
}

func build(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	var cores []zapcore.Core
	if cfg.Console {
		cores = append(cores, zapcore.NewCore(encoder(cfg.Format), zapcore.Lock(os.Stderr), level))
	}

	if cfg.File != "" {
		dir := filepath.Dir(cfg.File)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		cores = append(cores, zapcore.NewCore(encoder("json"), writer, level))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...)).Named("boxflow"), nil
}

func encoder(format string) zapcore.Encoder {
	if format == "json" {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}
