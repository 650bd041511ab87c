// Package logger 根据配置构建 zap 日志器
//
// 配置了文件路径时通过 lumberjack 按大小滚动写入文件，否则输出到标准错误。
package logger

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"katydid-common-contact/pkg/config"
)

// ErrInvalidLevel 无法识别的日志级别
var ErrInvalidLevel = errors.New("invalid log level")

// 输出格式
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New 根据日志配置创建 zap 日志器
func New(cfg config.Log) (*zap.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(newEncoder(cfg.Format), newWriteSyncer(cfg), level)
	return zap.New(core, zap.AddCaller()), nil
}

// parseLevel 解析日志级别，空字符串按 info 处理
func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return lvl, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
	return lvl, nil
}

// newEncoder 创建编码器，未知格式按 console 处理
func newEncoder(format string) zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == FormatJSON {
		return zapcore.NewJSONEncoder(encCfg)
	}
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encCfg)
}

// newWriteSyncer 创建输出目标
func newWriteSyncer(cfg config.Log) zapcore.WriteSyncer {
	if cfg.File == "" {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	})
}
