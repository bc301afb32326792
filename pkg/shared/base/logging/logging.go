// 指示: miu200521358
// Package logging は書式指定ログ出力の窓口を提供する。
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// LogLevel はログレベルを表す。
type LogLevel string

const (
	// LOG_LEVEL_DEBUG はデバッグレベル。
	LOG_LEVEL_DEBUG LogLevel = "debug"
	// LOG_LEVEL_INFO は情報レベル。
	LOG_LEVEL_INFO LogLevel = "info"
	// LOG_LEVEL_WARN は警告レベル。
	LOG_LEVEL_WARN LogLevel = "warn"
	// LOG_LEVEL_ERROR はエラーレベル。
	LOG_LEVEL_ERROR LogLevel = "error"
)

// ParseLogLevel は文字列からログレベルを判定する。未知の値はINFOとして扱う。
func ParseLogLevel(value string) LogLevel {
	switch LogLevel(strings.ToLower(strings.TrimSpace(value))) {
	case LOG_LEVEL_DEBUG:
		return LOG_LEVEL_DEBUG
	case LOG_LEVEL_WARN:
		return LOG_LEVEL_WARN
	case LOG_LEVEL_ERROR:
		return LOG_LEVEL_ERROR
	default:
		return LOG_LEVEL_INFO
	}
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LOG_LEVEL_DEBUG:
		return slog.LevelDebug
	case LOG_LEVEL_WARN:
		return slog.LevelWarn
	case LOG_LEVEL_ERROR:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ILogger はパッケージ横断で使うロガー契約を表す。
type ILogger interface {
	Debug(format string, params ...any)
	Info(format string, params ...any)
	Warn(format string, params ...any)
	Error(format string, params ...any)
}

// Logger はslogを書式指定で呼び出すロガー。
type Logger struct {
	level   *slog.LevelVar
	handler *slog.Logger
}

// NewLogger は出力先とレベルを指定してLoggerを生成する。
func NewLogger(w io.Writer, level LogLevel) *Logger {
	levelVar := &slog.LevelVar{}
	levelVar.Set(level.slogLevel())
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar})
	return &Logger{level: levelVar, handler: slog.New(handler)}
}

// SetLevel はログレベルを変更する。
func (l *Logger) SetLevel(level LogLevel) {
	if l == nil {
		return
	}
	l.level.Set(level.slogLevel())
}

// Debug はデバッグログを出力する。
func (l *Logger) Debug(format string, params ...any) {
	l.log(slog.LevelDebug, format, params...)
}

// Info は情報ログを出力する。
func (l *Logger) Info(format string, params ...any) {
	l.log(slog.LevelInfo, format, params...)
}

// Warn は警告ログを出力する。
func (l *Logger) Warn(format string, params ...any) {
	l.log(slog.LevelWarn, format, params...)
}

// Error はエラーログを出力する。
func (l *Logger) Error(format string, params ...any) {
	l.log(slog.LevelError, format, params...)
}

func (l *Logger) log(level slog.Level, format string, params ...any) {
	if l == nil || l.handler == nil {
		return
	}
	ctx := context.Background()
	if !l.handler.Enabled(ctx, level) {
		return
	}
	message := format
	if len(params) > 0 {
		message = fmt.Sprintf(format, params...)
	}
	l.handler.Log(ctx, level, message)
}

var (
	defaultMu     sync.RWMutex
	defaultLogger ILogger = NewLogger(os.Stderr, LOG_LEVEL_INFO)
)

// DefaultLogger は既定ロガーを返す。
func DefaultLogger() ILogger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefaultLogger は既定ロガーを差し替える。nilの場合はログを出力しない。
func SetDefaultLogger(logger ILogger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}
