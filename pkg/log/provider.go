package log

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	gkerrors "github.com/gokeras/gokeras/pkg/errors"
)

// ZerologProvider is a LoggerProvider backed by rs/zerolog. It is the
// default provider for the binding.
type ZerologProvider struct {
	mu    sync.RWMutex
	root  zerolog.Logger
	level Level
}

// NewZerologProvider creates a provider writing JSON records to w.
func NewZerologProvider(w io.Writer) *ZerologProvider {
	return &ZerologProvider{
		root:  zerolog.New(w).With().Timestamp().Logger(),
		level: LevelInfo,
	}
}

// GetLogger returns the default logger instance.
func (p *ZerologProvider) GetLogger() Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &zerologLogger{logger: p.root, level: p.level}
}

// GetLoggerWithName returns a logger scoped to a component name.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &zerologLogger{
		logger: p.root.With().Str("component", name).Logger(),
		level:  p.level,
	}
}

// SetLevel sets the minimum level for loggers created by this provider.
func (p *ZerologProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
}

type zerologLogger struct {
	logger zerolog.Logger
	level  Level
}

func (l *zerologLogger) Debug(msg string, fields ...any) { l.emit(LevelDebug, msg, fields) }
func (l *zerologLogger) Info(msg string, fields ...any)  { l.emit(LevelInfo, msg, fields) }
func (l *zerologLogger) Warn(msg string, fields ...any)  { l.emit(LevelWarn, msg, fields) }
func (l *zerologLogger) Error(msg string, fields ...any) { l.emit(LevelError, msg, fields) }

func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.logger.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &zerologLogger{logger: ctx.Logger(), level: l.level}
}

func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return level >= l.level
}

func (l *zerologLogger) emit(level Level, msg string, fields []any) {
	if level < l.level {
		return
	}
	var ev *zerolog.Event
	switch level {
	case LevelDebug:
		ev = l.logger.Debug()
	case LevelWarn:
		ev = l.logger.Warn()
	case LevelError:
		ev = l.logger.Error()
	default:
		ev = l.logger.Info()
	}
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		switch v := fields[i+1].(type) {
		case error:
			ev = ev.AnErr(key, v)
		default:
			ev = ev.Interface(key, v)
		}
	}
	ev.Msg(msg)
}

var (
	providerMu      sync.RWMutex
	defaultProvider LoggerProvider = NewZerologProvider(os.Stderr)
)

// SetProvider replaces the process-wide logger provider.
func SetProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	defaultProvider = p
}

// GetLogger returns the default logger from the current provider.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLogger()
}

// GetLoggerWithName returns a named logger from the current provider.
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLoggerWithName(name)
}

// InstallWarningSink routes pkg/errors warnings through the current provider
// so marshaling warnings appear as structured records.
func InstallWarningSink() {
	gkerrors.SetZerologWarnFunc(func(warning error) {
		GetLoggerWithName("warnings").Warn("binding warning", ErrAttrKey, warning)
	})
}
