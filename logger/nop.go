package logger

import "context"

// nopLogger 丢弃所有日志的实现，用于测试和默认占位.
type nopLogger struct{}

// NewNop 创建不输出任何内容的 logger.
func NewNop() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(args ...any)                 {}
func (nopLogger) Debugf(format string, args ...any) {}
func (nopLogger) Info(args ...any)                  {}
func (nopLogger) Infof(format string, args ...any)  {}
func (nopLogger) Warn(args ...any)                  {}
func (nopLogger) Warnf(format string, args ...any)  {}
func (nopLogger) Error(args ...any)                 {}
func (nopLogger) Errorf(format string, args ...any) {}
func (nopLogger) Fatal(args ...any)                 {}
func (nopLogger) Fatalf(format string, args ...any) {}

func (n nopLogger) With(fields ...Field) Logger            { return n }
func (n nopLogger) WithContext(ctx context.Context) Logger { return n }

func (nopLogger) Sync() error  { return nil }
func (nopLogger) Close() error { return nil }
