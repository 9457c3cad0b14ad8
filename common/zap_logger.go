/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package common

import "go.uber.org/zap"

// ZapLogger adapts a *zap.SugaredLogger to the Logger interface so callers
// can opt into structured, leveled logging without the rest of pdfgraph
// depending on zap's concrete types.
type ZapLogger struct {
	sugar    *zap.SugaredLogger
	logLevel LogLevel
}

// NewZapLogger wraps `l` at the given verbosity. Messages below `logLevel`
// are dropped before reaching zap.
func NewZapLogger(l *zap.Logger, logLevel LogLevel) *ZapLogger {
	return &ZapLogger{sugar: l.Sugar(), logLevel: logLevel}
}

// IsLogLevel returns true if log level is greater or equal than `level`.
func (z *ZapLogger) IsLogLevel(level LogLevel) bool {
	return z.logLevel >= level
}

// Error logs error message.
func (z *ZapLogger) Error(format string, args ...interface{}) {
	if z.logLevel >= LogLevelError {
		z.sugar.Errorf(format, args...)
	}
}

// Warning logs warning message.
func (z *ZapLogger) Warning(format string, args ...interface{}) {
	if z.logLevel >= LogLevelWarning {
		z.sugar.Warnf(format, args...)
	}
}

// Notice logs notice message. Zap has no "notice" level; mapped to Info.
func (z *ZapLogger) Notice(format string, args ...interface{}) {
	if z.logLevel >= LogLevelNotice {
		z.sugar.Infof(format, args...)
	}
}

// Info logs info message.
func (z *ZapLogger) Info(format string, args ...interface{}) {
	if z.logLevel >= LogLevelInfo {
		z.sugar.Infof(format, args...)
	}
}

// Debug logs debug message.
func (z *ZapLogger) Debug(format string, args ...interface{}) {
	if z.logLevel >= LogLevelDebug {
		z.sugar.Debugf(format, args...)
	}
}

// Trace logs trace message. Zap has no "trace" level; mapped to Debug.
func (z *ZapLogger) Trace(format string, args ...interface{}) {
	if z.logLevel >= LogLevelTrace {
		z.sugar.Debugf(format, args...)
	}
}
