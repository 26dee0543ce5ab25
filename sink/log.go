// Package sink provides consumers for calibrated touch points: a virtual
// uinput pointer on Linux and a logging sink for headless diagnostics.
package sink

import "github.com/sirupsen/logrus"

// Logger writes every forwarded point to a logrus logger at debug level.
type Logger struct {
	Log *logrus.Logger
}

// NewLogger creates a Logger sink.
func NewLogger(log *logrus.Logger) *Logger {
	return &Logger{Log: log}
}

// Forward logs one calibrated point.
func (l *Logger) Forward(id, x, y, pressure int) {
	l.Log.WithFields(logrus.Fields{
		"id":       id,
		"x":        x,
		"y":        y,
		"pressure": pressure,
	}).Debug("touch point")
}
