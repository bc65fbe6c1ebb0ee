package vart

import "go.uber.org/zap"

// logger receives warnings for the class of invariant violation spec.md §7
// calls out as a programming error. We log-and-continue rather than abort,
// mirroring art.SetLogger.
var logger = zap.NewNop()

// SetLogger overrides the package logger used to report invariant
// violations that are detected defensively but do not abort the program.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
