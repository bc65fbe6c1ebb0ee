package art

import "go.uber.org/zap"

// logger receives warnings for the class of invariant violation spec.md §7
// calls out as a programming error ("out-of-order Sorted16, empty inner
// node ... the implementation is free to abort or to debug-assert"). We
// log-and-continue rather than abort, the same choice the teacher makes in
// its arena allocator when it observes a corrupt node address it should
// never see in practice.
var logger = zap.NewNop()

// SetLogger overrides the package logger used to report invariant
// violations that are detected defensively but do not abort the program.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
