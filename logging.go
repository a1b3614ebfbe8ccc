package wireform

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger installs l as the package-wide diagnostic logger, used by the
// version-chain walker to report when a demotion fails and the schema
// error alternative is substituted (version.go). Grounded on
// unkn0wn-root-cascache's pluggable zap adapter; defaults to a no-op
// logger so importing this package never produces output unasked.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Logger returns the currently installed diagnostic logger.
func Logger() *zap.Logger {
	return logger
}
