package reader

import "github.com/echa/log"

// logger is initialized with no output filters: the package stays silent
// until the caller opts in with UseLogger.
var logger log.Logger = log.Log

func init() {
	DisableLog()
}

// DisableLog disables all package log output.
func DisableLog() {
	logger = log.Disabled
}

// UseLogger directs package log output through l.
func UseLogger(l log.Logger) {
	logger = l
}
