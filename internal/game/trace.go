package game

import "log"

var traceEnabled bool

func SetTrace(on bool) {
	traceEnabled = on
}

// Tracef logs only when tracing is on.
func Tracef(format string, v ...any) {
	if traceEnabled {
		log.Printf(format, v...)
	}
}
