package rewrite

import (
	"log"
	"os"
	"sync/atomic"
)

// traceEnabled gates the internal rewrite trace, an opt-in debugging aid
// toggled by an environment variable rather than a constructor argument —
// the same atomic.Bool-plus-env-var idiom the teacher uses for its own
// work-stealing-scheduler trace, kept deliberately separate from any
// operator-facing logging a caller layers on top of this package.
var traceEnabled atomic.Bool

func init() {
	if os.Getenv("LOGICSIMPLIFY_REWRITE_TRACE") != "" {
		traceEnabled.Store(true)
	}
}

func trace(format string, args ...interface{}) {
	if traceEnabled.Load() {
		log.Printf("rewrite: "+format, args...)
	}
}
