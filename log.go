package ardbc

import (
	"log"
	"os"
)

// ardbcLog is the package-level best-effort logger. The core never raises
// an error it cannot hand back to a caller through a return value —
// Transaction.Close's implicit rollback and connection-close failures have
// no return channel, so they go here instead.
var ardbcLog = log.New(os.Stderr, "ardbc: ", log.LstdFlags)

// SetLogger overrides the logger used for best-effort diagnostics (failed
// implicit rollback, failed connection close). Tests that want to assert
// on these messages, or applications that want them routed elsewhere,
// should call this once at startup.
func SetLogger(l *log.Logger) {
	if l != nil {
		ardbcLog = l
	}
}
