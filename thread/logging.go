package thread

import (
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/NetPo4ki/go-thread/internal/backtrace"
	"github.com/NetPo4ki/go-thread/internal/log"
)

const backtraceFrames = 32

var logger atomic.Pointer[slog.Logger]

// exit terminates the process after a fatal record has been logged.
var exit = os.Exit

func init() {
	logger.Store(log.NewWithCurrentConfig())
}

// SetLogger replaces the logger used for error and fatal records. A nil
// logger discards them.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return logger.Load()
}

// fatal logs msg with a backtrace and terminates the process. There is no
// recovery path for a broken primitive.
func fatal(msg string, err error) {
	logger.Load().Error(msg,
		"err", err,
		"backtrace", backtrace.String(backtraceFrames, 1, "    "),
	)
	exit(2)
}
