// Package backtrace renders the calling goroutine's stack as readable frames
// for error and fatal log records.
package backtrace

import (
	"fmt"
	"runtime"
	"strings"
)

// Backtrace returns up to size frames of the caller's stack, one
// "function file:line" string per frame. skip=0 starts at the caller of
// Backtrace; larger values drop that many additional frames.
func Backtrace(size, skip int) []string {
	return collect(size, skip+1)
}

// String is [Backtrace] joined into one string, each frame prefixed with
// prefix and terminated by a newline.
func String(size, skip int, prefix string) string {
	var b strings.Builder
	for _, frame := range collect(size, skip+1) {
		b.WriteString(prefix)
		b.WriteString(frame)
		b.WriteByte('\n')
	}
	return b.String()
}

// collect starts at its own caller when skip is 0.
func collect(size, skip int) []string {
	if size <= 0 {
		return nil
	}
	if skip < 0 {
		skip = 0
	}
	pcs := make([]uintptr, size)
	// Skip runtime.Callers and collect itself.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	out := make([]string, 0, n)
	for {
		frame, more := frames.Next()
		if frame.PC != 0 {
			out = append(out, fmt.Sprintf("%s %s:%d", frame.Function, frame.File, frame.Line))
		}
		if !more || len(out) == size {
			break
		}
	}
	return out
}
