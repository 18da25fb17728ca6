package backtrace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:noinline
func outer(skip int) []string { return inner(skip) }

//go:noinline
func inner(skip int) []string { return Backtrace(8, skip) }

func TestBacktraceStartsAtCaller(t *testing.T) {
	t.Parallel()

	frames := Backtrace(4, 0)
	require.NotEmpty(t, frames)
	assert.Contains(t, frames[0], "TestBacktraceStartsAtCaller")
	assert.Contains(t, frames[0], "backtrace_test.go:")
}

func TestBacktraceSkip(t *testing.T) {
	t.Parallel()

	frames := outer(0)
	require.GreaterOrEqual(t, len(frames), 3)
	assert.Contains(t, frames[0], ".inner")
	assert.Contains(t, frames[1], ".outer")

	skipped := outer(1)
	require.NotEmpty(t, skipped)
	assert.Contains(t, skipped[0], ".outer")
}

func TestBacktraceSize(t *testing.T) {
	t.Parallel()

	assert.Len(t, outer(0)[:2], 2)
	assert.LessOrEqual(t, len(Backtrace(1, 0)), 1)
	assert.Nil(t, Backtrace(0, 0))
	assert.Nil(t, Backtrace(-3, 0))
}

func TestString(t *testing.T) {
	t.Parallel()

	s := String(3, 0, ">> ")
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.LessOrEqual(t, len(lines), 3)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, ">> "), "line %q lacks prefix", line)
	}
	assert.Contains(t, lines[0], "TestString")
}
