package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestContendLocks(t *testing.T) {
	for _, kind := range []string{"mutex", "spinlock", "rwlock"} {
		t.Run(kind, func(t *testing.T) {
			out, err := run(t, "contend", "--lock", kind, "--threads", "4", "--iterations", "500")
			require.NoError(t, err)
			assert.Contains(t, out, "lock="+kind)
			assert.Contains(t, out, "counter=2000/2000 lost=0")
		})
	}
}

func TestContendNullLockRuns(t *testing.T) {
	res, err := contend("null", 1, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Counter, "a single thread never loses increments")
}

func TestContendInvalid(t *testing.T) {
	_, err := run(t, "contend", "--lock", "futex")
	require.ErrorContains(t, err, `unknown lock "futex"`)

	_, err = run(t, "contend", "--threads", "0")
	require.ErrorContains(t, err, "invalid argument")

	_, err = run(t, "--log_format", "yaml", "contend")
	require.ErrorContains(t, err, "failed creating log handler")
}

func TestHandshake(t *testing.T) {
	out, err := run(t, "handshake", "--threads", "3", "--prefix", "hs")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for i, line := range lines {
		assert.True(t, strings.HasPrefix(line, "hs-"+string(rune('0'+i))+" id="), line)
	}
}

func TestRootLogFlags(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"log_level", "log_format"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	_, err := run(t, "--log_level", "debug", "--log_format", "json", "handshake", "--threads", "1")
	require.NoError(t, err)
}
