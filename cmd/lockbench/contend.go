package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/NetPo4ki/go-thread/interop/errgroup"
	"github.com/NetPo4ki/go-thread/thread"
)

type contendResult struct {
	Lock     string
	Threads  int
	Expected int
	Counter  int
	Elapsed  time.Duration
}

func (r contendResult) Lost() int { return r.Expected - r.Counter }

func NewContendCmd() *cobra.Command {
	var (
		lockKind string
		threads  int
		iters    int
	)

	cmd := &cobra.Command{
		Use:   "contend",
		Short: "Increment a shared counter from many threads under one lock.",
		Long: `Start --threads managed threads that each increment a shared counter
--iterations times while holding the selected lock. With the null lock the
increments race and some are usually lost.`,
		RunE: func(cc *cobra.Command, _ []string) error {
			if threads < 1 || iters < 1 {
				return fmt.Errorf("invalid argument: --threads and --iterations must be positive")
			}
			res, err := contend(lockKind, threads, iters)
			if err != nil {
				return err
			}
			fmt.Fprintf(cc.OutOrStdout(), "lock=%s threads=%d counter=%d/%d lost=%d elapsed=%s\n",
				res.Lock, res.Threads, res.Counter, res.Expected, res.Lost(), res.Elapsed)
			return nil
		},
	}

	cmd.Flags().StringVar(&lockKind, "lock", "mutex", "Lock to use (mutex, spinlock, rwlock, null)")
	cmd.Flags().IntVar(&threads, "threads", 4, "Number of managed threads")
	cmd.Flags().IntVar(&iters, "iterations", 10000, "Increments per thread")

	return cmd
}

func contend(kind string, threads, iters int) (contendResult, error) {
	var section func(func())
	switch kind {
	case "mutex":
		var mu thread.Mutex
		section = func(fn func()) { thread.WithLock(&mu, fn) }
	case "spinlock":
		var sl thread.Spinlock
		section = func(fn func()) { thread.WithLock(&sl, fn) }
	case "rwlock":
		var rw thread.RWLock
		section = func(fn func()) { thread.WithWriteLock(&rw, fn) }
	case "null":
		section = func(fn func()) { thread.WithLock(thread.NullMutex{}, fn) }
	default:
		return contendResult{}, fmt.Errorf("invalid argument: unknown lock %q", kind)
	}

	counter := 0
	start := time.Now()
	g := errgroup.New("contend")
	for range threads {
		g.Go(func() error {
			for range iters {
				section(func() { counter++ })
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return contendResult{}, err
	}
	elapsed := time.Since(start)

	slog.Debug("contention run finished", "lock", kind, "threads", threads, "elapsed", elapsed)
	return contendResult{
		Lock:     kind,
		Threads:  threads,
		Expected: threads * iters,
		Counter:  counter,
		Elapsed:  elapsed,
	}, nil
}
