package thread_test

import (
	"fmt"

	"github.com/NetPo4ki/go-thread/thread"
)

func ExampleSemaphore() {
	sem := thread.NewSemaphore(0)
	worker, _ := thread.New(func() {
		sem.Wait()
		fmt.Println("worker: notified")
	}, "worker")

	fmt.Println("main: notifying")
	sem.Notify()
	_ = worker.Join()

	// Output:
	// main: notifying
	// worker: notified
}

func ExampleNewExclusiveGuard() {
	var mu thread.Mutex
	counter := 0

	inc := func() {
		g := thread.NewExclusiveGuard(&mu)
		defer g.Unlock()
		counter++
	}

	workers := make([]*thread.ManagedThread, 0, 4)
	for i := range 4 {
		w, _ := thread.New(func() {
			for range 1000 {
				inc()
			}
		}, fmt.Sprintf("inc-%d", i))
		workers = append(workers, w)
	}
	for _, w := range workers {
		_ = w.Join()
	}
	fmt.Println(counter)

	// Output:
	// 4000
}

func ExampleCurrentName() {
	t, _ := thread.New(func() {
		fmt.Println("running as", thread.CurrentName())
		thread.SetCurrentName("renamed")
	}, "loader")
	_ = t.Join()
	fmt.Println("now called", t.Name())

	// Output:
	// running as loader
	// now called renamed
}
