package workerpool

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestPool_RunsSubmittedTasks(t *testing.T) {
	pool, err := New(4)
	if err != nil {
		t.Fatalf("create pool: %v", err)
	}
	defer pool.Release()

	var ran atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			ran.Add(1)
		}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	wg.Wait()

	if got := ran.Load(); got != 50 {
		t.Fatalf("ran %d tasks, want 50", got)
	}
}

func TestPool_NilPoolRunsInline(t *testing.T) {
	var pool *Pool

	ran := false
	if err := pool.Submit(func() { ran = true }); err != nil {
		t.Fatalf("submit on nil pool: %v", err)
	}
	if !ran {
		t.Fatal("nil pool should run the task inline")
	}
}
