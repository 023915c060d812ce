package workerpool

import (
	"fmt"

	"github.com/panjf2000/ants/v2"
)

const defaultSize = 16

// Pool is a bounded worker pool shared by fan-out writes such as the per-
// starter rating propagation. Submission blocks when all workers are busy, so
// callers get back-pressure instead of unbounded goroutine growth.
type Pool struct {
	inner *ants.Pool
}

func New(size int) (*Pool, error) {
	if size <= 0 {
		size = defaultSize
	}

	inner, err := ants.NewPool(size)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}

	return &Pool{inner: inner}, nil
}

// Submit schedules task on the pool. A nil Pool runs the task inline, which
// keeps tests and minimal wirings working without a pool instance.
func (p *Pool) Submit(task func()) error {
	if task == nil {
		return nil
	}
	if p == nil || p.inner == nil {
		task()
		return nil
	}
	if err := p.inner.Submit(task); err != nil {
		return fmt.Errorf("submit task: %w", err)
	}
	return nil
}

func (p *Pool) Release() {
	if p == nil || p.inner == nil {
		return
	}
	p.inner.Release()
}
