package worker

import (
	"context"
	"errors"
	"sync"
)

// ErrStopped is returned by Submit once Stop has been called.
var ErrStopped = errors.New("worker pool stopped")

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(ctx context.Context, t Task) error
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task), quit: make(chan struct{})}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.loop()
	}
	return p
}

type pool struct {
	jobs chan Task
	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

func (p *pool) loop() {
	defer p.wg.Done()
	for {
		select {
		case <-p.quit:
			return
		case job := <-p.jobs:
			if job != nil {
				job()
			}
		}
	}
}

// Submit blocks until a worker accepts t, ctx is done or the pool is stopped.
func (p *pool) Submit(ctx context.Context, t Task) error {
	select {
	case <-p.quit:
		return ErrStopped
	default:
	}
	select {
	case <-p.quit:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	case p.jobs <- t:
		return nil
	}
}

// Stop waits for running tasks and rejects new ones. Safe to call twice.
func (p *pool) Stop() {
	p.once.Do(func() { close(p.quit) })
	p.wg.Wait()
}

// Do runs fn on p and waits for it to finish or for ctx to be done.
// When ctx ends first fn keeps running, and its side effects must be ignored by the caller.
func Do(ctx context.Context, p Pool, fn func()) error {
	done := make(chan struct{})
	if err := p.Submit(ctx, func() {
		defer close(done)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
