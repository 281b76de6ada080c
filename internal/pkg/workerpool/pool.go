// Package workerpool runs blocking backend calls on a fixed number of
// goroutines so that HTTP dispatch goroutines only wait on results.
package workerpool

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"
)

// DefaultSize is the number of concurrent backend calls when none is configured.
const DefaultSize = 5

// ErrPoolClosed is returned by Do after Close has been called.
var ErrPoolClosed = errors.New("worker pool is closed")

// Pool bounds concurrent execution of submitted functions.
//
// Example:
//
//	pool := workerpool.New(5, 30*time.Second)
//	defer pool.Close(ctx)
//
//	err := pool.Do(ctx, func(ctx context.Context) error {
//	    return handler.Handle(ctx, cmd)
//	})
type Pool struct {
	sem     *semaphore.Weighted
	size    int64
	timeout time.Duration
	closed  chan struct{}
}

// New creates a pool running at most size functions at once. Every function
// receives a context bounded by timeout; timeout <= 0 disables the bound.
func New(size int, timeout time.Duration) *Pool {
	if size <= 0 {
		size = DefaultSize
	}
	return &Pool{
		sem:     semaphore.NewWeighted(int64(size)),
		size:    int64(size),
		timeout: timeout,
		closed:  make(chan struct{}),
	}
}

// Size returns the maximum number of concurrently running functions.
func (p *Pool) Size() int {
	return int(p.size)
}

// Do runs fn on a pool goroutine and waits for it to return. It fails with
// ctx.Err() if ctx ends while waiting for a free slot or for fn. A panic in fn
// is converted into an error so that one bad request cannot kill the process.
func (p *Pool) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	select {
	case <-p.closed:
		return ErrPoolClosed
	default:
	}

	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	runCtx := ctx
	cancel := context.CancelFunc(func() {})
	if p.timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, p.timeout)
	}

	done := make(chan error, 1)
	go func() {
		defer p.sem.Release(1)
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("worker panic: %v", r)
			}
		}()
		done <- fn(runCtx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close rejects further submissions and waits until running functions finish
// or ctx ends.
func (p *Pool) Close(ctx context.Context) error {
	select {
	case <-p.closed:
		return nil
	default:
		close(p.closed)
	}
	if err := p.sem.Acquire(ctx, p.size); err != nil {
		return err
	}
	p.sem.Release(p.size)
	return nil
}
