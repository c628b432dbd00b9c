package scheduler

import (
	"context"
	"fmt"
	"sync"
)

type queue[T any] []T

func (q *queue[T]) Len() int { return len(*q) }

func (q *queue[T]) Pop() T {
	old := *q
	x := old[0]
	*q = old[1:]
	return x
}

func (q *queue[T]) Push(t T) {
	*q = append(*q, t)
}

type workRequest struct {
	fn  Work[any]
	c   chan Result[any]
	ctx context.Context
}

type worker struct {
	idle chan<- struct{}
	wg   *sync.WaitGroup
}

func (w worker) Work(r workRequest) {
	defer func() {
		if rec := recover(); rec != nil {
			r.c <- Result[any]{Err: fmt.Errorf("work panicked: %v", rec)}
		}
		w.idle <- struct{}{}
		w.wg.Done()
	}()

	v, err := r.fn(r.ctx)
	r.c <- Result[any]{Data: v, Err: err}
}

// Scheduler runs work on a fixed pool of workers in submission order.
// With one worker, work executes strictly one item at a time.
type Scheduler struct {
	workers    *queue[worker]
	pending    *queue[workRequest]
	idle       chan struct{}
	work       chan workRequest
	closing    chan struct{}
	stopped    chan struct{}
	mainCtx    context.Context
	mainCancel context.CancelFunc
	wg         sync.WaitGroup
	once       sync.Once
}

func NewScheduler(nbWorkers int) *Scheduler {
	nbWorkers = max(nbWorkers, 1)
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		workers:    &queue[worker]{},
		pending:    &queue[workRequest]{},
		idle:       make(chan struct{}, nbWorkers),
		work:       make(chan workRequest),
		closing:    make(chan struct{}),
		stopped:    make(chan struct{}),
		mainCtx:    ctx,
		mainCancel: cancel,
	}
	for range nbWorkers {
		s.workers.Push(worker{idle: s.idle, wg: &s.wg})
	}
	go s.run()
	return s
}

// AddWork queues w. Its context ends when ctx ends, when the future is
// stopped or when the scheduler closes.
func (s *Scheduler) AddWork(ctx context.Context, w Work[any]) *Future[any] {
	c := make(chan Result[any], 1)
	workCtx, cancel := context.WithCancel(ctx)
	stopOnClose := context.AfterFunc(s.mainCtx, cancel)
	release := func() {
		stopOnClose()
		cancel()
	}

	select {
	case <-s.mainCtx.Done():
		c <- Result[any]{Err: context.Canceled}
	case s.work <- workRequest{w, c, workCtx}:
	}

	return NewFuture(c, release)
}

// Close cancels all work and waits for in-flight work to return. Queued
// work that never started is dropped.
func (s *Scheduler) Close() {
	s.once.Do(func() {
		s.mainCancel()
		close(s.closing)
		<-s.stopped
	})
}

func (s *Scheduler) run() {
	defer close(s.stopped)
	for {
		select {
		case w := <-s.work:
			s.pending.Push(w)
			s.dispatch()
		case <-s.idle:
			s.workers.Push(worker{idle: s.idle, wg: &s.wg})
			s.dispatch()
		case <-s.closing:
			for s.pending.Len() > 0 {
				r := s.pending.Pop()
				r.c <- Result[any]{Err: context.Canceled}
			}
			s.wg.Wait()
			return
		}
	}
}

// dispatch drains the pending queue as far as idle workers allow
func (s *Scheduler) dispatch() {
	for s.workers.Len() > 0 && s.pending.Len() > 0 {
		r := s.pending.Pop()
		w := s.workers.Pop()
		s.wg.Add(1)
		go w.Work(r)
	}
}
