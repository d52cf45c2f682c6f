package webhook

import (
	"context"
	"sync"
	"time"

	"github.com/gabapcia/txnotify/internal/pkg/x/chflow"
)

// retryTask is a delivery waiting to be retried. ctx carries the values of
// the context it was pushed with, detached from its cancellation.
type retryTask struct {
	ctx         context.Context
	event       Event
	callbackURL string
}

// retryQueue is a FIFO drained by at most one worker goroutine. The worker
// starts on the first push into an idle queue and exits once the queue is
// empty. It waits delay after every task, whatever the outcome.
type retryQueue struct {
	delay  time.Duration
	handle func(context.Context, retryTask)

	mu      sync.Mutex
	tasks   []retryTask
	running bool
	idle    chan struct{} // closed while no worker runs
}

func newRetryQueue(delay time.Duration, handle func(context.Context, retryTask)) *retryQueue {
	idle := make(chan struct{})
	close(idle)

	return &retryQueue{
		delay:  delay,
		handle: handle,
		idle:   idle,
	}
}

// push appends task and starts the worker if none is running. The task is
// handled with ctx's values even after ctx is cancelled.
func (q *retryQueue) push(ctx context.Context, task retryTask) {
	task.ctx = context.WithoutCancel(ctx)

	q.mu.Lock()
	defer q.mu.Unlock()

	q.tasks = append(q.tasks, task)
	if q.running {
		return
	}

	q.running = true
	q.idle = make(chan struct{})

	go q.run()
}

// pop removes the oldest task. When the queue is empty it marks the worker
// as stopped instead.
func (q *retryQueue) pop() (retryTask, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tasks) == 0 {
		q.running = false
		close(q.idle)
		return retryTask{}, false
	}

	task := q.tasks[0]
	q.tasks[0] = retryTask{}
	q.tasks = q.tasks[1:]

	return task, true
}

func (q *retryQueue) run() {
	for {
		task, ok := q.pop()
		if !ok {
			return
		}

		q.handle(task.ctx, task)
		time.Sleep(q.delay)
	}
}

// len returns the number of queued tasks, excluding the one being handled.
func (q *retryQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.tasks)
}

// wait blocks until the worker has stopped or ctx is done.
func (q *retryQueue) wait(ctx context.Context) error {
	q.mu.Lock()
	idle := q.idle
	q.mu.Unlock()

	return chflow.Wait(ctx, idle)
}
