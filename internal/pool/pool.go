// internal/pool/pool.go
package pool

import (
	"errors"
	"sync"
)

var (
	// ErrNilFunc is returned by Submit for a nil work function; the queue
	// is left untouched.
	ErrNilFunc = errors.New("pool: nil work function")
	// ErrClosed is returned by Submit once shutdown has begun.
	ErrClosed = errors.New("pool: pool is shutting down")
)

// Func is one unit of work: it receives the owned text of the item and the
// calling worker's private scratch. The submitter must not touch text again
// after Submit accepts it.
type Func[S any] func(text string, scratch S)

type work[S any] struct {
	fn   Func[S]
	text string
	next *work[S]
}

// Pool is a fixed set of worker goroutines draining a FIFO work queue.
//
// One mutex guards the queue, the busy counter, the live-worker counter and
// the stop flag. Two conditions keep the waiter classes apart: workCond
// wakes idle workers when work arrives or shutdown begins, quietCond wakes
// Wait callers when the pool may have gone quiescent. The stop flag is
// monotonic; once set it is never cleared.
type Pool[S any] struct {
	mu        sync.Mutex
	workCond  sync.Cond
	quietCond sync.Cond

	head, tail *work[S]
	busy       int // workers currently executing an item
	workers    int // workers not yet exited
	stopped    bool
}

// New starts n workers (minimum 1), each allocating its private scratch
// before entering the drain loop.
func New[S any](n int, newScratch func() S) *Pool[S] {
	if n < 1 {
		n = 1
	}
	p := &Pool[S]{workers: n}
	p.workCond.L = &p.mu
	p.quietCond.L = &p.mu
	for i := 0; i < n; i++ {
		go p.worker(newScratch)
	}
	return p
}

func (p *Pool[S]) worker(newScratch func() S) {
	scratch := newScratch()

	p.mu.Lock()
	for {
		for p.head == nil && !p.stopped {
			p.workCond.Wait()
		}
		if p.stopped && p.head == nil {
			break
		}

		w := p.head
		if w.next == nil {
			p.head, p.tail = nil, nil
		} else {
			p.head = w.next
		}
		p.busy++
		p.mu.Unlock()

		// Never execute under the lock: submissions must not stall
		// behind in-flight work.
		w.fn(w.text, scratch)

		p.mu.Lock()
		p.busy--
		if p.head == nil && p.busy == 0 {
			p.quietCond.Broadcast()
		}
	}
	p.workers--
	p.quietCond.Broadcast()
	p.mu.Unlock()
}

// Submit appends one item to the queue and wakes a worker. It fails with
// ErrNilFunc for a nil function and with ErrClosed once Close has begun;
// in both cases the queue is unchanged.
func (p *Pool[S]) Submit(fn Func[S], text string) error {
	if fn == nil {
		return ErrNilFunc
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return ErrClosed
	}
	w := &work[S]{fn: fn, text: text}
	if p.tail == nil {
		p.head, p.tail = w, w
	} else {
		p.tail.next = w
		p.tail = w
	}
	p.workCond.Signal()
	return nil
}

// Wait blocks until the pool is quiescent: before shutdown, until the queue
// is empty and no worker is executing; after shutdown, until every worker
// has exited. The predicate is re-checked after every wakeup.
func (p *Pool[S]) Wait() {
	p.mu.Lock()
	for (!p.stopped && (p.head != nil || p.busy != 0)) ||
		(p.stopped && p.workers != 0) {
		p.quietCond.Wait()
	}
	p.mu.Unlock()
}

// Close discards every pending item without executing it, stops the
// workers, and blocks until all of them have exited. Items already being
// executed run to completion.
func (p *Pool[S]) Close() {
	p.mu.Lock()
	p.head, p.tail = nil, nil
	p.stopped = true
	p.workCond.Broadcast()
	p.mu.Unlock()

	p.Wait()
}
