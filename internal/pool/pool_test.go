package pool

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func noScratch() struct{} { return struct{}{} }

// queued walks the pending list under the lock.
func queued[S any](p *Pool[S]) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for w := p.head; w != nil; w = w.next {
		n++
	}
	return n
}

// idlePool builds a pool with no workers so the queue can be inspected
// without anything draining it.
func idlePool() *Pool[struct{}] {
	p := &Pool[struct{}]{}
	p.workCond.L = &p.mu
	p.quietCond.L = &p.mu
	return p
}

func TestSubmitNilFunc(t *testing.T) {
	p := idlePool()
	if err := p.Submit(func(string, struct{}) {}, "a"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := p.Submit(nil, "b"); err != ErrNilFunc {
		t.Fatalf("want ErrNilFunc, got %v", err)
	}
	if n := queued(p); n != 1 {
		t.Fatalf("queue must be unchanged after rejected submit, length %d", n)
	}
}

func TestCloseDiscardsPending(t *testing.T) {
	p := idlePool()
	var calls atomic.Int32
	fn := func(string, struct{}) { calls.Add(1) }
	for i := 0; i < 5; i++ {
		if err := p.Submit(fn, "x"); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	p.Close()
	if got := calls.Load(); got != 0 {
		t.Fatalf("discarded items must never execute, %d calls", got)
	}
	if n := queued(p); n != 0 {
		t.Fatalf("queue not drained, %d left", n)
	}
}

func TestSubmitAfterClose(t *testing.T) {
	p := New(2, noScratch)
	p.Close()
	if err := p.Submit(func(string, struct{}) {}, "x"); err != ErrClosed {
		t.Fatalf("want ErrClosed after shutdown, got %v", err)
	}
}

func TestWaitReturnsAfterAllWorkDone(t *testing.T) {
	p := New(4, noScratch)
	defer p.Close()

	const n = 200
	var done atomic.Int32
	fn := func(string, struct{}) {
		time.Sleep(time.Microsecond)
		done.Add(1)
	}
	for i := 0; i < n; i++ {
		if err := p.Submit(fn, "x"); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	p.Wait()
	if got := done.Load(); got != n {
		t.Fatalf("Wait returned with %d/%d items executed", got, n)
	}
}

func TestWaitOnEmptyPool(t *testing.T) {
	p := New(2, noScratch)
	defer p.Close()
	p.Wait() // must not block
}

func TestCloseWaitsForInFlightWork(t *testing.T) {
	p := New(1, noScratch)

	started := make(chan struct{})
	gate := make(chan struct{})
	var finished atomic.Bool
	err := p.Submit(func(string, struct{}) {
		close(started)
		<-gate
		finished.Store(true)
	}, "x")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	<-started
	go func() {
		time.Sleep(10 * time.Millisecond)
		close(gate)
	}()
	p.Close()
	if !finished.Load() {
		t.Fatal("Close returned before the in-flight item completed")
	}
}

func TestFIFODispatchOrder(t *testing.T) {
	p := New(1, noScratch)
	defer p.Close()

	var mu sync.Mutex
	var got []string
	fn := func(text string, _ struct{}) {
		mu.Lock()
		got = append(got, text)
		mu.Unlock()
	}
	want := []string{"a", "b", "c", "d", "e"}
	for _, s := range want {
		if err := p.Submit(fn, s); err != nil {
			t.Fatalf("submit %q: %v", s, err)
		}
	}
	p.Wait()
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dispatch order %v, want %v", got, want)
		}
	}
}

func TestEachWorkerGetsPrivateScratch(t *testing.T) {
	var made atomic.Int32
	p := New(4, func() int { return int(made.Add(1)) })
	p.Close()
	if got := made.Load(); got != 4 {
		t.Fatalf("want one scratch per worker, got %d", got)
	}
}

func TestConcurrentSubmitters(t *testing.T) {
	p := New(8, noScratch)
	defer p.Close()

	var done atomic.Int32
	fn := func(string, struct{}) { done.Add(1) }

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if err := p.Submit(fn, "x"); err != nil {
					t.Errorf("submit: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	p.Wait()
	if got := done.Load(); got != 400 {
		t.Fatalf("executed %d items, want 400", got)
	}
}
