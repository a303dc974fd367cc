package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}

	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateZeroWorkers(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	expected := runtime.GOMAXPROCS(0)
	if pool.Workers() != expected {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), expected)
	}
}

func TestWorkerPool_CreateNegativeWorkers(t *testing.T) {
	pool := NewWorkerPool(-5)
	defer pool.Close()

	expected := runtime.GOMAXPROCS(0)
	if pool.Workers() != expected {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), expected)
	}
}

func TestWorkerPool_Submit(t *testing.T) {
	pool := NewWorkerPool(4)

	var counter atomic.Int64
	numTasks := 20
	done := make(chan struct{})

	for i := 0; i < numTasks; i++ {
		pool.Submit(func() {
			if counter.Add(1) == int64(numTasks) {
				close(done)
			}
		})
	}

	select {
	case <-done:
		// Success
	case <-time.After(5 * time.Second):
		t.Errorf("timeout waiting for submitted work, counter = %d", counter.Load())
	}

	pool.Close()
}

func TestWorkerPool_Submit_Nil(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// Should not panic
	pool.Submit(nil)
}

func TestWorkerPool_Submit_AfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	// Should be a silent no-op
	pool.Submit(func() { t.Error("work ran after close") })
	time.Sleep(50 * time.Millisecond)
}

func TestWorkerPool_Close(t *testing.T) {
	pool := NewWorkerPool(4)

	if !pool.IsRunning() {
		t.Error("Pool should be running before close")
	}

	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after close")
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(4)

	// Multiple closes should not panic
	pool.Close()
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after close")
	}
}

func TestWorkerPool_CloseDrainsQueuedWork(t *testing.T) {
	pool := NewWorkerPool(2)

	var counter atomic.Int64
	numTasks := 50
	for i := 0; i < numTasks; i++ {
		pool.Submit(func() { counter.Add(1) })
	}

	// Close waits for queued work to drain.
	pool.Close()

	if got := counter.Load(); got != int64(numTasks) {
		t.Errorf("completed %d of %d queued tasks after Close", got, numTasks)
	}
}

func TestWorkerPool_UnevenWorkloads(t *testing.T) {
	// Slow and fast jobs mixed; stealing should keep all workers busy
	// and everything must still complete exactly once.
	pool := NewWorkerPool(4)

	var counter atomic.Int64
	numTasks := 40
	done := make(chan struct{})

	for i := 0; i < numTasks; i++ {
		slow := i%10 == 0
		pool.Submit(func() {
			if slow {
				time.Sleep(10 * time.Millisecond)
			}
			if counter.Add(1) == int64(numTasks) {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Errorf("timeout, counter = %d", counter.Load())
	}
	pool.Close()
}
