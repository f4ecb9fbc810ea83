package sowdoc

import (
	"context"
	"sync"
	"testing"
)

func TestNewServicePool_MinimumSize(t *testing.T) {
	t.Parallel()

	if got := NewServicePool(0).Size(); got != 1 {
		t.Errorf("Size() = %d, want 1", got)
	}
	if got := NewServicePool(-5).Size(); got != 1 {
		t.Errorf("Size() = %d, want 1", got)
	}
}

func TestServicePool_AcquireRelease(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(2)
	defer pool.Close()

	a := pool.Acquire()
	b := pool.Acquire()
	if a == nil || b == nil {
		t.Fatal("Acquire() returned nil service")
	}

	pool.Release(a)
	if c := pool.Acquire(); c != a {
		t.Error("released service was not reused")
	}
}

func TestServicePool_SharesOptions(t *testing.T) {
	t.Parallel()

	up := &stubUploader{}
	pool := NewServicePool(1, WithUploader(up))
	defer pool.Close()

	svc := pool.Acquire()
	if svc.uploader != up {
		t.Error("pool did not pass options to created service")
	}
}

func TestServicePool_ConcurrentUse(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(4)
	defer pool.Close()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc := pool.Acquire()
			defer pool.Release(svc)
			_, _ = svc.Convert(context.Background(), Input{Markdown: "# T"})
		}()
	}
	wg.Wait()
}

func TestServicePool_ReleaseAfterClose(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(1)
	svc := pool.Acquire()

	if err := pool.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	pool.Release(svc) // must not panic on a closed pool
	if err := pool.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	if got := ResolvePoolSize(3); got != 3 {
		t.Errorf("explicit workers: got %d, want 3", got)
	}

	auto := ResolvePoolSize(0)
	if auto < MinPoolSize || auto > MaxPoolSize {
		t.Errorf("auto size %d outside [%d, %d]", auto, MinPoolSize, MaxPoolSize)
	}
}
