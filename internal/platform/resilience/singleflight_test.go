package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	var g SingleFlight
	var runs atomic.Int32
	var shared atomic.Int32

	const callers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(callers)

	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			<-start
			out, err, joined := g.Do("earnings:014:2026", func() (any, error) {
				runs.Add(1)
				time.Sleep(20 * time.Millisecond)
				return "money-list", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if out != "money-list" {
				t.Errorf("unexpected shared result: %v", out)
			}
			if joined {
				shared.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := runs.Load(); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
	if got := shared.Load(); got != callers-1 {
		t.Fatalf("expected %d callers to share the result, got %d", callers-1, got)
	}
}

func TestSingleFlight_RerunsAfterCompletion(t *testing.T) {
	var g SingleFlight
	var runs int

	for i := 0; i < 3; i++ {
		_, err, joined := g.Do("field:014:2026", func() (any, error) {
			runs++
			return nil, nil
		})
		if err != nil {
			t.Fatalf("singleflight call failed: %v", err)
		}
		if joined {
			t.Fatal("sequential call must not report a shared result")
		}
	}

	if runs != 3 {
		t.Fatalf("expected sequential calls to rerun the function, got %d runs", runs)
	}
}
