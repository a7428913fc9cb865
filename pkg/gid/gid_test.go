package gid

import (
	"fmt"
	"runtime"
	"sync"
	"testing"
)

// stackID parses the goroutine id out of the first line of a stack trace
// ("goroutine 18 [running]:"). Slow, but independent of the goid library, so
// it works as an oracle for Current.
func stackID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	var id int64
	fmt.Sscanf(string(buf[:n]), "goroutine %d ", &id)
	return id
}

func TestCurrentMatchesRuntimeStack(t *testing.T) {
	if got, want := Current(), stackID(); got != want {
		t.Fatalf("Current() = %d, runtime.Stack reports %d", got, want)
	}
}

func TestCurrentIsNeverNone(t *testing.T) {
	if Current() == None {
		t.Fatal("Current() returned the None sentinel")
	}
}

func TestCurrentStableWithinGoroutine(t *testing.T) {
	first := Current()
	for i := 0; i < 100; i++ {
		if id := Current(); id != first {
			t.Fatalf("id changed within one goroutine: %d then %d", first, id)
		}
	}
}

func TestCurrentDistinctAcrossGoroutines(t *testing.T) {
	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got, want := Current(), stackID(); got != want {
				t.Errorf("Current() = %d, runtime.Stack reports %d", got, want)
			}
			ids <- Current()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate goroutine id %d among live goroutines", id)
		}
		seen[id] = true
	}
}
