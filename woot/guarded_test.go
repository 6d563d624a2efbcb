package woot

import (
	"sync"
	"testing"

	"github.com/riftlabs/crdt/internal/config"
)

func TestGuardedConcurrentGenerateInsert(t *testing.T) {
	g := NewGuarded(newTestSeq(1))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.GenerateInsert(0, 'a'); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if g.Len() != 22 { // 2 sentinels + 20 inserts
		t.Fatalf("Len() = %d, want 22", g.Len())
	}
}

func TestGuardedEnqueueAndApplyPending(t *testing.T) {
	a := New[int, rune](1, intLess, config.DefaultReplicaConfig())
	op, err := a.GenerateInsert(0, 'x')
	if err != nil {
		t.Fatal(err)
	}

	g := NewGuarded(New[int, rune](2, intLess, config.DefaultReplicaConfig()))
	g.Enqueue(op)
	g.ApplyPending()

	if got := string(g.Value()); got != "x" {
		t.Fatalf("Value() = %q, want %q", got, "x")
	}
}
