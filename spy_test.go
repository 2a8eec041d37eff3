package procmock

import (
	"sync"
	"testing"
)

func TestSpy(t *testing.T) {
	t.Run("Records In Order", func(t *testing.T) {
		var spy Spy
		spy.Record("first", 1)
		spy.Record("second", 2)

		calls := spy.Calls()
		if len(calls) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(calls))
		}
		if calls[0][0] != "first" || calls[1][0] != "second" {
			t.Fatalf("entries out of order: %v", calls)
		}
		if spy.Count() != 2 {
			t.Fatalf("Count() = %d, want 2", spy.Count())
		}
	})

	t.Run("NthCall", func(t *testing.T) {
		var spy Spy
		spy.Record("only")

		if got := spy.NthCall(1); got == nil || got[0] != "only" {
			t.Fatalf("NthCall(1) = %v", got)
		}
		if got := spy.NthCall(0); got != nil {
			t.Fatalf("NthCall(0) = %v, want nil", got)
		}
		if got := spy.NthCall(2); got != nil {
			t.Fatalf("NthCall(2) = %v, want nil", got)
		}
	})

	t.Run("Reset", func(t *testing.T) {
		var spy Spy
		spy.Record("entry")
		spy.Reset()

		if spy.Count() != 0 {
			t.Fatalf("expected empty history after Reset, got %d entries", spy.Count())
		}
	})

	t.Run("Snapshot Independence", func(t *testing.T) {
		var spy Spy
		spy.Record("entry")

		snapshot := spy.Calls()
		snapshot[0] = []any{"mutated"}
		if spy.Calls()[0][0] != "entry" {
			t.Fatal("mutating a snapshot affected the live history")
		}

		snapshot = spy.Calls()
		snapshot[0][0] = "mutated"
		if spy.Calls()[0][0] != "entry" {
			t.Fatal("mutating a snapshot's arguments affected the live history")
		}
	})

	t.Run("Concurrent Records", func(t *testing.T) {
		var spy Spy
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				spy.Record("entry")
			}()
		}
		wg.Wait()

		if spy.Count() != 16 {
			t.Fatalf("expected 16 entries, got %d", spy.Count())
		}
	})
}
