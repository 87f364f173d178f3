package geo

import (
	"context"
	"testing"
	"time"
)

func TestDivisionCacheServesFreshEntries(t *testing.T) {
	c := NewDivisionCache(time.Minute)
	calls := 0
	fetch := func(context.Context) ([]Division, error) {
		calls++
		return []Division{{Code: "1300000000", Name: "NCR"}}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.Get(context.Background(), "regions", fetch)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if len(got) != 1 || got[0].Name != "NCR" {
			t.Fatalf("got %+v", got)
		}
	}
	if calls != 1 {
		t.Fatalf("fetch called %d times, want 1", calls)
	}
}

func TestDivisionCacheDoesNotCacheFailures(t *testing.T) {
	c := NewDivisionCache(time.Minute)
	calls := 0

	_, err := c.Get(context.Background(), "regions", func(context.Context) ([]Division, error) {
		calls++
		return nil, context.DeadlineExceeded
	})
	if err == nil {
		t.Fatal("expected fetch error")
	}

	got, err := c.Get(context.Background(), "regions", func(context.Context) ([]Division, error) {
		calls++
		return []Division{{Code: "0100000000", Name: "Region I"}}, nil
	})
	if err != nil {
		t.Fatalf("Get after failure: %v", err)
	}
	if len(got) != 1 || calls != 2 {
		t.Fatalf("got %+v, calls=%d", got, calls)
	}
}

func TestDivisionCacheDiscardsSupersededFetch(t *testing.T) {
	c := NewDivisionCache(time.Minute)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	slowDone := make(chan []Division, 1)

	go func() {
		got, _ := c.Get(ctx, "provinces:13", func(context.Context) ([]Division, error) {
			close(started)
			<-release
			return []Division{{Code: "old", Name: "stale province"}}, nil
		})
		slowDone <- got
	}()
	<-started

	// A newer fetch for the same key starts and completes while the first
	// one is still in flight.
	fresh, err := c.Get(ctx, "provinces:13", func(context.Context) ([]Division, error) {
		return []Division{{Code: "1376000000", Name: "Metro Manila"}}, nil
	})
	if err != nil {
		t.Fatalf("fresh Get: %v", err)
	}
	if len(fresh) != 1 || fresh[0].Name != "Metro Manila" {
		t.Fatalf("fresh = %+v", fresh)
	}

	close(release)
	slow := <-slowDone
	if len(slow) != 1 || slow[0].Name != "stale province" {
		t.Fatalf("slow caller should still receive its own result, got %+v", slow)
	}

	// The stale completion must not have overwritten the newer entry.
	got, err := c.Get(ctx, "provinces:13", func(context.Context) ([]Division, error) {
		t.Fatal("cache entry should still be fresh")
		return nil, nil
	})
	if err != nil {
		t.Fatalf("cached Get: %v", err)
	}
	if got[0].Name != "Metro Manila" {
		t.Fatalf("cache holds %q, want %q", got[0].Name, "Metro Manila")
	}
}
