package memory

import (
	"context"
	"sync"
	"testing"

	"storefront/pkg/order"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New()

	list, err := repo.List(ctx)
	if err != nil || len(list) != 0 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}

	o, err := repo.Create(ctx, 1, 2)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if o != (order.Order{ID: 1, ProductID: 1, Quantity: 2}) {
		t.Fatalf("unexpected order: %+v", o)
	}
	o, err = repo.Create(ctx, 1, 2)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.ID != 2 {
		t.Fatalf("expected id 2, got %d", o.ID)
	}

	list, err = repo.List(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}
	if list[0].ID != 1 || list[1].ID != 2 {
		t.Fatalf("unexpected order of ids: %+v", list)
	}
}

func TestConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := New()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Create(ctx, 7, 1); err != nil {
				t.Errorf("create: %v", err)
			}
		}()
	}
	wg.Wait()

	list, _ := repo.List(ctx)
	seen := make(map[int]bool, n)
	for _, o := range list {
		if seen[o.ID] {
			t.Fatalf("duplicate id %d", o.ID)
		}
		seen[o.ID] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d orders, got %d", n, len(seen))
	}
}
