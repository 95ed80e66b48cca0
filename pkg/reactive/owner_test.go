package reactive

import "testing"

func TestOwnerDisposeOrder(t *testing.T) {
	root := NewOwner(nil)
	child1 := NewOwner(root)
	child2 := NewOwner(root)

	var order []string
	root.OnCleanup(func() { order = append(order, "root-a") })
	root.OnCleanup(func() { order = append(order, "root-b") })
	child1.OnCleanup(func() { order = append(order, "child1") })
	child2.OnCleanup(func() { order = append(order, "child2") })

	root.Dispose()

	want := []string{"child2", "child1", "root-b", "root-a"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}

	if !child1.IsDisposed() || !child2.IsDisposed() {
		t.Error("children not disposed")
	}
}

func TestOwnerDisposeIdempotent(t *testing.T) {
	o := NewOwner(nil)
	calls := 0
	o.OnCleanup(func() { calls++ })

	o.Dispose()
	o.Dispose()

	if calls != 1 {
		t.Errorf("cleanup calls = %d, want 1", calls)
	}
}

func TestOwnerCleanupAfterDispose(t *testing.T) {
	o := NewOwner(nil)
	o.Dispose()

	ran := false
	o.OnCleanup(func() { ran = true })
	if !ran {
		t.Error("cleanup registered after Dispose did not run")
	}
}

func TestOwnerChildDisposeDetaches(t *testing.T) {
	root := NewOwner(nil)
	child := NewOwner(root)
	calls := 0
	child.OnCleanup(func() { calls++ })

	child.Dispose()
	root.Dispose()

	if calls != 1 {
		t.Errorf("child cleanup calls = %d, want 1", calls)
	}
}

func TestOwnerValueLookup(t *testing.T) {
	type key struct{}

	root := NewOwner(nil)
	mid := NewOwner(root)
	leaf := NewOwner(mid)
	other := NewOwner(nil)

	mid.SetValue(key{}, "mid")

	if got := leaf.Value(key{}); got != "mid" {
		t.Errorf("leaf.Value = %v, want mid", got)
	}
	if got := root.Value(key{}); got != nil {
		t.Errorf("root.Value = %v, want nil", got)
	}
	if got := other.Value(key{}); got != nil {
		t.Errorf("other.Value = %v, want nil", got)
	}

	mid.Dispose()
	if got := leaf.Value(key{}); got != nil {
		t.Errorf("leaf.Value after dispose = %v, want nil", got)
	}
}
