package causal

import "testing"

func TestYarnInsertAssignsSequentialIndices(t *testing.T) {
	y := NewYarn[string, int](1)

	id0 := y.Insert("a", nil)
	id1 := y.Insert("b", DepsOf(id0))
	id2 := y.Insert("c", DepsOf(id0, id1))

	if id0.Index != 0 || id1.Index != 1 || id2.Index != 2 {
		t.Fatalf("indices = %d,%d,%d, want 0,1,2", id0.Index, id1.Index, id2.Index)
	}
	if y.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", y.Len())
	}
}

// TestYarnAppendOnlyInvariant is §8 invariant 7: after any sequence of
// inserts, indices are 0..n-1 without gaps.
func TestYarnAppendOnlyInvariant(t *testing.T) {
	y := NewYarn[string, int](7)
	for i := 0; i < 5; i++ {
		y.Insert("op", nil)
	}

	for i := 0; i < y.Len(); i++ {
		a, ok := y.At(uint32(i))
		if !ok {
			t.Fatalf("At(%d) missing", i)
		}
		if int(a.ID.Index) != i {
			t.Fatalf("atom at position %d has index %d", i, a.ID.Index)
		}
	}
}

func TestYarnMergeRejectsSiteMismatch(t *testing.T) {
	a := NewYarn[string, int](1)
	b := NewYarn[string, int](2)

	_, err := a.Merge(b)
	if err != ErrSiteMismatch {
		t.Fatalf("err = %v, want ErrSiteMismatch", err)
	}
}

func TestYarnMergeDeduplicatesAndSorts(t *testing.T) {
	a := NewYarn[string, int](1)
	id0 := a.Insert("x", nil)
	a.Insert("y", DepsOf(id0))

	b := NewYarn[string, int](1)
	b.Insert("x", nil) // same id (site 1, index 0) via a fresh insert
	id1 := b.Insert("y", nil)
	b.Insert("z", DepsOf(id1))

	merged, err := a.Merge(b)
	if err != nil {
		t.Fatal(err)
	}
	if merged.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (deduplicated by id)", merged.Len())
	}
	for i := 0; i < merged.Len(); i++ {
		atom, _ := merged.At(uint32(i))
		if int(atom.ID.Index) != i {
			t.Fatalf("merged yarn not sorted by index at position %d: got index %d", i, atom.ID.Index)
		}
	}
}

func TestYarnRemoveScrubsDeps(t *testing.T) {
	y := NewYarn[string, int](1)
	id0 := y.Insert("a", nil)
	id1 := y.Insert("b", DepsOf(id0))

	y.Remove(id0)

	if y.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", y.Len())
	}
	remaining, ok := y.At(0)
	if !ok || remaining.ID != id1 {
		t.Fatalf("remaining atom = %+v, want id %v", remaining, id1)
	}
	if _, stillThere := remaining.Deps[id0]; stillThere {
		t.Fatal("Remove did not scrub id0 from remaining atom's deps")
	}
}

func TestYarnIteratorOnEmptyYarnErrors(t *testing.T) {
	y := NewYarn[string, int](1)
	it := y.Iterator()

	_, ok, err := it.Next()
	if err != ErrEmptyIterator {
		t.Fatalf("err = %v, want ErrEmptyIterator", err)
	}
	if ok {
		t.Fatal("ok = true on empty yarn")
	}
}

func TestYarnIteratorWalksInOrder(t *testing.T) {
	y := NewYarn[string, int](1)
	y.Insert("a", nil)
	y.Insert("b", nil)

	it := y.Iterator()
	var seen []string
	for {
		a, ok, err := it.Next()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		seen = append(seen, a.Op)
	}
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Fatalf("seen = %v, want [a b]", seen)
	}
}

func TestYarnClearAndRetainAllAreUnsupported(t *testing.T) {
	y := NewYarn[string, int](1)
	if err := y.Clear(); err != ErrUnsupportedMutation {
		t.Fatalf("Clear() err = %v, want ErrUnsupportedMutation", err)
	}
	if err := y.RetainAll(func(Atom[string, int]) bool { return true }); err != ErrUnsupportedMutation {
		t.Fatalf("RetainAll() err = %v, want ErrUnsupportedMutation", err)
	}
}
