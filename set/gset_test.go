package set

import "testing"

func TestGSetMergeCommutative(t *testing.T) {
	a := GSetOf(1, 2, 3)
	b := GSetOf(3, 4, 5)

	ab := a.Merge(b)
	ba := b.Merge(a)

	if !ab.Equal(ba) {
		t.Fatalf("merge not commutative: a∪b=%v b∪a=%v", ab.Elements(), ba.Elements())
	}
}

func TestGSetMergeAssociative(t *testing.T) {
	a := GSetOf(1)
	b := GSetOf(2)
	c := GSetOf(3)

	left := a.Merge(b).Merge(c)
	right := a.Merge(b.Merge(c))

	if !left.Equal(right) {
		t.Fatalf("merge not associative: (a∪b)∪c=%v a∪(b∪c)=%v", left.Elements(), right.Elements())
	}
}

func TestGSetMergeIdempotent(t *testing.T) {
	a := GSetOf(1, 2)
	if !a.Merge(a).Equal(a) {
		t.Fatalf("merge not idempotent: a∪a=%v a=%v", a.Merge(a).Elements(), a.Elements())
	}
}

func TestGSetAddIsMonotone(t *testing.T) {
	a := NewGSet[string]()
	if a.Contains("x") {
		t.Fatal("empty set contains x")
	}
	b := a.Add("x")
	if !b.Contains("x") {
		t.Fatal("Add did not add x")
	}
	if a.Contains("x") {
		t.Fatal("Add mutated receiver")
	}
}
