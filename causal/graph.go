package causal

// Graph is a mapping from site identifiers to that site's yarn.
type Graph[O any, S comparable] struct {
	yarns map[S]*Yarn[O, S]
}

// NewGraph returns an empty causal graph.
func NewGraph[O any, S comparable]() *Graph[O, S] {
	return &Graph[O, S]{yarns: make(map[S]*Yarn[O, S])}
}

// Get returns the yarn for site, creating an empty one on demand.
func (g *Graph[O, S]) Get(site S) *Yarn[O, S] {
	y, ok := g.yarns[site]
	if !ok {
		y = NewYarn[O, S](site)
		g.yarns[site] = y
	}
	return y
}

// Sites returns the set of sites with a yarn in this graph, in
// unspecified order.
func (g *Graph[O, S]) Sites() []S {
	out := make([]S, 0, len(g.yarns))
	for s := range g.yarns {
		out = append(out, s)
	}
	return out
}

// Merge combines a and b into a new graph: for every site present in
// both, the merged yarn is a.get(site).Merge(b.get(site)); sites
// present in only one side are carried over as an independent copy, so
// the result never shares mutable yarn state with a or b. This is the
// INTENDED cross-graph merge — the union of yarns, merging where both
// sides have one. See MergeWithDroppedSingleSideYarns for the source's
// documented defect, kept for test coverage.
func Merge[O any, S comparable](a, b *Graph[O, S]) (*Graph[O, S], error) {
	out := NewGraph[O, S]()

	sites := make(map[S]struct{}, len(a.yarns)+len(b.yarns))
	for s := range a.yarns {
		sites[s] = struct{}{}
	}
	for s := range b.yarns {
		sites[s] = struct{}{}
	}

	for s := range sites {
		ay, aok := a.yarns[s]
		by, bok := b.yarns[s]
		switch {
		case aok && bok:
			merged, err := ay.Merge(by)
			if err != nil {
				return nil, err
			}
			out.yarns[s] = merged
		case aok:
			out.yarns[s] = ay.Clone()
		case bok:
			out.yarns[s] = by.Clone()
		}
	}

	return out, nil
}

// MergeWithDroppedSingleSideYarns reproduces the source implementation's
// documented defect: it iterates the union of both sides' sites but
// only emits a merged yarn when BOTH sides have one for that site,
// silently dropping every single-side yarn. It exists solely so tests
// can assert the defect is real and distinguish it from the corrected
// Merge.
func MergeWithDroppedSingleSideYarns[O any, S comparable](a, b *Graph[O, S]) (*Graph[O, S], error) {
	out := NewGraph[O, S]()

	sites := make(map[S]struct{}, len(a.yarns)+len(b.yarns))
	for s := range a.yarns {
		sites[s] = struct{}{}
	}
	for s := range b.yarns {
		sites[s] = struct{}{}
	}

	for s := range sites {
		ay, aok := a.yarns[s]
		by, bok := b.yarns[s]
		if !aok || !bok {
			continue
		}
		merged, err := ay.Merge(by)
		if err != nil {
			return nil, err
		}
		out.yarns[s] = merged
	}

	return out, nil
}
