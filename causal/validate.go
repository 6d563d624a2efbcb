package causal

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validate checks the append-only invariant for every yarn in g: index
// values must run 0..len-1, in order, without gaps. It collects every
// violation found across all sites rather than stopping at the first,
// returning nil if the graph is well-formed.
func (g *Graph[O, S]) Validate() error {
	var result *multierror.Error

	for site, y := range g.yarns {
		for i, a := range y.atoms {
			if int(a.ID.Index) != i {
				result = multierror.Append(result, fmt.Errorf(
					"causal: yarn for site %v has atom at position %d with index %d, want %d",
					site, i, a.ID.Index, i,
				))
			}
			if a.ID.Site != site {
				result = multierror.Append(result, fmt.Errorf(
					"causal: yarn for site %v contains atom %v claiming site %v",
					site, a.ID, a.ID.Site,
				))
			}
		}
	}

	return result.ErrorOrNil()
}
