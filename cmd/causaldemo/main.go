// Command causaldemo builds two per-site causal graphs with
// overlapping and disjoint sites, then prints both the intended merge
// and the source's documented single-side-drop defect side by side.
package main

import (
	"fmt"

	"github.com/riftlabs/crdt/causal"
)

func main() {
	a := causal.NewGraph[string, string]()
	id0 := a.Get("site-a").Insert("a-op-0", nil)
	a.Get("shared").Insert("shared-op-0", nil)
	_ = id0

	b := causal.NewGraph[string, string]()
	b.Get("shared").Insert("shared-op-0", nil)
	b.Get("site-b").Insert("b-op-0", nil)

	merged, err := causal.Merge(a, b)
	if err != nil {
		fmt.Println("merge error:", err)
		return
	}
	fmt.Println("intended merge sites ->", merged.Sites())

	defective, err := causal.MergeWithDroppedSingleSideYarns(a, b)
	if err != nil {
		fmt.Println("merge error:", err)
		return
	}
	fmt.Println("source-defect merge sites ->", defective.Sites())

	if err := merged.Validate(); err != nil {
		fmt.Println("validation failed:", err)
	}
}
