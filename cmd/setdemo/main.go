// Command setdemo exercises the three state-based set CRDTs on a pair
// of concurrent replicas, printing the merged result of each.
package main

import (
	"fmt"

	"github.com/riftlabs/crdt/set"
)

func main() {
	gA := set.GSetOf("go", "crdt")
	gB := set.GSetOf("golang")
	gMerged := gA.Merge(gB)
	fmt.Println("G-Set merged ->", gMerged.Elements())

	pA := set.NewPNSet[string]().Add("x")
	pB := set.NewPNSet[string]().Add("x").Remove("x")
	pMerged := pA.Merge(pB)
	fmt.Println("PN-Set merged Present() ->", pMerged.Present())
	fmt.Println("PN-Set merged Size() (source-faithful) ->", pMerged.Size())

	mA := set.NewMCSet[string]().Add("x").Remove("x").Add("x")
	mB := set.NewMCSet[string]().Add("x").Remove("x")
	mMerged := mA.Merge(mB)
	fmt.Println("MC-Set merged Elements() ->", mMerged.Elements())
}
