// Command wootdemo runs two WOOT replicas through a concurrent-insert
// scenario and prints their converged views, in the spirit of the
// teacher repo's api/main.go two-replica merge demo.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/riftlabs/crdt/internal/config"
	"github.com/riftlabs/crdt/woot"
)

func siteLess(a, b string) bool { return a < b }

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.DefaultReplicaConfig()
	cfg.Logger = log

	a := woot.New[string, rune]("A", siteLess, cfg)
	b := woot.New[string, rune]("B", siteLess, cfg)

	opsA, err := woot.GenerateInsertString[string](a, 0, "hello")
	if err != nil {
		fmt.Fprintln(os.Stderr, "A generate:", err)
		os.Exit(1)
	}
	opsB, err := woot.GenerateInsertString[string](b, 0, "world")
	if err != nil {
		fmt.Fprintln(os.Stderr, "B generate:", err)
		os.Exit(1)
	}

	// B concurrently deletes the first character it just inserted.
	delOp, err := b.GenerateDelete(0)
	if err != nil {
		fmt.Fprintln(os.Stderr, "B delete:", err)
		os.Exit(1)
	}
	opsB = append(opsB, delOp)

	a.EnqueueAll(opsB)
	a.ApplyPending()
	b.EnqueueAll(opsA)
	b.ApplyPending()

	fmt.Println("A ->", string(a.Value()))
	fmt.Println("B ->", string(b.Value()))
}
