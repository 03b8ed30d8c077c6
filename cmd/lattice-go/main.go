package main

import (
	"fmt"
	"log"

	"github.com/cockroachdb/errors"

	"github.com/latticelearn/lattice-go/pkg/lattice"
)

func main() {
	log.Printf("lattice-go version: %s", lattice.WrapperVersion())

	lib, err := lattice.Open(lattice.Config{})
	if err != nil {
		if errors.Is(err, lattice.ErrNotBuilt) {
			fmt.Printf("native library unavailable: %v\n", err)
			return
		}
		log.Fatalf("unexpected failure opening library: %v", err)
	}
	defer func() {
		if cerr := lib.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()

	fmt.Printf("liblattice %s loaded\n", lattice.NativeVersion())
}
