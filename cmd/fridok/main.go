// Package main implements the entry point for fridok, a terminal guide to the
// planets and stars with a quiz, a weight calculator and a size comparison.
package main

import (
	"context"
	"log"
	"os"
)

// main wires configuration, logging, settings and services together and hands
// the terminal over to the interactive app.
func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("fridok: %v", err)
	}
}
