// Package main implements the entry point for the SWAPI gateway, which
// proxies and reshapes the Star Wars API behind JWT authentication.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
