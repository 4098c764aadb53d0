// Package main generates ed25519 signing keys and bearer tokens for local
// development against the crowdfund API.
package main

import (
	"fmt"
	"os"

	"crowdfund/internal/tools/tokengen"
)

func main() {
	if err := tokengen.Run(os.Stdout, os.Args[1:], nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
