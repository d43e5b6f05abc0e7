package main

import (
	"fmt"
	"os"

	"github.com/hasbyte1/go-utils/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dotx:", err)
		os.Exit(1)
	}
}
