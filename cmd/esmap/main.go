package main

import (
	"fmt"
	"os"

	"github.com/reoring/esmap/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "esmap:", err)
		os.Exit(1)
	}
}
