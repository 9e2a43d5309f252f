package main

import (
	"fmt"
	"os"

	"github.com/soktet/templatize"
)

func main() {
	if err := templatize.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
