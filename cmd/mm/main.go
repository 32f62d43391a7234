package main

import (
	"fmt"
	"os"

	"github.com/mm-notes/mm/pkg/core"
)

func main() {
	Execute()
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v (category: %s)\n", msg, err, core.CategoryOf(err))
	os.Exit(1)
}
