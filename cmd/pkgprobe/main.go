// cmd/pkgprobe/main.go
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/pkgprobe/pkgprobe/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hints := errors.FlattenHints(err); hints != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hints)
		}
		os.Exit(1)
	}
}
