// Command freecorner renders images clipped to free-corner rounded rectangles.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/freecorner/cmd/freecorner/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
