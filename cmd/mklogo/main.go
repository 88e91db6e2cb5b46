// mklogo writes the placeholder whale logo PNG without touching any config.
// Usage: go run ./cmd/mklogo <output.png> [size]
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Mavwarf/iconkit/internal/imgio"
	"github.com/Mavwarf/iconkit/internal/logo"
)

func main() {
	if len(os.Args) < 2 {
		os.Exit(1)
	}
	size := 1024
	if len(os.Args) > 2 {
		v, err := strconv.Atoi(os.Args[2])
		if err != nil || v < 1 {
			os.Exit(1)
		}
		size = v
	}
	if err := imgio.WritePNG(os.Args[1], logo.Draw(size)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
