//go:build !linux && !darwin

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"portreap is only supported on Linux and macOS.\n\nIt inspects listening sockets with lsof, which is not available on this platform.",
	)
	os.Exit(1)
}
