// Command accesskit-capture inspects capture files written when
// ACCESSKIT_CAPTURE_PATH is set.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
