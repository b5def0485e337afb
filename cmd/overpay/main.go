package main

import (
	"fmt"
	"os"
)

func main() {
	if err := execute(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
