package main

import (
	"os"

	"github.com/db47h/bigreal/cmd/bigreal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
