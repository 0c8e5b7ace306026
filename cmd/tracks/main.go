package main

import (
	"os"

	"github.com/bnema/conference-tracks/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
