package main

import (
	"os"

	"github.com/burnwise/burnsched/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
