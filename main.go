package main

import (
	"os"

	"github.com/FarihaChoudhury/Assessment-Fundamentals-Week-2/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
