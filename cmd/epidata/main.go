package main

import (
	"os"

	"github.com/alexgit0/memilio/cmd/epidata/root"
)

func main() {
	if err := root.New().Execute(); err != nil {
		os.Exit(1)
	}
}
