package main

import (
	"os"

	"github.com/cfdilens/cfdilens/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
