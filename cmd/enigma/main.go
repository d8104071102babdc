package main

import (
	"os"

	"github.com/yndnr/enigma-go/internal/cli/command"
)

func main() {
	os.Exit(command.Run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
