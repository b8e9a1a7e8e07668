package main

import (
	"os"

	"macconv/cmd/macconv/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
