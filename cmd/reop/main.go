package main

import (
	"fmt"
	"os"

	"reop/cmd/reop/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "reop:", err)
		os.Exit(1)
	}
}
