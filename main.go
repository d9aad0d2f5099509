package main

import (
	"github.com/Dando18/cmsc858d-assignment-2/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
