package main

import (
	"github.com/pgoelter/sequence-assembly/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
