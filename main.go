package main

import "github.com/structuraltools/goiscc/cmd"

func main() {
	cmd.Execute()
}
