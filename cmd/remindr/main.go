package main

import "github.com/alechenninger/remindr/internal/cli"

var version = "dev"

func main() {
	cli.Execute(version)
}
