package main

import "github.com/katalvlaran/quadlab/cli"

func main() {
	cli.Execute()
}
