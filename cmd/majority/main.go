package main

import "github.com/katalvlaran/majority/internal/cli"

func main() {
	cli.Execute()
}
