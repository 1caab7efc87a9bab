package main

import "github.com/jax2600/warpstery/internal/cli"

func main() {
	cli.Execute()
}
