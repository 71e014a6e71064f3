package main

import "github.com/andrescamacho/spaceminer-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
