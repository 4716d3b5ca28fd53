package main

import (
	"github.com/andrescamacho/airline-tycoon-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
