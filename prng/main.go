package main

import (
	"github.com/tutils/prng/cmd"
)

func main() {
	cmd.Execute()
}
