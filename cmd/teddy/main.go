// ABOUTME: Entry point for the teddy CLI
// ABOUTME: Dispatches to the cobra command tree

package main

import (
	"github.com/BdN3504/teddy-sub000/cmd/teddy/cmd"
)

func main() {
	cmd.Execute()
}
