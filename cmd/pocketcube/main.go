// pocketcube - CLI for scrambling and solving a 2x2 pocket cube.
package main

import (
	"github.com/mfeldt/pocketcube/internal/cli"
)

func main() {
	cli.Execute()
}
