package main

import (
	"os"

	"github.com/sdlcforge/makelint/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
