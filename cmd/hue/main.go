package main

import (
	"os"

	"hue-cli/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
