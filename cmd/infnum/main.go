package main

import (
	"os"

	"github.com/shabbyrobe/go-infnum/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
