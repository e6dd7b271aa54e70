package main

import (
	"os"

	"github.com/dshills/gradegate/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
