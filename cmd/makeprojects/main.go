package main

import (
	"os"

	"github.com/chengwei920412/makeprojects/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
