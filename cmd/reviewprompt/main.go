package main

import (
	"os"

	"github.com/reviewprompt/reviewprompt/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
