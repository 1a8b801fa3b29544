package main

import (
	"os"

	"github.com/phamtuanthanh31072004/highlight-flow/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
