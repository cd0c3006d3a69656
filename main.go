package main

import (
	"os"

	"github.com/zestyzomato/zesty/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
