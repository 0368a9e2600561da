package main

import (
	"os"

	"github.com/jenilutfifauzi/dockbar/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
