package main

import (
	"os"

	"github.com/ivlev/pptx2video/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
