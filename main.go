package main

import (
	"context"
	"os"

	"github.com/lakecity-club/clubstate/pkg/cli"
)

var version = "5.12.0"

func main() {
	if err := cli.Run(context.Background(), os.Args, version); err != nil {
		os.Exit(1)
	}
}
