package main

import (
	"fmt"
	"os"

	"github.com/Aanishnithin07/Schedulyze/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
