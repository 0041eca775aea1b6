package main

import (
	"os"

	"github.com/railops/yardwheel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
