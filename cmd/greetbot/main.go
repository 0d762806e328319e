package main

import (
	"os"

	"smartgreeting/cmd/greetbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
