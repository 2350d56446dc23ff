package main

import (
	"os"

	"github.com/android-4dsoft/yettel/cmd/vignettectl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
