package main

import (
	"os"

	"github.com/bach-end/Portfolio/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
