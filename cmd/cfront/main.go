package main

import (
	"os"

	"github.com/barun-bash/cfront/cmd/cfront/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
