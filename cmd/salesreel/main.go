package main

import (
	"os"

	"github.com/ivlev/salesreel/internal/cli"
)

// Заполняются через -ldflags при сборке
var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
