package main

import (
	"github.com/jwtan/cronflow/cmd"
)

var (
	version string
	commit  string
	date    string
)

func main() {
	cmd.ExecuteCLI(version, commit, date)
}
