// Package main provides the entry point for the trainer CLI tool.
package main

import (
	"github.com/Diavel78/product-trainer/cmd/trainer/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
