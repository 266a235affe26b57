// Package main is the entry point for the cutout CLI
package main

import (
	"github.com/imgtools/cutout/internal/cli"
)

func main() {
	cli.Execute()
}
