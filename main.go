// Package main is the entry point for the mutspace CLI.
package main

import "mutspace.dev/pkg/mutspace/cmd"

func main() {
	cmd.Execute()
}
