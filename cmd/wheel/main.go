// Command wheel renders, replays and hosts the wheel picker.
package main

import (
	"github.com/charmbracelet/log"

	"github.com/go-drift/wheel/cmd/wheel/cmd"
)

func main() {
	root := cmd.New()
	addDemo(root)
	if err := root.Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
