// Package main is the entry point for the trip planner API.
// Its sole responsibility is wiring dependencies together behind the
// tripplanner command tree. No business logic belongs here.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
