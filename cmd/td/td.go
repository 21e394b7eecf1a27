package main

import (
	"log"

	"tableflip.dev/td/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error: %v", err)
	}
}
