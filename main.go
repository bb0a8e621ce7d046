package main

import "github.com/halalflow/backend/internal/cli"

// Set at build time with -ldflags "-X main.version=..."
var version = "0.0.0"

func main() {
	cli.Execute(version)
}
