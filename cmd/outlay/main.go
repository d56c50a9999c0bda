package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/outlay-dev/outlay/internal/commands"
)

func main() {
	// Optional .env for OUTLAY_* overrides; absence is fine.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
