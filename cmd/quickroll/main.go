package main

import (
	"os"

	"github.com/KirkDiggler/quickroll-bot/internal/config"
)

func main() {
	config.LoadDotEnv()

	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
