package main

import (
	"github.com/joho/godotenv"

	"github.com/agnanachandran/connect-four/internal/cli"
)

func main() {
	// .env is optional; real environment variables and flags still apply.
	if err := godotenv.Load(); err != nil {
		_ = godotenv.Load("../.env")
	}

	cli.Execute()
}
