package main

import (
	"log"

	"bcommune_backend/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
